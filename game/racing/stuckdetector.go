package racing

// Parameters of the stuck heuristic. It typically takes ~0.5s for a wedged
// kart to be pushed back from the terrain, accelerate and hit it again, so
// three spaced collision records spanning more than the window mean the kart
// is not getting anywhere.
const (
	stuckNumCollisions   = 3
	stuckCollisionWindow = 1.5 // seconds
	stuckDebounce        = 0.2 // seconds
	stuckRetention       = stuckCollisionWindow + 1.0
)

// StuckDetector decides, from terrain collision reports over time, whether a
// kart is wedged and needs a rescue. Owned by a single pilot; only ever
// touched from that kart's own update and collision callbacks.
//
// The collision log is ascending by construction. Physics engines report a
// single physical impact several times across adjacent steps, so reports
// arriving within the debounce of the previous one are discarded; the
// window/count pair then separates "persistently wedged" from "one hard
// hit".
type StuckDetector struct {
	collisionTimes []float64
	stuck          bool
}

// OnCollision records a terrain collision at simulation time t. Safe to call
// from within a physics resolution pass: it only appends to the log and sets
// the flag, it never mutates physics state.
func (detector *StuckDetector) OnCollision(t float64) {
	if len(detector.collisionTimes) == 0 {
		detector.collisionTimes = append(detector.collisionTimes, t)
		return
	}

	if t-detector.collisionTimes[len(detector.collisionTimes)-1] < stuckDebounce {
		// duplicate report of the same physical impact
		return
	}

	// Entries older than the retention horizon must not contribute to a
	// stuck condition; the log is ordered, so this is a prefix trim.
	for len(detector.collisionTimes) > 0 && t-detector.collisionTimes[0] > stuckRetention {
		detector.collisionTimes = detector.collisionTimes[1:]
	}

	detector.collisionTimes = append(detector.collisionTimes, t)

	if t-detector.collisionTimes[0] > stuckCollisionWindow &&
		len(detector.collisionTimes) >= stuckNumCollisions {
		detector.stuck = true
	}
}

func (detector *StuckDetector) IsStuck() bool {
	return detector.stuck
}

// ResetPerFrame clears the flag at the start of a frame; collisions resolved
// during the frame may raise it again before the rescue system reads it.
func (detector *StuckDetector) ResetPerFrame() {
	detector.stuck = false
}

// Reset clears the flag and the whole collision log, for race restarts and
// completed rescues.
func (detector *StuckDetector) Reset() {
	detector.stuck = false
	detector.collisionTimes = detector.collisionTimes[:0]
}
