package racing_test

import (
	"testing"

	"github.com/kartarena/kartarena/game/racing"
)

func TestStuckDetectorNotStuckWithinWindow(t *testing.T) {
	detector := &racing.StuckDetector{}

	// Three spaced collisions spanning less than the window: could still be
	// a single hard corner, not a wedged kart.
	detector.OnCollision(0.0)
	detector.OnCollision(0.6)
	detector.OnCollision(1.2)

	if detector.IsStuck() {
		t.Fatal("span below the collision window must not raise stuck")
	}
}

func TestStuckDetectorStuckWhenPersistentlyColliding(t *testing.T) {
	detector := &racing.StuckDetector{}

	detector.OnCollision(0.0)
	detector.OnCollision(0.6)
	detector.OnCollision(1.2)
	detector.OnCollision(1.8)

	if !detector.IsStuck() {
		t.Fatal("enough collisions spanning more than the window must raise stuck")
	}
}

func TestStuckDetectorDebouncesDuplicateReports(t *testing.T) {
	detector := &racing.StuckDetector{}

	// 0.1 is a duplicate report of the 0.0 impact; without the debounce the
	// log would hold three entries spanning more than the window.
	detector.OnCollision(0.0)
	detector.OnCollision(0.1)
	detector.OnCollision(1.7)

	if detector.IsStuck() {
		t.Fatal("debounced duplicate must not contribute to the stuck condition")
	}
}

func TestStuckDetectorEvictsOutdatedEntries(t *testing.T) {
	detector := &racing.StuckDetector{}

	detector.OnCollision(0.0)
	detector.OnCollision(10.0)

	if detector.IsStuck() {
		t.Fatal("two collisions ten seconds apart must not raise stuck")
	}

	// The 0.0 entry is gone; the fresh series has to build up on its own.
	detector.OnCollision(10.6)
	detector.OnCollision(11.2)

	if detector.IsStuck() {
		t.Fatal("fresh series still below the window must not raise stuck")
	}

	detector.OnCollision(11.8)

	if !detector.IsStuck() {
		t.Fatal("fresh series spanning the window must raise stuck")
	}
}

func TestStuckDetectorResetPerFrame(t *testing.T) {
	detector := &racing.StuckDetector{}

	detector.OnCollision(0.0)
	detector.OnCollision(0.6)
	detector.OnCollision(1.2)
	detector.OnCollision(1.8)

	if !detector.IsStuck() {
		t.Fatal("expected stuck")
	}

	detector.ResetPerFrame()

	if detector.IsStuck() {
		t.Fatal("per-frame reset must clear the flag")
	}

	// The log survives the per-frame reset; the very next collision
	// re-detects the condition.
	detector.OnCollision(2.4)

	if !detector.IsStuck() {
		t.Fatal("ongoing collision series must re-raise stuck")
	}
}

func TestStuckDetectorReset(t *testing.T) {
	detector := &racing.StuckDetector{}

	detector.OnCollision(0.0)
	detector.OnCollision(0.6)
	detector.OnCollision(1.2)
	detector.OnCollision(1.8)

	detector.Reset()

	if detector.IsStuck() {
		t.Fatal("reset must clear the flag")
	}

	detector.OnCollision(2.4)
	detector.OnCollision(3.0)

	if detector.IsStuck() {
		t.Fatal("reset must clear the collision log as well")
	}
}
