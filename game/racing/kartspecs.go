package racing

import (
	"github.com/kartarena/kartarena/common/utils/number"
)

// KartSpecs describes the physical characteristics of a kart class.
// Immutable once the kart entity is built.
type KartSpecs struct {
	MaxSteerAngle  float64 `json:"maxsteerangle"` // radians
	WheelBase      float64 `json:"wheelbase"`     // meters
	KartLength     float64 `json:"kartlength"`    // meters
	KartWidth      float64 `json:"kartwidth"`     // meters
	MaxSpeed       float64 `json:"maxspeed"`      // m/s
	SkidVisualTime float64 `json:"skidvisualtime"`
}

// UsesVisualSkid reports whether the kart uses the continuous visual skid
// style. The discrete skid gate of the pilot is only meaningful for the
// legacy on/off skid model, so it is disabled for these karts.
func (specs KartSpecs) UsesVisualSkid() bool {
	return specs.SkidVisualTime > 0
}

// DefaultOversteerGain is the multiplier applied to the exact circular-arc
// steering solution. Overshooting the geometric answer produces tighter
// turns under per-frame re-evaluation; the value is empirical, not
// geometric.
const DefaultOversteerGain = 2.0

// AIProperties tunes a pilot. Obtained through MakeAIProperties or the
// difficulty table; out-of-range values are clamped, never rejected.
type AIProperties struct {
	SkiddingThreshold      float64 // steer fraction in [0, 1] beyond which the pilot skids
	TimeFullSteer          float64 // seconds from neutral to full lock
	OversteerGain          float64
	DisableSlipstreamBonus bool
	Debug                  bool
}

const minTimeFullSteer = 0.01

func MakeAIProperties(skiddingThreshold float64, timeFullSteer float64) AIProperties {
	if timeFullSteer < minTimeFullSteer {
		timeFullSteer = minTimeFullSteer
	}

	return AIProperties{
		SkiddingThreshold: number.Clamp(skiddingThreshold, 0, 1),
		TimeFullSteer:     timeFullSteer,
		OversteerGain:     DefaultOversteerGain,
	}
}

type _difficulty string

var Difficulty = struct {
	Novice       _difficulty
	Intermediate _difficulty
	Expert       _difficulty
}{
	Novice:       _difficulty("novice"),
	Intermediate: _difficulty("intermediate"),
	Expert:       _difficulty("expert"),
}

// Built once, read-only thereafter; accessed only through
// AIPropertiesForDifficulty, which hands out copies.
var aiPropertiesByDifficulty = map[_difficulty]AIProperties{
	Difficulty.Novice: {
		SkiddingThreshold:      0.95,
		TimeFullSteer:          0.5,
		OversteerGain:          DefaultOversteerGain,
		DisableSlipstreamBonus: true,
	},
	Difficulty.Intermediate: {
		SkiddingThreshold:      0.75,
		TimeFullSteer:          0.25,
		OversteerGain:          DefaultOversteerGain,
		DisableSlipstreamBonus: true,
	},
	Difficulty.Expert: {
		SkiddingThreshold:      0.6,
		TimeFullSteer:          0.1,
		OversteerGain:          DefaultOversteerGain,
	},
}

var difficultiesByName = map[string]_difficulty{
	"novice":       Difficulty.Novice,
	"intermediate": Difficulty.Intermediate,
	"expert":       Difficulty.Expert,
}

// DifficultyFromString maps a configuration value to a difficulty level;
// unknown names fall back to intermediate.
func DifficultyFromString(name string) _difficulty {
	difficulty, found := difficultiesByName[name]
	if !found {
		return Difficulty.Intermediate
	}

	return difficulty
}

func AIPropertiesForDifficulty(difficulty _difficulty) AIProperties {
	props, found := aiPropertiesByDifficulty[difficulty]
	if !found {
		return aiPropertiesByDifficulty[Difficulty.Intermediate]
	}

	return props
}
