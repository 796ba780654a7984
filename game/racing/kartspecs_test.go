package racing_test

import (
	"testing"

	"github.com/kartarena/kartarena/game/racing"
)

func TestMakeAIPropertiesClampsConfiguration(t *testing.T) {
	props := racing.MakeAIProperties(3.0, -1.0)

	if props.SkiddingThreshold != 1.0 {
		t.Fatalf("threshold above range must clamp to 1.0, got %v", props.SkiddingThreshold)
	}

	if props.TimeFullSteer <= 0 {
		t.Fatalf("time to full steer must stay positive, got %v", props.TimeFullSteer)
	}

	props = racing.MakeAIProperties(-0.5, 0.25)

	if props.SkiddingThreshold != 0 {
		t.Fatalf("threshold below range must clamp to 0, got %v", props.SkiddingThreshold)
	}

	if props.OversteerGain != racing.DefaultOversteerGain {
		t.Fatalf("unexpected oversteer gain %v", props.OversteerGain)
	}
}

func TestAIPropertiesForDifficulty(t *testing.T) {
	novice := racing.AIPropertiesForDifficulty(racing.Difficulty.Novice)
	expert := racing.AIPropertiesForDifficulty(racing.Difficulty.Expert)

	if novice.SkiddingThreshold <= expert.SkiddingThreshold {
		t.Fatal("novices should skid less readily than experts")
	}

	if !novice.DisableSlipstreamBonus {
		t.Fatal("novices should not get the slipstream bonus")
	}

	if expert.DisableSlipstreamBonus {
		t.Fatal("experts should get the slipstream bonus")
	}
}

func TestAIPropertiesTableIsCopied(t *testing.T) {
	props := racing.AIPropertiesForDifficulty(racing.Difficulty.Expert)
	props.SkiddingThreshold = 0

	again := racing.AIPropertiesForDifficulty(racing.Difficulty.Expert)
	if again.SkiddingThreshold == 0 {
		t.Fatal("mutating a returned AIProperties must not affect the table")
	}
}

func TestDifficultyFromString(t *testing.T) {
	if racing.DifficultyFromString("expert") != racing.Difficulty.Expert {
		t.Fatal("Unexpected result")
	}

	if racing.DifficultyFromString("impossible") != racing.Difficulty.Intermediate {
		t.Fatal("unknown difficulty must fall back to intermediate")
	}
}
