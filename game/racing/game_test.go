package racing_test

import (
	"math"
	"testing"

	"github.com/kartarena/kartarena/common/utils/vector"
	"github.com/kartarena/kartarena/game/racing"
)

func testDescription() racing.ArenaDescription {
	return racing.ArenaDescription{
		Tps:       20,
		HalfWidth: 100,
		HalfDepth: 100,
		Route: []vector.Vector3{
			vector.MakeVector3(0, 0, 40),
			vector.MakeVector3(40, 0, 40),
		},
	}
}

func TestGameStepAdvancesKartAlongRoute(t *testing.T) {
	game := racing.NewRacingGame(testDescription())

	kart := game.NewEntityKart(vector.MakeVector2(0, 0), testSpecs(), testProps())

	dt := 0.05
	for i := 1; i <= 40; i++ {
		game.Step(i, dt)
	}

	pose, found := game.KartPose(kart.GetID())
	if !found {
		t.Fatal("kart should still exist")
	}

	// First waypoint is straight ahead along +z; two seconds of driving
	// must have moved the kart towards it.
	if pose.Position.GetZ() < 5 {
		t.Fatalf("kart did not advance towards its waypoint: %v", pose.Position)
	}

	if math.Abs(game.SimTime()-float64(40)*dt) > 1e-9 {
		t.Fatalf("simulation clock off: %v", game.SimTime())
	}
}

func TestGameStepKeepsControlsInRange(t *testing.T) {
	game := racing.NewRacingGame(testDescription())

	// Spawn facing away from the route so the pilot has to work.
	kart := game.NewEntityKart(vector.MakeVector2(30, -30), testSpecs(), testProps())

	for i := 1; i <= 200; i++ {
		game.Step(i, 0.05)

		controls, found := game.KartControls(kart.GetID())
		if !found {
			t.Fatal("kart should still exist")
		}

		steer := controls.GetSteer()
		if steer < -1 || steer > 1 {
			t.Fatalf("steer fraction out of range at tick %d: %v", i, steer)
		}
	}
}

func TestGameKartQueryMissingEntity(t *testing.T) {
	game := racing.NewRacingGame(testDescription())

	if _, found := game.KartPose(12345); found {
		t.Fatal("pose query for an unknown entity must report absence")
	}
}
