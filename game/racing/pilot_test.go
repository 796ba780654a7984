package racing_test

import (
	"testing"

	"github.com/kartarena/kartarena/common/utils/vector"
	"github.com/kartarena/kartarena/game/racing"
)

func TestPilotCrashedFollowsSimulationClock(t *testing.T) {
	simTime := 0.0
	pilot := racing.NewPilot(testSpecs(), testProps(), func() float64 { return simTime })

	for _, at := range []float64{0.0, 0.6, 1.2, 1.8} {
		simTime = at
		pilot.Crashed("wall")
	}

	if !pilot.IsStuck() {
		t.Fatal("persistent terrain collisions must flag the pilot as stuck")
	}
}

func TestPilotUpdateClearsStuckEveryFrame(t *testing.T) {
	simTime := 0.0
	pilot := racing.NewPilot(testSpecs(), testProps(), func() float64 { return simTime })

	for _, at := range []float64{0.0, 0.6, 1.2, 1.8} {
		simTime = at
		pilot.Crashed("wall")
	}

	pilot.Update(0.05)

	if pilot.IsStuck() {
		t.Fatal("the stuck flag must not survive into the next frame")
	}
}

func TestPilotRescuedKeepsRouteProgress(t *testing.T) {
	simTime := 0.0
	pilot := racing.NewPilot(testSpecs(), testProps(), func() float64 { return simTime })

	route := []vector.Vector3{
		vector.MakeVector3(0, 0, 40),
		vector.MakeVector3(40, 0, 40),
		vector.MakeVector3(40, 0, 0),
	}
	pilot.SetRoute(route)

	// Reach the first waypoint so the pilot advances to the second.
	pose := racing.Pose{Position: vector.MakeVector3(0, 0, 40), Heading: 0}
	pilot.CurrentTarget(pose)

	pilot.Rescued()

	target, hasTarget := pilot.CurrentTarget(racing.Pose{Position: vector.MakeNullVector3()})
	if !hasTarget {
		t.Fatal("expected a target")
	}
	if !target.Equals(route[1]) {
		t.Fatalf("rescue must keep route progress, got target %v", target)
	}
}

func TestPilotWithoutRouteHasNoTarget(t *testing.T) {
	pilot := racing.NewPilot(testSpecs(), testProps(), fixedClock(0))

	if _, hasTarget := pilot.CurrentTarget(originPose()); hasTarget {
		t.Fatal("pilot without a route must have no target")
	}
}

func TestPilotRouteLoops(t *testing.T) {
	pilot := racing.NewPilot(testSpecs(), testProps(), fixedClock(0))

	route := []vector.Vector3{
		vector.MakeVector3(0, 0, 40),
		vector.MakeVector3(40, 0, 40),
	}
	pilot.SetRoute(route)

	// Stand on each waypoint in turn; the route must wrap around.
	pilot.CurrentTarget(racing.Pose{Position: route[0]})
	pilot.CurrentTarget(racing.Pose{Position: route[1]})

	target, _ := pilot.CurrentTarget(racing.Pose{Position: vector.MakeVector3(20, 0, 0)})
	if !target.Equals(route[0]) {
		t.Fatalf("route must loop back to the first waypoint, got %v", target)
	}
}
