package racing

import (
	notify "github.com/bitly/go-notify"

	"github.com/kartarena/kartarena/common/utils/trigo"
	"github.com/kartarena/kartarena/common/utils/vector"
)

// systemRescue reads the stuck flags raised during the physics pass and puts
// wedged karts back on their route. Teleporting a body is only legal here,
// outside the physics step; the collision callbacks that detected the
// condition were not allowed to do it.
func systemRescue(game *RacingGame) {
	for _, entityresult := range game.kartsView.Get() {
		pilotAspect := game.CastPilot(entityresult.Components[game.pilotComponent])

		if !pilotAspect.IsStuck() {
			continue
		}

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		controlsAspect := game.CastControls(entityresult.Components[game.controlsComponent])

		pose := physicalAspect.GetPose()

		if target, hasTarget := pilotAspect.CurrentTarget(pose); hasTarget {
			physicalAspect.SetPosition(target.XZ())

			// Point the kart down the route so it does not drive
			// straight back into whatever it was wedged against.
			if next, hasNext := pilotAspect.NextWaypoint(); hasNext {
				heading := next.Sub(target).XZ().Angle()
				physicalAspect.SetHeading(trigo.FullCircleAngleToSignedHalfCircleAngle(heading))
			}
		}

		physicalAspect.SetVelocity(vector.MakeNullVector2())
		controlsAspect.SetSteer(0).SetSkid(SkidControl.None)

		pilotAspect.Rescued()

		game.rescuesCounter.Add(1)
		notify.Post("arena:rescue", int(entityresult.Entity.GetID()))
	}
}
