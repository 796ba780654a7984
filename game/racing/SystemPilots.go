package racing

// systemPilots runs every autonomous controller once: clear the per-frame
// stuck flag, aim at the current waypoint, solve the steering angle and ramp
// the control block towards it.
func systemPilots(game *RacingGame, dt float64) {
	for _, entityresult := range game.kartsView.Get() {
		pilotAspect := game.CastPilot(entityresult.Components[game.pilotComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		controlsAspect := game.CastControls(entityresult.Components[game.controlsComponent])

		pilotAspect.Update(dt)

		pose := physicalAspect.GetPose()

		target, hasTarget := pilotAspect.CurrentTarget(pose)
		if !hasTarget {
			// No route to follow (countdown, menu); relax the wheel.
			pilotAspect.SetSteering(controlsAspect, 0, dt)
			continue
		}

		angle := pilotAspect.SteerToPoint(target, pose)
		pilotAspect.SetSteering(controlsAspect, angle, dt)
	}
}
