package racing

// Hazard control restrictions wear off with simulated time.
func systemHazards(game *RacingGame, dt float64) {
	for _, entityresult := range game.kartsView.Get() {
		controlsAspect := game.CastControls(entityresult.Components[game.controlsComponent])
		controlsAspect.CoolDownHazard(dt)
	}
}
