package racing

import (
	"math"

	"github.com/kartarena/kartarena/common/utils"
	"github.com/kartarena/kartarena/common/utils/number"
	"github.com/kartarena/kartarena/common/utils/trigo"
	"github.com/kartarena/kartarena/common/utils/vector"
)

// Yaw rate multiplier while the kart is skidding; skidding exists to allow
// turns the wheel base cannot do.
const skidYawGain = 1.6

// systemDriving turns the control block into motion: bicycle-model yaw from
// the steer fraction, constant cruise speed along the heading.
func systemDriving(game *RacingGame, dt float64) {
	for _, entityresult := range game.kartsView.Get() {
		pilotAspect := game.CastPilot(entityresult.Components[game.pilotComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		controlsAspect := game.CastControls(entityresult.Components[game.controlsComponent])

		specs := pilotAspect.GetSpecs()
		steerAngle := controlsAspect.GetSteer() * specs.MaxSteerAngle
		speed := physicalAspect.GetMaxSpeed()

		yawRate := 0.0
		if !number.IsZero(steerAngle) {
			yawRate = speed / specs.WheelBase * math.Tan(steerAngle)
		}

		if controlsAspect.GetSkid() != SkidControl.None {
			yawRate *= skidYawGain
		}

		heading, err := trigo.NormalizeAngle(physicalAspect.GetHeading() + yawRate*dt)
		if err != nil {
			// The heading is folded every tick, so this means corrupted
			// state upstream. Fatal when diagnosing; hold the current
			// heading otherwise.
			if game.description.Debug {
				utils.FailWith(err)
			}
			heading = physicalAspect.GetHeading()
		}

		physicalAspect.SetHeading(heading)

		forward := vector.MakeVector2(math.Sin(heading), math.Cos(heading))
		physicalAspect.SetVelocity(forward.SetMag(speed))
	}
}
