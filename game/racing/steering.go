package racing

import (
	"math"

	"github.com/kartarena/kartarena/common/utils/number"
	"github.com/kartarena/kartarena/common/utils/vector"
)

// SteerToPoint computes the steering angle needed to reach a point in world
// space. When the point cannot be reached with a single forward arc, the
// returned angle is deliberately set beyond the skidding threshold so that
// the skid gate requests a sharp turn.
func (p *Pilot) SteerToPoint(point vector.Vector3, pose Pose) float64 {

	// Translate and rotate the point the pilot is aiming at into the
	// kart's local coordinate system: z ahead, x to the right.
	lc := point.Sub(pose.Position).RotateAroundY(-pose.Heading)
	lx := lc.GetX()
	lz := lc.GetZ()

	// Target coincident with the kart origin: the radius formula would
	// divide ~0 by ~0. There is nowhere to steer to; hold the wheel.
	if number.IsZero(lx) && number.IsZero(lz) {
		return 0
	}

	// A point below the x=z diagonal cannot be reached directly on any
	// circle: the kart would meet it on the way back after a more than 90
	// degree turn, which in practice produces slalom driving. Request an
	// angle high enough to trip the skid gate instead; 0.1 covers floating
	// point error on the threshold comparison.
	if math.Abs(lx) > math.Abs(lz) {
		if lx > 0 {
			return p.specs.MaxSteerAngle*p.props.SkiddingThreshold + 0.1
		}
		return -p.specs.MaxSteerAngle*p.props.SkiddingThreshold - 0.1
	}

	// The kart sits at the local origin facing +z, so the center of the
	// turning circle is on the x axis, at equal distance from the kart and
	// from the target:
	//   r*r = (r-lx)*(r-lx) + lz*lz  =>  r = (lx*lx + lz*lz) / (2*lx)
	radius := (lx*lx + lz*lz) / (2.0 * lx)

	sinSteerAngle := p.specs.WheelBase / radius

	// Required radius below what the wheel base can do: skid.
	if sinSteerAngle <= -1.0 {
		return -p.specs.MaxSteerAngle*p.props.SkiddingThreshold - 0.1
	}
	if sinSteerAngle >= 1.0 {
		return p.specs.MaxSteerAngle*p.props.SkiddingThreshold + 0.1
	}

	// Oversteer relative to the exact solution. Steering is re-evaluated
	// every frame, so steering too much does not hurt, and it helps in
	// tight turns on narrow track.
	return math.Asin(sinSteerAngle) * p.props.OversteerGain
}

// DoSkid decides whether the kart should skid given the steering fraction
// requested by the pilot.
func (p *Pilot) DoSkid(steerFraction float64, hazardActive bool) bool {
	// No skidding while control is restricted by a hazard.
	if hazardActive {
		return false
	}

	// The discrete gate only makes sense for the legacy on/off skid model;
	// karts with the continuous visual style never take it.
	if p.specs.UsesVisualSkid() {
		return false
	}

	return math.Abs(steerFraction) >= p.props.SkiddingThreshold
}

// SetSteering converts a steering angle to a [-1, 1] steer fraction and
// ramps the control block towards it, limited to dt/TimeFullSteer of travel
// per call. The ramp emulates the time a wheel needs to reach full lock on a
// digital input device and keeps the pilot from counter-steering
// instantaneously. A hazard restricts the reachable range to half.
func (p *Pilot) SetSteering(controls *Controls, angle float64, dt float64) {
	steerFraction := angle / p.specs.MaxSteerAngle

	hazardActive := controls.GetBlockedByHazardTime() > 0

	if !p.DoSkid(steerFraction, hazardActive) {
		controls.SetSkid(SkidControl.None)
	} else if steerFraction > 0 {
		controls.SetSkid(SkidControl.Right)
	} else {
		controls.SetSkid(SkidControl.Left)
	}

	oldSteer := controls.GetSteer()

	if steerFraction > 1.0 {
		steerFraction = 1.0
	} else if steerFraction < -1.0 {
		steerFraction = -1.0
	}

	if hazardActive {
		if steerFraction > 0.5 {
			steerFraction = 0.5
		} else if steerFraction < -0.5 {
			steerFraction = -0.5
		}
	}

	maxSteerChange := dt / p.props.TimeFullSteer

	if oldSteer < steerFraction {
		if oldSteer+maxSteerChange > steerFraction {
			controls.SetSteer(steerFraction)
		} else {
			controls.SetSteer(oldSteer + maxSteerChange)
		}
	} else {
		if oldSteer-maxSteerChange < steerFraction {
			controls.SetSteer(steerFraction)
		} else {
			controls.SetSteer(oldSteer - maxSteerChange)
		}
	}
}
