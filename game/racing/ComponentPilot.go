package racing

import (
	"github.com/kartarena/kartarena/common/utils"
	"github.com/kartarena/kartarena/common/utils/vector"
)

func (game RacingGame) CastPilot(data interface{}) *Pilot {
	return data.(*Pilot)
}

// Pilot is the autonomous controller of one kart. It is fed the kart's pose
// once per tick, emits a steer fraction and a skid tag into the Controls
// block, and watches terrain collisions for a stuck condition.
//
// The clock closure yields the current simulation time in seconds; it is
// injected so the stuck heuristic follows the simulated clock, not the wall
// clock.
type Pilot struct {
	specs KartSpecs
	props AIProperties
	clock func() float64

	stuckDetector StuckDetector

	route    []vector.Vector3
	waypoint int

	name string
}

func NewPilot(specs KartSpecs, props AIProperties, clock func() float64) *Pilot {
	utils.Assert(clock != nil, "pilot requires a simulation clock")

	return &Pilot{
		specs: specs,
		props: props,
		clock: clock,
		name:  "pilot",
	}
}

func (p Pilot) GetSpecs() KartSpecs {
	return p.specs
}

func (p Pilot) GetProperties() AIProperties {
	return p.props
}

func (p Pilot) GetName() string {
	return p.name
}

func (p *Pilot) SetName(name string) *Pilot {
	p.name = name
	return p
}

// Easier difficulty levels do not get to draft behind other karts.
func (p Pilot) DisableSlipstreamBonus() bool {
	return p.props.DisableSlipstreamBonus
}

func (p *Pilot) SetRoute(route []vector.Vector3) *Pilot {
	p.route = route
	p.waypoint = 0
	return p
}

// CurrentTarget returns the waypoint the pilot is steering at, advancing to
// the next one once the kart is within two kart lengths. The route loops.
func (p *Pilot) CurrentTarget(pose Pose) (vector.Vector3, bool) {
	if len(p.route) == 0 {
		return vector.MakeNullVector3(), false
	}

	target := p.route[p.waypoint]
	reach := p.specs.KartLength * 2

	if target.Sub(pose.Position).Mag() <= reach {
		p.waypoint = (p.waypoint + 1) % len(p.route)
		target = p.route[p.waypoint]
	}

	return target, true
}

// NextWaypoint peeks at the waypoint following the current target, without
// advancing the route.
func (p Pilot) NextWaypoint() (vector.Vector3, bool) {
	if len(p.route) == 0 {
		return vector.MakeNullVector3(), false
	}

	return p.route[(p.waypoint+1)%len(p.route)], true
}

// Update runs at the start of every frame, before physics. The stuck flag
// only survives from the physics pass to the rescue system within one frame.
func (p *Pilot) Update(dt float64) {
	p.stuckDetector.ResetPerFrame()
}

// Reset puts the pilot back in its initial state (race restart, completed
// rescue).
func (p *Pilot) Reset() {
	p.stuckDetector.Reset()
	p.waypoint = 0
}

// Rescued acknowledges a completed rescue: the collision history that led
// to the stuck condition is gone, route progress is kept.
func (p *Pilot) Rescued() {
	p.stuckDetector.Reset()
}

// Crashed is the collision notification entry point, called when the kart
// hit the terrain. It runs during physics resolution and must not mutate
// physics state; it only feeds the stuck detector. The material identifier
// is informational.
func (p *Pilot) Crashed(material string) {
	p.stuckDetector.OnCollision(p.clock())

	if p.props.Debug {
		utils.Debug("pilot", p.name+" crashed on material '"+material+"'")
	}
}

func (p Pilot) IsStuck() bool {
	return p.stuckDetector.IsStuck()
}
