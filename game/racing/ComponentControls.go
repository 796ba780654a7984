package racing

func (game RacingGame) CastControls(data interface{}) *Controls {
	return data.(*Controls)
}

type _skidcontrol string

func (s _skidcontrol) String() string {
	return string(s)
}

var SkidControl = struct {
	None  _skidcontrol
	Left  _skidcontrol
	Right _skidcontrol
}{
	None:  _skidcontrol("none"),
	Left:  _skidcontrol("left"),
	Right: _skidcontrol("right"),
}

// Controls is the per-kart control block. The pilot writes it once per tick;
// the driving system reads it to move the physical body.
type Controls struct {
	steer               float64 // steer fraction in [-1, 1]
	skid                _skidcontrol
	blockedByHazardTime float64 // seconds of control restriction left
}

func NewControls() *Controls {
	return &Controls{
		skid: SkidControl.None,
	}
}

func (c Controls) GetSteer() float64 {
	return c.steer
}

func (c *Controls) SetSteer(steer float64) *Controls {
	c.steer = steer
	return c
}

func (c Controls) GetSkid() _skidcontrol {
	return c.skid
}

func (c *Controls) SetSkid(skid _skidcontrol) *Controls {
	c.skid = skid
	return c
}

func (c Controls) GetBlockedByHazardTime() float64 {
	return c.blockedByHazardTime
}

func (c *Controls) SetBlockedByHazard(seconds float64) *Controls {
	c.blockedByHazardTime = seconds
	return c
}

func (c *Controls) CoolDownHazard(dt float64) *Controls {
	c.blockedByHazardTime -= dt
	if c.blockedByHazardTime < 0 {
		c.blockedByHazardTime = 0
	}
	return c
}
