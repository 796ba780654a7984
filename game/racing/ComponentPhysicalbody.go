package racing

import (
	"github.com/bytearena/box2d"

	"github.com/kartarena/kartarena/common/utils/vector"
)

func (game RacingGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// Pose is the read-only kinematic state the pilot consumes: world position
// and yaw heading. Heading 0 faces +z, growing clockwise towards +x.
type Pose struct {
	Position vector.Vector3
	Heading  float64
}

type PhysicalBody struct {
	body     *box2d.B2Body
	maxSpeed float64 // m/s
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p *PhysicalBody) SetBody(body *box2d.B2Body) *PhysicalBody {
	p.body = body
	return p
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	v := p.body.GetPosition()
	return vector.MakeVector2(v.X, v.Y)
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(v.ToB2Vec2(), p.GetHeading())
	return p
}

func (p PhysicalBody) GetHeading() float64 {
	return p.body.GetAngle()
}

func (p *PhysicalBody) SetHeading(heading float64) *PhysicalBody {
	p.body.SetTransform(p.body.GetPosition(), heading)
	return p
}

// GetPose lifts the box2d plane into the world frame (box2d y becomes
// world z, the forward axis).
func (p PhysicalBody) GetPose() Pose {
	return Pose{
		Position: p.GetPosition().ToXZPlane(),
		Heading:  p.GetHeading(),
	}
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	v := p.body.GetLinearVelocity()
	return vector.MakeVector2(v.X, v.Y)
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetLinearVelocity(v.ToB2Vec2())
	return p
}

func (p PhysicalBody) GetMaxSpeed() float64 {
	return p.maxSpeed
}

func (p *PhysicalBody) SetMaxSpeed(maxSpeed float64) *PhysicalBody {
	p.maxSpeed = maxSpeed
	return p
}
