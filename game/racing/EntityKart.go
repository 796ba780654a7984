package racing

import (
	"strconv"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/kartarena/kartarena/common/types"
	"github.com/kartarena/kartarena/common/utils/vector"
)

// NewEntityKart spawns a kart at the given physics-plane position, piloted
// by an autonomous controller with the given properties. The pilot follows
// the arena route.
func (game *RacingGame) NewEntityKart(position vector.Vector2, specs KartSpecs, props AIProperties) *ecs.Entity {

	kart := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(specs.KartWidth/2, specs.KartLength/2)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 20.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Kart,
		strconv.Itoa(int(kart.GetID())),
		"", // karts carry no surface material
	))
	body.SetBullet(false)

	pilot := NewPilot(specs, props, game.SimTime).
		SetRoute(game.description.Route)

	return kart.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:     body,
			maxSpeed: specs.MaxSpeed,
		}).
		AddComponent(game.controlsComponent, NewControls()).
		AddComponent(game.pilotComponent, pilot)
}
