package racing

import (
	"fmt"
	"strconv"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/kartarena/kartarena/common/types"
	"github.com/kartarena/kartarena/common/utils/vector"
)

func (game *RacingGame) NewEntityObstacle(points []vector.Vector2, name string, material string) *ecs.Entity {
	return newEntityGroundOrObstacle(game, points, name, material, false)
}

func (game *RacingGame) NewEntityGround(points []vector.Vector2, name string) *ecs.Entity {
	return newEntityGroundOrObstacle(game, points, name, "", true)
}

func newEntityGroundOrObstacle(game *RacingGame, points []vector.Vector2, name string, material string, isGround bool) *ecs.Entity {

	obstacle := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := game.PhysicalWorld.CreateBody(&bodydef)

	vertices := make([]box2d.B2Vec2, len(points))
	for i := 0; i < len(points); i++ {
		vertices[i].Set(points[i].GetX(), points[i].GetY())
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Println("\n\nERROR - Obstacle or ground " + name + " is not valid; perhaps some vertices are duplicated?\n\n")
			panic(r)
		}
	}()

	shape := box2d.MakeB2ChainShape()
	shape.CreateLoop(vertices, len(vertices))
	body.CreateFixture(&shape, 0.0)

	descriptortype := commontypes.PhysicalBodyDescriptorType.Obstacle
	if isGround {
		descriptortype = commontypes.PhysicalBodyDescriptorType.Ground
	}

	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		descriptortype,
		strconv.Itoa(int(obstacle.GetID())),
		material,
	))

	return obstacle
}
