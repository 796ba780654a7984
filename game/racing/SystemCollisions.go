package racing

import (
	"strconv"

	"github.com/bytearena/ecs"

	commontypes "github.com/kartarena/kartarena/common/types"
)

// systemCollisions drains the contact buffer filled during the physics step
// and notifies each involved pilot that its kart hit the terrain. Runs after
// PhysicalWorld.Step has returned, never during it.
func systemCollisions(game *RacingGame) {
	for _, collision := range game.collisionListener.PopCollisions() {

		descriptorA, ok := collision.GetFixtureA().GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
		if !ok {
			continue
		}

		descriptorB, ok := collision.GetFixtureB().GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
		if !ok {
			continue
		}

		routeTerrainCollision(game, descriptorA, descriptorB)
		routeTerrainCollision(game, descriptorB, descriptorA)
	}
}

func routeTerrainCollision(game *RacingGame, collider commontypes.PhysicalBodyDescriptor, collidee commontypes.PhysicalBodyDescriptor) {

	if collider.Type != commontypes.PhysicalBodyDescriptorType.Kart {
		return
	}

	// Only terrain feeds the stuck heuristic; kart against kart contacts
	// resolve themselves.
	if collidee.Type != commontypes.PhysicalBodyDescriptorType.Obstacle {
		return
	}

	id, _ := strconv.Atoi(collider.ID)
	entityresult := game.getEntity(ecs.EntityID(id), game.pilotComponent)
	if entityresult == nil {
		// kart disposed between the step and the dispatch
		return
	}

	pilotAspect := game.CastPilot(entityresult.Components[game.pilotComponent])
	pilotAspect.Crashed(collidee.Material)

	game.collisionsCounter.Add(1)
}
