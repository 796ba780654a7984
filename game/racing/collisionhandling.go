package racing

import (
	"github.com/bytearena/box2d"

	commontypes "github.com/kartarena/kartarena/common/types"
)

type collisionFilter struct { /* implements box2d.B2World.B2ContactFilterInterface */
	game *RacingGame
}

func (filter *collisionFilter) ShouldCollide(fixtureA *box2d.B2Fixture, fixtureB *box2d.B2Fixture) bool {

	descriptorA, ok := fixtureA.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return false
	}

	descriptorB, ok := fixtureB.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return false
	}

	// Karts roll over the ground surface; it never blocks them.
	if descriptorA.Type == commontypes.PhysicalBodyDescriptorType.Ground {
		return false
	}

	if descriptorB.Type == commontypes.PhysicalBodyDescriptorType.Ground {
		return false
	}

	return true
}

func newCollisionFilter(game *RacingGame) *collisionFilter {
	return &collisionFilter{
		game: game,
	}
}

// collisionListener buffers contacts raised during PhysicalWorld.Step.
// Contacts are reported while the solver is still resolving the step, so
// nothing may react to them synchronously; the game pops and dispatches the
// buffer once the step has returned.
type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	game            *RacingGame
	collisionbuffer []box2d.B2ContactInterface
}

func newCollisionListener(game *RacingGame) *collisionListener {
	return &collisionListener{
		game:            game,
		collisionbuffer: make([]box2d.B2ContactInterface, 0),
	}
}

func (listener *collisionListener) PopCollisions() []box2d.B2ContactInterface {
	defer func() { listener.collisionbuffer = make([]box2d.B2ContactInterface, 0) }()
	return listener.collisionbuffer
}

// Called when two fixtures begin to touch.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	listener.collisionbuffer = append(listener.collisionbuffer, contact)
}

// Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) { // contact has to be backed by a pointer
}
