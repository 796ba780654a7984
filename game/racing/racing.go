package racing

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/kartarena/kartarena/common/metrics"
	"github.com/kartarena/kartarena/common/utils"
	"github.com/kartarena/kartarena/common/utils/vector"
)

const (
	velocityIterations = 8
	positionIterations = 2
)

// ArenaDescription is everything the game needs to build its world: the
// bounds of the drivable area, the route karts follow, and optional inner
// obstacles. Debug routes per-step diagnostics through the structured log
// instead of a process-wide toggle.
type ArenaDescription struct {
	Tps       int
	HalfWidth float64 // arena half extent along x, meters
	HalfDepth float64 // arena half extent along z, meters
	Route     []vector.Vector3
	Obstacles []ObstacleDescription
	Debug     bool
}

type ObstacleDescription struct {
	Name     string
	Material string
	Points   []vector.Vector2
}

type RacingGame struct {
	ticknum int
	simTime float64 // seconds since the start of the race

	description ArenaDescription
	manager     *ecs.Manager

	physicalBodyComponent *ecs.Component
	controlsComponent     *ecs.Component
	pilotComponent        *ecs.Component

	physicalView *ecs.View
	kartsView    *ecs.View

	PhysicalWorld     *box2d.B2World
	collisionListener *collisionListener

	collisionsCounter *metrics.Counter
	rescuesCounter    *metrics.Counter
}

func NewRacingGame(description ArenaDescription) *RacingGame {
	manager := ecs.NewManager()

	game := &RacingGame{
		description: description,
		manager:     manager,

		physicalBodyComponent: manager.NewComponent(),
		controlsComponent:     manager.NewComponent(),
		pilotComponent:        manager.NewComponent(),

		collisionsCounter: metrics.NewCounter(),
		rescuesCounter:    metrics.NewCounter(),
	}

	gravity := box2d.MakeB2Vec2(0.0, 0.0) // seen from the top
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	initPhysicalWorld(game)

	game.physicalView = manager.CreateView(game.physicalBodyComponent)

	game.kartsView = manager.CreateView(
		game.pilotComponent,
		game.physicalBodyComponent,
		game.controlsComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
	})

	game.collisionListener = newCollisionListener(game)
	game.PhysicalWorld.SetContactListener(game.collisionListener)
	game.PhysicalWorld.SetContactFilter(newCollisionFilter(game))

	return game
}

func (game RacingGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

// SimTime is the simulation clock, in seconds. It only advances through
// Step, so tests and pilots see the same timeline.
func (game *RacingGame) SimTime() float64 {
	return game.simTime
}

func (game *RacingGame) GetTicknum() int {
	return game.ticknum
}

func (game *RacingGame) GetCollisionsCounter() *metrics.Counter {
	return game.collisionsCounter
}

func (game *RacingGame) GetRescuesCounter() *metrics.Counter {
	return game.rescuesCounter
}

// KartPose returns the current pose of a kart entity.
func (game *RacingGame) KartPose(id ecs.EntityID) (Pose, bool) {
	entityresult := game.getEntity(id, game.physicalBodyComponent)
	if entityresult == nil {
		return Pose{}, false
	}

	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
	return physicalAspect.GetPose(), true
}

// KartControls returns the current control block of a kart entity.
func (game *RacingGame) KartControls(id ecs.EntityID) (*Controls, bool) {
	entityresult := game.getEntity(id, game.controlsComponent)
	if entityresult == nil {
		return nil, false
	}

	return game.CastControls(entityresult.Components[game.controlsComponent]), true
}

// Step advances the whole game by dt seconds. One single goroutine calls it;
// every mutation of game state happens inside.
//
// Collision callbacks fire while the physics solver runs, so they only
// buffer; reacting to them (and in particular rescuing stuck karts, which
// teleports bodies) happens strictly after PhysicalWorld.Step has returned.
func (game *RacingGame) Step(ticknum int, dt float64) {

	watch := utils.MakeStopwatch("racing::Step()")
	watch.Start("Step")

	game.ticknum = ticknum
	game.simTime += dt

	systemHazards(game, dt)
	systemPilots(game, dt)
	systemDriving(game, dt)

	watch.Start("physics")
	game.PhysicalWorld.Step(dt, velocityIterations, positionIterations)
	watch.Stop("physics")

	systemCollisions(game)
	systemRescue(game)

	watch.Stop("Step")

	if game.description.Debug {
		utils.Debug("racing", watch.String())
	}
}

func initPhysicalWorld(game *RacingGame) {

	description := game.description

	// Arena border; hitting it counts as terrain for the stuck heuristic.
	border := []vector.Vector2{
		vector.MakeVector2(-description.HalfWidth, -description.HalfDepth),
		vector.MakeVector2(description.HalfWidth, -description.HalfDepth),
		vector.MakeVector2(description.HalfWidth, description.HalfDepth),
		vector.MakeVector2(-description.HalfWidth, description.HalfDepth),
	}

	game.NewEntityObstacle(border, "border", "wall")

	game.NewEntityGround(border, "ground")

	for _, obstacle := range description.Obstacles {
		game.NewEntityObstacle(obstacle.Points, obstacle.Name, obstacle.Material)
	}
}
