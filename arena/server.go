package arena

import (
	"fmt"
	"log"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"

	"github.com/kartarena/kartarena/common/metrics"
	"github.com/kartarena/kartarena/common/utils/vector"
	"github.com/kartarena/kartarena/game/racing"
)

// Server drives one racing game: a single goroutine ticks the game at a
// fixed rate and owns every mutation of game state. Everything else
// (monitoring, metrics push, rescue notifications) only observes.
type Server struct {
	game        *racing.RacingGame
	tickspersec int
	ticknum     int

	stopticking chan struct{}

	karts map[uuid.UUID]ecs.EntityID

	metricsClient *metrics.Client
	ticksCounter  *metrics.Counter
}

func NewServer(game *racing.RacingGame, tickspersec int, metricsClient *metrics.Client) *Server {
	return &Server{
		game:        game,
		tickspersec: tickspersec,
		stopticking: make(chan struct{}),

		karts: make(map[uuid.UUID]ecs.EntityID),

		metricsClient: metricsClient,
		ticksCounter:  metrics.NewCounter(),
	}
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) GetGame() *racing.RacingGame {
	return server.game
}

// RegisterKart spawns a piloted kart and returns its public identity.
func (server *Server) RegisterKart(position vector.Vector2, specs racing.KartSpecs, props racing.AIProperties) uuid.UUID {
	entity := server.game.NewEntityKart(position, specs, props)

	id := uuid.NewV4() // random uuid
	server.karts[id] = entity.GetID()

	return id
}

func (server *Server) NbKarts() int {
	return len(server.karts)
}

func (server *Server) DoTick() {

	server.ticknum++
	server.ticksCounter.Add(1)

	dolog := (server.ticknum % server.tickspersec) == 0

	if dolog {
		fmt.Print(chalk.Yellow)
		log.Println("######## Tick #####", server.ticknum, chalk.Reset)
	}

	dt := 1.0 / float64(server.tickspersec)
	server.game.Step(server.ticknum, dt)
}

func (server *Server) startTicking() {

	go func() {

		tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
		ticker := time.Tick(tickduration)

		for {
			select {
			case <-server.stopticking:
				{
					log.Println("Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return // exiting goroutine
				}
			case <-ticker:
				{
					server.DoTick()
				}
			}
		}
	}()
}

func (server *Server) monitoring() {
	monitorfreq := time.Second
	for {
		select {
		case <-time.After(monitorfreq):
			{
				fmt.Print(chalk.Cyan)
				log.Println(
					"-- MONITORING --",
					server.ticksCounter.GetAndReset(), "ticks per", monitorfreq,
					";",
					server.game.GetCollisionsCounter().GetAndReset(), "collisions,",
					server.game.GetRescuesCounter().GetAndReset(), "rescues",
					chalk.Reset,
				)
			}
		}
	}
}

// Start launches the tick loop and its observers; it returns immediately.
func (server *Server) Start() {
	log.Print(chalk.Green)
	log.Println("Arena ready;", server.NbKarts(), "karts on the grid")
	log.Print(chalk.Reset)

	go server.monitoring()

	server.metricsClient.Loop(func() {
		server.metricsClient.WriteAppMetric("arena", map[string]interface{}{
			"ticknum": server.ticknum,
			"karts":   server.NbKarts(),
		})
	})

	server.startTicking()
}

func (server *Server) Stop() {
	close(server.stopticking)
	server.metricsClient.TearDown()
}
