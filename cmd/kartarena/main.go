package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	notify "github.com/bitly/go-notify"

	"github.com/kartarena/kartarena/arena"
	"github.com/kartarena/kartarena/arena/config"
	"github.com/kartarena/kartarena/common/metrics"
	"github.com/kartarena/kartarena/common/utils"
	"github.com/kartarena/kartarena/game/racing"
)

func main() {

	rand.Seed(time.Now().UnixNano())

	configpath := flag.String("config", "arena.json", "Path to the arena configuration")
	flag.Parse()

	arenaconfig, err := config.LoadArenaConfig(*configpath)
	if err != nil {
		utils.FailWith(err)
	}

	metricsClient, err := metrics.NewClient("kartarena")
	if err != nil {
		utils.Debug("kartarena", "metrics disabled: "+err.Error())
	}

	game := racing.NewRacingGame(arenaconfig.Description)
	server := arena.NewServer(game, arenaconfig.Tps, metricsClient)

	for _, kart := range arenaconfig.Karts {
		id := server.RegisterKart(kart.Start, kart.Specs, kart.Props)
		utils.Debug("kartarena", "registered kart "+kart.Name+" ("+id.String()+")")
	}

	// Rescue notifications; the rescue itself already happened inside the
	// game loop, this is observation only.
	rescues := make(chan interface{})
	notify.Start("arena:rescue", rescues)
	go func() {
		for payload := range rescues {
			if entityid, ok := payload.(int); ok {
				utils.Debug("kartarena", "kart entity "+strconv.Itoa(entityid)+" was rescued")
			}
		}
	}()

	server.Start()

	// handling signals
	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, os.Interrupt, syscall.SIGTERM)

	stopped := make(chan interface{})
	notify.Start("app:stopticking", stopped)

	<-hassigtermed
	server.Stop()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		log.Println("Tick loop did not confirm stop; quitting anyway")
	}
}
