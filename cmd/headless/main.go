// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/autopilot"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

func main() {
	logger := logging.NewLogger()
	defer logger.Sync()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "config.yaml", "Path to configuration file (.yaml, .yml or .json)")
	behaviorName := flag.String("behavior", "hunter", "Autopilot behavior: explorer, hunter or defender")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 = no limit)")
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the configuration when set")
	realtime := flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
	flag.Parse()

	behavior, err := autopilot.ParseBehavior(*behaviorName)
	if err != nil {
		logger.Error(ctx, "Invalid behavior", err, "behavior", *behaviorName)
		os.Exit(2)
	}

	gameConfig, found, err := config.LoadOrDefault(*configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	if !found {
		logger.Info(ctx, "Configuration file not found, using default configuration", "config_path", *configPath)
	}
	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	if *seed != 0 {
		gameConfig.Seed = *seed
	}

	game := engine.NewGame(gameConfig)
	game.EventBus.Subscribe(event.CraftDestroyed, func(e event.Event) {
		if ev, ok := e.(*event.EntityEvent); ok {
			logger.Debug(ctx, "Craft destroyed", "x", ev.Position.X, "y", ev.Position.Y)
		}
	})
	game.EventBus.Subscribe(event.ScoreChanged, func(e event.Event) {
		if ev, ok := e.(*event.ScoreEvent); ok {
			logger.Debug(ctx, "Score changed", "score", ev.Score)
		}
	})

	pilotSeed := gameConfig.Seed
	if pilotSeed == 0 {
		pilotSeed = uint64(time.Now().UnixNano())
	}
	pilot := autopilot.New(behavior, rand.New(rand.NewPCG(pilotSeed, pilotSeed+1)))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pace <-chan time.Time
	if *realtime {
		ticker := time.NewTicker(time.Second / time.Duration(gameConfig.World.TickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	logger.Info(ctx, "Starting headless run",
		"behavior", behavior.String(),
		"description", behavior.Description(),
		"games", *games,
		"max_ticks", *maxTicks,
	)

	s := newSession(game, pilot, *games, logger)
	started := time.Now()
	s.run(ctx, *maxTicks, pace)

	logger.Info(ctx, "Headless run finished",
		"ticks", s.ticks,
		"games_finished", len(s.scores),
		"scores", s.scores,
		"best_score", s.best(),
		"elapsed", time.Since(started).String(),
	)
}
