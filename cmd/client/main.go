// cmd/client/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-asteroids/pkg/audio"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	ebitenrender "github.com/opd-ai/go-asteroids/pkg/render/ebiten"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

const defaultLogFile = "asteroids.log"

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file (.yaml, .yml or .json)")
	createDefault := flag.Bool("default", false, "Write the default configuration to -config and exit")
	renderer := flag.String("renderer", "terminal", "Renderer type: 'terminal', 'engo' or 'ebiten'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (engo and ebiten only)")
	width := flag.Int("width", 0, "Window width, defaults to the world width (engo only)")
	height := flag.Int("height", 0, "Window height, defaults to the world height (engo only)")
	scale := flag.Float64("scale", 1, "Window scale factor (ebiten only)")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	logger := newLogger(*renderer == "terminal" && !*createDefault)
	defer logger.Sync()
	ctx := logging.WithCorrelationID(context.Background(), "")

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
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
	if *mute {
		gameConfig.Audio.Enabled = false
	}

	eventBus := event.NewEventBus()
	game := engine.NewGame(gameConfig, engine.WithEventBus(eventBus))
	logGameEvents(ctx, eventBus, logger)

	sound := audio.NewSoundManager(gameConfig.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn(ctx, "Audio unavailable, continuing without sound", "error", err.Error())
	}
	sound.Subscribe(eventBus)
	defer sound.Cleanup()

	switch *renderer {
	case "engo":
		w, h := windowSize(game, *width, *height)
		engorender.Run(game, logger, w, h, *fullscreen)
	case "ebiten":
		if err := ebitenrender.Run(game, logger, *scale, *fullscreen); err != nil {
			logger.Error(ctx, "Ebitengine window failed", err)
			os.Exit(1)
		}
	case "terminal":
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runTerminal(ctx, game, logger); err != nil {
			logger.Error(ctx, "Terminal session failed", err)
			fmt.Fprintf(os.Stderr, "terminal session failed: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q\n", *renderer)
		os.Exit(2)
	}

	logger.Info(ctx, "Session ended", "score", game.Score(), "ticks", game.CurrentTick)
}

// newLogger keeps the terminal free of log output when it is the screen.
func newLogger(ownsTerminal bool) *logging.Logger {
	if !ownsTerminal || os.Getenv(logging.EnvLogFile) != "" {
		return logging.NewLogger()
	}
	return logging.NewFileLogger(defaultLogFile)
}

// windowSize falls back to the world extent for unset dimensions.
func windowSize(game *engine.Game, width, height int) (int, int) {
	b := game.Bounds()
	if width <= 0 {
		width = int(b.Width)
	}
	if height <= 0 {
		height = int(b.Height)
	}
	return width, height
}

// logGameEvents records the notable moments of a session.
func logGameEvents(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.CraftDestroyed, func(e event.Event) {
		if ev, ok := e.(*event.EntityEvent); ok {
			logger.Info(ctx, "Craft destroyed", "x", ev.Position.X, "y", ev.Position.Y)
		}
	})
	bus.Subscribe(event.GameOver, func(e event.Event) {
		if ev, ok := e.(*event.ScoreEvent); ok {
			logger.Info(ctx, "Game over", "final_score", ev.Score)
		}
	})
	bus.Subscribe(event.GameReset, func(event.Event) {
		logger.Info(ctx, "Game restarted")
	})
}
