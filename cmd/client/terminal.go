// cmd/client/terminal.go
package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// terminalSession plays the game inside a tcell screen.
type terminalSession struct {
	game     *engine.Game
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *render.TerminalInput
	ctrl     *input.Controller
	logger   *logging.Logger
}

func newTerminalSession(game *engine.Game, screen tcell.Screen, logger *logging.Logger) *terminalSession {
	ctrl := input.NewController()
	return &terminalSession{
		game:     game,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, game.Bounds()),
		keys:     render.NewTerminalInput(ctrl),
		ctrl:     ctrl,
		logger:   logger,
	}
}

// loop advances one tick per ticks receive and applies screen events in
// between. It returns when the player quits or ctx is done.
func (s *terminalSession) loop(ctx context.Context, events <-chan tcell.Event, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				s.screen.Sync()
				s.renderer.Resize()
				continue
			}
			if s.keys.HandleEvent(ev) {
				s.logger.Info(ctx, "Player quit", "tick", s.game.CurrentTick)
				return
			}

		case <-ticks:
			s.keys.Tick()
			s.game.Drive(s.ctrl)
			s.game.Render(s.renderer)
		}
	}
}

// runTerminal owns the terminal until the session ends.
func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initialize terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pumpEvents(screen.PollEvent, events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(game.Config.World.TickRate))
	defer ticker.Stop()

	logger.Info(ctx, "Starting terminal session", "tick_rate", game.Config.World.TickRate)
	newTerminalSession(game, screen, logger).loop(ctx, events, ticker.C)
	return nil
}

// pumpEvents forwards polled events until poll returns nil or quit closes.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}
