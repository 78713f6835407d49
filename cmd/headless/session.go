// cmd/headless/session.go
package main

import (
	"context"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/autopilot"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// session lets the autopilot play a number of games without a display.
type session struct {
	game     *engine.Game
	pilot    *autopilot.Pilot
	renderer *render.NullRenderer
	logger   *logging.Logger

	games  int   // games to finish before stopping
	scores []int // final score of each finished game
	ticks  uint64
}

func newSession(game *engine.Game, pilot *autopilot.Pilot, games int, logger *logging.Logger) *session {
	if games < 1 {
		games = 1
	}
	return &session{
		game:     game,
		pilot:    pilot,
		renderer: render.NewNullRenderer(logger),
		logger:   logger,
		games:    games,
	}
}

// run steps the game until enough games have ended, maxTicks ticks have
// passed (0 means no limit) or ctx is done. A non-nil pace channel gates
// every tick.
func (s *session) run(ctx context.Context, maxTicks uint64, pace <-chan time.Time) {
	for maxTicks == 0 || s.ticks < maxTicks {
		if ctx.Err() != nil {
			return
		}

		if s.game.Status == engine.GameStatusOver {
			board := s.game.Scoreboard()
			s.scores = append(s.scores, board.FinalScore)
			s.logger.Info(ctx, "Game finished",
				"game", len(s.scores),
				"final_score", board.FinalScore,
				"tick", s.game.CurrentTick,
			)
			if len(s.scores) >= s.games {
				return
			}
			s.game.Reset()
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return
			case <-pace:
			}
		}

		s.game.Step(s.pilot.Next(s.game))
		s.game.Render(s.renderer)
		s.ticks++
	}
}

// best returns the highest finished score, or the running score when no
// game has finished.
func (s *session) best() int {
	if len(s.scores) == 0 {
		return s.game.Score()
	}
	best := s.scores[0]
	for _, v := range s.scores[1:] {
		best = max(best, v)
	}
	return best
}
