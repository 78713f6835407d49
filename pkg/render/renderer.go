// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing. It counts what it
// is given and logs each frame at debug level, which makes it the sink for
// headless runs.
type NullRenderer struct {
	logger *logging.Logger

	Frames  int
	Sprites int // sprites drawn in the current frame
	Last    entity.Scoreboard
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger discards everything.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.Sprites = 0
}

// Draw implements entity.Renderer.
func (d *NullRenderer) Draw(sprite entity.Sprite) {
	d.Sprites++
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present(board entity.Scoreboard) {
	d.Frames++
	d.Last = board
	d.logger.Debug(context.Background(), "Frame presented",
		"frame", d.Frames,
		"sprites", d.Sprites,
		"score", board.Score,
		"game_over", board.GameOver,
	)
}
