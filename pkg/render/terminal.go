package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// glyphs used per sprite kind
var kindGlyphs = map[entity.Kind]rune{
	entity.KindCraft:      'A',
	entity.KindTrail:      '.',
	entity.KindProjectile: 'o',
	entity.KindObstacle:   '#',
	entity.KindParticle:   '*',
}

// TerminalRenderer draws the world onto a tcell screen. The world is scaled
// to fill every row but the last, which holds the scoreboard.
type TerminalRenderer struct {
	screen tcell.Screen
	world  physics.Bounds
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for screen showing world.
func NewTerminalRenderer(screen tcell.Screen, world physics.Bounds) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, world: world}
	r.Resize()
	return r
}

// Resize re-reads the screen size. Call it after a tcell.EventResize.
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// playfieldRows is the number of rows the world is drawn into.
func (r *TerminalRenderer) playfieldRows() int {
	return max(r.height-1, 0)
}

// worldToScreen converts world coordinates to a cell.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	if r.world.Width <= 0 || r.world.Height <= 0 {
		return -1, -1
	}
	x := int(math.Floor(pos.X * float64(r.width) / r.world.Width))
	y := int(math.Floor(pos.Y * float64(r.playfieldRows()) / r.world.Height))
	return x, y
}

func (r *TerminalRenderer) inPlayfield(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.playfieldRows()
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Draw implements entity.Renderer. Outlines are stroked cell by cell; small
// shapes collapse to a single glyph at their position.
func (r *TerminalRenderer) Draw(sprite entity.Sprite) {
	if sprite.Opacity <= 0 {
		return
	}
	glyph, ok := kindGlyphs[sprite.Kind]
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(spriteColor(sprite))

	n := len(sprite.Outline)
	for i := 0; i < n; i++ {
		r.line(sprite.Transform(i), sprite.Transform((i+1)%n), glyph, style)
	}

	x, y := r.worldToScreen(sprite.Position)
	if r.inPlayfield(x, y) && sprite.Kind != entity.KindObstacle {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

// line plots the cells between two world points.
func (r *TerminalRenderer) line(a, b physics.Vector2D, glyph rune, style tcell.Style) {
	x0, y0 := r.worldToScreen(a)
	x1, y1 := r.worldToScreen(b)

	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + int(math.Round(float64((x1-x0)*i)/float64(steps)))
			y = y0 + int(math.Round(float64((y1-y0)*i)/float64(steps)))
		}
		if r.inPlayfield(x, y) {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present(board entity.Scoreboard) {
	text := fmt.Sprintf("Score: %d", board.Score)
	if board.GameOver {
		text = fmt.Sprintf("GAME OVER  Final score: %d  [r] restart  [q] quit", board.FinalScore)
	}
	r.drawText(0, r.height-1, text, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(board.GameOver))
	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 {
		return
	}
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// spriteColor blends the sprite colour towards black by its opacity.
func spriteColor(s entity.Sprite) tcell.Color {
	o := math.Min(s.Opacity, 1)
	return tcell.NewRGBColor(
		int32(float64(s.Color.R)*o),
		int32(float64(s.Color.G)*o),
		int32(float64(s.Color.B)*o),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
