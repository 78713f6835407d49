// Package ebiten draws the game with Ebitengine. The logical screen is the
// world itself, so Ebitengine's own scaling fits it to the window.
package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

const (
	strokeWidth  = 1.5
	glyphWidth   = 6 // debug font advance
	bannerOffset = 16
)

var (
	// whiteSubImage is the texture for untextured triangles. The 1px
	// border avoids sampling the image edge.
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer implements entity.Renderer onto an Ebitengine image. The target
// is set once per frame from the game's Draw callback.
type Renderer struct {
	target *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer with no target.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetTarget selects the image the next frame is drawn onto.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Clear implements entity.Renderer
func (r *Renderer) Clear() {
	if r.target != nil {
		r.target.Fill(color.Black)
	}
}

// Draw implements entity.Renderer
func (r *Renderer) Draw(sprite entity.Sprite) {
	if r.target == nil || sprite.Opacity <= 0 || len(sprite.Outline) == 0 {
		return
	}

	if sprite.Shape == entity.ShapeFilled && len(sprite.Outline) >= 3 {
		r.vertices, r.indices = appendFan(r.vertices[:0], r.indices[:0], sprite)
		r.target.DrawTriangles(r.vertices, r.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
		return
	}

	col := premultiplied(sprite.Color, sprite.Opacity)
	n := len(sprite.Outline)
	for i := 0; i < n; i++ {
		a, b := sprite.Transform(i), sprite.Transform((i+1)%n)
		vector.StrokeLine(r.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, col, true)
	}
}

// Present implements entity.Renderer
func (r *Renderer) Present(board entity.Scoreboard) {
	if r.target == nil {
		return
	}

	ebitenutil.DebugPrintAt(r.target, fmt.Sprintf("Score: %d", board.Score), 10, 10)
	if !board.GameOver {
		return
	}

	w, h := r.target.Bounds().Dx(), r.target.Bounds().Dy()
	for i, line := range gameOverLines(board) {
		x := (w - glyphWidth*len(line)) / 2
		ebitenutil.DebugPrintAt(r.target, line, x, h/2-bannerOffset+i*2*bannerOffset)
	}
}

func gameOverLines(board entity.Scoreboard) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", board.FinalScore),
		"Press R to restart",
	}
}

// appendFan appends the triangle fan of a convex sprite outline.
func appendFan(vertices []ebiten.Vertex, indices []uint16, sprite entity.Sprite) ([]ebiten.Vertex, []uint16) {
	o := float32(math.Min(sprite.Opacity, 1))
	cr := float32(sprite.Color.R) / 255 * o
	cg := float32(sprite.Color.G) / 255 * o
	cb := float32(sprite.Color.B) / 255 * o

	base := uint16(len(vertices))
	for i := range sprite.Outline {
		p := sprite.Transform(i)
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: o,
		})
	}
	for i := 1; i+1 < len(sprite.Outline); i++ {
		indices = append(indices, base, base+uint16(i), base+uint16(i+1))
	}
	return vertices, indices
}

// premultiplied scales a colour by opacity the way Ebitengine expects.
func premultiplied(c color.RGBA, opacity float64) color.RGBA {
	o := math.Min(opacity, 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * o)),
		G: uint8(math.Round(float64(c.G) * o)),
		B: uint8(math.Round(float64(c.B) * o)),
		A: uint8(math.Round(255 * o)),
	}
}
