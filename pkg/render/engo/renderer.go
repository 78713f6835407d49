// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// lineWidth is the stroke width of outlines, in screen units
const lineWidth = 1.5

// spriteEntity is one pooled drawable in the render system
type spriteEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer using the Engo game engine.
//
// Engo retains what it draws, so the renderer keeps a pool of entities.
// Each frame reuses the pool in draw order and hides whatever is left over.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	camera       *Camera
	hud          *HUDSystem

	pool []*spriteEntity
	used int
}

// NewEngoRenderer creates a new Engo-based renderer. Entities are added to
// renderSystem; hud receives the scoreboard on Present and may be nil.
func NewEngoRenderer(renderSystem *common.RenderSystem, camera *Camera, hud *HUDSystem) *EngoRenderer {
	return &EngoRenderer{
		renderSystem: renderSystem,
		camera:       camera,
		hud:          hud,
	}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	r.used = 0
}

// Draw implements entity.Renderer
func (r *EngoRenderer) Draw(sprite entity.Sprite) {
	if sprite.Opacity <= 0 || len(sprite.Outline) == 0 {
		return
	}

	points := make([]engo.Point, len(sprite.Outline))
	for i := range sprite.Outline {
		points[i] = r.camera.WorldToScreen(sprite.Transform(i))
	}
	col := withOpacity(sprite.Color, sprite.Opacity)

	if sprite.Shape == entity.ShapeFilled && len(points) >= 3 {
		pos, width, height, rel := fillShape(points)
		e := r.next()
		e.Drawable = common.ComplexTriangles{Points: rel}
		r.place(e, pos, width, height, 0, col)
		return
	}

	for i := range points {
		pos, length, angle := segment(points[i], points[(i+1)%len(points)])
		e := r.next()
		e.Drawable = common.Rectangle{}
		r.place(e, pos, length, lineWidth, angle, col)
	}
}

// Present implements entity.Renderer. Pool entries not drawn this frame are
// hidden.
func (r *EngoRenderer) Present(board entity.Scoreboard) {
	for _, e := range r.pool[r.used:] {
		e.Hidden = true
	}
	if r.hud != nil {
		r.hud.SetScoreboard(board)
	}
}

// Active returns the number of entities drawn in the current frame.
func (r *EngoRenderer) Active() int {
	return r.used
}

// next returns the next free pooled entity, creating one if needed.
func (r *EngoRenderer) next() *spriteEntity {
	if r.used < len(r.pool) {
		e := r.pool[r.used]
		r.used++
		return e
	}

	// slots keep their z index for life, so draw order follows slot order
	e := &spriteEntity{BasicEntity: ecs.NewBasic()}
	e.SetZIndex(float32(len(r.pool)))
	r.pool = append(r.pool, e)
	r.used++
	if r.renderSystem != nil {
		r.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	}
	return e
}

func (r *EngoRenderer) place(e *spriteEntity, pos engo.Point, width, height, rotation float32, col color.Color) {
	e.Position = pos
	e.Width = width
	e.Height = height
	e.Rotation = rotation
	e.Color = col
	e.Hidden = false
}

// fillShape returns the bounding box of a convex polygon and its triangle
// fan with every point relative to that box, as ComplexTriangles expects.
func fillShape(points []engo.Point) (pos engo.Point, width, height float32, rel []engo.Point) {
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		minP.X, minP.Y = min(minP.X, p.X), min(minP.Y, p.Y)
		maxP.X, maxP.Y = max(maxP.X, p.X), max(maxP.Y, p.Y)
	}
	width = max(maxP.X-minP.X, 1)
	height = max(maxP.Y-minP.Y, 1)

	normalize := func(p engo.Point) engo.Point {
		return engo.Point{X: (p.X - minP.X) / width, Y: (p.Y - minP.Y) / height}
	}
	rel = make([]engo.Point, 0, 3*(len(points)-2))
	for i := 1; i+1 < len(points); i++ {
		rel = append(rel, normalize(points[0]), normalize(points[i]), normalize(points[i+1]))
	}
	return minP, width, height, rel
}

// segment returns the rectangle placement for a line from a to b. Engo
// rotates around the top-left corner, in degrees.
func segment(a, b engo.Point) (pos engo.Point, length, angle float32) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	return a, float32(math.Hypot(dx, dy)), float32(math.Atan2(dy, dx) * 180 / math.Pi)
}

func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(255 * math.Min(opacity, 1)))}
}
