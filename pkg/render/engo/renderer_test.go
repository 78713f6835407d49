// pkg/render/engo/renderer_test.go
package engo

import (
	"image/color"
	"math"
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func newTestRenderer() *EngoRenderer {
	return NewEngoRenderer(nil, NewCamera(physics.Bounds{Width: 800, Height: 600}, 800, 600), nil)
}

func TestFillShape(t *testing.T) {
	points := []engo.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 20}, {X: 10, Y: 20}}

	pos, width, height, rel := fillShape(points)

	if pos != (engo.Point{X: 10, Y: 10}) || width != 20 || height != 10 {
		t.Fatalf("fillShape() box = %v %vx%v", pos, width, height)
	}
	if len(rel) != 6 {
		t.Fatalf("expected two triangles, got %d points", len(rel))
	}
	want := []engo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i := range want {
		if !approxPoint(rel[i], want[i]) {
			t.Errorf("rel[%d] = %v, want %v", i, rel[i], want[i])
		}
	}
}

func TestFillShape_DegenerateBox(t *testing.T) {
	_, width, height, _ := fillShape([]engo.Point{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}})
	if width != 1 || height != 1 {
		t.Errorf("degenerate box = %vx%v, want 1x1", width, height)
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		a, b   engo.Point
		length float32
		angle  float32
	}{
		{"right", engo.Point{X: 0, Y: 0}, engo.Point{X: 10, Y: 0}, 10, 0},
		{"down", engo.Point{X: 5, Y: 5}, engo.Point{X: 5, Y: 9}, 4, 90},
		{"left", engo.Point{X: 3, Y: 0}, engo.Point{X: 0, Y: 0}, 3, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, length, angle := segment(tt.a, tt.b)
			if pos != tt.a {
				t.Errorf("pos = %v, want %v", pos, tt.a)
			}
			if math.Abs(float64(length-tt.length)) > 1e-4 || math.Abs(float64(angle-tt.angle)) > 1e-4 {
				t.Errorf("segment() = (%v, %v), want (%v, %v)", length, angle, tt.length, tt.angle)
			}
		})
	}
}

func TestEngoRenderer_DrawUsesShape(t *testing.T) {
	r := newTestRenderer()
	r.Clear()

	r.Draw(entity.Sprite{
		Kind:     entity.KindCraft,
		Position: physics.Vector2D{X: 400, Y: 300},
		Outline:  []physics.Vector2D{{X: 0, Y: 10}, {X: -5, Y: -5}, {X: 5, Y: -5}},
		Shape:    entity.ShapeFilled,
		Color:    color.RGBA{255, 255, 255, 255},
		Opacity:  1,
	})
	if r.Active() != 1 {
		t.Fatalf("filled triangle used %d entities, want 1", r.Active())
	}
	if _, ok := r.pool[0].Drawable.(common.ComplexTriangles); !ok {
		t.Errorf("filled shape drawn as %T", r.pool[0].Drawable)
	}

	r.Draw(entity.Sprite{
		Kind:     entity.KindObstacle,
		Position: physics.Vector2D{X: 100, Y: 100},
		Outline:  []physics.Vector2D{{X: -10, Y: 0}, {X: 0, Y: -10}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		Shape:    entity.ShapeLineLoop,
		Color:    color.RGBA{204, 204, 204, 255},
		Opacity:  1,
	})
	if r.Active() != 5 {
		t.Errorf("line loop of 4 edges: Active() = %d, want 5", r.Active())
	}
	if _, ok := r.pool[1].Drawable.(common.Rectangle); !ok {
		t.Errorf("outline edge drawn as %T", r.pool[1].Drawable)
	}
}

func TestEngoRenderer_OpacityBecomesAlpha(t *testing.T) {
	r := newTestRenderer()
	r.Clear()
	r.Draw(entity.Sprite{
		Position: physics.Vector2D{X: 10, Y: 10},
		Outline:  []physics.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Color:    color.RGBA{255, 0, 0, 255},
		Opacity:  0.2,
	})

	got, ok := r.pool[0].Color.(color.NRGBA)
	if !ok || got.A != 51 || got.R != 255 {
		t.Errorf("Color = %#v, want red at alpha 51", r.pool[0].Color)
	}
}

func TestEngoRenderer_PoolReuseHidesLeftovers(t *testing.T) {
	game := engine.NewGame(nil)
	r := newTestRenderer()

	game.Render(r)
	first := r.Active()
	if first == 0 {
		t.Fatal("nothing drawn")
	}

	r.Clear()
	r.Draw(entity.Sprite{
		Position: physics.Vector2D{X: 10, Y: 10},
		Outline:  []physics.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Opacity:  1,
	})
	r.Present(entity.Scoreboard{})

	if len(r.pool) != first {
		t.Errorf("pool grew to %d, want reuse of %d", len(r.pool), first)
	}
	if r.pool[0].Hidden {
		t.Error("drawn entity hidden")
	}
	for i, e := range r.pool[1:] {
		if !e.Hidden {
			t.Errorf("leftover entity %d still visible", i+1)
		}
	}
}

func TestEngoRenderer_SkipsTransparent(t *testing.T) {
	r := newTestRenderer()
	r.Clear()
	r.Draw(entity.Sprite{
		Outline: []physics.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Opacity: 0,
	})
	if r.Active() != 0 {
		t.Errorf("Active() = %d for a transparent sprite", r.Active())
	}
}
