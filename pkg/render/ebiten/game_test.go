package ebiten

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// newTestGame returns an adapter whose keyboard is the held set.
func newTestGame(held map[ebiten.Key]bool) *Game {
	g := NewGame(engine.NewGame(nil), nil)
	g.pressed = func(k ebiten.Key) bool { return held[k] }
	g.justPressed = func(k ebiten.Key) bool { return held[k] }
	return g
}

func TestGame_UpdateStepsOnce(t *testing.T) {
	g := newTestGame(nil)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if g.game.CurrentTick != 1 {
		t.Errorf("CurrentTick = %d, want 1", g.game.CurrentTick)
	}
}

func TestGame_UpdateMapsKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   ebiten.Key
		check func(*engine.Game) bool
	}{
		{"w thrusts", ebiten.KeyW, func(game *engine.Game) bool { return game.Craft().Velocity.Length() > 0 }},
		{"up thrusts", ebiten.KeyArrowUp, func(game *engine.Game) bool { return game.Craft().Velocity.Length() > 0 }},
		{"left turns", ebiten.KeyArrowLeft, func(game *engine.Game) bool { return game.Craft().Rotation < 0 }},
		{"d turns", ebiten.KeyD, func(game *engine.Game) bool { return game.Craft().Rotation > 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(map[ebiten.Key]bool{tt.key: true})
			if err := g.Update(); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if !tt.check(g.game) {
				t.Errorf("key %v had no effect", tt.key)
			}
		})
	}
}

func TestGame_EscapeTerminates(t *testing.T) {
	g := newTestGame(map[ebiten.Key]bool{ebiten.KeyEscape: true})

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, want ebiten.Termination", err)
	}
	if g.game.CurrentTick != 0 {
		t.Error("game stepped on the quitting frame")
	}
}

func TestGame_LayoutResizesWorld(t *testing.T) {
	tests := []struct {
		name         string
		scale        float64
		outsideW     int
		outsideH     int
		wantW, wantH int
	}{
		{"unscaled", 1, 1920, 1080, 1920, 1080},
		{"doubled", 2, 1280, 960, 640, 480},
		{"unchanged", 1, 800, 600, 800, 600},
		{"minimized_keeps_world", 1, 0, 0, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(nil)
			g.scale = tt.scale

			w, h := g.Layout(tt.outsideW, tt.outsideH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			b := g.game.Bounds()
			if int(b.Width) != tt.wantW || int(b.Height) != tt.wantH {
				t.Errorf("Bounds() = %vx%v, want %dx%d", b.Width, b.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestAppendFan(t *testing.T) {
	sprite := entity.Sprite{
		Position: physics.Vector2D{X: 100, Y: 50},
		Outline:  []physics.Vector2D{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}},
		Color:    color.RGBA{255, 128, 0, 255},
		Opacity:  0.5,
	}

	vertices, indices := appendFan(nil, nil, sprite)

	if len(vertices) != 4 || len(indices) != 6 {
		t.Fatalf("got %d vertices and %d indices, want 4 and 6", len(vertices), len(indices))
	}
	if vertices[0].DstX != 99 || vertices[0].DstY != 49 {
		t.Errorf("first vertex at (%v, %v), want (99, 49)", vertices[0].DstX, vertices[0].DstY)
	}
	if vertices[0].ColorA != 0.5 || vertices[0].ColorR != 0.5 || vertices[0].ColorB != 0 {
		t.Errorf("vertex colour not premultiplied: %+v", vertices[0])
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("indices = %v, want %v", indices, want)
			break
		}
	}

	// a second fan indexes after the first
	_, indices = appendFan(vertices, indices, sprite)
	if indices[6] != 4 {
		t.Errorf("second fan starts at index %d, want 4", indices[6])
	}
}

func TestPremultiplied(t *testing.T) {
	got := premultiplied(color.RGBA{200, 100, 50, 255}, 0.5)
	want := color.RGBA{100, 50, 25, 128}
	if got != want {
		t.Errorf("premultiplied() = %v, want %v", got, want)
	}
}

func TestGameOverLines(t *testing.T) {
	lines := gameOverLines(entity.Scoreboard{GameOver: true, FinalScore: 9})
	if len(lines) != 3 || lines[1] != "Final score: 9" {
		t.Errorf("gameOverLines() = %q", lines)
	}
}
