package ebiten

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// keyBindings maps each action to the keys that hold it.
var keyBindings = map[input.Action][]ebiten.Key{
	input.TurnLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.TurnRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.Thrust:    {ebiten.KeyArrowUp, ebiten.KeyW},
	input.Fire:      {ebiten.KeySpace},
	input.Restart:   {ebiten.KeyR},
}

// Game adapts engine.Game to ebiten.Game. Ebitengine calls Update once per
// tick at the configured TPS, so every Update is exactly one Step.
type Game struct {
	game     *engine.Game
	ctrl     *input.Controller
	renderer *Renderer
	logger   *logging.Logger
	scale    float64 // window pixels per world unit

	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// NewGame wraps game for Ebitengine.
func NewGame(game *engine.Game, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Game{
		game:        game,
		ctrl:        input.NewController(),
		renderer:    NewRenderer(),
		logger:      logger,
		scale:       1,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for action, keys := range keyBindings {
		down := false
		for _, k := range keys {
			down = down || g.pressed(k)
		}
		g.ctrl.Set(action, down)
	}

	g.game.Drive(g.ctrl)
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.game.Render(g.renderer)
}

// Layout implements ebiten.Game. The logical screen is the world, and a
// resized window resizes the world to the window divided by the scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(float64(outsideWidth) / g.scale)
	h := int(float64(outsideHeight) / g.scale)
	b := g.game.Bounds()
	if w > 0 && h > 0 && (w != int(b.Width) || h != int(b.Height)) {
		g.game.SetBounds(float64(w), float64(h))
		g.logger.Debug(context.Background(), "World resized", "width", w, "height", h)
		b = g.game.Bounds()
	}
	return int(b.Width), int(b.Height)
}

// Run opens a window scaled by scale and plays game until it is closed or
// Escape is pressed.
func Run(game *engine.Game, logger *logging.Logger, scale float64, fullscreen bool) error {
	if scale <= 0 {
		scale = 1
	}
	b := game.Bounds()
	ebiten.SetWindowTitle("Go Asteroids")
	ebiten.SetWindowSize(int(b.Width*scale), int(b.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)
	if tps := game.Config.World.TickRate; tps > 0 {
		ebiten.SetTPS(tps)
	}

	g := NewGame(game, logger)
	g.scale = scale
	g.logger.Info(context.Background(), "Starting Ebitengine window",
		"width", int(b.Width*scale),
		"height", int(b.Height*scale),
		"tps", ebiten.TPS(),
	)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return logging.WrapError(err, "run ebiten game")
	}
	return nil
}
