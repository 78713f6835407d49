// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// maxStepsPerFrame bounds catch-up after a stall
const maxStepsPerFrame = 5

// GameScene represents the main game scene in Engo
type GameScene struct {
	game   *engine.Game
	ctrl   *input.Controller
	logger *logging.Logger
	assets *AssetManager

	renderer *EngoRenderer
	camera   *Camera
	hud      *HUDSystem
}

// NewGameScene creates a new game scene driving game
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		game:   game,
		ctrl:   input.NewController(),
		logger: logger,
		assets: NewAssetManager(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(context.Background(), "Failed to load assets", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	SetupInputBindings()
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	font, err := scene.assets.Font(hudFontSize)
	if err != nil {
		scene.logger.Error(context.Background(), "HUD disabled", err)
	}
	if font != nil {
		scene.hud = NewHUDSystem(font, renderSystem)
	}

	scene.camera = NewCamera(scene.game.Bounds(), engo.GameWidth(), engo.GameHeight())
	scene.renderer = NewEngoRenderer(renderSystem, scene.camera, scene.hud)

	engo.Mailbox.Listen(engo.WindowResizeMessage{}.Type(), func(msg engo.Message) {
		if resize, ok := msg.(engo.WindowResizeMessage); ok {
			scene.resize(resize)
		}
	})

	world.AddSystem(NewInputSystem(scene.ctrl))
	world.AddSystem(NewStepSystem(scene.game, scene.ctrl, scene.renderer, scene.camera))
	if scene.hud != nil {
		world.AddSystem(scene.hud)
	}

	scene.logger.Info(context.Background(), "Engo scene ready",
		"game_width", engo.GameWidth(),
		"game_height", engo.GameHeight(),
	)
}

// resize grows or shrinks the world with the window, so a world unit keeps
// its size on screen, and refits the camera.
func (scene *GameScene) resize(msg engo.WindowResizeMessage) {
	if msg.OldWidth <= 0 || msg.OldHeight <= 0 {
		return
	}
	b := scene.game.Bounds()
	scene.game.SetBounds(
		b.Width*float64(msg.NewWidth)/float64(msg.OldWidth),
		b.Height*float64(msg.NewHeight)/float64(msg.OldHeight),
	)
	if scene.camera != nil {
		scene.camera.SetWorld(scene.game.Bounds(), engo.GameWidth(), engo.GameHeight())
	}
	scene.logger.Debug(context.Background(), "World resized",
		"width", scene.game.Bounds().Width,
		"height", scene.game.Bounds().Height,
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.ctrl.ReleaseAll()
}

// StepSystem advances the game at its configured tick rate regardless of
// the frame rate, then renders the result.
type StepSystem struct {
	game     *engine.Game
	ctrl     *input.Controller
	renderer *EngoRenderer
	camera   *Camera

	step        float32
	accumulator float32
}

// NewStepSystem creates the system that drives game from ctrl.
func NewStepSystem(game *engine.Game, ctrl *input.Controller, renderer *EngoRenderer, camera *Camera) *StepSystem {
	tickRate := game.Config.World.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &StepSystem{
		game:     game,
		ctrl:     ctrl,
		renderer: renderer,
		camera:   camera,
		step:     1 / float32(tickRate),
	}
}

// Remove satisfies the ecs.System interface
func (s *StepSystem) Remove(basic ecs.BasicEntity) {}

// Update runs as many ticks as dt covers and renders once.
func (s *StepSystem) Update(dt float32) {
	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.step && steps < maxStepsPerFrame {
		s.game.Drive(s.ctrl)
		s.accumulator -= s.step
		steps++
	}
	if steps == maxStepsPerFrame {
		s.accumulator = 0
	}

	if s.renderer != nil {
		s.camera.Fit(engo.GameWidth(), engo.GameHeight())
		s.game.Render(s.renderer)
	}
}

// Run opens a window and plays game until it is closed.
func Run(game *engine.Game, logger *logging.Logger, width, height int, fullscreen bool) {
	opts := engo.RunOptions{
		Title:      "Go Asteroids",
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}
	engo.Run(opts, NewGameScene(game, logger))
}
