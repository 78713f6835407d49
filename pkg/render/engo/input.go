// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/input"
)

// InputSystem copies engo button state into an input controller every frame
type InputSystem struct {
	ctrl *input.Controller
}

// NewInputSystem creates a new input system feeding ctrl
func NewInputSystem(ctrl *input.Controller) *InputSystem {
	return &InputSystem{ctrl: ctrl}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update processes input
func (is *InputSystem) Update(dt float32) {
	for _, action := range input.Actions() {
		is.ctrl.Set(action, engo.Input.Button(action.String()).Down())
	}
}

// SetupInputBindings sets up the key bindings for the game. Button names
// are the action names so the input system can look them up directly.
func SetupInputBindings() {
	engo.Input.RegisterButton(input.Thrust.String(), engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(input.TurnLeft.String(), engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(input.TurnRight.String(), engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(input.Fire.String(), engo.KeySpace)
	engo.Input.RegisterButton(input.Restart.String(), engo.KeyR)
}
