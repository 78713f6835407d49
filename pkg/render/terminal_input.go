package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/input"
)

// TerminalHoldTicks is how long a key press counts as held. Terminals only
// report presses and auto-repeat, so releases are inferred.
const TerminalHoldTicks = 8

// TerminalInput maps tcell key events onto a sticky controller.
type TerminalInput struct {
	sticky *input.Sticky
}

// NewTerminalInput creates a key mapper feeding ctrl.
func NewTerminalInput(ctrl *input.Controller) *TerminalInput {
	return &TerminalInput{sticky: input.NewSticky(ctrl, TerminalHoldTicks)}
}

// Tick ages held keys. Call it once per simulation tick.
func (ti *TerminalInput) Tick() {
	ti.sticky.Tick()
}

// HandleEvent applies ev and reports whether the player asked to quit.
func (ti *TerminalInput) HandleEvent(ev tcell.Event) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if isQuitKey(key) {
		return true
	}
	if action, ok := KeyAction(key); ok {
		ti.sticky.Press(action)
	}
	return false
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// KeyAction returns the action bound to a key.
func KeyAction(ev *tcell.EventKey) (input.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.TurnLeft, true
	case tcell.KeyRight:
		return input.TurnRight, true
	case tcell.KeyUp:
		return input.Thrust, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			return input.TurnLeft, true
		case 'd':
			return input.TurnRight, true
		case 'w':
			return input.Thrust, true
		case ' ':
			return input.Fire, true
		case 'r':
			return input.Restart, true
		}
	}
	return 0, false
}
