// Package input turns device state into the per-tick control snapshots the
// simulation consumes.
package input

import "sync"

// Snapshot is the player's intent for a single tick.
// Fire is edge-triggered: it is true for exactly one snapshot per press.
type Snapshot struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool
}

// Action identifies a control the player can hold.
type Action int

const (
	TurnLeft Action = iota
	TurnRight
	Thrust
	Fire
	Restart
	actionCount
)

// String returns the binding name used by renderers that register buttons.
func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "turnLeft"
	case TurnRight:
		return "turnRight"
	case Thrust:
		return "thrust"
	case Fire:
		return "fire"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Actions lists every bindable action.
func Actions() []Action {
	return []Action{TurnLeft, TurnRight, Thrust, Fire, Restart}
}

// Controller latches device key state between ticks.
//
// Devices report held state with Set; the simulation drains one Snapshot per
// tick. A press of Fire or Restart arms a one-shot edge that survives until
// it is consumed, even if the key is released before the next tick. Holding
// the key does not re-arm it.
//
// Controller is safe for concurrent use so input can be polled on a
// different goroutine than the simulation.
type Controller struct {
	mu    sync.Mutex
	held  [actionCount]bool
	edges [actionCount]bool
}

// NewController creates a controller with every action released.
func NewController() *Controller {
	return &Controller{}
}

// Set records whether action is currently held down.
func (c *Controller) Set(action Action, down bool) {
	if action < 0 || action >= actionCount {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if down && !c.held[action] {
		c.edges[action] = true
	}
	c.held[action] = down
}

// Held reports whether action is currently down.
func (c *Controller) Held(action Action) bool {
	if action < 0 || action >= actionCount {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.held[action]
}

// Snapshot returns the intent for the next tick and consumes the fire edge.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		TurnLeft:  c.held[TurnLeft],
		TurnRight: c.held[TurnRight],
		Thrust:    c.held[Thrust],
		Fire:      c.edges[Fire],
	}
	c.edges[Fire] = false
	return s
}

// ConsumeRestart reports and clears a pending restart press.
func (c *Controller) ConsumeRestart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pressed := c.edges[Restart]
	c.edges[Restart] = false
	return pressed
}

// ReleaseAll drops every held key and pending edge.
func (c *Controller) ReleaseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.held = [actionCount]bool{}
	c.edges = [actionCount]bool{}
}
