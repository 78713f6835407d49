package input

import "sync"

// Sticky emulates key releases for devices that only report presses, such
// as terminals. Each press keeps the action held for a number of ticks;
// auto-repeat presses refresh the hold.
type Sticky struct {
	ctrl *Controller
	hold int

	mu        sync.Mutex
	remaining [actionCount]int
}

// NewSticky wraps ctrl so that presses release themselves after holdTicks.
func NewSticky(ctrl *Controller, holdTicks int) *Sticky {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Sticky{ctrl: ctrl, hold: holdTicks}
}

// Press marks action as held for the configured number of ticks.
func (s *Sticky) Press(action Action) {
	if action < 0 || action >= actionCount {
		return
	}

	s.mu.Lock()
	s.remaining[action] = s.hold
	s.mu.Unlock()

	s.ctrl.Set(action, true)
}

// Tick ages every hold by one tick and releases the expired ones.
func (s *Sticky) Tick() {
	s.mu.Lock()
	var released []Action
	for a := range s.remaining {
		if s.remaining[a] == 0 {
			continue
		}
		s.remaining[a]--
		if s.remaining[a] == 0 {
			released = append(released, Action(a))
		}
	}
	s.mu.Unlock()

	for _, a := range released {
		s.ctrl.Set(a, false)
	}
}
