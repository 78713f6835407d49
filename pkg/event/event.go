// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Type represents the type of event
type Type string

// Game event types
const (
	ProjectileFired   Type = "projectile_fired"
	ObstacleDestroyed Type = "obstacle_destroyed"
	CraftDestroyed    Type = "craft_destroyed"
	ScoreChanged      Type = "score_changed"
	GameOver          Type = "game_over"
	GameReset         Type = "game_reset"
)

// Types lists every event type the game publishes.
func Types() []Type {
	return []Type{ProjectileFired, ObstacleDestroyed, CraftDestroyed, ScoreChanged, GameOver, GameReset}
}

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe; Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			// copy so a concurrent Publish iterating the old slice is unaffected
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			b.handlers[eventType] = append(next, subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// EntityEvent reports something that happened to one entity at a place
type EntityEvent struct {
	BaseEvent
	EntityID uint64
	Position physics.Vector2D
}

// NewEntityEvent creates a new entity event
func NewEntityEvent(eventType Type, source interface{}, entityID uint64, position physics.Vector2D) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		Position: position,
	}
}

// ScoreEvent carries the score after a change or at game over
type ScoreEvent struct {
	BaseEvent
	Score int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(eventType Type, source interface{}, score int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Score: score,
	}
}
