// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Tick carries what every entity needs to advance one frame.
// Bounds are read fresh each tick so a resized world takes effect at once.
type Tick struct {
	Bounds physics.Bounds
	Input  input.Snapshot
}

// Updatable is implemented by every simulated entity.
// Advance moves the entity forward one tick and reports whether it expired.
type Updatable interface {
	Advance(t Tick) bool
}

// Drawable is implemented by every entity that has a visual representation.
// AppendSprites appends the entity's sprites to dst and returns the result.
type Drawable interface {
	AppendSprites(dst []Sprite) []Sprite
}

// Entity is the base interface for all game objects
type Entity interface {
	Updatable
	Drawable
	GetID() ID
	GetPosition() physics.Vector2D
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// integrate moves the entity by one tick of velocity.
func (e *BaseEntity) integrate() {
	e.Position = e.Position.Add(e.Velocity)
}

var nextID atomic.Uint64

// GenerateID generates a unique ID for entities
func GenerateID() ID {
	return ID(nextID.Add(1))
}
