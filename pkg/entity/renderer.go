package entity

import (
	"image/color"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Kind tells a renderer which entity a sprite belongs to.
type Kind int

const (
	KindCraft Kind = iota
	KindTrail
	KindProjectile
	KindObstacle
	KindParticle
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCraft:
		return "craft"
	case KindTrail:
		return "trail"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Shape selects how an outline is rasterised.
type Shape int

const (
	// ShapeFilled fills the outline as a convex polygon.
	ShapeFilled Shape = iota
	// ShapeLineLoop strokes the outline and closes it.
	ShapeLineLoop
)

// Sprite is everything a renderer needs to draw one primitive.
// Outline is in local coordinates and is shared with the entity; renderers
// must not modify it.
type Sprite struct {
	Owner    ID
	Index    int
	Kind     Kind
	Position physics.Vector2D
	Rotation float64
	Outline  []physics.Vector2D
	Shape    Shape
	Color    color.RGBA
	Opacity  float64
}

// Transform returns the outline point i in world coordinates.
func (s Sprite) Transform(i int) physics.Vector2D {
	return s.Outline[i].Rotate(s.Rotation).Add(s.Position)
}

// Scoreboard is the read-only view of the score for UI sinks.
type Scoreboard struct {
	Score      int
	GameOver   bool
	FinalScore int
}

// Renderer handles rendering game entities
type Renderer interface {
	Clear()
	Draw(sprite Sprite)
	Present(board Scoreboard)
}

// squareOutline builds an axis-aligned square of the given half extent.
func squareOutline(half float64) []physics.Vector2D {
	return []physics.Vector2D{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
}
