// pkg/entity/obstacle.go
package entity

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ObstacleParams controls how obstacles are generated
type ObstacleParams struct {
	Size         float64
	MinSpeed     float64
	MaxSpeed     float64
	MaxSpin      float64 // bound on angular velocity, radians per tick
	Points       int
	RadiusJitter float64 // vertex radius is Size*(1 +/- RadiusJitter)
}

// DefaultObstacleParams returns the stock obstacle generator settings.
func DefaultObstacleParams() ObstacleParams {
	return ObstacleParams{
		Size:         30,
		MinSpeed:     0.5,
		MaxSpeed:     1.5,
		MaxSpin:      0.01,
		Points:       8,
		RadiusJitter: 0.2,
	}
}

var obstacleColor = color.RGBA{204, 204, 204, 255}

// Edge identifies a side of the world for spawning.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Obstacle represents a drifting rock
type Obstacle struct {
	BaseEntity
	Size    float64
	Spin    float64
	Outline []physics.Vector2D
}

// NewObstacle creates an obstacle at position with a random heading, speed,
// spin and jagged outline drawn from rng.
func NewObstacle(rng *rand.Rand, position physics.Vector2D, params ObstacleParams) *Obstacle {
	rotation := rng.Float64() * 2 * math.Pi
	spin := (rng.Float64()*2 - 1) * params.MaxSpin
	speed := params.MinSpeed + rng.Float64()*(params.MaxSpeed-params.MinSpeed)
	direction := rng.Float64() * 2 * math.Pi

	outline := make([]physics.Vector2D, params.Points)
	for i := range outline {
		angle := 2 * math.Pi * float64(i) / float64(params.Points)
		radius := params.Size * (1 - params.RadiusJitter + 2*params.RadiusJitter*rng.Float64())
		outline[i] = physics.FromAngle(angle, radius)
	}

	return &Obstacle{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Velocity: physics.FromAngle(direction, speed),
			Rotation: rotation,
		},
		Size:    params.Size,
		Spin:    spin,
		Outline: outline,
	}
}

// SpawnObstacleOutside creates an obstacle just beyond a uniformly chosen
// edge of bounds, so it drifts in rather than appearing on screen.
func SpawnObstacleOutside(rng *rand.Rand, bounds physics.Bounds, params ObstacleParams) *Obstacle {
	return NewObstacle(rng, SpawnPoint(rng, bounds, params.Size), params)
}

// SpawnPoint picks a random edge and a uniform coordinate along it, offset
// by margin outside the bounds.
func SpawnPoint(rng *rand.Rand, bounds physics.Bounds, margin float64) physics.Vector2D {
	edge := Edge(rng.IntN(4))
	return EdgePoint(edge, rng.Float64(), bounds, margin)
}

// EdgePoint places a point margin units outside edge at fraction t along it.
func EdgePoint(edge Edge, t float64, bounds physics.Bounds, margin float64) physics.Vector2D {
	switch edge {
	case EdgeTop:
		return physics.Vector2D{X: t * bounds.Width, Y: -margin}
	case EdgeRight:
		return physics.Vector2D{X: bounds.Width + margin, Y: t * bounds.Height}
	case EdgeBottom:
		return physics.Vector2D{X: t * bounds.Width, Y: bounds.Height + margin}
	default:
		return physics.Vector2D{X: -margin, Y: t * bounds.Height}
	}
}

// Advance drifts and spins the obstacle. It wraps with a margin equal to its
// size and never expires.
func (o *Obstacle) Advance(t Tick) bool {
	o.integrate()
	o.Rotation += o.Spin
	t.Bounds.WrapWithMargin(&o.Position, o.Size)
	return false
}

// Collider returns the obstacle's hit circle.
func (o *Obstacle) Collider() physics.Circle {
	return physics.Circle{Center: o.Position, Radius: o.Size}
}

// AppendSprites draws the obstacle outline as a closed loop.
func (o *Obstacle) AppendSprites(dst []Sprite) []Sprite {
	return append(dst, Sprite{
		Owner:    o.ID,
		Kind:     KindObstacle,
		Position: o.Position,
		Rotation: o.Rotation,
		Outline:  o.Outline,
		Shape:    ShapeLineLoop,
		Color:    obstacleColor,
		Opacity:  1,
	})
}
