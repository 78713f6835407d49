// pkg/entity/burst.go
package entity

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// BurstParams controls explosion particle generation
type BurstParams struct {
	Particles int
	Lifetime  int
	MinSpeed  float64
	MaxSpeed  float64
	MinSize   float64
	MaxSize   float64
	Damping   float64 // velocity multiplier per tick
}

// DefaultBurstParams returns the stock explosion settings.
func DefaultBurstParams() BurstParams {
	return BurstParams{
		Particles: 20,
		Lifetime:  60,
		MinSpeed:  1,
		MaxSpeed:  3,
		MinSize:   2,
		MaxSize:   5,
		Damping:   0.95,
	}
}

var burstColor = color.RGBA{255, 255, 255, 255}

// Particle is a single fragment of a burst, relative to the burst origin.
type Particle struct {
	Offset   physics.Vector2D
	Velocity physics.Vector2D
	Size     float64

	outline []physics.Vector2D
}

// ParticleBurst is a short-lived explosion effect
type ParticleBurst struct {
	BaseEntity
	Particles []Particle
	Age       int
	Lifetime  int
	Damping   float64
}

// NewParticleBurst scatters particles evenly around a full circle from
// origin, each with a random speed and size.
func NewParticleBurst(rng *rand.Rand, origin physics.Vector2D, params BurstParams) *ParticleBurst {
	particles := make([]Particle, params.Particles)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / float64(params.Particles)
		speed := params.MinSpeed + rng.Float64()*(params.MaxSpeed-params.MinSpeed)
		size := params.MinSize + rng.Float64()*(params.MaxSize-params.MinSize)
		particles[i] = Particle{
			Velocity: physics.FromAngle(angle, speed),
			Size:     size,
			outline:  squareOutline(size),
		}
	}

	return &ParticleBurst{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: origin,
		},
		Particles: particles,
		Lifetime:  params.Lifetime,
		Damping:   params.Damping,
	}
}

// Advance ages the burst and moves each particle, damping its velocity.
// It reports true once the age reaches the lifetime.
func (b *ParticleBurst) Advance(Tick) bool {
	b.Age++
	for i := range b.Particles {
		p := &b.Particles[i]
		p.Offset = p.Offset.Add(p.Velocity)
		p.Velocity = p.Velocity.Scale(b.Damping)
	}
	return b.Age >= b.Lifetime
}

// Opacity fades linearly from 1 to 0 over the lifetime.
func (b *ParticleBurst) Opacity() float64 {
	if b.Lifetime <= 0 {
		return 0
	}
	return math.Max(0, 1-float64(b.Age)/float64(b.Lifetime))
}

// AppendSprites draws one square per particle.
func (b *ParticleBurst) AppendSprites(dst []Sprite) []Sprite {
	opacity := b.Opacity()
	for i := range b.Particles {
		p := &b.Particles[i]
		dst = append(dst, Sprite{
			Owner:    b.ID,
			Index:    i,
			Kind:     KindParticle,
			Position: b.Position.Add(p.Offset),
			Outline:  p.outline,
			Shape:    ShapeFilled,
			Color:    burstColor,
			Opacity:  opacity,
		})
	}
	return dst
}
