// pkg/entity/projectile.go
package entity

import (
	"image/color"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ProjectileParams contains the ballistics of a fired projectile
type ProjectileParams struct {
	Speed     float64
	Lifetime  int // ticks before expiry
	WrapGrace int // extra ticks granted after the first wrap
	HitRadius float64
}

// DefaultProjectileParams returns the stock projectile ballistics.
func DefaultProjectileParams() ProjectileParams {
	return ProjectileParams{
		Speed:     5,
		Lifetime:  120,
		WrapGrace: 30,
		HitRadius: 1,
	}
}

var (
	projectileOutline = squareOutline(1)
	projectileColor   = color.RGBA{255, 255, 255, 255}
)

// Projectile represents a shot fired by the craft
type Projectile struct {
	BaseEntity
	Params  ProjectileParams
	Age     int
	Wrapped bool
}

// NewProjectile creates a projectile at position travelling along heading.
func NewProjectile(position physics.Vector2D, heading float64, params ProjectileParams) *Projectile {
	return &Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Velocity: physics.FromHeading(heading, params.Speed),
			Rotation: heading,
		},
		Params: params,
	}
}

// Advance moves the projectile, ages it and wraps it at the exact edges.
// It reports whether the projectile has outlived its budget.
func (p *Projectile) Advance(t Tick) bool {
	p.integrate()
	p.Age++
	if t.Bounds.Wrap(&p.Position) {
		p.Wrapped = true
	}
	return p.Expired()
}

// Expired reports whether the age exceeds the lifetime budget. Once the
// projectile has wrapped the budget includes the grace period.
func (p *Projectile) Expired() bool {
	budget := p.Params.Lifetime
	if p.Wrapped {
		budget += p.Params.WrapGrace
	}
	return p.Age > budget
}

// Collider returns the projectile's hit circle.
func (p *Projectile) Collider() physics.Circle {
	return physics.Circle{Center: p.Position, Radius: p.Params.HitRadius}
}

// AppendSprites draws the projectile as a small square.
func (p *Projectile) AppendSprites(dst []Sprite) []Sprite {
	return append(dst, Sprite{
		Owner:    p.ID,
		Kind:     KindProjectile,
		Position: p.Position,
		Outline:  projectileOutline,
		Shape:    ShapeFilled,
		Color:    projectileColor,
		Opacity:  1,
	})
}
