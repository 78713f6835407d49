// pkg/entity/craft.go
package entity

import (
	"image/color"
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// CraftParams contains the handling characteristics of the player's craft
type CraftParams struct {
	Acceleration  float64
	MaxSpeed      float64
	TurnRate      float64 // radians per tick
	Friction      float64 // velocity multiplier per coasting tick
	StopEpsilon   float64 // per-axis speed snapped to zero when coasting
	ShotCooldown  int     // ticks between shots
	NoseOffset    float64
	HitRadius     float64
	TrailLength   int
	TrailInterval int // ticks between trail samples
}

// DefaultCraftParams returns the stock craft handling.
func DefaultCraftParams() CraftParams {
	return CraftParams{
		Acceleration:  0.1,
		MaxSpeed:      3,
		TurnRate:      0.05,
		Friction:      0.99,
		StopEpsilon:   0.01,
		ShotCooldown:  15,
		NoseOffset:    22.5,
		HitRadius:     15,
		TrailLength:   10,
		TrailInterval: 4,
	}
}

var (
	craftOutline = []physics.Vector2D{
		{X: 0, Y: 22.5},
		{X: -7.5, Y: -15},
		{X: 7.5, Y: -15},
	}
	craftColor = color.RGBA{255, 255, 255, 255}
)

const trailBaseOpacity = 0.3

// TrailSample is a past craft pose kept for the afterimage effect.
type TrailSample struct {
	Position physics.Vector2D
	Heading  float64
}

// Craft represents the player's ship
type Craft struct {
	BaseEntity
	Params     CraftParams
	Projectile ProjectileParams
	Destroyed  bool
	Cooldown   int // ticks until the next shot is allowed

	// ring buffer of trail samples; head is the newest
	trail        []TrailSample
	trailHead    int
	trailCount   int
	trailCounter int
}

// NewCraft creates a craft at rest at position, heading along +Y.
func NewCraft(position physics.Vector2D, params CraftParams, projectile ProjectileParams) *Craft {
	return &Craft{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
		},
		Params:     params,
		Projectile: projectile,
		Cooldown:   params.ShotCooldown,
		trail:      make([]TrailSample, max(params.TrailLength, 0)),
	}
}

// Advance applies one tick of steering, thrust, drift and wrap.
// A destroyed craft does not move. The craft never expires on its own.
func (c *Craft) Advance(t Tick) bool {
	if c.Destroyed {
		return false
	}

	if t.Input.TurnLeft {
		c.Rotation -= c.Params.TurnRate
	}
	if t.Input.TurnRight {
		c.Rotation += c.Params.TurnRate
	}

	if t.Input.Thrust {
		c.Velocity = c.Velocity.
			Add(physics.FromHeading(c.Rotation, c.Params.Acceleration)).
			ClampLength(c.Params.MaxSpeed)
	} else {
		c.Velocity = c.Velocity.Scale(c.Params.Friction)
		if math.Abs(c.Velocity.X) < c.Params.StopEpsilon {
			c.Velocity.X = 0
		}
		if math.Abs(c.Velocity.Y) < c.Params.StopEpsilon {
			c.Velocity.Y = 0
		}
	}

	c.integrate()
	t.Bounds.Wrap(&c.Position)

	if c.Cooldown > 0 {
		c.Cooldown--
	}
	c.recordTrail()

	return false
}

// Fire launches a projectile from the nose if the cooldown has elapsed.
// It returns nil when the weapon is not ready.
func (c *Craft) Fire() *Projectile {
	if c.Destroyed || c.Cooldown > 0 {
		return nil
	}

	nose := c.Position.Add(physics.FromHeading(c.Rotation, c.Params.NoseOffset))
	c.Cooldown = c.Params.ShotCooldown
	return NewProjectile(nose, c.Rotation, c.Projectile)
}

// Destroy marks the craft as destroyed and clears its trail.
// It reports true only on the call that actually destroyed the craft, which
// is the caller's cue to spawn an explosion at the craft's position.
func (c *Craft) Destroy() bool {
	if c.Destroyed {
		return false
	}
	c.Destroyed = true
	c.clearTrail()
	return true
}

// Respawn returns the craft to the centre of the world at rest.
func (c *Craft) Respawn(bounds physics.Bounds) {
	c.Destroyed = false
	c.Position = bounds.Center()
	c.Velocity = physics.Vector2D{}
	c.Rotation = 0
	c.Cooldown = c.Params.ShotCooldown
	c.trailCounter = 0
	c.clearTrail()
}

// Collider returns the craft's hit circle.
func (c *Craft) Collider() physics.Circle {
	return physics.Circle{Center: c.Position, Radius: c.Params.HitRadius}
}

// Trail returns the trail samples, newest first.
func (c *Craft) Trail() []TrailSample {
	out := make([]TrailSample, 0, c.trailCount)
	for i := 0; i < c.trailCount; i++ {
		out = append(out, c.trail[(c.trailHead+i)%len(c.trail)])
	}
	return out
}

func (c *Craft) recordTrail() {
	if len(c.trail) == 0 {
		return
	}

	c.trailCounter++
	if c.trailCounter < c.Params.TrailInterval {
		return
	}
	c.trailCounter = 0

	c.trailHead = (c.trailHead - 1 + len(c.trail)) % len(c.trail)
	c.trail[c.trailHead] = TrailSample{Position: c.Position, Heading: c.Rotation}
	if c.trailCount < len(c.trail) {
		c.trailCount++
	}
}

func (c *Craft) clearTrail() {
	c.trailHead = 0
	c.trailCount = 0
}

// AppendSprites draws the craft hull. A destroyed craft draws nothing.
func (c *Craft) AppendSprites(dst []Sprite) []Sprite {
	if c.Destroyed {
		return dst
	}
	return append(dst, Sprite{
		Owner:    c.ID,
		Kind:     KindCraft,
		Position: c.Position,
		Rotation: c.Rotation,
		Outline:  craftOutline,
		Shape:    ShapeFilled,
		Color:    craftColor,
		Opacity:  1,
	})
}

// AppendTrailSprites draws the afterimages, newest first, fading with age.
// Fully transparent samples are skipped.
func (c *Craft) AppendTrailSprites(dst []Sprite) []Sprite {
	for i, sample := range c.Trail() {
		opacity := trailBaseOpacity - float64(i)/float64(c.trailCount)
		if opacity <= 0 {
			continue
		}
		dst = append(dst, Sprite{
			Owner:    c.ID,
			Index:    i,
			Kind:     KindTrail,
			Position: sample.Position,
			Rotation: sample.Heading,
			Outline:  craftOutline,
			Shape:    ShapeFilled,
			Color:    craftColor,
			Opacity:  opacity,
		})
	}
	return dst
}
