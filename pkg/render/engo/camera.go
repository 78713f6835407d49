// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Camera maps the whole world onto the game area, keeping its aspect ratio
// and centring it with letterbox bars.
type Camera struct {
	world  physics.Bounds
	zoom   float32
	offset engo.Point
}

// NewCamera creates a camera for world fitted to a screen of the given size.
func NewCamera(world physics.Bounds, screenWidth, screenHeight float32) *Camera {
	c := &Camera{world: world, zoom: 1}
	c.Fit(screenWidth, screenHeight)
	return c
}

// SetWorld changes the world extent and refits the camera.
func (c *Camera) SetWorld(world physics.Bounds, screenWidth, screenHeight float32) {
	c.world = world
	c.Fit(screenWidth, screenHeight)
}

// Fit recomputes zoom and offset for a screen of the given size.
func (c *Camera) Fit(screenWidth, screenHeight float32) {
	if c.world.Width <= 0 || c.world.Height <= 0 || screenWidth <= 0 || screenHeight <= 0 {
		c.zoom = 1
		c.offset = engo.Point{}
		return
	}

	c.zoom = min(screenWidth/float32(c.world.Width), screenHeight/float32(c.world.Height))
	c.offset = engo.Point{
		X: (screenWidth - float32(c.world.Width)*c.zoom) / 2,
		Y: (screenHeight - float32(c.world.Height)*c.zoom) / 2,
	}
}

// Zoom returns the number of screen units per world unit.
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X)*c.zoom + c.offset.X,
		Y: float32(worldPos.Y)*c.zoom + c.offset.Y,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: float64((screenPos.X - c.offset.X) / c.zoom),
		Y: float64((screenPos.Y - c.offset.Y) / c.zoom),
	}
}
