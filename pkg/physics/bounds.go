package physics

// Bounds is the visible extent of the world, anchored at the origin.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the world.
func (b Bounds) Center() Vector2D {
	return Vector2D{X: b.Width / 2, Y: b.Height / 2}
}

// Wrap relocates a position that crossed an edge to the opposite edge.
// It reports whether any axis wrapped. The axes are checked in order
// low-then-high, so a position below zero lands exactly on the far edge.
func (b Bounds) Wrap(pos *Vector2D) bool {
	return b.WrapWithMargin(pos, 0)
}

// WrapWithMargin wraps like Wrap but the thresholds sit margin units outside
// the visible area, so an entity of that radius leaves the screen entirely
// before reappearing on the other side.
func (b Bounds) WrapWithMargin(pos *Vector2D, margin float64) bool {
	wrapped := false

	if pos.X < -margin {
		pos.X = b.Width + margin
		wrapped = true
	}
	if pos.X > b.Width+margin {
		pos.X = -margin
		wrapped = true
	}
	if pos.Y < -margin {
		pos.Y = b.Height + margin
		wrapped = true
	}
	if pos.Y > b.Height+margin {
		pos.Y = -margin
		wrapped = true
	}

	return wrapped
}

// Expand returns a rectangle covering the bounds plus margin on every side.
func (b Bounds) Expand(margin float64) Rect {
	return Rect{
		Center: b.Center(),
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}
