// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector2D
		expected Vector2D
	}{
		{"add", Vector2D{X: 3, Y: 4}.Add(Vector2D{X: 1, Y: 2}), Vector2D{X: 4, Y: 6}},
		{"add_mixed_signs", Vector2D{X: 5, Y: -3}.Add(Vector2D{X: -2, Y: 7}), Vector2D{X: 3, Y: 4}},
		{"sub", Vector2D{X: 3, Y: 4}.Sub(Vector2D{X: 1, Y: 2}), Vector2D{X: 2, Y: 2}},
		{"scale", Vector2D{X: 3, Y: -4}.Scale(0.5), Vector2D{X: 1.5, Y: -2}},
		{"scale_zero", Vector2D{X: 3, Y: -4}.Scale(0), Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", v.LengthSquared())
	}
	if d := v.Distance(Vector2D{}); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestVector2D_ClampLength(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2D
		max    float64
		length float64
	}{
		{"shorter_unchanged", Vector2D{X: 1, Y: 1}, 3, math.Sqrt2},
		{"longer_rescaled", Vector2D{X: 30, Y: 40}, 3, 3},
		{"exactly_max", Vector2D{X: 0, Y: 3}, 3, 3},
		{"zero_vector", Vector2D{}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLength(tt.max)
			if !approxEqual(got.Length(), tt.length) {
				t.Errorf("ClampLength() length = %v, expected %v", got.Length(), tt.length)
			}
			if tt.v.Length() > 0 && !approxEqual(got.X*tt.v.Y, got.Y*tt.v.X) {
				t.Errorf("ClampLength() changed direction: %v -> %v", tt.v, got)
			}
		})
	}
}

func TestVector2D_Rotate(t *testing.T) {
	got := Vector2D{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !approxEqual(got.X, 0) || !approxEqual(got.Y, 1) {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 1)", got)
	}
}

func TestFromAngle(t *testing.T) {
	got := FromAngle(math.Pi, 2)
	if !approxEqual(got.X, -2) || !approxEqual(got.Y, 0) {
		t.Errorf("FromAngle(pi, 2) = %v, expected (-2, 0)", got)
	}
}

func TestFromHeading(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		want    Vector2D
	}{
		{"zero_points_down_y", 0, Vector2D{X: 0, Y: 5}},
		{"quarter_turn", math.Pi / 2, Vector2D{X: -5, Y: 0}},
		{"half_turn", math.Pi, Vector2D{X: 0, Y: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHeading(tt.heading, 5)
			if !approxEqual(got.X, tt.want.X) || !approxEqual(got.Y, tt.want.Y) {
				t.Errorf("FromHeading(%v, 5) = %v, expected %v", tt.heading, got, tt.want)
			}
		})
	}
}

func BenchmarkVector2D_ClampLength(b *testing.B) {
	v := Vector2D{X: 30, Y: 40}
	for i := 0; i < b.N; i++ {
		_ = v.ClampLength(3)
	}
}
