// pkg/physics/collision_test.go
package physics

import (
	"sort"
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: false, // Distance equals sum of radii, collision logic uses <
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_not_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "circles_same_position",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
		{
			name:     "circles_diagonal_collision",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 3, Y: 4}, Radius: 3},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.circle1.Collides(tt.circle2)
			if result != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Center: Vector2D{X: 0, Y: 0}, Width: 10, Height: 10}

	tests := []struct {
		name  string
		point Vector2D
		want  bool
	}{
		{"center", Vector2D{}, true},
		{"min_corner_inclusive", Vector2D{X: -5, Y: -5}, true},
		{"max_edge_exclusive", Vector2D{X: 5, Y: 0}, false},
		{"outside", Vector2D{X: 20, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestQuadTree_InsertAndQuery(t *testing.T) {
	qt := NewQuadTree(Rect{Center: Vector2D{X: 50, Y: 50}, Width: 100, Height: 100}, 2)

	points := []Vector2D{
		{X: 10, Y: 10},
		{X: 12, Y: 11},
		{X: 90, Y: 90},
		{X: 50, Y: 50},
		{X: 11, Y: 14},
	}
	for i, p := range points {
		if !qt.Insert(p, i) {
			t.Fatalf("Insert(%v) failed", p)
		}
	}

	if !qt.Divided {
		t.Error("expected tree to subdivide past capacity")
	}

	found := qt.Query(Rect{Center: Vector2D{X: 11, Y: 11}, Width: 10, Height: 10}, nil)
	sort.Ints(found)
	want := []int{0, 1, 4}
	if len(found) != len(want) {
		t.Fatalf("Query() = %v, want %v", found, want)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("Query() = %v, want %v", found, want)
		}
	}
}

func TestQuadTree_InsertOutsideBoundary(t *testing.T) {
	qt := NewQuadTree(Rect{Center: Vector2D{}, Width: 10, Height: 10}, 4)
	if qt.Insert(Vector2D{X: 100, Y: 0}, 1) {
		t.Error("Insert() outside boundary should fail")
	}
}

func TestQuadTree_CoincidentPointsTerminate(t *testing.T) {
	qt := NewQuadTree(Rect{Center: Vector2D{}, Width: 100, Height: 100}, 1)
	for i := 0; i < 50; i++ {
		if !qt.Insert(Vector2D{X: 1, Y: 1}, i) {
			t.Fatalf("Insert() #%d failed", i)
		}
	}

	found := qt.Query(Rect{Center: Vector2D{X: 1, Y: 1}, Width: 2, Height: 2}, nil)
	if len(found) != 50 {
		t.Errorf("Query() returned %d objects, want 50", len(found))
	}
}

func TestQuadTree_Clear(t *testing.T) {
	qt := NewQuadTree(Rect{Center: Vector2D{}, Width: 100, Height: 100}, 1)
	qt.Insert(Vector2D{X: 1, Y: 1}, 1)
	qt.Insert(Vector2D{X: -1, Y: -1}, 2)

	qt.Clear(Rect{Center: Vector2D{}, Width: 10, Height: 10})

	if qt.Divided || len(qt.Points) != 0 {
		t.Error("Clear() left data behind")
	}
	if found := qt.Query(qt.Boundary, nil); len(found) != 0 {
		t.Errorf("Query() after Clear() = %v, want empty", found)
	}
}
