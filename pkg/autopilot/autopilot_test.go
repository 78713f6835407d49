package autopilot

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

type fakeView struct {
	craft     *entity.Craft
	obstacles []*entity.Obstacle
	bounds    physics.Bounds
}

func (v *fakeView) Craft() *entity.Craft { return v.craft }
func (v *fakeView) Obstacles() []*entity.Obstacle { return v.obstacles }
func (v *fakeView) Bounds() physics.Bounds { return v.bounds }

func newView(obstacles ...physics.Vector2D) *fakeView {
	bounds := physics.Bounds{Width: 800, Height: 600}
	v := &fakeView{
		craft:  entity.NewCraft(bounds.Center(), entity.DefaultCraftParams(), entity.DefaultProjectileParams()),
		bounds: bounds,
	}
	for _, pos := range obstacles {
		v.obstacles = append(v.obstacles, &entity.Obstacle{
			BaseEntity: entity.BaseEntity{ID: entity.GenerateID(), Position: pos},
			Size:       30,
		})
	}
	return v
}

func TestParseBehavior(t *testing.T) {
	tests := []struct {
		name    string
		want    Behavior
		wantErr bool
	}{
		{"explorer", BehaviorExplorer, false},
		{"hunter", BehaviorHunter, false},
		{"defender", BehaviorDefender, false},
		{"bomber", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBehavior(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBehavior(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseBehavior(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestShortestDelta(t *testing.T) {
	bounds := physics.Bounds{Width: 800, Height: 600}
	tests := []struct {
		name string
		a, b physics.Vector2D
		want physics.Vector2D
	}{
		{"direct", physics.Vector2D{X: 100, Y: 100}, physics.Vector2D{X: 200, Y: 150}, physics.Vector2D{X: 100, Y: 50}},
		{"across_right_edge", physics.Vector2D{X: 790, Y: 300}, physics.Vector2D{X: 10, Y: 300}, physics.Vector2D{X: 20, Y: 0}},
		{"across_top_edge", physics.Vector2D{X: 400, Y: 10}, physics.Vector2D{X: 400, Y: 590}, physics.Vector2D{X: 0, Y: -20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortestDelta(tt.a, tt.b, bounds)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("shortestDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTurnDirection(t *testing.T) {
	tests := []struct {
		name      string
		target    physics.Vector2D
		wantLeft  bool
		wantRight bool
	}{
		{"ahead", physics.Vector2D{X: 0, Y: 100}, false, false},
		{"towards_plus_x", physics.Vector2D{X: 100, Y: 0}, true, false},
		{"towards_minus_x", physics.Vector2D{X: -100, Y: 0}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := turnDirection(angleDifference(headingTowards(tt.target), 0))
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("turnDirection() = (%v, %v), want (%v, %v)", left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestHeadingTowardsMatchesCraftHeading(t *testing.T) {
	for _, d := range []physics.Vector2D{{X: 1, Y: 0}, {X: -3, Y: 4}, {X: 0, Y: -2}} {
		dir := physics.FromHeading(headingTowards(d), d.Length())
		if math.Abs(dir.X-d.X) > 1e-9 || math.Abs(dir.Y-d.Y) > 1e-9 {
			t.Errorf("FromHeading(headingTowards(%v)) = %v", d, dir)
		}
	}
}

func TestPilot_HunterAimsAndFires(t *testing.T) {
	v := newView(physics.Vector2D{X: 600, Y: 300})
	pilot := New(BehaviorHunter, rand.New(rand.NewPCG(1, 2)))

	for tick := 0; tick < 120; tick++ {
		in := pilot.Next(v)
		if in.Fire {
			diff := angleDifference(-math.Pi/2, v.craft.Rotation)
			if math.Abs(diff) >= fireTolerance {
				t.Fatalf("fired %.2f rad off target", diff)
			}
			if v.craft.Fire() == nil {
				t.Fatal("pilot fired while the weapon was cooling down")
			}
			return
		}
		v.craft.Advance(entity.Tick{Bounds: v.bounds, Input: in})
	}
	t.Fatal("hunter never fired")
}

func TestPilot_DefenderReturnsHome(t *testing.T) {
	v := newView()
	v.craft.Position = physics.Vector2D{X: 400, Y: 50}
	pilot := New(BehaviorDefender, rand.New(rand.NewPCG(1, 2)))

	in := pilot.Next(v)
	if !in.Thrust {
		t.Error("defender away from home should thrust")
	}
	if in.Fire {
		t.Error("defender should not fire while returning")
	}
}

func TestPilot_DestroyedCraftIdles(t *testing.T) {
	v := newView(physics.Vector2D{X: 450, Y: 300})
	v.craft.Destroy()

	for _, b := range []Behavior{BehaviorExplorer, BehaviorHunter, BehaviorDefender} {
		if in := New(b, rand.New(rand.NewPCG(1, 2))).Next(v); in != (input.Snapshot{}) {
			t.Errorf("%v: Next() = %+v for a destroyed craft", b, in)
		}
	}
}

func TestPilot_NeverFiresDuringCooldown(t *testing.T) {
	v := newView(physics.Vector2D{X: 400, Y: 400})

	for _, b := range []Behavior{BehaviorExplorer, BehaviorHunter, BehaviorDefender} {
		pilot := New(b, rand.New(rand.NewPCG(7, 8)))
		v.craft.Cooldown = 5
		if in := pilot.Next(v); in.Fire {
			t.Errorf("%v fired with cooldown remaining", b)
		}
	}
}
