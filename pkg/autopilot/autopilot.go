// Package autopilot flies the craft without a player. It reads the game
// state once per tick and produces the input snapshot for that tick.
package autopilot

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Behavior selects how the autopilot flies
type Behavior int

const (
	BehaviorExplorer Behavior = iota // Drifts around, turning at random
	BehaviorHunter                   // Chases and shoots the nearest obstacle
	BehaviorDefender                 // Holds the centre and shoots what comes close
)

// String returns the flag name of the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorExplorer:
		return "explorer"
	case BehaviorHunter:
		return "hunter"
	case BehaviorDefender:
		return "defender"
	default:
		return "unknown"
	}
}

// Description returns a one-line summary for logs and usage text.
func (b Behavior) Description() string {
	switch b {
	case BehaviorExplorer:
		return "Drifts around the field turning at random"
	case BehaviorHunter:
		return "Seeks out and shoots the nearest obstacle"
	case BehaviorDefender:
		return "Stays near the centre and shoots incoming obstacles"
	default:
		return "Unknown"
	}
}

// ParseBehavior maps a flag value to a Behavior.
func ParseBehavior(name string) (Behavior, error) {
	for _, b := range []Behavior{BehaviorExplorer, BehaviorHunter, BehaviorDefender} {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown behavior: %s", name)
}

// View is the read-only game state the autopilot steers by.
type View interface {
	Craft() *entity.Craft
	Obstacles() []*entity.Obstacle
	Bounds() physics.Bounds
}

const (
	aimTolerance    = 0.1  // radians; inside this the craft stops turning
	fireTolerance   = 0.25 // radians; inside this the craft shoots
	fireRange       = 350
	defenderRadius  = 150 // distance from centre the defender returns from
	explorerTurnOdd = 0.1
	patrolTurnOdd   = 0.2
)

// Pilot produces one input snapshot per tick for a behavior.
type Pilot struct {
	behavior Behavior
	random   *rand.Rand
}

// New creates a pilot. Random choices draw from r.
func New(behavior Behavior, r *rand.Rand) *Pilot {
	return &Pilot{behavior: behavior, random: r}
}

// Behavior returns the behavior the pilot flies.
func (p *Pilot) Behavior() Behavior {
	return p.behavior
}

// Next returns the input for the coming tick. A destroyed craft gets an
// empty snapshot.
func (p *Pilot) Next(v View) input.Snapshot {
	craft := v.Craft()
	if craft == nil || craft.Destroyed {
		return input.Snapshot{}
	}

	switch p.behavior {
	case BehaviorHunter:
		return p.hunt(v, craft)
	case BehaviorDefender:
		return p.defend(v, craft)
	default:
		return p.explore(craft)
	}
}

// explore thrusts continuously and occasionally changes course.
func (p *Pilot) explore(craft *entity.Craft) input.Snapshot {
	in := input.Snapshot{Thrust: true}
	if p.random.Float64() < explorerTurnOdd {
		if p.random.Float64() < 0.5 {
			in.TurnLeft = true
		} else {
			in.TurnRight = true
		}
	}
	in.Fire = craft.Cooldown == 0 && p.random.Float64() < 0.5
	return in
}

// hunt turns towards the nearest obstacle, closes in and fires when lined up.
func (p *Pilot) hunt(v View, craft *entity.Craft) input.Snapshot {
	target, ok := nearestObstacle(v, craft.Position)
	if !ok {
		return p.explore(craft)
	}

	delta := shortestDelta(craft.Position, target.Position, v.Bounds())
	diff := angleDifference(headingTowards(delta), craft.Rotation)

	in := input.Snapshot{}
	in.TurnLeft, in.TurnRight = turnDirection(diff)
	in.Thrust = math.Abs(diff) < fireTolerance && delta.Length() > fireRange/2
	in.Fire = canFire(craft, diff, delta.Length())
	return in
}

// defend heads back to the centre when it strays, otherwise patrols and
// shoots obstacles that come within range.
func (p *Pilot) defend(v View, craft *entity.Craft) input.Snapshot {
	bounds := v.Bounds()
	home := shortestDelta(craft.Position, bounds.Center(), bounds)

	if home.Length() > defenderRadius {
		in := input.Snapshot{Thrust: true}
		in.TurnLeft, in.TurnRight = turnDirection(angleDifference(headingTowards(home), craft.Rotation))
		return in
	}

	target, ok := nearestObstacle(v, craft.Position)
	if !ok {
		return p.patrol()
	}
	delta := shortestDelta(craft.Position, target.Position, bounds)
	if delta.Length() > fireRange {
		return p.patrol()
	}

	diff := angleDifference(headingTowards(delta), craft.Rotation)
	in := input.Snapshot{}
	in.TurnLeft, in.TurnRight = turnDirection(diff)
	in.Fire = canFire(craft, diff, delta.Length())
	return in
}

// patrol implements random turning in place.
func (p *Pilot) patrol() input.Snapshot {
	if p.random.Float64() < patrolTurnOdd {
		if p.random.Float64() < 0.5 {
			return input.Snapshot{TurnLeft: true}
		}
		return input.Snapshot{TurnRight: true}
	}
	return input.Snapshot{}
}

func canFire(craft *entity.Craft, diff, distance float64) bool {
	return craft.Cooldown == 0 && math.Abs(diff) < fireTolerance && distance < fireRange
}

// nearestObstacle returns the obstacle closest to pos across the wrap.
func nearestObstacle(v View, pos physics.Vector2D) (*entity.Obstacle, bool) {
	bounds := v.Bounds()
	var nearest *entity.Obstacle
	nearestDistance := math.Inf(1)

	for _, o := range v.Obstacles() {
		distance := shortestDelta(pos, o.Position, bounds).LengthSquared()
		if distance < nearestDistance {
			nearest = o
			nearestDistance = distance
		}
	}
	return nearest, nearest != nil
}

// shortestDelta returns the displacement from a to b on the torus.
func shortestDelta(a, b physics.Vector2D, bounds physics.Bounds) physics.Vector2D {
	d := b.Sub(a)
	d.X = wrapAxis(d.X, bounds.Width)
	d.Y = wrapAxis(d.Y, bounds.Height)
	return d
}

func wrapAxis(d, size float64) float64 {
	if size <= 0 {
		return d
	}
	if d > size/2 {
		return d - size
	}
	if d < -size/2 {
		return d + size
	}
	return d
}

// headingTowards returns the craft heading that points along d.
func headingTowards(d physics.Vector2D) float64 {
	return math.Atan2(-d.X, d.Y)
}

// angleDifference normalizes target-current to the range [-π, π].
func angleDifference(target, current float64) float64 {
	diff := math.Mod(target-current, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// turnDirection decides which way to turn to close diff. Turning right
// increases the heading.
func turnDirection(diff float64) (turnLeft bool, turnRight bool) {
	if math.Abs(diff) <= aimTolerance {
		return false, false
	}
	if diff > 0 {
		return false, true
	}
	return true, false
}
