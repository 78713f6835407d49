// pkg/engine/population.go
package engine

import (
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Population keeps the obstacle field stocked. Every obstacle is placed just
// outside the visible bounds so it drifts in instead of appearing under the
// craft.
type Population struct {
	Initial  int
	PerKill  int
	Obstacle entity.ObstacleParams
}

// Seed returns the initial obstacle field.
func (p Population) Seed(rng *rand.Rand, bounds physics.Bounds) []*entity.Obstacle {
	obstacles := make([]*entity.Obstacle, 0, p.Initial)
	return p.spawn(rng, bounds, obstacles, p.Initial)
}

// Replenish appends the replacements owed for one destroyed obstacle.
func (p Population) Replenish(rng *rand.Rand, bounds physics.Bounds, obstacles []*entity.Obstacle) []*entity.Obstacle {
	return p.spawn(rng, bounds, obstacles, p.PerKill)
}

func (p Population) spawn(rng *rand.Rand, bounds physics.Bounds, obstacles []*entity.Obstacle, n int) []*entity.Obstacle {
	for i := 0; i < n; i++ {
		obstacles = append(obstacles, entity.SpawnObstacleOutside(rng, bounds, p.Obstacle))
	}
	return obstacles
}
