// pkg/engine/game.go
package engine

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// GameStatus is the macro state of a game
type GameStatus int

const (
	GameStatusActive GameStatus = iota
	GameStatusOver
)

// String returns a short name for the status.
func (s GameStatus) String() string {
	switch s {
	case GameStatusActive:
		return "active"
	case GameStatusOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// spatialIndexCapacity is the number of obstacles per quad before it splits.
const spatialIndexCapacity = 4

// Option configures a Game at construction
type Option func(*Game)

// WithRand makes the game draw all randomness from r.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithEventBus publishes game events on bus instead of a private one.
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// Game represents the core game state and logic.
// It is driven by one Step per frame and is not safe for concurrent use.
type Game struct {
	Config      *config.GameConfig
	EventBus    *event.Bus
	Status      GameStatus
	CurrentTick uint64

	craft       *entity.Craft
	projectiles []*entity.Projectile
	obstacles   []*entity.Obstacle
	bursts      []*entity.ParticleBurst
	score       int
	finalScore  int

	bounds     physics.Bounds
	population Population
	burst      entity.BurstParams
	rng        *rand.Rand

	spatialIndex    *physics.QuadTree
	overflow        []int // obstacles that fell outside the index boundary
	candidates      []int
	maxObstacleSize float64
	sprites         []entity.Sprite
}

// NewGame creates a new game with the specified configuration. A nil config
// uses DefaultConfig. The game starts Active with a fresh obstacle field.
func NewGame(cfg *config.GameConfig, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	game := &Game{
		Config: cfg,
		bounds: physics.Bounds{Width: cfg.World.Width, Height: cfg.World.Height},
		population: Population{
			Initial:  cfg.Population.InitialObstacles,
			PerKill:  cfg.Population.ReplacementsPerKill,
			Obstacle: cfg.Obstacle.Params(),
		},
		burst: cfg.Burst.Params(),
	}
	for _, opt := range opts {
		opt(game)
	}

	if game.EventBus == nil {
		game.EventBus = event.NewEventBus()
	}
	if game.rng == nil {
		game.rng = newRand(cfg.Seed)
	}

	game.craft = entity.NewCraft(game.bounds.Center(), cfg.Craft.Params(), cfg.Projectile.Params())
	game.spatialIndex = physics.NewQuadTree(game.bounds.Expand(0), spatialIndexCapacity)
	game.reset()

	return game
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Reset respawns the craft, clears every collection, reseeds the initial
// obstacles, zeroes the score and returns to Active.
func (g *Game) Reset() {
	g.reset()
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameReset,
		Source:    g,
	})
}

func (g *Game) reset() {
	g.craft.Respawn(g.bounds)
	g.projectiles = nil
	g.bursts = nil
	g.obstacles = g.population.Seed(g.rng, g.bounds)
	g.score = 0
	g.finalScore = 0
	g.Status = GameStatusActive
}

// SetBounds changes the world extent. Every entity wraps against the new
// bounds from the next Step on. Non-positive sizes are ignored.
func (g *Game) SetBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.bounds = physics.Bounds{Width: width, Height: height}
}

// Step advances the game state by one tick.
func (g *Game) Step(in input.Snapshot) {
	g.CurrentTick++

	if g.Status != GameStatusActive {
		in = input.Snapshot{}
	}
	tick := entity.Tick{Bounds: g.bounds, Input: in}

	g.craft.Advance(tick)
	if in.Fire {
		g.fire()
	}

	g.updateProjectiles(tick)
	g.updateObstacles(tick)
	g.updateBursts(tick)

	if g.Status == GameStatusActive {
		g.detectCollisions()
	}
}

// Drive runs one tick from a controller. A pending restart press resets a
// finished game before the step; while Active it is discarded.
func (g *Game) Drive(ctrl *input.Controller) {
	if ctrl.ConsumeRestart() && g.Status == GameStatusOver {
		g.Reset()
	}
	g.Step(ctrl.Snapshot())
}

func (g *Game) fire() {
	p := g.craft.Fire()
	if p == nil {
		return
	}
	g.projectiles = append(g.projectiles, p)
	g.EventBus.Publish(event.NewEntityEvent(event.ProjectileFired, g, uint64(p.ID), p.Position))
}

// updateProjectiles advances projectiles, dropping the expired ones while
// keeping firing order.
func (g *Game) updateProjectiles(tick entity.Tick) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.Advance(tick) {
			kept = append(kept, p)
		}
	}
	clear(g.projectiles[len(kept):])
	g.projectiles = kept
}

func (g *Game) updateObstacles(tick entity.Tick) {
	for _, o := range g.obstacles {
		o.Advance(tick)
	}
}

func (g *Game) updateBursts(tick entity.Tick) {
	kept := g.bursts[:0]
	for _, b := range g.bursts {
		if !b.Advance(tick) {
			kept = append(kept, b)
		}
	}
	clear(g.bursts[len(kept):])
	g.bursts = kept
}

// detectCollisions resolves the craft against the field, then at most one
// projectile kill. A destroyed craft ends the pass: nothing scores in the
// tick the craft dies.
func (g *Game) detectCollisions() {
	g.populateSpatialIndex()
	g.processCraftCollisions()
	if !g.craft.Destroyed {
		g.processProjectileCollisions()
	}

	if g.Status == GameStatusOver {
		g.finalScore = g.score
		g.EventBus.Publish(event.NewScoreEvent(event.GameOver, g, g.finalScore))
	}
}

// populateSpatialIndex rebuilds the obstacle index for this tick.
func (g *Game) populateSpatialIndex() {
	g.maxObstacleSize = 0
	for _, o := range g.obstacles {
		g.maxObstacleSize = max(g.maxObstacleSize, o.Size)
	}

	g.spatialIndex.Clear(g.bounds.Expand(g.maxObstacleSize + 1))
	g.overflow = g.overflow[:0]
	for i, o := range g.obstacles {
		if !g.spatialIndex.Insert(o.Position, i) {
			g.overflow = append(g.overflow, i)
		}
	}
}

// nearbyObstacles returns the indices of obstacles that may lie within
// radius of center, newest first.
func (g *Game) nearbyObstacles(center physics.Vector2D, radius float64) []int {
	reach := radius + g.maxObstacleSize + 1
	area := physics.Rect{Center: center, Width: 2 * reach, Height: 2 * reach}

	g.candidates = g.spatialIndex.Query(area, g.candidates[:0])
	g.candidates = append(g.candidates, g.overflow...)
	slices.SortFunc(g.candidates, func(a, b int) int { return cmp.Compare(b, a) })
	return g.candidates
}

func (g *Game) processCraftCollisions() {
	if g.craft.Destroyed {
		return
	}

	for _, i := range g.nearbyObstacles(g.craft.Position, g.craft.Params.HitRadius) {
		if entity.CraftHitsObstacle(g.craft, g.obstacles[i]) {
			g.handleCraftDestruction()
			return
		}
	}
}

func (g *Game) handleCraftDestruction() {
	if !g.craft.Destroy() {
		return
	}

	g.bursts = append(g.bursts, entity.NewParticleBurst(g.rng, g.craft.Position, g.burst))
	g.Status = GameStatusOver

	g.EventBus.Publish(event.NewEntityEvent(event.CraftDestroyed, g, uint64(g.craft.ID), g.craft.Position))
}

// processProjectileCollisions walks projectiles newest to oldest and, for
// each, obstacles newest to oldest. The first overlapping pair is resolved
// and ends the pass, so at most one obstacle is destroyed per tick.
func (g *Game) processProjectileCollisions() {
	for pi := len(g.projectiles) - 1; pi >= 0; pi-- {
		p := g.projectiles[pi]
		for _, oi := range g.nearbyObstacles(p.Position, p.Params.HitRadius) {
			if entity.ProjectileHitsObstacle(p, g.obstacles[oi]) {
				g.handleObstacleDestruction(pi, oi)
				return
			}
		}
	}
}

func (g *Game) handleObstacleDestruction(pi, oi int) {
	o := g.obstacles[oi]

	g.projectiles = slices.Delete(g.projectiles, pi, pi+1)
	g.obstacles = slices.Delete(g.obstacles, oi, oi+1)
	g.bursts = append(g.bursts, entity.NewParticleBurst(g.rng, o.Position, g.burst))
	g.score++
	g.obstacles = g.population.Replenish(g.rng, g.bounds, g.obstacles)

	g.EventBus.Publish(event.NewEntityEvent(event.ObstacleDestroyed, g, uint64(o.ID), o.Position))
	g.EventBus.Publish(event.NewScoreEvent(event.ScoreChanged, g, g.score))
}

// Sprites appends every visible primitive to dst in draw order: trail,
// obstacles, craft, projectiles, then burst particles.
func (g *Game) Sprites(dst []entity.Sprite) []entity.Sprite {
	dst = g.craft.AppendTrailSprites(dst)
	for _, o := range g.obstacles {
		dst = o.AppendSprites(dst)
	}
	dst = g.craft.AppendSprites(dst)
	for _, p := range g.projectiles {
		dst = p.AppendSprites(dst)
	}
	for _, b := range g.bursts {
		dst = b.AppendSprites(dst)
	}
	return dst
}

// Render draws the current state into r and presents the scoreboard.
func (g *Game) Render(r entity.Renderer) {
	r.Clear()
	g.sprites = g.Sprites(g.sprites[:0])
	for _, s := range g.sprites {
		r.Draw(s)
	}
	r.Present(g.Scoreboard())
}

// Scoreboard returns the score view for UI sinks.
func (g *Game) Scoreboard() entity.Scoreboard {
	return entity.Scoreboard{
		Score:      g.score,
		GameOver:   g.Status == GameStatusOver,
		FinalScore: g.finalScore,
	}
}

// Score returns the number of obstacles destroyed since the last reset.
func (g *Game) Score() int {
	return g.score
}

// Bounds returns the current world extent.
func (g *Game) Bounds() physics.Bounds {
	return g.bounds
}

// Craft returns the player's craft.
func (g *Game) Craft() *entity.Craft {
	return g.craft
}

// Projectiles returns the live projectiles, oldest first. The slice is owned
// by the game and is only valid until the next Step.
func (g *Game) Projectiles() []*entity.Projectile {
	return g.projectiles
}

// Obstacles returns the live obstacles, oldest first. The slice is owned by
// the game and is only valid until the next Step.
func (g *Game) Obstacles() []*entity.Obstacle {
	return g.obstacles
}

// Bursts returns the live particle bursts. The slice is owned by the game and
// is only valid until the next Step.
func (g *Game) Bursts() []*entity.ParticleBurst {
	return g.bursts
}
