// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration.
const (
	EnvWorldWidth       = "ASTEROIDS_WORLD_WIDTH"
	EnvWorldHeight      = "ASTEROIDS_WORLD_HEIGHT"
	EnvSeed             = "ASTEROIDS_SEED"
	EnvInitialObstacles = "ASTEROIDS_INITIAL_OBSTACLES"
)

// MaxTickRate bounds world.tickRate so a tick period stays above zero.
const MaxTickRate = 1000

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// ApplyEnvironmentOverrides applies environment variable overrides to a game
// config and validates the result. Unparseable values are rejected rather than
// silently ignored.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	var err error

	if config.World.Width, err = floatFromEnv(EnvWorldWidth, config.World.Width); err != nil {
		return err
	}
	if config.World.Height, err = floatFromEnv(EnvWorldHeight, config.World.Height); err != nil {
		return err
	}
	if config.Population.InitialObstacles, err = intFromEnv(EnvInitialObstacles, config.Population.InitialObstacles); err != nil {
		return err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, parseErr := strconv.ParseUint(v, 10, 64)
		if parseErr != nil {
			return &ValidationError{Field: EnvSeed, Value: v, Message: "must be an unsigned integer"}
		}
		config.Seed = seed
	}

	return config.Validate()
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		value   interface{}
		message string
	}{
		{c.World.Width > 0, "world.width", c.World.Width, "must be positive"},
		{c.World.Height > 0, "world.height", c.World.Height, "must be positive"},
		{c.World.TickRate > 0 && c.World.TickRate <= MaxTickRate, "world.tickRate", c.World.TickRate, fmt.Sprintf("must be in [1, %d]", MaxTickRate)},
		{c.Craft.MaxSpeed > 0, "craft.maxSpeed", c.Craft.MaxSpeed, "must be positive"},
		{c.Craft.Friction > 0 && c.Craft.Friction <= 1, "craft.friction", c.Craft.Friction, "must be in (0, 1]"},
		{c.Craft.ShotCooldown >= 0, "craft.shotCooldown", c.Craft.ShotCooldown, "must not be negative"},
		{c.Craft.HitRadius > 0, "craft.hitRadius", c.Craft.HitRadius, "must be positive"},
		{c.Craft.TrailLength >= 0, "craft.trailLength", c.Craft.TrailLength, "must not be negative"},
		{c.Craft.TrailInterval > 0, "craft.trailInterval", c.Craft.TrailInterval, "must be positive"},
		{c.Projectile.Speed > 0, "projectile.speed", c.Projectile.Speed, "must be positive"},
		{c.Projectile.Lifetime > 0, "projectile.lifetime", c.Projectile.Lifetime, "must be positive"},
		{c.Projectile.WrapGrace >= 0, "projectile.wrapGrace", c.Projectile.WrapGrace, "must not be negative"},
		{c.Projectile.HitRadius > 0, "projectile.hitRadius", c.Projectile.HitRadius, "must be positive"},
		{c.Obstacle.Size > 0, "obstacle.size", c.Obstacle.Size, "must be positive"},
		{c.Obstacle.MinSpeed <= c.Obstacle.MaxSpeed, "obstacle.minSpeed", c.Obstacle.MinSpeed, "must not exceed maxSpeed"},
		{c.Obstacle.Points >= 3, "obstacle.points", c.Obstacle.Points, "must be at least 3"},
		{c.Obstacle.RadiusJitter >= 0 && c.Obstacle.RadiusJitter < 1, "obstacle.radiusJitter", c.Obstacle.RadiusJitter, "must be in [0, 1)"},
		{c.Burst.Particles > 0, "burst.particles", c.Burst.Particles, "must be positive"},
		{c.Burst.Lifetime > 0, "burst.lifetime", c.Burst.Lifetime, "must be positive"},
		{c.Burst.Damping > 0 && c.Burst.Damping <= 1, "burst.damping", c.Burst.Damping, "must be in (0, 1]"},
		{c.Population.InitialObstacles > 0, "population.initialObstacles", c.Population.InitialObstacles, "must be positive"},
		{c.Population.ReplacementsPerKill > 0, "population.replacementsPerKill", c.Population.ReplacementsPerKill, "must be positive"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume", c.Audio.Volume, "must be in [0, 1]"},
		{!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio.sampleRate", c.Audio.SampleRate, "must be positive when audio is enabled"},
	}

	for _, check := range checks {
		if !check.ok {
			return &ValidationError{Field: check.field, Value: check.value, Message: check.message}
		}
	}
	return nil
}

// intFromEnv returns the integer in key, or current when key is unset.
func intFromEnv(key string, current int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return current, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return current, &ValidationError{Field: key, Value: value, Message: "must be an integer"}
	}
	return n, nil
}

// floatFromEnv returns the number in key, or current when key is unset.
func floatFromEnv(key string, current float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return current, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return current, &ValidationError{Field: key, Value: value, Message: "must be a number"}
	}
	return f, nil
}
