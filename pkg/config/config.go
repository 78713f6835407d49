// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// GameConfig contains configuration for an asteroids game
type GameConfig struct {
	World      WorldConfig      `json:"world" yaml:"world"`
	Craft      CraftConfig      `json:"craft" yaml:"craft"`
	Projectile ProjectileConfig `json:"projectile" yaml:"projectile"`
	Obstacle   ObstacleConfig   `json:"obstacle" yaml:"obstacle"`
	Burst      BurstConfig      `json:"burst" yaml:"burst"`
	Population PopulationConfig `json:"population" yaml:"population"`
	Audio      AudioConfig      `json:"audio" yaml:"audio"`
	// Seed for the game's random source; 0 seeds from the clock.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// WorldConfig contains the initial world extent and frame rate
type WorldConfig struct {
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	TickRate int     `json:"tickRate" yaml:"tickRate"`
}

// CraftConfig contains the handling of the player's craft
type CraftConfig struct {
	Acceleration  float64 `json:"acceleration" yaml:"acceleration"`
	MaxSpeed      float64 `json:"maxSpeed" yaml:"maxSpeed"`
	TurnRate      float64 `json:"turnRate" yaml:"turnRate"`
	Friction      float64 `json:"friction" yaml:"friction"`
	StopEpsilon   float64 `json:"stopEpsilon" yaml:"stopEpsilon"`
	ShotCooldown  int     `json:"shotCooldown" yaml:"shotCooldown"`
	NoseOffset    float64 `json:"noseOffset" yaml:"noseOffset"`
	HitRadius     float64 `json:"hitRadius" yaml:"hitRadius"`
	TrailLength   int     `json:"trailLength" yaml:"trailLength"`
	TrailInterval int     `json:"trailInterval" yaml:"trailInterval"`
}

// ProjectileConfig contains projectile ballistics
type ProjectileConfig struct {
	Speed     float64 `json:"speed" yaml:"speed"`
	Lifetime  int     `json:"lifetime" yaml:"lifetime"`
	WrapGrace int     `json:"wrapGrace" yaml:"wrapGrace"`
	HitRadius float64 `json:"hitRadius" yaml:"hitRadius"`
}

// ObstacleConfig contains obstacle generation settings
type ObstacleConfig struct {
	Size         float64 `json:"size" yaml:"size"`
	MinSpeed     float64 `json:"minSpeed" yaml:"minSpeed"`
	MaxSpeed     float64 `json:"maxSpeed" yaml:"maxSpeed"`
	MaxSpin      float64 `json:"maxSpin" yaml:"maxSpin"`
	Points       int     `json:"points" yaml:"points"`
	RadiusJitter float64 `json:"radiusJitter" yaml:"radiusJitter"`
}

// BurstConfig contains explosion settings
type BurstConfig struct {
	Particles int     `json:"particles" yaml:"particles"`
	Lifetime  int     `json:"lifetime" yaml:"lifetime"`
	MinSpeed  float64 `json:"minSpeed" yaml:"minSpeed"`
	MaxSpeed  float64 `json:"maxSpeed" yaml:"maxSpeed"`
	MinSize   float64 `json:"minSize" yaml:"minSize"`
	MaxSize   float64 `json:"maxSize" yaml:"maxSize"`
	Damping   float64 `json:"damping" yaml:"damping"`
}

// PopulationConfig contains the obstacle spawn rules
type PopulationConfig struct {
	InitialObstacles    int `json:"initialObstacles" yaml:"initialObstacles"`
	ReplacementsPerKill int `json:"replacementsPerKill" yaml:"replacementsPerKill"`
}

// AudioConfig contains sound cue settings
type AudioConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	SampleRate int     `json:"sampleRate" yaml:"sampleRate"`
	Volume     float64 `json:"volume" yaml:"volume"`
}

// Params converts the craft section into entity parameters.
func (c CraftConfig) Params() entity.CraftParams {
	return entity.CraftParams{
		Acceleration:  c.Acceleration,
		MaxSpeed:      c.MaxSpeed,
		TurnRate:      c.TurnRate,
		Friction:      c.Friction,
		StopEpsilon:   c.StopEpsilon,
		ShotCooldown:  c.ShotCooldown,
		NoseOffset:    c.NoseOffset,
		HitRadius:     c.HitRadius,
		TrailLength:   c.TrailLength,
		TrailInterval: c.TrailInterval,
	}
}

// Params converts the projectile section into entity parameters.
func (c ProjectileConfig) Params() entity.ProjectileParams {
	return entity.ProjectileParams{
		Speed:     c.Speed,
		Lifetime:  c.Lifetime,
		WrapGrace: c.WrapGrace,
		HitRadius: c.HitRadius,
	}
}

// Params converts the obstacle section into entity parameters.
func (c ObstacleConfig) Params() entity.ObstacleParams {
	return entity.ObstacleParams{
		Size:         c.Size,
		MinSpeed:     c.MinSpeed,
		MaxSpeed:     c.MaxSpeed,
		MaxSpin:      c.MaxSpin,
		Points:       c.Points,
		RadiusJitter: c.RadiusJitter,
	}
}

// Params converts the burst section into entity parameters.
func (c BurstConfig) Params() entity.BurstParams {
	return entity.BurstParams{
		Particles: c.Particles,
		Lifetime:  c.Lifetime,
		MinSpeed:  c.MinSpeed,
		MaxSpeed:  c.MaxSpeed,
		MinSize:   c.MinSize,
		MaxSize:   c.MaxSize,
		Damping:   c.Damping,
	}
}

// isYAML reports whether path should be decoded as YAML rather than JSON.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig loads a configuration from a file. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON. Sections missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads path when it exists and falls back to the defaults
// otherwise. found reports which happened.
func LoadOrDefault(path string) (config *GameConfig, found bool, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return DefaultConfig(), false, nil
	}
	config, err = LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return config, true, nil
}

// SaveConfig saves a configuration to a file in the format implied by its
// extension.
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return errors.New("failed to marshal config: nil config")
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	craft := entity.DefaultCraftParams()
	projectile := entity.DefaultProjectileParams()
	obstacle := entity.DefaultObstacleParams()
	burst := entity.DefaultBurstParams()

	return &GameConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Craft: CraftConfig{
			Acceleration:  craft.Acceleration,
			MaxSpeed:      craft.MaxSpeed,
			TurnRate:      craft.TurnRate,
			Friction:      craft.Friction,
			StopEpsilon:   craft.StopEpsilon,
			ShotCooldown:  craft.ShotCooldown,
			NoseOffset:    craft.NoseOffset,
			HitRadius:     craft.HitRadius,
			TrailLength:   craft.TrailLength,
			TrailInterval: craft.TrailInterval,
		},
		Projectile: ProjectileConfig{
			Speed:     projectile.Speed,
			Lifetime:  projectile.Lifetime,
			WrapGrace: projectile.WrapGrace,
			HitRadius: projectile.HitRadius,
		},
		Obstacle: ObstacleConfig{
			Size:         obstacle.Size,
			MinSpeed:     obstacle.MinSpeed,
			MaxSpeed:     obstacle.MaxSpeed,
			MaxSpin:      obstacle.MaxSpin,
			Points:       obstacle.Points,
			RadiusJitter: obstacle.RadiusJitter,
		},
		Burst: BurstConfig{
			Particles: burst.Particles,
			Lifetime:  burst.Lifetime,
			MinSpeed:  burst.MinSpeed,
			MaxSpeed:  burst.MaxSpeed,
			MinSize:   burst.MinSize,
			MaxSize:   burst.MaxSize,
			Damping:   burst.Damping,
		},
		Population: PopulationConfig{
			InitialObstacles:    5,
			ReplacementsPerKill: 2,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
		},
	}
}
