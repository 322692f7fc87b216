// Package config provides YAML-based game configuration loading and
// progression rules for the jumper game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/jumper/internal/core"
)

// Obstacle kind names as they appear in YAML.
const (
	KindSpike        = "spike"
	KindBlock        = "block"
	KindMovingBlock  = "movingBlock"
	KindFallingBlock = "fallingBlock"
)

// JumperConfig contains all configuration for the jumper game.
type JumperConfig struct {
	Canvas      CanvasConfig        `yaml:"canvas"`
	Player      PlayerConfig        `yaml:"player"`
	Physics     PhysicsConfig       `yaml:"physics"`
	Progression ProgressionConfig   `yaml:"progression"`
	Obstacles   []ObstacleArchetype `yaml:"obstacles"`
}

// CanvasConfig defines the logical playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player box and where it starts.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Initial y is canvas height minus this
}

// PhysicsConfig defines vertical motion constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// ProgressionConfig defines the spawn-rate formula and level pacing.
type ProgressionConfig struct {
	SpawnBase        int `yaml:"spawn_base"`         // Spawn interval before level scaling
	SpawnStep        int `yaml:"spawn_step"`         // Interval reduction per level
	MinSpawnInterval int `yaml:"min_spawn_interval"` // Floor for the interval
	LevelEvery       int `yaml:"level_every"`        // Ticks per level
}

// ObstacleArchetype is one row of the obstacle table the factory samples from.
type ObstacleArchetype struct {
	Kind      string  `yaml:"kind"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Color     string  `yaml:"color"`
	Speed     float64 `yaml:"speed"`
	MoveRange float64 `yaml:"move_range,omitempty"` // movingBlock only
	FallSpeed float64 `yaml:"fall_speed,omitempty"` // fallingBlock only
}

// Validate checks that the config can drive a simulation.
func (c JumperConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Height > c.Canvas.Height {
		errs = append(errs, errors.New("player is taller than the canvas"))
	}
	if c.Player.SpawnOffset < c.Player.Height || c.Player.SpawnOffset > c.Canvas.Height {
		errs = append(errs, fmt.Errorf("spawn_offset must be between player height (%v) and canvas height (%v), got %v",
			c.Player.Height, c.Canvas.Height, c.Player.SpawnOffset))
	}
	if c.Progression.LevelEvery <= 0 {
		errs = append(errs, fmt.Errorf("level_every must be positive, got %d", c.Progression.LevelEvery))
	}
	if len(c.Obstacles) == 0 {
		errs = append(errs, errors.New("at least one obstacle archetype is required"))
	}

	for i, o := range c.Obstacles {
		switch o.Kind {
		case KindSpike, KindBlock, KindMovingBlock, KindFallingBlock:
		default:
			errs = append(errs, fmt.Errorf("obstacle %d: unknown kind %q", i, o.Kind))
		}
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacle %d (%s): size must be positive", i, o.Kind))
		}
		if o.Speed >= 0 {
			errs = append(errs, fmt.Errorf("obstacle %d (%s): speed must be negative (leftward), got %v", i, o.Kind, o.Speed))
		}
		if o.Kind == KindMovingBlock && o.MoveRange <= 0 {
			errs = append(errs, fmt.Errorf("obstacle %d: move_range must be positive", i))
		}
		if o.Kind == KindFallingBlock && o.FallSpeed <= 0 {
			errs = append(errs, fmt.Errorf("obstacle %d: fall_speed must be positive", i))
		}
		if o.Color != "" {
			if _, ok := core.ParseColor(o.Color); !ok {
				errs = append(errs, fmt.Errorf("obstacle %d (%s): unknown color %q", i, o.Kind, o.Color))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid jumper config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named spawn-rate setting.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset. Empty means "use config".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts the spawn formula's base interval for a preset.
// The formula itself stays linear in the level.
func ApplyPreset(cfg *JumperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.SpawnBase = 180
	case DifficultyNormal:
		cfg.Progression.SpawnBase = 150
	case DifficultyHard:
		cfg.Progression.SpawnBase = 120
	}
}
