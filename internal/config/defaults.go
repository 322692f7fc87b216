package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in configuration.
// The values mirror defaults/jumper.yaml and are used if the embedded file cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			X:           50,
			Width:       50,
			Height:      50,
			SpawnOffset: 70,
		},
		Physics: PhysicsConfig{
			Gravity:     0.4,
			JumpImpulse: -12,
		},
		Progression: ProgressionConfig{
			SpawnBase:        150,
			SpawnStep:        10,
			MinSpawnInterval: 1,
			LevelEvery:       300,
		},
		Obstacles: []ObstacleArchetype{
			{Kind: KindSpike, Width: 30, Height: 30, Color: "red", Speed: -6},
			{Kind: KindBlock, Width: 40, Height: 40, Color: "blue", Speed: -4},
			{Kind: KindMovingBlock, Width: 60, Height: 30, Color: "green", Speed: -5, MoveRange: 50},
			{Kind: KindFallingBlock, Width: 40, Height: 40, Color: "purple", Speed: -3, FallSpeed: 2},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
