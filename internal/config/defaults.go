package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Mirrors defaults/runner.yaml and backs it up if the embed fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Simulation: SimulationConfig{
			TickRate:  120,
			RenderFPS: 60,
		},
		World: WorldConfig{
			ViewWidth: 1200,
			Height:    180,
		},
		Floor: FloorConfig{
			Y:     150,
			Speed: 0.5,
		},
		Player: PlayerConfig{
			X:      50,
			StartY: 50,
			Width:  44,
			Height: 47,
			RunFPS: 12,
		},
		Physics: PhysicsConfig{
			Gravity:      0.003,
			Friction:     0.2,
			JumpStrength: 1.0,
		},
		Obstacles: ObstaclesConfig{
			SpawnX:       1500,
			FirstDelayMs: 1000,
			BirdChance:   0.2,
			Cactus: CactusConfig{
				Width:  25,
				Height: 50,
			},
			Bird: BirdConfig{
				Y:          50,
				Width:      44,
				Height:     33,
				FPS:        3,
				SpeedBonus: 0.1,
			},
		},
		Spawn: SpawnConfig{
			MinDelayMs: 500,
			JitterMs:   3000,
			RampMs:     100000,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			HeadStartMs: 0,
		},
		Input: InputConfig{
			RepeatWindowMs: 60,
		},
		Clouds: []CloudConfig{
			{X: 10, Y: 30, Speed: 0.2},
			{X: 400, Y: 100, Speed: 0.2},
			{X: 600, Y: 80, Speed: 0.2},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
