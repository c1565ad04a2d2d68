// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import "fmt"

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Floor      FloorConfig      `yaml:"floor"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Clouds     []CloudConfig    `yaml:"clouds"`
}

// SimulationConfig defines the tick and render cadence.
type SimulationConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Simulation ticks per second
	RenderFPS int `yaml:"render_fps"` // Renderer frames per second
}

// WorldConfig defines the visible play field in world pixels.
type WorldConfig struct {
	ViewWidth float64 `yaml:"view_width"`
	Height    float64 `yaml:"height"`
}

// FloorConfig defines the ground line and scroll speed.
type FloorConfig struct {
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"` // px per ms
}

// PlayerConfig defines the runner's collision box and animation.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	RunFPS float64 `yaml:"run_fps"`
}

// PhysicsConfig defines the per-tick jump physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // px per ms^2
	Friction     float64 `yaml:"friction"`      // damping term, divided by dt each tick
	JumpStrength float64 `yaml:"jump_strength"` // initial upward speed, px per ms
}

// ObstaclesConfig defines obstacle kinds and where they appear.
type ObstaclesConfig struct {
	SpawnX       float64      `yaml:"spawn_x"`
	FirstDelayMs float64      `yaml:"first_delay_ms"`
	BirdChance   float64      `yaml:"bird_chance"`
	Cactus       CactusConfig `yaml:"cactus"`
	Bird         BirdConfig   `yaml:"bird"`
}

// CactusConfig defines the ground hazard.
type CactusConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the aerial hazard.
type BirdConfig struct {
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FPS        float64 `yaml:"fps"`
	SpeedBonus float64 `yaml:"speed_bonus"` // added to floor speed
}

// SpawnConfig defines the spawn delay curve:
// delay = min_delay + jitter / (1 + t / ramp) * U[0,1).
type SpawnConfig struct {
	MinDelayMs float64 `yaml:"min_delay_ms"`
	JitterMs   float64 `yaml:"jitter_ms"`
	RampMs     float64 `yaml:"ramp_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled"`
	HeadStartMs float64 `yaml:"head_start_ms"` // game time the curve starts from
}

// InputConfig defines input debouncing.
type InputConfig struct {
	RepeatWindowMs float64 `yaml:"repeat_window_ms"`
}

// CloudConfig places one decorative cloud.
type CloudConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"` // fraction of floor speed
}

// Validate reports the first setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"simulation.tick_rate", c.Simulation.TickRate > 0},
		{"simulation.render_fps", c.Simulation.RenderFPS > 0},
		{"world.view_width", c.World.ViewWidth > 0},
		{"world.height", c.World.Height > 0},
		{"floor.y", c.Floor.Y > 0 && c.Floor.Y <= c.World.Height},
		{"floor.speed", c.Floor.Speed > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.run_fps", c.Player.RunFPS > 0},
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.friction", c.Physics.Friction >= 0},
		{"physics.jump_strength", c.Physics.JumpStrength > 0},
		{"obstacles.spawn_x", c.Obstacles.SpawnX > 0},
		{"obstacles.first_delay_ms", c.Obstacles.FirstDelayMs >= 0},
		{"obstacles.bird_chance", c.Obstacles.BirdChance >= 0 && c.Obstacles.BirdChance <= 1},
		{"obstacles.cactus", c.Obstacles.Cactus.Width > 0 && c.Obstacles.Cactus.Height > 0},
		{"obstacles.bird", c.Obstacles.Bird.Width > 0 && c.Obstacles.Bird.Height > 0 && c.Obstacles.Bird.FPS > 0},
		{"spawn.min_delay_ms", c.Spawn.MinDelayMs > 0},
		{"spawn.jitter_ms", c.Spawn.JitterMs >= 0},
		{"spawn.ramp_ms", c.Spawn.RampMs > 0},
		{"difficulty.head_start_ms", c.Difficulty.HeadStartMs >= 0},
		{"input.repeat_window_ms", c.Input.RepeatWindowMs >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid %s", chk.name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
