package config

import "github.com/vovakirdan/tui-runner/internal/core"

// DifficultyManager computes the spawn delay curve from cumulative game time.
//
// The random window shrinks as jitter / (1 + t/ramp): spawns get denser the
// longer the run lasts, approaching the min_delay floor.
type DifficultyManager struct {
	spawn SpawnConfig
	cfg   DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(spawn SpawnConfig, cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		spawn: spawn,
		cfg:   cfg,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Window returns the width of the random part of the spawn delay, in ms,
// after gameTime ms of play.
func (d *DifficultyManager) Window(gameTime float64) float64 {
	if !d.cfg.Enabled {
		return d.spawn.JitterMs
	}
	t := gameTime + d.cfg.HeadStartMs
	return d.spawn.JitterMs / (1 + t/d.spawn.RampMs)
}

// Delay returns the spawn delay in ms for a uniform draw u in [0, 1).
func (d *DifficultyManager) Delay(gameTime, u float64) float64 {
	return d.spawn.MinDelayMs + d.Window(gameTime)*u
}

// ExpectedDelay returns the mean spawn delay in ms after gameTime ms of play.
func (d *DifficultyManager) ExpectedDelay(gameTime float64) float64 {
	return d.Delay(gameTime, 0.5)
}

// Level returns how far the curve has progressed, from 0 (start) toward 1.
// Shown in the HUD.
func (d *DifficultyManager) Level(gameTime float64) float64 {
	if d.spawn.JitterMs == 0 {
		return 1
	}
	return core.ClampF(1-d.Window(gameTime)/d.spawn.JitterMs, 0, 1)
}
