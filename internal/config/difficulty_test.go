package config

import (
	"math"
	"testing"
)

func TestDifficultyWindowShrinks(t *testing.T) {
	cfg := DefaultRunnerConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)

	if got := d.Window(0); got != 3000 {
		t.Errorf("Window(0) = %f, expected 3000", got)
	}
	// 1 + 100000/100000 = 2
	if got := d.Window(100000); got != 1500 {
		t.Errorf("Window(100000) = %f, expected 1500", got)
	}

	prev := math.Inf(1)
	for t0 := 0.0; t0 <= 1e7; t0 += 25000 {
		exp := d.ExpectedDelay(t0)
		if exp > prev {
			t.Fatalf("ExpectedDelay(%f) = %f increased from %f", t0, exp, prev)
		}
		if exp < 500 {
			t.Fatalf("ExpectedDelay(%f) = %f below the 500ms floor", t0, exp)
		}
		prev = exp
	}

	// Approaches the floor
	if got := d.ExpectedDelay(1e12); got-500 > 0.01 {
		t.Errorf("ExpectedDelay(1e12) = %f, expected ~500", got)
	}
}

func TestDifficultyDelayBounds(t *testing.T) {
	cfg := DefaultRunnerConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)

	if got := d.Delay(0, 0); got != 500 {
		t.Errorf("Delay(0, 0) = %f, expected 500", got)
	}
	if got := d.Delay(0, 0.999); got >= 3500 {
		t.Errorf("Delay(0, 0.999) = %f, expected < 3500", got)
	}
}

func TestDifficultyFixedAndHeadStart(t *testing.T) {
	cfg := DefaultRunnerConfig()

	fixed := cfg.Difficulty
	fixed.Enabled = false
	d := NewDifficultyManager(cfg.Spawn, fixed)
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if d.Window(0) != d.Window(1e9) {
		t.Error("fixed difficulty should not ramp")
	}
	if d.Level(1e9) != 0 {
		t.Errorf("fixed difficulty Level = %f, expected 0", d.Level(1e9))
	}

	hard := cfg.Difficulty
	hard.HeadStartMs = 100000
	h := NewDifficultyManager(cfg.Spawn, hard)
	if got := h.Window(0); got != 1500 {
		t.Errorf("head start Window(0) = %f, expected 1500", got)
	}
	if got := h.Level(0); got != 0.5 {
		t.Errorf("head start Level(0) = %f, expected 0.5", got)
	}
}
