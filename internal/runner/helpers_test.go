package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// tickDuration is one 120 Hz simulation tick.
const tickDuration = time.Second / 120

// testConfig returns defaults with a deterministic cactus-only field.
func testConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.BirdChance = 0
	return cfg
}

type harness struct {
	clock   *clock.Manual
	signal  *JumpSignal
	session *Session
	scores  []float64
}

func newHarness(cfg config.RunnerConfig) *harness {
	h := &harness{clock: clock.NewManual(epoch)}
	h.signal = NewJumpSignal(h.clock, 0)
	h.session = NewSession(Options{
		Config: cfg,
		Input:  h.signal,
		Clock:  h.clock,
		Seed:   42,
		OnGameOver: func(score float64) {
			h.scores = append(h.scores, score)
		},
	})
	return h
}

// tick advances the clock one tick, then runs the simulation.
func (h *harness) tick() {
	h.clock.Advance(tickDuration)
	h.session.Tick()
}

// advance runs ticks until d of wall time has passed.
func (h *harness) advance(d time.Duration) {
	end := h.clock.Now().Add(d)
	for h.clock.Now().Before(end) {
		h.tick()
	}
}

// land ticks until the player stands on the floor.
func (h *harness) land() {
	for i := 0; i < 1000 && !h.session.Player().Grounded(); i++ {
		h.tick()
	}
}

// recordingSurface captures draw calls.
type recordingSurface struct {
	draws  []drawCall
	clears int
}

type drawCall struct {
	bmp        core.Bitmap
	x, y, w, h float64
}

func (r *recordingSurface) DrawImage(bmp core.Bitmap, x, y, w, h float64) {
	r.draws = append(r.draws, drawCall{bmp: bmp, x: x, y: y, w: w, h: h})
}

func (r *recordingSurface) Clear(core.Box) {
	r.clears++
}

// stubTarget is a collision target with a fixed box.
type stubTarget struct {
	box    core.Box
	killed int
}

func (s *stubTarget) Box() core.Box { return s.box }
func (s *stubTarget) Kill()         { s.killed++ }
