package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
)

// HeadlessOptions configure a simulated run without a terminal.
type HeadlessOptions struct {
	Seed      int64
	Limit     time.Duration // stop after this much simulated time
	Autopilot bool
	LeadMs    float64 // autopilot reaction distance, in ms of floor travel
	Logger    *log.Logger
}

// HeadlessResult is the outcome of Simulate.
type HeadlessResult struct {
	Summary Summary
	Over    bool    // the player died before the limit
	Score   float64 // game time at death, or at the limit
	Ticks   int
}

// Simulate plays one session on a manual clock at the configured tick rate,
// as fast as the CPU allows. Same config and seed give the same result.
func Simulate(cfg config.RunnerConfig, opts HeadlessOptions) HeadlessResult {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}

	c := clock.NewManual(time.Unix(0, 0))
	signal := NewJumpSignal(c, clock.FromMillis(cfg.Input.RepeatWindowMs))

	var res HeadlessResult
	s := NewSession(Options{
		Config: cfg,
		Input:  signal,
		Clock:  c,
		Seed:   opts.Seed,
		Logger: opts.Logger,
		OnGameOver: func(score float64) {
			res.Over = true
			res.Score = score
		},
	})

	var pilot *Autopilot
	if opts.Autopilot {
		pilot = NewAutopilot(s, signal.Press, opts.LeadMs)
	}

	step := time.Second / time.Duration(cfg.Simulation.TickRate)
	end := c.Now().Add(opts.Limit)

	s.Start()
	for s.State() == SessionRunning && c.Now().Before(end) {
		if pilot != nil {
			pilot.Step()
		}
		c.Advance(step)
		s.Tick()
		res.Ticks++
	}
	// One more tick reports a death that happened on the final step
	if s.State() == SessionRunning && s.Player().Dead() {
		c.Advance(step)
		s.Tick()
	}

	if !res.Over {
		res.Score = s.GameTime()
	}
	res.Summary = s.Summary()
	s.Destroy()
	return res
}
