package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// SessionState is the lifecycle of a Session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionRunning
	SessionEnded
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionRunning:
		return "running"
	case SessionEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Options configure a Session.
type Options struct {
	Config config.RunnerConfig
	Input  JumpSource  // required
	Clock  clock.Clock // defaults to the system clock
	Seed   int64       // seeds the first run; later runs draw from it. 0 seeds every run from the clock
	Logger *log.Logger // defaults to discarding

	// OnGameOver receives the score (simulated ms survived), exactly once per session.
	OnGameOver func(score float64)
}

// Session composes the entities of one run and drives them.
type Session struct {
	cfg        config.RunnerConfig
	input      JumpSource
	clock      clock.Clock
	sched      *clock.Scheduler
	seed       int64
	seeds      *rand.Rand // per-run seeds after the first; nil when seeding from the clock
	runSeed    int64
	runs       int
	logger     *log.Logger
	onGameOver func(score float64)

	state    SessionState
	active   bool // false stops rendering
	reported bool

	floor      *Floor
	player     *Player
	obstacles  *ObstacleManager
	difficulty *config.DifficultyManager
	entities   []Entity

	startedAt  time.Time
	lastUpdate time.Time
	gameTime   float64
}

// NewSession creates an idle session. Panics if opts.Input is nil.
func NewSession(opts Options) *Session {
	if opts.Input == nil {
		panic("runner: session needs a jump source")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	var seeds *rand.Rand
	if opts.Seed != 0 {
		seeds = rand.New(rand.NewSource(opts.Seed))
	}
	return &Session{
		cfg:        opts.Config,
		input:      opts.Input,
		clock:      opts.Clock,
		sched:      clock.NewScheduler(opts.Clock),
		seed:       opts.Seed,
		seeds:      seeds,
		logger:     opts.Logger,
		onGameOver: opts.OnGameOver,
	}
}

// Start builds a fresh world and starts every entity.
// Starting a running session tears the previous run down first.
func (s *Session) Start() {
	if s.active {
		s.teardown()
	}

	seed := s.nextSeed()
	s.runSeed = seed
	s.runs++

	s.reported = false
	s.gameTime = 0
	s.startedAt = s.clock.Now()

	cfg := s.cfg
	s.difficulty = config.NewDifficultyManager(cfg.Spawn, cfg.Difficulty)
	s.floor = NewFloor(cfg.Floor, cfg.World.ViewWidth)
	s.player = NewPlayer(cfg.Player, cfg.Physics, s.floor, s.clock, s.input)
	s.obstacles = NewObstacleManager(
		cfg.Obstacles,
		s.floor,
		s.player,
		s.sched,
		rand.New(rand.NewSource(seed)),
		s.difficulty,
		s.logger,
	)

	// Draw order: background first, player last
	s.entities = s.entities[:0]
	for _, c := range cfg.Clouds {
		s.entities = append(s.entities, NewCloud(c, s.floor, cfg.World.ViewWidth))
	}
	s.entities = append(s.entities, s.floor, s.obstacles, s.player)

	for _, e := range s.entities {
		e.Start()
	}

	s.lastUpdate = s.clock.Now()
	s.state = SessionRunning
	s.active = true
	s.logger.Info("session started", "seed", seed, "tick_rate", cfg.Simulation.TickRate)
}

// Tick runs one simulation step.
//
// While the player lives: fire due timers, measure the wall-clock delta since
// the previous tick, add it to game time and update every entity. The first
// tick after the player died reports the score; later ticks do nothing.
func (s *Session) Tick() {
	if s.state != SessionRunning {
		return
	}

	if !s.player.Dead() {
		s.sched.RunDue()
		now := s.clock.Now()
		delta := clock.Millis(now.Sub(s.lastUpdate))
		if delta <= 0 {
			return
		}
		s.gameTime += delta
		for _, e := range s.entities {
			e.Update(delta)
		}
		s.lastUpdate = now
		return
	}

	if !s.reported {
		s.reported = true
		s.state = SessionEnded
		s.Summary().Log(s.logger)
		if s.onGameOver != nil {
			s.onGameOver(s.gameTime)
		}
	}
}

// Render clears dst and draws every entity. No-op once destroyed.
func (s *Session) Render(dst core.Surface) {
	if !s.active {
		return
	}
	dst.Clear(core.NewBox(0, 0, s.cfg.World.ViewWidth, s.cfg.World.Height))
	for _, e := range s.entities {
		e.Draw(dst)
	}
}

// Destroy stops timers, halts rendering and releases every entity.
// Safe to call in any state, any number of times.
func (s *Session) Destroy() {
	if !s.active {
		return
	}
	s.teardown()
	s.logger.Info("session destroyed",
		"game_time_ms", int64(s.gameTime),
		"duration", s.clock.Now().Sub(s.startedAt).Round(time.Millisecond),
	)
}

// nextSeed returns the RNG seed of the next run. Every run gets a fresh
// obstacle sequence; a fixed seed makes the whole series reproducible.
func (s *Session) nextSeed() int64 {
	switch {
	case s.seeds == nil:
		return s.clock.Now().UnixNano()
	case s.runs == 0:
		return s.seed
	default:
		return s.seeds.Int63()
	}
}

func (s *Session) teardown() {
	s.active = false
	s.sched.StopAll()
	for _, e := range s.entities {
		e.Destroy()
	}
}

// Summary collects the session's telemetry.
func (s *Session) Summary() Summary {
	if s.player == nil {
		return Summary{}
	}
	return Summary{
		Steps:         s.player.Steps(),
		Jumps:         s.player.Jumps(),
		ObstacleCount: s.obstacles.Count(),
		Spawns:        s.obstacles.Spawns(),
		GameTime:      s.gameTime,
		Duration:      s.clock.Now().Sub(s.startedAt),
	}
}

// Seed returns the RNG seed of the current run.
func (s *Session) Seed() int64 {
	return s.runSeed
}

// State returns the lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

// Active reports whether the session still renders.
func (s *Session) Active() bool {
	return s.active
}

// GameTime returns the simulated milliseconds survived so far.
func (s *Session) GameTime() float64 {
	return s.gameTime
}

// Player returns the runner character of the current run.
func (s *Session) Player() *Player {
	return s.player
}

// Obstacles returns the obstacle manager of the current run.
func (s *Session) Obstacles() *ObstacleManager {
	return s.obstacles
}

// Floor returns the ground of the current run.
func (s *Session) Floor() *Floor {
	return s.floor
}

// Difficulty returns the spawn curve of the current run.
func (s *Session) Difficulty() *config.DifficultyManager {
	return s.difficulty
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
