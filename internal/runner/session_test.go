package runner

import (
	"testing"
	"time"
)

// runUntilOver ticks until the session ends or limit passes.
func (h *harness) runUntilOver(limit time.Duration) {
	end := h.clock.Now().Add(limit)
	for h.session.State() == SessionRunning && h.clock.Now().Before(end) {
		h.tick()
	}
}

func TestSessionIdleUntilStarted(t *testing.T) {
	h := newHarness(testConfig())

	if h.session.State() != SessionIdle {
		t.Fatalf("State() = %v, expected idle", h.session.State())
	}
	h.tick()
	h.session.Render(&recordingSurface{})
	if h.session.GameTime() != 0 {
		t.Errorf("idle session advanced game time to %f", h.session.GameTime())
	}
	if s := h.session.Summary(); s.GameTime != 0 || len(s.Spawns) != 0 {
		t.Errorf("idle session summary = %+v", s)
	}
}

func TestSessionDiesOnFirstCactus(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.FirstDelayMs = 500
	h := newHarness(cfg)
	h.session.Start()

	// Game time at the tick the collision happened
	var deathTime float64
	end := h.clock.Now().Add(10 * time.Second)
	for h.session.State() == SessionRunning && h.clock.Now().Before(end) {
		h.tick()
		if deathTime == 0 && h.session.Player().Dead() {
			deathTime = h.session.GameTime()
		}
	}

	if h.session.State() != SessionEnded {
		t.Fatalf("State() = %v, expected ended", h.session.State())
	}
	if len(h.scores) != 1 {
		t.Fatalf("game over reported %d times, expected 1", len(h.scores))
	}
	if h.scores[0] != deathTime {
		t.Errorf("score = %f, expected the game time at death %f", h.scores[0], deathTime)
	}
	// Spawn at ~508ms, then (1500-94)/0.5 = 2812ms until it reaches the player
	if score := h.scores[0]; score < 3200 || score > 3450 {
		t.Errorf("score = %f, expected ~3320", score)
	}
	if !h.session.Player().Dead() {
		t.Error("player should be dead")
	}

	// Later ticks change nothing
	score := h.session.GameTime()
	spawns := h.session.Obstacles().Count()
	h.advance(5 * time.Second)
	if len(h.scores) != 1 {
		t.Errorf("game over reported again: %v", h.scores)
	}
	if h.session.GameTime() != score {
		t.Errorf("game time moved after death: %f -> %f", score, h.session.GameTime())
	}
	if h.session.Obstacles().Count() != spawns {
		t.Error("obstacles kept spawning after death")
	}
}

func TestSessionJump(t *testing.T) {
	h := newHarness(testConfig())
	h.session.Start()
	h.land()

	p := h.session.Player()
	if !p.Grounded() {
		t.Fatal("player never landed")
	}
	if !h.signal.Press() {
		t.Fatal("Press() was swallowed")
	}
	h.advance(300 * time.Millisecond)

	if p.State() != StateJumping {
		t.Errorf("State() = %v, expected jumping", p.State())
	}
	if p.Y() >= p.RestY() {
		t.Errorf("Y() = %f, expected above rest %f", p.Y(), p.RestY())
	}

	h.advance(500 * time.Millisecond)
	if !p.Grounded() {
		t.Error("player should land within 800ms of jumping")
	}
	if len(h.session.Summary().Jumps) != 1 {
		t.Errorf("recorded %d jumps, expected 1", len(h.session.Summary().Jumps))
	}
}

func TestSessionSkipsZeroDelta(t *testing.T) {
	h := newHarness(testConfig())
	h.session.Start()
	h.advance(100 * time.Millisecond)

	before := h.session.GameTime()
	y := h.session.Player().Y()
	h.session.Tick()
	h.session.Tick()

	if h.session.GameTime() != before {
		t.Errorf("zero-delta tick moved game time: %f -> %f", before, h.session.GameTime())
	}
	if h.session.Player().Y() != y {
		t.Error("zero-delta tick moved the player")
	}
}

func TestSessionGameTimeTracksClock(t *testing.T) {
	h := newHarness(testConfig())
	h.session.Start()
	h.advance(2 * time.Second)

	if gt := h.session.GameTime(); gt < 1999 || gt > 2010 {
		t.Errorf("GameTime() = %f after 2s, expected ~2000", gt)
	}
	if h.session.Obstacles().GameTime() != h.session.GameTime() {
		t.Error("obstacle manager and session disagree on game time")
	}
}

func TestSessionRenderOrder(t *testing.T) {
	h := newHarness(testConfig())
	h.session.Start()
	h.land()

	surface := &recordingSurface{}
	h.session.Render(surface)

	if surface.clears != 1 {
		t.Errorf("Render cleared %d times, expected 1", surface.clears)
	}
	clouds := len(h.session.Config().Clouds)
	if len(surface.draws) < clouds+2 {
		t.Fatalf("drew %d images", len(surface.draws))
	}
	for i := 0; i < clouds; i++ {
		if d := surface.draws[i]; d.w != cloudWidth || d.h != cloudHeight {
			t.Errorf("draw %d = %+v, expected a cloud", i, d)
		}
	}
	if d := surface.draws[clouds]; d.w != groundTile || d.y != 150 {
		t.Errorf("draw %d = %+v, expected a ground tile", clouds, d)
	}
	last := surface.draws[len(surface.draws)-1]
	if last.x != 50 || last.w != 44 || last.h != 47 {
		t.Errorf("last draw = %+v, expected the player", last)
	}
}

func TestSessionDestroy(t *testing.T) {
	h := newHarness(testConfig())
	h.session.Start()
	h.advance(1500 * time.Millisecond)

	if h.signal.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, expected 1", h.signal.Subscribers())
	}

	h.session.Destroy()
	h.session.Destroy()

	if h.session.Active() {
		t.Error("destroyed session is still active")
	}
	if h.signal.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d after Destroy, expected 0", h.signal.Subscribers())
	}
	if h.session.Obstacles().Pending() || h.session.Obstacles().PoolSize() != 0 {
		t.Error("Destroy() should cancel spawns and empty the pool")
	}

	surface := &recordingSurface{}
	h.session.Render(surface)
	if len(surface.draws) != 0 || surface.clears != 0 {
		t.Error("destroyed session should not render")
	}
}

func TestSessionRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.FirstDelayMs = 500
	h := newHarness(cfg)
	h.session.Start()
	h.runUntilOver(10 * time.Second)
	if len(h.scores) != 1 {
		t.Fatalf("first run reported %d scores", len(h.scores))
	}

	h.session.Start()
	if h.session.State() != SessionRunning {
		t.Fatalf("State() = %v after restart", h.session.State())
	}
	if h.session.GameTime() != 0 || h.session.Player().Dead() {
		t.Error("restart should reset game time and revive the player")
	}
	if h.signal.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d after restart, expected 1", h.signal.Subscribers())
	}
	if h.session.Obstacles().Count() != 0 {
		t.Error("restart should clear spawn history")
	}

	h.runUntilOver(10 * time.Second)
	if len(h.scores) != 2 {
		t.Fatalf("second run reported %d scores total, expected 2", len(h.scores))
	}
	// The first cactus arrives on a fixed delay, so both runs end alike
	if diff := h.scores[1] - h.scores[0]; diff > 20 || diff < -20 {
		t.Errorf("scores differ: %f vs %f", h.scores[0], h.scores[1])
	}
}

func TestSessionSummary(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.FirstDelayMs = 500
	h := newHarness(cfg)
	h.session.Start()

	surface := &recordingSurface{}
	end := h.clock.Now().Add(10 * time.Second)
	for h.session.State() == SessionRunning && h.clock.Now().Before(end) {
		h.tick()
		h.session.Render(surface)
	}

	s := h.session.Summary()
	if s.GameTime != h.scores[0] {
		t.Errorf("summary GameTime = %f, score = %f", s.GameTime, h.scores[0])
	}
	if s.ObstacleCount < 1 || len(s.Spawns) != s.ObstacleCount {
		t.Errorf("ObstacleCount = %d, spawns = %d", s.ObstacleCount, len(s.Spawns))
	}
	if s.Count(KindCactus) != s.ObstacleCount || s.Count(KindBird) != 0 {
		t.Error("cactus-only field recorded other kinds")
	}
	// ~3s of running at 12 fps
	if s.Steps < 30 {
		t.Errorf("Steps = %d, expected the run animation to advance", s.Steps)
	}
	if s.Duration <= 0 {
		t.Errorf("Duration = %v", s.Duration)
	}
}

func TestSessionAutopilotSurvives(t *testing.T) {
	h := newHarness(testConfig())
	pilot := NewAutopilot(h.session, h.signal.Press, 150)
	h.session.Start()

	end := h.clock.Now().Add(20 * time.Second)
	for h.session.State() == SessionRunning && h.clock.Now().Before(end) {
		pilot.Step()
		h.tick()
	}

	if h.session.State() != SessionRunning {
		t.Fatalf("autopilot died at %fms", h.session.GameTime())
	}
	if len(h.session.Summary().Jumps) == 0 {
		t.Error("autopilot never jumped")
	}
}

// pilotedSpawns plays one autopilot run of d and returns its spawn kinds and times.
func pilotedSpawns(h *harness, pilot *Autopilot, d time.Duration) []SpawnEvent {
	h.session.Start()
	end := h.clock.Now().Add(d)
	for h.session.State() == SessionRunning && h.clock.Now().Before(end) {
		pilot.Step()
		h.tick()
	}
	return h.session.Summary().Spawns
}

func TestSessionRestartDrawsNewSeed(t *testing.T) {
	series := func() (seeds []int64, runs [][]SpawnEvent) {
		h := newHarness(testConfig())
		pilot := NewAutopilot(h.session, h.signal.Press, 150)
		for i := 0; i < 3; i++ {
			runs = append(runs, pilotedSpawns(h, pilot, 8*time.Second))
			seeds = append(seeds, h.session.Seed())
		}
		return seeds, runs
	}

	seeds, runs := series()
	if seeds[0] != 42 {
		t.Errorf("first run seed = %d, expected the configured 42", seeds[0])
	}
	if seeds[1] == seeds[0] || seeds[2] == seeds[1] || seeds[2] == seeds[0] {
		t.Errorf("restarts reused a seed: %v", seeds)
	}
	if len(runs[0]) < 2 || len(runs[1]) < 2 {
		t.Fatalf("runs spawned %d and %d obstacles", len(runs[0]), len(runs[1]))
	}
	if sameSpawnTimes(runs[0], runs[1]) {
		t.Errorf("restart replayed the spawn sequence %v", runs[0])
	}

	// The whole series replays from the same seed
	again, replay := series()
	for i := range seeds {
		if again[i] != seeds[i] {
			t.Errorf("run %d seed = %d, expected %d", i+1, again[i], seeds[i])
		}
		if !sameSpawnTimes(replay[i], runs[i]) {
			t.Errorf("run %d spawned differently on replay", i+1)
		}
	}
}

func sameSpawnTimes(a, b []SpawnEvent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Time != b[i].Time {
			return false
		}
	}
	return true
}

func TestSessionSummaryIsACopy(t *testing.T) {
	h := newHarness(testConfig())
	pilot := NewAutopilot(h.session, h.signal.Press, 150)
	pilotedSpawns(h, pilot, 5*time.Second)

	s := h.session.Summary()
	if len(s.Jumps) == 0 || len(s.Spawns) == 0 {
		t.Fatalf("summary has %d jumps and %d spawns", len(s.Jumps), len(s.Spawns))
	}
	firstJump, firstSpawn := s.Jumps[0], s.Spawns[0]

	s.Jumps[0].Time = -1
	s.Spawns[0].ID = -1
	s.Jumps = append(s.Jumps, JumpEvent{})

	again := h.session.Summary()
	if again.Jumps[0] != firstJump || again.Spawns[0] != firstSpawn {
		t.Error("editing a summary changed the session's telemetry")
	}
	if len(again.Jumps) != len(s.Jumps)-1 {
		t.Errorf("len(Jumps) = %d, expected %d", len(again.Jumps), len(s.Jumps)-1)
	}
}

func TestSessionRequiresInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic without a jump source")
		}
	}()
	NewSession(Options{Config: testConfig()})
}
