package runner

import (
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// ObstacleManager spawns obstacles on a self-rescheduling timer, moves them
// and recycles the ones that left the screen.
//
// Obstacles live in a slot arena; free holds the indices of despawned slots.
// A new slot is allocated only when no free slot exists, and it then stays
// in the pool for the rest of the session.
type ObstacleManager struct {
	cfg        config.ObstaclesConfig
	floor      *Floor
	target     Target
	sched      *clock.Scheduler
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	logger     *log.Logger

	slots   []*Obstacle
	free    []int
	spawner *clock.Timer

	gameTime float64 // ms of simulated play, drives the difficulty curve
	count    int     // spawns so far, also the last spawn ID
	started  time.Time
	spawns   []SpawnEvent
}

// NewObstacleManager creates a manager spawning obstacles that collide with target.
func NewObstacleManager(
	cfg config.ObstaclesConfig,
	floor *Floor,
	target Target,
	sched *clock.Scheduler,
	rng *rand.Rand,
	difficulty *config.DifficultyManager,
	logger *log.Logger,
) *ObstacleManager {
	return &ObstacleManager{
		cfg:        cfg,
		floor:      floor,
		target:     target,
		sched:      sched,
		rng:        rng,
		difficulty: difficulty,
		logger:     logger,
	}
}

// Start clears the pool and arms the first spawn.
func (m *ObstacleManager) Start() {
	m.stopSpawner()
	m.slots = m.slots[:0]
	m.free = m.free[:0]
	m.gameTime = 0
	m.count = 0
	m.spawns = nil
	m.started = m.sched.Clock().Now()

	m.spawner = m.sched.AfterFunc(clock.FromMillis(m.cfg.FirstDelayMs), m.revive)
}

// Destroy cancels the pending spawn and empties the pool.
func (m *ObstacleManager) Destroy() {
	m.stopSpawner()
	for _, o := range m.slots {
		o.Destroy()
	}
	m.slots = nil
	m.free = nil
}

// Update advances game time, moves every pooled obstacle and frees the
// ones that scrolled off the left edge.
func (m *ObstacleManager) Update(dt float64) {
	m.gameTime += dt
	for i, o := range m.slots {
		o.Update(dt)
		if o.spawned && o.Offscreen() {
			o.spawned = false
			m.free = append(m.free, i)
		}
	}
}

// Draw renders every spawned obstacle.
func (m *ObstacleManager) Draw(dst core.Surface) {
	for _, o := range m.slots {
		o.Draw(dst)
	}
}

// revive is the spawn timer callback: put one obstacle in play, then re-arm.
func (m *ObstacleManager) revive() {
	o := m.slots[m.take()]
	o.x = m.cfg.SpawnX
	o.spawned = true

	m.count++
	ev := SpawnEvent{
		ID:   m.count,
		Kind: o.kind,
		Time: clock.Millis(m.sched.Clock().Now().Sub(m.started)),
		X:    o.x,
		Y:    o.y,
	}
	m.spawns = append(m.spawns, ev)
	m.logger.Debug("obstacle spawned", "id", ev.ID, "kind", ev.Kind, "time_ms", int64(ev.Time), "pool", len(m.slots))

	delay := m.difficulty.Delay(m.gameTime, m.rng.Float64())
	m.spawner = m.sched.AfterFunc(clock.FromMillis(delay), m.revive)
}

// take returns the index of a free slot, allocating one if the pool is exhausted.
func (m *ObstacleManager) take() int {
	if len(m.free) == 0 {
		m.slots = append(m.slots, m.allocate())
		return len(m.slots) - 1
	}
	i := m.rng.Intn(len(m.free))
	idx := m.free[i]
	last := len(m.free) - 1
	m.free[i] = m.free[last]
	m.free = m.free[:last]
	return idx
}

// allocate builds a new obstacle: a bird with probability bird_chance, a cactus otherwise.
func (m *ObstacleManager) allocate() *Obstacle {
	var o *Obstacle
	if m.rng.Float64() < m.cfg.BirdChance {
		o = m.newBird()
	} else {
		o = m.newCactus()
	}
	o.Start()
	return o
}

func (m *ObstacleManager) newCactus() *Obstacle {
	c := m.cfg.Cactus
	frame := spriteCacti[m.rng.Intn(len(spriteCacti))]
	anim := NewAnimation(m.sched.Clock(), []core.Bitmap{frame}, 1, c.Width, c.Height)
	o := NewObstacle(KindCactus, anim, m.target, func() float64 { return m.floor.Speed })
	o.y = m.floor.Y - c.Height
	return o
}

func (m *ObstacleManager) newBird() *Obstacle {
	b := m.cfg.Bird
	anim := NewAnimation(m.sched.Clock(), []core.Bitmap{spriteBird1, spriteBird2}, b.FPS, b.Width, b.Height)
	o := NewObstacle(KindBird, anim, m.target, func() float64 { return m.floor.Speed + b.SpeedBonus })
	o.y = b.Y
	return o
}

func (m *ObstacleManager) stopSpawner() {
	if m.spawner != nil {
		m.spawner.Stop()
		m.spawner = nil
	}
}

// Active returns the obstacles currently in play.
func (m *ObstacleManager) Active() []*Obstacle {
	var out []*Obstacle
	for _, o := range m.slots {
		if o.spawned {
			out = append(out, o)
		}
	}
	return out
}

// PoolSize returns the number of allocated obstacles, spawned or not.
func (m *ObstacleManager) PoolSize() int {
	return len(m.slots)
}

// Count returns the number of spawns so far.
func (m *ObstacleManager) Count() int {
	return m.count
}

// Spawns returns a copy of the recorded spawn events in order.
func (m *ObstacleManager) Spawns() []SpawnEvent {
	return slices.Clone(m.spawns)
}

// GameTime returns the simulated time the difficulty curve has seen.
func (m *ObstacleManager) GameTime() float64 {
	return m.gameTime
}

// Pending reports whether a spawn is armed.
func (m *ObstacleManager) Pending() bool {
	return m.spawner != nil
}
