package runner

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// PlayerState selects which sprite the player shows.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateJumping
	StateDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the runner character.
type Player struct {
	cfg     config.PlayerConfig
	physics config.PhysicsConfig
	floor   *Floor
	clock   clock.Clock
	input   JumpSource
	unsub   func()

	x       float64
	y       float64
	vy      float64 // px per ms, negative = up
	walking bool    // on the ground
	dead    bool

	run       *Animation
	lastFrame int
	steps     int
	started   time.Time
	jumps     []JumpEvent
}

// NewPlayer creates the runner standing at cfg.X, dropping from cfg.StartY.
func NewPlayer(cfg config.PlayerConfig, physics config.PhysicsConfig, floor *Floor, c clock.Clock, input JumpSource) *Player {
	if input == nil {
		panic("runner: player needs a jump source")
	}
	return &Player{
		cfg:     cfg,
		physics: physics,
		floor:   floor,
		clock:   c,
		input:   input,
		x:       cfg.X,
		y:       cfg.StartY,
		run:     NewAnimation(c, []core.Bitmap{spriteRun1, spriteRun2}, cfg.RunFPS, cfg.Width, cfg.Height),
	}
}

// Start resets per-session state and subscribes to jump requests.
func (p *Player) Start() {
	p.run.Start()
	p.x = p.cfg.X
	p.y = p.cfg.StartY
	p.vy = 0
	p.walking = false
	p.dead = false
	p.steps = 0
	p.lastFrame = 0
	p.jumps = nil
	p.started = p.clock.Now()

	if p.unsub != nil {
		p.unsub()
	}
	p.unsub = p.input.Subscribe(func() { p.Jump() })
}

// Destroy stops the animation and drops the jump subscription.
func (p *Player) Destroy() {
	p.run.Stop()
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
}

// Update integrates vertical motion while airborne and lands on the floor.
func (p *Player) Update(dt float64) {
	if !p.walking {
		p.vy += p.physics.Gravity * dt
		// Damping coupled to dt; keep this exact recurrence, it defines the jump feel.
		p.vy /= 1 + p.physics.Friction/dt
		p.y += p.vy * dt
	}

	if p.y+p.cfg.Height >= p.floor.Y {
		p.y = p.floor.Y - p.cfg.Height
		p.vy = 0
		p.walking = true
	}
}

// Draw renders the sprite for the current state and counts running steps.
func (p *Player) Draw(dst core.Surface) {
	var sprite core.Bitmap
	switch p.State() {
	case StateDead:
		sprite = spriteDead
	case StateJumping:
		sprite = spriteJump
	default:
		sprite = p.run.Frame()
		if frame := p.run.CurrentFrame(); frame != p.lastFrame {
			p.steps++
			p.lastFrame = frame
		}
	}
	dst.DrawImage(sprite, p.x, p.y, p.cfg.Width, p.cfg.Height)
}

// Jump launches the player if it is on the ground. Returns whether it jumped.
func (p *Player) Jump() bool {
	if !p.walking || p.dead {
		return false
	}
	p.vy = -p.physics.JumpStrength
	p.walking = false
	p.jumps = append(p.jumps, JumpEvent{
		Time: clock.Millis(p.clock.Now().Sub(p.started)),
		X:    p.x,
		Y:    p.y,
	})
	return true
}

// Kill marks the player dead. There is no way back within a session.
func (p *Player) Kill() {
	p.dead = true
}

// Dead reports whether the player has collided with an obstacle.
func (p *Player) Dead() bool {
	return p.dead
}

// Grounded reports whether the player is on the floor.
func (p *Player) Grounded() bool {
	return p.walking
}

// State returns the animation state.
func (p *Player) State() PlayerState {
	switch {
	case p.dead:
		return StateDead
	case !p.walking:
		return StateJumping
	default:
		return StateRunning
	}
}

// Box returns the collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.x, p.y, p.cfg.Width, p.cfg.Height)
}

// Y returns the top edge of the player.
func (p *Player) Y() float64 {
	return p.y
}

// RestY returns the top edge of the player while standing on the floor.
func (p *Player) RestY() float64 {
	return p.floor.Y - p.cfg.Height
}

// Velocity returns the vertical velocity in px per ms.
func (p *Player) Velocity() float64 {
	return p.vy
}

// Steps returns the number of running animation frames shown so far.
func (p *Player) Steps() int {
	return p.steps
}

// Jumps returns a copy of the recorded jump events in order.
func (p *Player) Jumps() []JumpEvent {
	return slices.Clone(p.jumps)
}
