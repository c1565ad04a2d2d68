package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// ObstacleKind tags what an obstacle is.
type ObstacleKind int

const (
	KindCactus ObstacleKind = iota // ground hazard
	KindBird                       // aerial hazard
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindCactus:
		return "cactus"
	case KindBird:
		return "bird"
	default:
		return "unknown"
	}
}

// Target is what obstacles collide with.
type Target interface {
	Box() core.Box
	Kill()
}

// Obstacle is a single scrolling hazard. Obstacles are pooled by the
// ObstacleManager: spawned ones move and collide, the rest wait for reuse.
type Obstacle struct {
	kind    ObstacleKind
	x, y    float64
	w, h    float64
	spawned bool
	speed   func() float64
	anim    *Animation
	target  Target
}

// NewObstacle creates a despawned obstacle. speed returns the current
// horizontal speed in px per ms. Panics on a nil speed, animation or target.
func NewObstacle(kind ObstacleKind, anim *Animation, target Target, speed func() float64) *Obstacle {
	if speed == nil {
		panic("runner: obstacle needs a speed supplier")
	}
	if anim == nil {
		panic("runner: obstacle needs an animation")
	}
	if target == nil {
		panic("runner: obstacle needs a collision target")
	}
	w, h := anim.Size()
	return &Obstacle{
		kind:   kind,
		w:      w,
		h:      h,
		speed:  speed,
		anim:   anim,
		target: target,
	}
}

// Start starts the animation.
func (o *Obstacle) Start() {
	o.anim.Start()
}

// Update moves a spawned obstacle left and kills the target on overlap.
func (o *Obstacle) Update(dt float64) {
	if !o.spawned {
		return
	}
	o.x -= o.speed() * dt
	if o.Box().Intersects(o.target.Box()) {
		o.target.Kill()
	}
}

// Draw renders a spawned obstacle.
func (o *Obstacle) Draw(dst core.Surface) {
	if !o.spawned {
		return
	}
	dst.DrawImage(o.anim.Frame(), o.x, o.y, o.w, o.h)
}

// Destroy stops the animation and takes the obstacle out of play.
func (o *Obstacle) Destroy() {
	o.anim.Stop()
	o.spawned = false
}

// Kind returns the obstacle's kind tag.
func (o *Obstacle) Kind() ObstacleKind {
	return o.kind
}

// Spawned reports whether the obstacle is in play.
func (o *Obstacle) Spawned() bool {
	return o.spawned
}

// Box returns the collision box.
func (o *Obstacle) Box() core.Box {
	return core.NewBox(o.x, o.y, o.w, o.h)
}

// Offscreen reports whether the obstacle has fully left the view on the left.
func (o *Obstacle) Offscreen() bool {
	return o.x+o.w < 0
}
