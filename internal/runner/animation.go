package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Animation cycles through frames at a fixed rate based on elapsed wall time.
type Animation struct {
	frames  []core.Bitmap
	fps     float64
	width   float64
	height  float64
	clock   clock.Clock
	started time.Time
	running bool
}

// NewAnimation creates an animation. Panics if frames is empty or fps is not positive.
func NewAnimation(c clock.Clock, frames []core.Bitmap, fps, width, height float64) *Animation {
	if len(frames) == 0 {
		panic("runner: animation needs at least one frame")
	}
	if fps <= 0 {
		panic("runner: animation fps must be positive")
	}
	if c == nil {
		panic("runner: animation needs a clock")
	}
	return &Animation{
		frames: frames,
		fps:    fps,
		width:  width,
		height: height,
		clock:  c,
	}
}

// Start resets the elapsed-time baseline to now.
func (a *Animation) Start() {
	a.started = a.clock.Now()
	a.running = true
}

// Stop parks the animation on its first frame until the next Start.
func (a *Animation) Stop() {
	a.running = false
}

// CurrentFrame returns floor(elapsedSeconds * fps) mod len(frames).
func (a *Animation) CurrentFrame() int {
	if !a.running {
		return 0
	}
	elapsed := a.clock.Now().Sub(a.started).Seconds()
	if elapsed < 0 {
		return 0
	}
	return int(math.Floor(elapsed*a.fps)) % len(a.frames)
}

// Frame returns the bitmap due now.
func (a *Animation) Frame() core.Bitmap {
	return a.frames[a.CurrentFrame()]
}

// Size returns the display size in world pixels.
func (a *Animation) Size() (w, h float64) {
	return a.width, a.height
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}
