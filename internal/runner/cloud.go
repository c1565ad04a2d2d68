package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Cloud is background decoration drifting slower than the floor.
type Cloud struct {
	x, y   float64
	startX float64
	factor float64
	floor  *Floor
	viewW  float64
}

// NewCloud creates a cloud that drifts at cfg.Speed times the floor speed.
func NewCloud(cfg config.CloudConfig, floor *Floor, viewW float64) *Cloud {
	return &Cloud{
		x:      cfg.X,
		y:      cfg.Y,
		startX: cfg.X,
		factor: cfg.Speed,
		floor:  floor,
		viewW:  viewW,
	}
}

// Start puts the cloud back at its initial position.
func (c *Cloud) Start() {
	c.x = c.startX
}

// Update drifts left and wraps around to the right edge.
func (c *Cloud) Update(dt float64) {
	c.x -= c.floor.Speed * c.factor * dt
	if c.x+cloudWidth < 0 {
		c.x = c.viewW
	}
}

// Draw renders the cloud.
func (c *Cloud) Draw(dst core.Surface) {
	dst.DrawImage(spriteCloud, c.x, c.y, cloudWidth, cloudHeight)
}

// Destroy does nothing; clouds hold no resources.
func (c *Cloud) Destroy() {}
