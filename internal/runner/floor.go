package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Floor is the ground line. Its Speed is the global scroll speed, read by
// obstacles and clouds every tick.
type Floor struct {
	Y      float64 // Ground line, world pixels from the top
	Speed  float64 // Scroll speed, px per ms
	viewW  float64
	offset float64 // Scrolled distance, for the ground texture
}

// NewFloor creates the ground for a world viewW pixels wide.
func NewFloor(cfg config.FloorConfig, viewW float64) *Floor {
	return &Floor{
		Y:     cfg.Y,
		Speed: cfg.Speed,
		viewW: viewW,
	}
}

// Start resets the texture scroll.
func (f *Floor) Start() {
	f.offset = 0
}

// Update scrolls the ground texture.
func (f *Floor) Update(dt float64) {
	f.offset = math.Mod(f.offset+f.Speed*dt, groundTile)
}

// Draw tiles the ground texture across the view.
func (f *Floor) Draw(dst core.Surface) {
	for x := -f.offset; x < f.viewW; x += groundTile {
		dst.DrawImage(spriteGround, x, f.Y, groundTile, groundHeight)
	}
}

// Destroy does nothing; the floor holds no resources.
func (f *Floor) Destroy() {}
