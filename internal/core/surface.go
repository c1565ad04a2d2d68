package core

import "math"

// Bitmap is a small piece of character art drawn as one image.
// Spaces are transparent.
type Bitmap struct {
	Rows  []string
	Color Color
}

// Size returns the natural size of the bitmap in cells.
func (b Bitmap) Size() (w, h int) {
	for _, row := range b.Rows {
		w = Max(w, len([]rune(row)))
	}
	return w, len(b.Rows)
}

// At returns the rune at column x, row y of the bitmap art.
func (b Bitmap) At(x, y int) rune {
	if y < 0 || y >= len(b.Rows) {
		return ' '
	}
	row := []rune(b.Rows[y])
	if x < 0 || x >= len(row) {
		return ' '
	}
	return row[x]
}

// Surface is the render target the engine draws into.
// Coordinates are world pixels; the implementation decides how they map to output.
type Surface interface {
	// DrawImage draws bmp stretched over the box (x, y, w, h).
	DrawImage(bmp Bitmap, x, y, w, h float64)
	// Clear blanks a region of the surface.
	Clear(region Box)
}

// Viewport maps a world of ViewW x ViewH pixels onto a Screen.
// The world origin is the top-left screen cell.
type Viewport struct {
	screen *Screen
	viewW  float64
	viewH  float64
}

// NewViewport creates a viewport showing viewW x viewH world pixels on s.
func NewViewport(s *Screen, viewW, viewH float64) *Viewport {
	return &Viewport{screen: s, viewW: viewW, viewH: viewH}
}

// Screen returns the underlying cell buffer.
func (v *Viewport) Screen() *Screen {
	return v.screen
}

// Bounds returns the visible world region.
func (v *Viewport) Bounds() Box {
	return NewBox(0, 0, v.viewW, v.viewH)
}

func (v *Viewport) scaleX() float64 { return float64(v.screen.Width()) / v.viewW }
func (v *Viewport) scaleY() float64 { return float64(v.screen.Height()) / v.viewH }

// CellRect converts a world box to the screen cells it covers.
// Every non-empty box covers at least one cell.
func (v *Viewport) CellRect(b Box) Rect {
	sx, sy := v.scaleX(), v.scaleY()
	x0 := int(math.Round(b.X * sx))
	y0 := int(math.Round(b.Y * sy))
	x1 := int(math.Round(b.Right() * sx))
	y1 := int(math.Round(b.Bottom() * sy))
	if b.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if b.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// WorldY converts a world y coordinate to a screen row.
func (v *Viewport) WorldY(y float64) int {
	return int(math.Round(y * v.scaleY()))
}

// DrawImage blits bmp onto the cells covered by the box, sampling the art
// with nearest-neighbor scaling.
func (v *Viewport) DrawImage(bmp Bitmap, x, y, w, h float64) {
	dst := v.CellRect(NewBox(x, y, w, h))
	if dst.Empty() {
		return
	}
	bw, bh := bmp.Size()
	if bw == 0 || bh == 0 {
		return
	}
	for cy := 0; cy < dst.H; cy++ {
		sy := cy * bh / dst.H
		for cx := 0; cx < dst.W; cx++ {
			sx := cx * bw / dst.W
			r := bmp.At(sx, sy)
			if r == ' ' {
				continue
			}
			v.screen.SetCell(dst.X+cx, dst.Y+cy, Cell{Rune: r, Color: bmp.Color})
		}
	}
}

// Clear blanks the cells covered by region.
func (v *Viewport) Clear(region Box) {
	v.screen.ClearRect(v.CellRect(region))
}
