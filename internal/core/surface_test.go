package core

import "testing"

func TestBitmapSize(t *testing.T) {
	b := Bitmap{Rows: []string{"ab", "▄██▄", "c"}}
	w, h := b.Size()
	if w != 4 || h != 3 {
		t.Errorf("Size() = (%d, %d), expected (4, 3)", w, h)
	}
	if b.At(1, 1) != '█' {
		t.Errorf("At(1, 1) = %q, expected '█'", b.At(1, 1))
	}
	if b.At(3, 0) != ' ' {
		t.Errorf("At past row end = %q, expected space", b.At(3, 0))
	}
}

func TestViewportCellRect(t *testing.T) {
	// 100x50 world on a 20x10 screen: 5 px per cell both ways
	v := NewViewport(NewScreen(20, 10), 100, 50)

	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{"aligned", NewBox(10, 5, 20, 10), NewRect(2, 1, 4, 2)},
		{"rounded", NewBox(12, 7, 18, 9), NewRect(2, 1, 4, 2)},
		{"tiny box covers a cell", NewBox(50, 25, 1, 1), NewRect(10, 5, 1, 1)},
		{"empty box", NewBox(50, 25, 0, 0), NewRect(10, 5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := v.CellRect(tc.box)
			if got != tc.expected {
				t.Errorf("CellRect(%+v) = %+v, expected %+v", tc.box, got, tc.expected)
			}
		})
	}
}

func TestViewportDrawImage(t *testing.T) {
	s := NewScreen(20, 10)
	v := NewViewport(s, 100, 50)

	bmp := Bitmap{Rows: []string{"A B", "CDE"}, Color: ColorGreen}
	// 3x2 art stretched over 6x2 cells
	v.DrawImage(bmp, 0, 0, 30, 10)

	expected := []string{"AA  BB", "CCDDEE"}
	for y, row := range expected {
		for x, r := range row {
			got := s.GetCell(x, y)
			if got.Rune != r {
				t.Errorf("cell (%d, %d) = %q, expected %q", x, y, got.Rune, r)
			}
			if r != ' ' && got.Color != ColorGreen {
				t.Errorf("cell (%d, %d) color = %d, expected green", x, y, got.Color)
			}
		}
	}
}

func TestViewportTransparency(t *testing.T) {
	s := NewScreen(4, 1)
	v := NewViewport(s, 4, 1)

	s.DrawText(0, 0, "....")
	v.DrawImage(Bitmap{Rows: []string{"X  X"}}, 0, 0, 4, 1)

	if got := s.Row(0); got != "X..X" {
		t.Errorf("Row(0) = %q, expected %q", got, "X..X")
	}
}

func TestViewportClear(t *testing.T) {
	s := NewScreen(20, 10)
	v := NewViewport(s, 100, 50)
	s.DrawRect(s.Bounds(), '#')

	v.Clear(v.Bounds())

	blank := NewScreen(20, 10)
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != blank.Row(y) {
			t.Errorf("row %d = %q after Clear(Bounds()), expected blanks", y, s.Row(y))
		}
	}
}
