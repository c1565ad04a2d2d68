package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Capture layout
const (
	captureHeaderRows = 2 // HUD line and a rule
	panelWidth        = 24
	panelHeight       = 5
)

// capture composes the HUD, the field and, after game over, a result panel
// into one plain cell buffer.
func (m Model) capture() *core.Screen {
	m.renderField()
	w, h := m.screen.Width(), m.screen.Height()
	shot := core.NewScreen(w, h+captureHeaderRows)

	score, best, level := m.hudParts()
	line := score + "  " + best
	if level != "" {
		line += "  " + level
	}
	shot.DrawTextColor(0, 0, line, core.ColorBrightYellow)
	shot.DrawHLine(0, 1, w, core.Cell{Rune: '─', Color: core.ColorGray})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			shot.SetCell(x, y+captureHeaderRows, m.screen.GetCell(x, y))
		}
	}

	if m.result.over {
		panel := core.NewRect((w-panelWidth)/2, captureHeaderRows+(h-panelHeight)/2, panelWidth, panelHeight)
		shot.DrawRect(panel, ' ')
		shot.DrawBox(panel)
		shot.DrawTextCentered(panel.Y+1, "GAME OVER")
		shot.DrawTextCentered(panel.Y+3, "SCORE "+formatMillis(m.result.score))
	}
	return shot
}

// saveScreenshot writes the capture to a text file and returns its path.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	shot := m.capture()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	lines := make([]string, shot.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(shot.Row(y), " ")
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
