package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Results table layout
const (
	statColumnWidth  = 14
	valueColumnWidth = 12
)

// newResultsTable creates the game-over telemetry table.
func newResultsTable() table.Model {
	columns := []table.Column{
		{Title: "Stat", Width: statColumnWidth},
		{Title: "Value", Width: valueColumnWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(len(summaryRows(runner.Summary{}, 0))+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// summaryRows lays out the telemetry of one run.
func summaryRows(s runner.Summary, best float64) []table.Row {
	return []table.Row{
		{"Score", formatMillis(s.GameTime)},
		{"Best", formatMillis(best)},
		{"Wall time", s.Duration.Round(10 * time.Millisecond).String()},
		{"Steps", fmt.Sprintf("%d", s.Steps)},
		{"Jumps", fmt.Sprintf("%d", len(s.Jumps))},
		{"Obstacles", fmt.Sprintf("%d", s.ObstacleCount)},
		{"  cacti", fmt.Sprintf("%d", s.Count(runner.KindCactus))},
		{"  birds", fmt.Sprintf("%d", s.Count(runner.KindBird))},
	}
}

// formatMillis renders a score in seconds with two decimals.
func formatMillis(ms float64) string {
	return fmt.Sprintf("%.2fs", ms/1000)
}
