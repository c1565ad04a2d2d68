package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Screen layout
const (
	hudRows    = 1 // score line above the field
	footerRows = 1 // help line below the field
	minWidth   = 40
	minHeight  = 8
)

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	levelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			MarginBottom(1)
)

// outcome is written by the session's game-over callback.
// Held by pointer so copies of the Model share it.
type outcome struct {
	score float64
	best  float64
	over  bool
}

// Model is the Bubble Tea model running one runner session.
type Model struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	session  *runner.Session
	signal   *runner.JumpSignal
	screen   *core.Screen
	viewport *core.Viewport
	keys     *KeyMapper
	help     help.Model
	results  table.Model
	result   *outcome

	gen           int // bumped on every (re)start; stale ticks are dropped
	status        string
	screenshotDir string
	quitting      bool
}

// NewModel creates a runner model. A nil clock means wall time; a nil logger discards.
func NewModel(cfg config.RunnerConfig, rt core.RuntimeConfig, c clock.Clock, logger *log.Logger) Model {
	if c == nil {
		c = clock.System()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Simulation.TickRate
	}

	m := Model{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		signal:  runner.NewJumpSignal(c, clock.FromMillis(cfg.Input.RepeatWindowMs)),
		screen:  core.NewScreen(fieldSize(rt.ScreenW, rt.ScreenH)),
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    help.New(),
		results: newResultsTable(),
		result:  &outcome{},
	}
	m.viewport = core.NewViewport(m.screen, cfg.World.ViewWidth, cfg.World.Height)
	m.help.Width = rt.ScreenW

	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".arcade", "screenshots")
	}

	result := m.result
	m.session = runner.NewSession(runner.Options{
		Config: cfg,
		Input:  m.signal,
		Clock:  c,
		Seed:   rt.Seed,
		Logger: logger,
		OnGameOver: func(score float64) {
			result.score = score
			result.best = max(result.best, score)
			result.over = true
		},
	})
	return m
}

// fieldSize returns the play field size for a terminal of w x h cells.
func fieldSize(w, h int) (int, int) {
	return max(w, 1), max(h-hudRows-footerRows, 1)
}

// Init starts the first run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd(m.runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.session.Destroy()
		return m, tea.Quit

	case core.ActionJump:
		m.signal.Press()

	case core.ActionRestart:
		return m.restart()

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world keeps its size; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(fieldSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and re-arms the tick while the run lasts.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.session.Active() {
		return m, nil
	}

	m.session.Tick()

	if m.session.State() == runner.SessionEnded {
		m.results.SetRows(summaryRows(m.session.Summary(), m.result.best))
		m.keys.SetRestartEnabled(true)
		return m, nil
	}

	return m, tickCmd(m.runtime.TickRate, m.gen)
}

// restart begins a new run after game over.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.session.State() != runner.SessionEnded {
		return m, nil
	}
	m.gen++
	m.result.over = false
	m.status = ""
	m.keys.SetRestartEnabled(false)
	m.session.Start()
	return m, tickCmd(m.runtime.TickRate, m.gen)
}

// renderField draws the session into the cell buffer.
func (m Model) renderField() {
	m.screen.Clear()
	m.session.Render(m.viewport)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.runtime.ScreenW > 0 && (m.runtime.ScreenW < minWidth || m.runtime.ScreenH < minHeight) {
		return fmt.Sprintf("Terminal too small: need %dx%d", minWidth, minHeight)
	}

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")

	if m.result.over {
		b.WriteString(m.gameOverView())
	} else {
		m.renderField()
		b.WriteString(RenderScreen(m.screen))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// hud renders the score line.
func (m Model) hud() string {
	score, best, level := m.hudParts()

	line := hudStyle.Render(score) + "  " + hudStyle.Render(best)
	if level != "" {
		line += "  " + levelStyle.Render(level)
	}
	if m.status != "" {
		line += "  " + statusStyle.Render(m.status)
	}
	return line
}

// hudParts returns the unstyled HUD entries. level is empty when the
// difficulty curve is off.
func (m Model) hudParts() (score, best, level string) {
	score = fmt.Sprintf("TIME %s", formatMillis(m.session.GameTime()))
	best = fmt.Sprintf("HI %s", formatMillis(m.result.best))
	if d := m.session.Difficulty(); d != nil && d.IsEnabled() {
		level = fmt.Sprintf("LEVEL %3.0f%%", d.Level(m.session.GameTime())*100)
	}
	return score, best, level
}

// gameOverView renders the telemetry panel in place of the field.
func (m Model) gameOverView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		m.results.View(),
	)
	_, h := fieldSize(m.runtime.ScreenW, m.runtime.ScreenH)
	return lipgloss.Place(m.runtime.ScreenW, h, lipgloss.Center, lipgloss.Center, panelStyle.Render(body))
}

// Score returns the score of the last finished run.
func (m Model) Score() float64 {
	return m.result.score
}

// Session returns the running session.
func (m Model) Session() *runner.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new runner model.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithFPS(renderFPS(cfg, rt)),
	)

	_, err := p.Run()
	return err
}

// renderFPS picks the renderer rate: the CLI override if set, else the config.
func renderFPS(cfg config.RunnerConfig, rt core.RuntimeConfig) int {
	if rt.RenderFPS > 0 {
		return rt.RenderFPS
	}
	return cfg.Simulation.RenderFPS
}
