package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Jump
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Spawns tighten half as fast
  normal - Default curve
  hard   - Start as if 100s had already been played
  fixed  - No progression

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --log ./runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal: log to --log or nowhere
	logger, closeLog, err := newLogger(io.Discard, "runner")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Simulation.TickRate,
		RenderFPS: flagFPS,
		Seed:      flagSeed,
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
