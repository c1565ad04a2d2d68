// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner sim               - Run a headless simulation and print its telemetry
//	runner serve             - Start SSH server for remote play
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Renderer frame rate (default: from config)
//	--seed <value>         - Set RNG seed for reproducible obstacle sequences
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log <path>           - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over cacti in your terminal",
	Long: `Runner is an endless side-scroller: a runner keeps moving right and
must jump over cacti while birds swoop past. The score is how long you survive.

Available commands:
  play     - Play in this terminal
  sim      - Headless simulation with an autopilot
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  runner play
  runner play --difficulty hard
  runner sim --seed 42 --duration 2m
  runner serve --ssh :2222
  runner config > ~/.arcade/configs/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Renderer frame rate (0 = simulation.render_fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log individual spawns and jumps")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and difficulty preset from the global flags.
func loadConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		return config.RunnerConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger writes to --log if given, otherwise to fallback.
// The returned close function is always safe to call.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
