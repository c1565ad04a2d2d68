package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagDuration    time.Duration
	flagLeadMs      float64
	flagNoAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Play one run on a simulated clock, as fast as possible, and print
the telemetry summary. An autopilot jumps over cacti unless disabled.

The same --seed, --config and --difficulty always give the same run.

Examples:
  runner sim --seed 42
  runner sim --seed 42 --duration 5m --difficulty hard
  runner sim --no-autopilot --debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Stop after this much simulated time")
	simCmd.Flags().Float64Var(&flagLeadMs, "lead", 150, "Autopilot reaction distance, in ms of floor travel")
	simCmd.Flags().BoolVar(&flagNoAutopilot, "no-autopilot", false, "Never jump")
}

var (
	simTitleStyle = lipgloss.NewStyle().Bold(true)
	simLabelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("241"))
)

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "runner-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	res := runner.Simulate(cfg, runner.HeadlessOptions{
		Seed:      seed,
		Limit:     flagDuration,
		Autopilot: !flagNoAutopilot,
		LeadMs:    flagLeadMs,
		Logger:    logger,
	})
	elapsed := time.Since(start)

	outcome := "survived"
	if res.Over {
		outcome = "died"
	}

	s := res.Summary
	rows := [][2]string{
		{"Seed", fmt.Sprintf("%d", seed)},
		{"Outcome", outcome},
		{"Score", fmt.Sprintf("%.0f ms", res.Score)},
		{"Ticks", fmt.Sprintf("%d", res.Ticks)},
		{"Steps", fmt.Sprintf("%d", s.Steps)},
		{"Jumps", fmt.Sprintf("%d", len(s.Jumps))},
		{"Obstacles", fmt.Sprintf("%d (%d cacti, %d birds)", s.ObstacleCount, s.Count(runner.KindCactus), s.Count(runner.KindBird))},
		{"Real time", elapsed.Round(time.Millisecond).String()},
	}

	fmt.Println(simTitleStyle.Render("Simulation"))
	for _, r := range rows {
		fmt.Println(simLabelStyle.Render(r[0]) + r[1])
	}
	return nil
}
