package runner

import (
	"time"

	"github.com/charmbracelet/log"
)

// JumpEvent records one successful jump.
type JumpEvent struct {
	Time float64 // ms since session start
	X, Y float64 // player position at take-off
}

// SpawnEvent records one obstacle spawn.
type SpawnEvent struct {
	ID   int // sequential, starting at 1
	Kind ObstacleKind
	Time float64 // ms since session start
	X, Y float64
}

// Summary is the telemetry collected over one session.
// It is pulled once at game over; nothing is streamed.
type Summary struct {
	Steps         int
	Jumps         []JumpEvent
	ObstacleCount int
	Spawns        []SpawnEvent
	GameTime      float64       // simulated ms, the score
	Duration      time.Duration // wall time since Start
}

// Count returns how many spawns were of the given kind.
func (s Summary) Count(kind ObstacleKind) int {
	n := 0
	for _, e := range s.Spawns {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Log writes the summary: totals at info level, individual events at debug.
func (s Summary) Log(logger *log.Logger) {
	logger.Info("game over",
		"score_ms", int64(s.GameTime),
		"duration", s.Duration.Round(time.Millisecond),
		"steps", s.Steps,
		"jumps", len(s.Jumps),
		"obstacles", s.ObstacleCount,
		"cacti", s.Count(KindCactus),
		"birds", s.Count(KindBird),
	)
	for i, j := range s.Jumps {
		logger.Debug("jump", "n", i+1, "time_ms", int64(j.Time), "x", j.X, "y", j.Y)
	}
	for _, e := range s.Spawns {
		logger.Debug("spawn", "id", e.ID, "kind", e.Kind, "time_ms", int64(e.Time), "x", e.X, "y", e.Y)
	}
}
