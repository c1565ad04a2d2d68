// Package runner implements the side-scrolling runner: a character jumps over
// procedurally spawned obstacles until it hits one, and the survival time in
// milliseconds is the score.
//
// Everything here is driven by explicit calls (Session.Tick and
// Session.Render) from a single goroutine; the package starts no goroutines
// and takes no locks.
package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Entity is one participant of the simulation.
type Entity interface {
	// Start prepares the entity for a new session.
	Start()
	// Update advances the entity by dt milliseconds.
	Update(dt float64)
	// Draw renders the entity onto dst.
	Draw(dst core.Surface)
	// Destroy releases timers and input subscriptions.
	Destroy()
}
