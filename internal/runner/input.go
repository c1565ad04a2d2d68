package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/clock"
)

// JumpSource delivers "jump requested" events.
type JumpSource interface {
	// Subscribe registers fn and returns a function removing exactly that subscription.
	Subscribe(fn func()) (unsubscribe func())
}

// JumpSignal is a JumpSource fed by the platform's key, mouse or touch handlers.
//
// Terminals report a held key as a stream of repeated presses. Presses
// arriving within the repeat window of the previous one are treated as
// auto-repeat and dropped, so one physical press yields one event.
type JumpSignal struct {
	clock    clock.Clock
	window   time.Duration
	last     time.Time
	pressed  bool
	handlers []jumpHandler
	nextID   int
}

type jumpHandler struct {
	id int
	fn func()
}

// NewJumpSignal creates a signal with the given auto-repeat window.
func NewJumpSignal(c clock.Clock, repeatWindow time.Duration) *JumpSignal {
	return &JumpSignal{clock: c, window: repeatWindow}
}

// Subscribe implements JumpSource.
func (s *JumpSignal) Subscribe(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, jumpHandler{id: id, fn: fn})
	return func() {
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Press raises the signal. Returns false if it was swallowed as auto-repeat.
func (s *JumpSignal) Press() bool {
	now := s.clock.Now()
	if s.pressed && now.Sub(s.last) < s.window {
		s.last = now
		return false
	}
	s.pressed = true
	s.last = now

	// Copy: a handler may unsubscribe while we iterate
	handlers := append([]jumpHandler(nil), s.handlers...)
	for _, h := range handlers {
		h.fn()
	}
	return true
}

// Subscribers returns the number of live subscriptions.
func (s *JumpSignal) Subscribers() int {
	return len(s.handlers)
}
