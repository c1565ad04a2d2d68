package clock

import (
	"sort"
	"time"
)

// Scheduler holds one-shot deferred callbacks keyed by due time.
// Callbacks run only from RunDue, on the caller's goroutine; a callback may
// arm new timers (including re-arming itself).
type Scheduler struct {
	clock   Clock
	pending []*Timer
	seq     uint64
}

// Timer is a handle to a pending callback.
type Timer struct {
	due   time.Time
	seq   uint64
	fn    func()
	owner *Scheduler
	done  bool
}

// NewScheduler creates a scheduler reading time from c.
func NewScheduler(c Clock) *Scheduler {
	if c == nil {
		panic("clock: nil clock")
	}
	return &Scheduler{clock: c}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// AfterFunc arms fn to run once, d after now.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		due:   s.clock.Now().Add(d),
		seq:   s.seq,
		fn:    fn,
		owner: s,
	}
	s.pending = append(s.pending, t)
	return t
}

// Stop cancels the timer. Returns false if it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.owner.remove(t)
	return true
}

// Due returns the time the timer fires at.
func (t *Timer) Due() time.Time {
	return t.due
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// RunDue fires every timer whose due time is not after now, earliest first.
// Timers armed by a callback with a due time already passed fire in the
// same call. Returns the number of callbacks run.
func (s *Scheduler) RunDue() int {
	fired := 0
	for {
		t := s.nextDue(s.clock.Now())
		if t == nil {
			return fired
		}
		t.done = true
		s.remove(t)
		t.fn()
		fired++
	}
}

// StopAll cancels every pending timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.pending {
		t.done = true
	}
	s.pending = s.pending[:0]
}

// nextDue returns the earliest timer due at or before now.
func (s *Scheduler) nextDue(now time.Time) *Timer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
	if s.pending[0].due.After(now) {
		return nil
	}
	return s.pending[0]
}

func (s *Scheduler) remove(t *Timer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
