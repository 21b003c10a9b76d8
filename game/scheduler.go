package game

import (
	"slices"
	"time"
)

// Timer is a pending deferred callback. *time.Timer satisfies it.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was already stopped.
	Stop() bool
}

// Scheduler runs f once after d has elapsed. Implementations decide which
// goroutine runs f; the engine requires it to be the goroutine that owns
// the engine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ManualScheduler is a Scheduler driven by an explicit clock. Nothing runs
// until Advance is called, and callbacks run on the caller's goroutine.
// It serves frame-loop presenters and tests.
type ManualScheduler struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	seq     uint64
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers f to run once the clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.seq++
	t := &manualTimer{at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Now returns the time elapsed on the scheduler's clock.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Pending returns the number of callbacks that have neither run nor been
// stopped.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and runs every callback that became
// due, earliest deadline first and in registration order on ties. Callbacks
// scheduled while advancing run too if they fall inside the window.
// It returns the number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		next.f()
		ran++
	}
	s.now = target
	s.pending = slices.DeleteFunc(s.pending, func(t *manualTimer) bool {
		return t.stopped || t.fired
	})
	return ran
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.pending {
		if t.stopped || t.fired || t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}
