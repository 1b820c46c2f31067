package tetromino

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable one-shot callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback has
	// already fired or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

// AfterFunc implements Scheduler using time.AfterFunc.
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler is a Scheduler driven by Advance instead of a clock.
// Callbacks run on the goroutine that calls Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq uint64
	f   func()
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of scheduled callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Next returns the delay until the earliest pending callback.
func (s *ManualScheduler) Next() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.earliest()
	if t == nil {
		return 0, false
	}
	return t.at - s.now, true
}

// Advance moves virtual time forward by d, firing every callback that
// becomes due in order. Callbacks scheduled while advancing also fire if
// they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		t := s.earliest()
		if t == nil || t.at > target {
			break
		}
		s.remove(t)
		s.now = t.at
		s.mu.Unlock()
		t.f()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// RunNext advances exactly to the earliest callback and fires it.
// It returns false when nothing is pending.
func (s *ManualScheduler) RunNext() bool {
	d, ok := s.Next()
	if !ok {
		return false
	}
	s.Advance(d)
	return true
}

func (s *ManualScheduler) earliest() *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at == s.pending[j].at {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].at < s.pending[j].at
	})
	return s.pending[0]
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
