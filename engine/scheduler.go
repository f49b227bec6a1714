package engine

import "time"

// TimerID identifies a periodic timer, never reused within a Scheduler
type TimerID uint64

type timer struct {
	id      TimerID
	period  time.Duration
	due     time.Duration
	fn      func()
	stopped bool
}

// Scheduler owns virtual time for one session
// Timers fire between frames in due order; ties fire in creation order
// Not safe for concurrent use; the host drives Step from a single goroutine
type Scheduler struct {
	now    time.Duration
	ticks  uint64
	nextID TimerID
	timers []*timer
	frame  func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now returns elapsed virtual time
func (s *Scheduler) Now() time.Duration { return s.now }

// Millis returns elapsed virtual time in milliseconds
func (s *Scheduler) Millis() float64 {
	return float64(s.now) / float64(time.Millisecond)
}

// TickIndex returns the number of frame callbacks run so far
func (s *Scheduler) TickIndex() uint64 { return s.ticks }

// Every registers fn to run each period, first at Now()+period
// Non-positive periods are rejected with a zero ID
func (s *Scheduler) Every(period time.Duration, fn func()) TimerID {
	if period <= 0 || fn == nil {
		return 0
	}
	id := s.nextID
	s.nextID++
	s.timers = append(s.timers, &timer{id: id, period: period, due: s.now + period, fn: fn})
	return id
}

// Cancel stops a timer; safe to call from inside any timer or frame callback
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			t.stopped = true
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll stops every timer
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.stopped = true
	}
	s.timers = s.timers[:0]
}

// Timers returns the number of active timers
func (s *Scheduler) Timers() int { return len(s.timers) }

// RequestFrame sets the callback for the next Step, replacing any pending one
func (s *Scheduler) RequestFrame(fn func()) {
	s.frame = fn
}

// FramePending reports whether a frame callback is queued
func (s *Scheduler) FramePending() bool { return s.frame != nil }

// Step advances virtual time by dt, fires due timers, then runs the pending frame once
func (s *Scheduler) Step(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}

	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		t.due += t.period
		t.fn()
	}

	if fn := s.frame; fn != nil {
		s.frame = nil
		s.ticks++
		fn()
	}
}

// Idle reports no pending frame and no timers; a host may stop driving Step
func (s *Scheduler) Idle() bool {
	return s.frame == nil && len(s.timers) == 0
}

// nextDue returns the earliest timer due at or before now
func (s *Scheduler) nextDue() *timer {
	var best *timer
	for _, t := range s.timers {
		if t.stopped || t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
