package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ClockScheduler drives a Scheduler in real time on a fixed tick
// Commands posted from other goroutines run on the loop goroutine between steps
type ClockScheduler struct {
	sched    *Scheduler
	clock    TimeProvider
	interval time.Duration

	paused    atomic.Bool
	running   atomic.Bool
	tickCount atomic.Uint64

	commands chan func()
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewClockScheduler creates a host for sched ticking every interval
func NewClockScheduler(sched *Scheduler, clock TimeProvider, interval time.Duration) *ClockScheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{
		sched:    sched,
		clock:    clock,
		interval: interval,
		commands: make(chan func(), 16),
		stopChan: make(chan struct{}),
	}
}

// Run steps the scheduler until it goes idle, ctx is cancelled, or Stop is called
// Returns ctx.Err() on cancellation, nil otherwise
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return nil
	}
	defer cs.running.Store(false)

	// Go 1.23 timer semantics: Stop and Reset never leave a stale value in C
	timer := time.NewTimer(cs.interval)
	timer.Stop()
	defer timer.Stop()

	deadline := cs.clock.Now().Add(cs.interval)
	wasPaused := false

	for {
		// Drain posted commands first so input never waits behind a tick
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-cs.stopChan:
			return nil
		case fn := <-cs.commands:
			fn()
			continue
		default:
		}

		if cs.sched.Idle() {
			return nil
		}

		var sleep time.Duration
		now := cs.clock.Now()

		switch {
		case cs.paused.Load():
			wasPaused = true
			sleep = cs.interval * 2

		case wasPaused:
			// Resume without a burst of catch-up ticks
			wasPaused = false
			deadline = now.Add(cs.interval)
			sleep = cs.interval

		case !now.Before(deadline):
			cs.sched.Step(cs.interval)
			cs.tickCount.Add(1)

			deadline = deadline.Add(cs.interval)
			if now.Sub(deadline) > cs.interval*2 {
				deadline = now.Add(cs.interval)
			}
			sleep = deadline.Sub(cs.clock.Now())

		default:
			sleep = deadline.Sub(now)
		}

		if sleep <= 0 {
			continue
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case fn := <-cs.commands:
			timer.Stop()
			fn()
		case <-ctx.Done():
			return ctx.Err()
		case <-cs.stopChan:
			return nil
		}
	}
}

// Post queues fn to run on the loop goroutine
// Returns false if the scheduler was stopped or the queue is full
func (cs *ClockScheduler) Post(fn func()) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}
	select {
	case cs.commands <- fn:
		return true
	default:
		return false
	}
}

// Pause freezes virtual time; spawn timers pause with it
func (cs *ClockScheduler) Pause() { cs.paused.Store(true) }

// Resume restarts ticking from the current wall time
func (cs *ClockScheduler) Resume() { cs.paused.Store(false) }

// TogglePause flips the pause flag and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.paused.Load()
		if cs.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (cs *ClockScheduler) Paused() bool { return cs.paused.Load() }

// TickCount returns the number of steps taken
func (cs *ClockScheduler) TickCount() uint64 { return cs.tickCount.Load() }

// Stop ends Run; safe to call more than once and before Run
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}
