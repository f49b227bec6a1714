package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/paperflight/component"
)

// Terminal autorepeat timing; the first repeat arrives after the OS delay, the rest at the repeat rate
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// Clock is the time source for hold windows
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// KeyLatch turns key presses into held controls
// Terminals report presses and autorepeats but never releases, so a control
// stays held until no press has been seen for the hold window
type KeyLatch struct {
	mu      sync.Mutex
	table   *KeyTable
	clock   Clock
	initial time.Duration
	repeat  time.Duration

	until [ActionRight + 1]time.Time
}

// NewKeyLatch creates a latch; zero durations select defaults and a nil clock uses wall time
func NewKeyLatch(table *KeyTable, clock Clock, initial, repeat time.Duration) *KeyLatch {
	if table == nil {
		table = DefaultKeyTable()
	}
	if clock == nil {
		clock = wallClock{}
	}
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	if repeat > initial {
		initial = repeat
	}
	return &KeyLatch{table: table, clock: clock, initial: initial, repeat: repeat}
}

// HandleKey resolves a terminal key event, latching held controls
// Returns the resolved action so the caller can dispatch commands
func (l *KeyLatch) HandleKey(ev *tcell.EventKey) Action {
	a := l.table.Resolve(ev.Key(), ev.Rune(), ev.Modifiers())
	l.Press(a)
	return a
}

// Press latches a held action; commands are ignored
func (l *KeyLatch) Press(a Action) {
	if !a.Held() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	hold := l.repeat
	if !now.Before(l.until[a]) {
		// Fresh press: cover the autorepeat delay
		hold = l.initial
	}
	if next := now.Add(hold); next.After(l.until[a]) {
		l.until[a] = next
	}

	// Opposite directions cancel so a quick reversal is not blocked by the old latch
	switch a {
	case ActionLeft:
		l.until[ActionRight] = time.Time{}
	case ActionRight:
		l.until[ActionLeft] = time.Time{}
	}
}

// Release drops every latched control
func (l *KeyLatch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.until = [ActionRight + 1]time.Time{}
}

// Poll reports the controls held at this instant
func (l *KeyLatch) Poll() component.Controls {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	return component.Controls{
		Up:    now.Before(l.until[ActionUp]),
		Left:  now.Before(l.until[ActionLeft]),
		Right: now.Before(l.until[ActionRight]),
	}
}
