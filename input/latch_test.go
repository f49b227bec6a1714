package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
)

func newTestLatch() (*KeyLatch, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewKeyLatch(nil, clock, 500*time.Millisecond, 100*time.Millisecond), clock
}

func TestKeyLatchTapHoldsForInitialWindow(t *testing.T) {
	l, clock := newTestLatch()
	l.Press(ActionUp)

	clock.Advance(499 * time.Millisecond)
	if !l.Poll().Up {
		t.Error("tap released before the initial window")
	}
	clock.Advance(time.Millisecond)
	if l.Poll().Up {
		t.Error("tap still held after the initial window")
	}
}

func TestKeyLatchRepeatsExtendHold(t *testing.T) {
	l, clock := newTestLatch()
	l.Press(ActionLeft)

	// Autorepeat at 30ms after a 450ms delay
	clock.Advance(450 * time.Millisecond)
	for i := 0; i < 20; i++ {
		l.Press(ActionLeft)
		clock.Advance(30 * time.Millisecond)
		if !l.Poll().Left {
			t.Fatalf("hold dropped during autorepeat at step %d", i)
		}
	}

	// Key released: hold lapses within the repeat window
	clock.Advance(100 * time.Millisecond)
	if l.Poll().Left {
		t.Error("hold survived release")
	}
}

func TestKeyLatchOppositeDirectionsCancel(t *testing.T) {
	l, _ := newTestLatch()
	l.Press(ActionLeft)
	l.Press(ActionRight)

	got := l.Poll()
	if got.Left || !got.Right {
		t.Errorf("controls = %+v, want right only", got)
	}
}

func TestKeyLatchIgnoresCommands(t *testing.T) {
	l, _ := newTestLatch()
	l.Press(ActionPause)
	l.Press(ActionQuit)
	if got := l.Poll(); got != (component.Controls{}) {
		t.Errorf("commands latched controls: %+v", got)
	}
}

func TestKeyLatchRelease(t *testing.T) {
	l, _ := newTestLatch()
	l.Press(ActionUp)
	l.Press(ActionRight)
	l.Release()
	if got := l.Poll(); got != (component.Controls{}) {
		t.Errorf("controls after Release = %+v", got)
	}
}

func TestKeyTableResolve(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want Action
	}{
		{"arrow up", tcell.KeyUp, 0, 0, ActionUp},
		{"space climbs", tcell.KeyRune, ' ', 0, ActionUp},
		{"shifted rune", tcell.KeyRune, 'W', tcell.ModShift, ActionUp},
		{"tab toggles mode", tcell.KeyTab, 0, 0, ActionToggleMode},
		{"alt rune ignored", tcell.KeyRune, 'a', tcell.ModAlt, ActionNone},
		{"unbound", tcell.KeyRune, 'z', 0, ActionNone},
		{"escape quits", tcell.KeyEscape, 0, 0, ActionQuit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := kt.Resolve(tc.key, tc.r, tc.mod); got != tc.want {
				t.Errorf("Resolve = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestKeyTableBind(t *testing.T) {
	kt := DefaultKeyTable()
	err := kt.Bind(map[string][]string{
		"up":   {"k", "Up"},
		"none": {"q"},
	})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if kt.Resolve(tcell.KeyRune, 'k', 0) != ActionUp || kt.Resolve(tcell.KeyUp, 0, 0) != ActionUp {
		t.Error("new up bindings missing")
	}
	if kt.Resolve(tcell.KeyRune, 'w', 0) != ActionNone || kt.Resolve(tcell.KeyRune, ' ', 0) != ActionNone {
		t.Error("rebinding up should drop its default keys")
	}
	if kt.Resolve(tcell.KeyRune, 'q', 0) != ActionNone {
		t.Error("none should unbind q")
	}
	if kt.Resolve(tcell.KeyEscape, 0, 0) != ActionQuit {
		t.Error("unrelated bindings changed")
	}

	if err := kt.Bind(map[string][]string{"fly": {"f"}}); err == nil {
		t.Error("unknown action accepted")
	}
	if err := kt.Bind(map[string][]string{"up": {"shift+up"}}); err == nil {
		t.Error("invalid key accepted")
	}
}

func TestKeyTableCloneIsIndependent(t *testing.T) {
	base := DefaultKeyTable()
	clone := base.Clone()
	clone.Runes['w'] = ActionQuit
	if base.Runes['w'] != ActionUp {
		t.Error("Clone shares maps with the original")
	}
}
