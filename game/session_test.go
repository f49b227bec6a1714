package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/status"
)

type result struct {
	score    int
	complete bool
}

type recordingUi struct {
	stats   int
	labels  []string
	results []result
	visible []bool
}

func (u *recordingUi) UpdateStats(engine.Stats)    { u.stats++ }
func (u *recordingUi) SetModeLabel(label string)   { u.labels = append(u.labels, label) }
func (u *recordingUi) SetResultVisible(v bool)     { u.visible = append(u.visible, v) }
func (u *recordingUi) ShowResult(s int, done bool) { u.results = append(u.results, result{s, done}) }

type countingRenderer struct{ frames int }

func (r *countingRenderer) Render(*engine.Frame) { r.frames++ }

type holdUp struct{}

func (holdUp) Poll() component.Controls { return component.Controls{Up: true} }

func newTestSession(mode engine.GameMode) (*Session, *recordingUi, *countingRenderer) {
	ui := &recordingUi{}
	r := &countingRenderer{}
	s := NewSession(Options{Seed: 42, Mode: mode, Renderer: r, Input: holdUp{}, Ui: ui})
	return s, ui, r
}

func TestSessionChallengeCompletesAfterTenRings(t *testing.T) {
	s, ui, _ := newTestSession(engine.ModeChallenge)
	w := s.World
	w.Buildings.Clear()

	for i := 0; i < parameter.ChallengeGoal; i++ {
		if s.Over() {
			t.Fatalf("ended after %d rings", i)
		}
		w.Rings.Add(component.Ring{Position: w.Player.Position})
		if n := s.RunTicks(1); n != 1 {
			t.Fatalf("tick %d did not run", i)
		}
		if w.Player.BoostTimer != parameter.BoostTicks {
			t.Fatalf("ring %d not collected, boost=%d", i, w.Player.BoostTimer)
		}
	}

	if !s.Over() || w.State.Reason() != engine.ReasonChallengeComplete {
		t.Fatalf("over=%v reason=%s", s.Over(), w.State.Reason())
	}
	if len(ui.results) != 1 || !ui.results[0].complete {
		t.Fatalf("results = %+v, want one completed result", ui.results)
	}
	if got := ui.results[0].score; got < 500 || got > 501 {
		t.Errorf("final score = %d, want 500..501", got)
	}
	if got := w.Status.Ints.Get(status.KeyRingsCollected).Load(); got != int64(parameter.ChallengeGoal) {
		t.Errorf("rings collected metric = %d", got)
	}
}

func TestSessionCollisionIsTerminal(t *testing.T) {
	s, ui, r := newTestSession(engine.ModeEndless)
	w := s.World
	w.Buildings.Clear()
	w.Buildings.Add(component.Building{Position: mgl64.Vec3{0, 5, -0.5}, Width: 4, Height: 12, Depth: 4})

	if n := s.RunTicks(1); n != 1 {
		t.Fatalf("ran %d ticks", n)
	}
	if !s.Over() || w.State.Reason() != engine.ReasonCollision {
		t.Fatalf("over=%v reason=%s", s.Over(), w.State.Reason())
	}

	frozen := w.Player
	score := w.State.Score()
	if n := s.RunTicks(600); n != 0 {
		t.Errorf("ran %d ticks after GameOver", n)
	}
	w.Scheduler.Step(parameter.BirdSpawnInterval)

	if w.Player != frozen || w.State.Score() != score {
		t.Error("world changed after GameOver")
	}
	if r.frames != 1 {
		t.Errorf("frames = %d, want 1", r.frames)
	}
	if w.Rings.Len() != 0 || w.Birds.Len() != 0 {
		t.Error("spawns after GameOver")
	}
	if !w.Scheduler.Idle() || w.Scheduler.Timers() != 0 {
		t.Errorf("timers survived GameOver: %d", w.Scheduler.Timers())
	}
	if len(ui.results) != 1 || ui.results[0].complete {
		t.Errorf("results = %+v", ui.results)
	}
}

func TestSessionSpawnTiming(t *testing.T) {
	s, _, _ := newTestSession(engine.ModeEndless)
	w := s.World
	w.Buildings.Clear()

	// 5s lands just after tick 300 at 60Hz
	s.RunTicks(300)
	if w.Rings.Len() != 0 {
		t.Fatalf("ring spawned early: %d", w.Rings.Len())
	}
	s.RunTicks(1)
	if w.Rings.Len() != 1 {
		t.Fatalf("rings = %d at tick 301, want 1", w.Rings.Len())
	}
	w.Rings.Each(func(_ component.EntityID, r *component.Ring) {
		z := parameter.SpawnZ + parameter.RingScrollSpeed
		if r.Position.Z() < z-1e-9 || r.Position.Z() > z+1e-9 {
			t.Errorf("ring z = %v, want spawn z scrolled once", r.Position.Z())
		}
	})

	s.RunTicks(119)
	if w.Birds.Len() != 0 {
		t.Fatalf("bird spawned early")
	}
	s.RunTicks(1)
	if w.Birds.Len() != 1 {
		t.Errorf("birds = %d at tick 421, want 1", w.Birds.Len())
	}
}

func TestSessionDeterministicFromSeed(t *testing.T) {
	a, _, _ := newTestSession(engine.ModeEndless)
	b, _, _ := newTestSession(engine.ModeEndless)

	a.RunTicks(240)
	b.RunTicks(240)

	if a.World.Player != b.World.Player {
		t.Errorf("players diverged: %+v vs %+v", a.World.Player, b.World.Player)
	}
	if a.World.State.Score() != b.World.State.Score() {
		t.Errorf("scores diverged: %v vs %v", a.World.State.Score(), b.World.State.Score())
	}
}

func TestSessionEnvelopeHolds(t *testing.T) {
	s, _, _ := newTestSession(engine.ModeEndless)
	s.World.Buildings.Clear()

	for i := 0; i < 1200 && !s.Over(); i++ {
		s.RunTicks(1)
		p := s.World.Player
		if p.Position.Y() < parameter.BoundMinY || p.Position.Y() > parameter.BoundMaxY ||
			p.Position.X() < parameter.BoundMinX || p.Position.X() > parameter.BoundMaxX {
			t.Fatalf("tick %d: player left the envelope at %v", i, p.Position)
		}
		if p.BoostTimer < 0 {
			t.Fatalf("tick %d: boost timer negative", i)
		}
	}
}

func TestSessionToggleMode(t *testing.T) {
	s, ui, _ := newTestSession(engine.ModeEndless)
	var modes []bool
	s.Loop.Router().Register(event.HandlerFunc{
		Types: []event.EventType{event.EventModeChanged},
		Fn: func(ev event.GameEvent) {
			modes = append(modes, ev.Payload.(*event.ModePayload).Challenge)
		},
	})

	s.Loop.ToggleMode()
	s.Loop.ToggleMode()

	if len(modes) != 2 || !modes[0] || modes[1] {
		t.Errorf("mode events = %v, want [true false]", modes)
	}
	want := []string{parameter.LabelSwitchToChallenge, parameter.LabelSwitchToEndless, parameter.LabelSwitchToChallenge}
	if len(ui.labels) != len(want) {
		t.Fatalf("labels = %v", ui.labels)
	}
	for i := range want {
		if ui.labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, ui.labels[i], want[i])
		}
	}
}

func TestSessionsShareStatus(t *testing.T) {
	reg := status.NewRegistry()
	first := NewSession(Options{Seed: 1, Status: reg})
	first.World.Buildings.Clear()
	first.World.Buildings.Add(component.Building{Position: mgl64.Vec3{0, 5, -0.5}, Width: 4, Height: 12, Depth: 4})
	first.RunTicks(1)

	second := NewSession(Options{Seed: 2, Status: reg})
	if second.World.Status != reg {
		t.Fatal("restart should reuse the registry")
	}
	if second.Over() || second.World.State.Score() != 0 {
		t.Error("restart must build a fresh session")
	}
}
