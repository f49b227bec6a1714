package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
)

type recordingUi struct {
	stats   []Stats
	labels  []string
	results []struct {
		score    int
		complete bool
	}
	visible []bool
}

func (u *recordingUi) UpdateStats(s Stats)       { u.stats = append(u.stats, s) }
func (u *recordingUi) SetModeLabel(label string) { u.labels = append(u.labels, label) }
func (u *recordingUi) ShowResult(score int, complete bool) {
	u.results = append(u.results, struct {
		score    int
		complete bool
	}{score, complete})
}
func (u *recordingUi) SetResultVisible(v bool) { u.visible = append(u.visible, v) }

type countingRenderer struct{ frames int }

func (r *countingRenderer) Render(f *Frame) { r.frames++ }

type fixedInput component.Controls

func (in fixedInput) Poll() component.Controls { return component.Controls(in) }

// scoreSystem awards a point per tick and ends the session at a fixed tick
type scoreSystem struct {
	endAt  uint64
	reason EndReason
}

func (s scoreSystem) Priority() int { return 50 }
func (s scoreSystem) Update(w *World) {
	w.State.AddScore(1.5)
	if w.Tick == s.endAt {
		w.State.End(s.reason)
	}
}

func newLoop(t *testing.T, sys System) (*World, *GameLoop, *recordingUi, *countingRenderer) {
	t.Helper()
	w := NewWorld(WorldConfig{})
	w.AddSystem(sys)
	ui := &recordingUi{}
	r := &countingRenderer{}
	return w, NewGameLoop(w, r, fixedInput{Up: true}, ui, nil), ui, r
}

func TestGameLoopStopsAtGameOver(t *testing.T) {
	w, loop, ui, r := newLoop(t, scoreSystem{endAt: 4, reason: ReasonCollision})
	timerFired := 0
	w.Scheduler.Every(5*parameter.TickInterval, func() { timerFired++ })

	loop.Start()
	for i := 0; i < 20; i++ {
		w.Scheduler.Step(parameter.TickInterval)
	}

	if r.frames != 4 {
		t.Errorf("rendered %d frames, want 4 (the ending tick renders)", r.frames)
	}
	if !loop.Finished() || !w.Scheduler.Idle() {
		t.Error("loop should be finished with no pending work")
	}
	if timerFired != 0 {
		t.Errorf("timer fired %d times after GameOver cancelled it", timerFired)
	}
	if len(ui.results) != 1 || ui.results[0].score != 6 || ui.results[0].complete {
		t.Errorf("results = %+v, want one {6 false}", ui.results)
	}
	if len(ui.visible) != 2 || ui.visible[0] || !ui.visible[1] {
		t.Errorf("visibility sequence = %v, want [false true]", ui.visible)
	}
	if loop.Tick() {
		t.Error("Tick after GameOver must report false")
	}
	if len(ui.results) != 1 {
		t.Error("result shown more than once")
	}
}

func TestGameLoopStatsAndControls(t *testing.T) {
	w, loop, ui, _ := newLoop(t, scoreSystem{endAt: 100})
	loop.Start()
	w.Scheduler.Step(parameter.TickInterval)
	w.Scheduler.Step(parameter.TickInterval)

	if !w.Controls.Up {
		t.Error("controls not polled into the world")
	}
	if len(ui.stats) != 2 {
		t.Fatalf("stats pushed %d times, want 2", len(ui.stats))
	}
	last := ui.stats[1]
	if last.Score != 3 {
		t.Errorf("score = %d, want 3", last.Score)
	}
	if last.Speed != 15 || last.Altitude != 10 {
		t.Errorf("speed=%v altitude=%v, want 15,10", last.Speed, last.Altitude)
	}
	if len(ui.labels) != 1 || ui.labels[0] != parameter.LabelSwitchToChallenge {
		t.Errorf("labels = %v", ui.labels)
	}
}

func TestGameLoopFrameContents(t *testing.T) {
	w, loop, _, _ := newLoop(t, scoreSystem{endAt: 100})
	w.Populate()
	w.Rings.Add(component.Ring{})
	loop.Start()
	w.Scheduler.Step(parameter.TickInterval)

	f := loop.Frame()
	want := parameter.BuildingCount + parameter.CloudCount + parameter.RaindropCount + 1 + 1
	if len(f.Sprites) != want {
		t.Errorf("sprites = %d, want %d", len(f.Sprites), want)
	}
	if f.Sprites[len(f.Sprites)-1].Kind != component.KindPlane {
		t.Error("player sprite should be drawn last")
	}
	offset := mgl64.Vec3{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ}
	if !f.Camera.Target.ApproxEqual(w.Player.Position) || !f.Camera.Eye.Sub(w.Player.Position).ApproxEqual(offset) {
		t.Errorf("camera %+v not chasing player at %v", f.Camera, w.Player.Position)
	}
}

func TestGameLoopEmitsGameOverOnce(t *testing.T) {
	w, loop, _, _ := newLoop(t, scoreSystem{endAt: 2, reason: ReasonChallengeComplete})
	var got []event.GameEvent
	loop.Router().Register(event.HandlerFunc{
		Types: []event.EventType{event.EventGameOver},
		Fn:    func(ev event.GameEvent) { got = append(got, ev) },
	})

	loop.Start()
	for i := 0; i < 5; i++ {
		w.Scheduler.Step(parameter.TickInterval)
	}

	if len(got) != 1 {
		t.Fatalf("GameOver delivered %d times, want 1", len(got))
	}
	p := got[0].Payload.(*event.GameOverPayload)
	if !p.ChallengeComplete || p.FinalScore != 3 || p.Ticks != 2 {
		t.Errorf("payload = %+v", p)
	}
}

func TestGameLoopToggleMode(t *testing.T) {
	w, loop, ui, _ := newLoop(t, scoreSystem{endAt: 1, reason: ReasonCollision})
	loop.Start()

	if !loop.ToggleMode() {
		t.Fatal("toggle rejected while playing")
	}
	if w.State.Mode() != ModeChallenge || ui.labels[len(ui.labels)-1] != parameter.LabelSwitchToEndless {
		t.Errorf("mode=%s labels=%v", w.State.Mode(), ui.labels)
	}

	w.Scheduler.Step(parameter.TickInterval)
	if loop.ToggleMode() {
		t.Error("toggle accepted after GameOver")
	}
}

func TestSunPosition(t *testing.T) {
	sun := SunPosition(0)
	if sun.X() != parameter.SunOrbitRadius || sun.Y() != 0 || sun.Z() != parameter.SunDepth {
		t.Errorf("SunPosition(0) = %v", sun)
	}
}
