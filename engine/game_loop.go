package engine

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/status"
	"github.com/lixenwraith/paperflight/vmath"
)

// GameLoop runs one tick per scheduler frame until the session ends
type GameLoop struct {
	world    *World
	renderer Renderer
	input    InputSource
	ui       UiSink
	router   *event.Router

	frame    Frame
	started  bool
	finished bool

	statTicks    *atomic.Int64
	statScore    *status.AtomicFloat
	statAltitude *status.AtomicFloat
	statSpeed    *status.AtomicFloat
}

// NewGameLoop wires the loop to its presentation collaborators
// Handlers registered on router receive events after each tick
func NewGameLoop(w *World, r Renderer, in InputSource, ui UiSink, router *event.Router) *GameLoop {
	if r == nil {
		r = NopRenderer{}
	}
	if ui == nil {
		ui = NopUiSink{}
	}
	if router == nil {
		router = event.NewRouter(w.Events)
	}
	return &GameLoop{
		world:        w,
		renderer:     r,
		input:        in,
		ui:           ui,
		router:       router,
		statTicks:    w.Status.Ints.Get(status.KeyTicks),
		statScore:    w.Status.Floats.Get(status.KeyScore),
		statAltitude: w.Status.Floats.Get(status.KeyAltitude),
		statSpeed:    w.Status.Floats.Get(status.KeySpeed),
	}
}

// Router returns the event router handlers register on
func (l *GameLoop) Router() *event.Router { return l.router }

// Frame returns the most recently built frame
func (l *GameLoop) Frame() *Frame { return &l.frame }

// Finished reports whether the GameOver transition has been handled
func (l *GameLoop) Finished() bool { return l.finished }

// Start resets the overlay and installs the self-rescheduling frame callback
func (l *GameLoop) Start() {
	if l.started {
		return
	}
	l.started = true
	l.ui.SetResultVisible(false)
	l.ui.SetModeLabel(ModeLabel(l.world.State.Mode()))
	l.world.Status.SetString(status.KeyMode, l.world.State.Mode().String())
	l.world.Status.SetString(status.KeyPhase, l.world.State.Phase().String())
	l.world.Scheduler.RequestFrame(l.onFrame)
}

func (l *GameLoop) onFrame() {
	if l.Tick() {
		l.world.Scheduler.RequestFrame(l.onFrame)
	}
}

// Tick simulates and presents one frame, returns false once the session has ended
func (l *GameLoop) Tick() bool {
	w := l.world
	if l.finished || !w.State.Playing() {
		return false
	}

	w.Tick = w.Scheduler.TickIndex()
	w.Events.SetTick(w.Tick)
	if l.input != nil {
		w.Controls = l.input.Poll()
	}

	w.Update()

	BuildFrame(w, &l.frame)
	l.renderer.Render(&l.frame)

	stats := Stats{
		Score:    int(math.Floor(w.State.Score())),
		Speed:    vmath.Round1(w.Player.Speed()),
		Altitude: vmath.Round1(w.Player.Position.Y()),
	}
	l.ui.UpdateStats(stats)
	l.statTicks.Store(int64(w.Tick))
	l.statScore.Set(w.State.Score())
	l.statAltitude.Set(stats.Altitude)
	l.statSpeed.Set(stats.Speed)

	if !w.State.Playing() {
		l.finish()
	}

	l.router.DispatchAll()
	return !l.finished
}

// finish runs once on the GameOver transition
func (l *GameLoop) finish() {
	w := l.world
	l.finished = true
	w.Scheduler.CancelAll()

	complete := w.State.Reason() == ReasonChallengeComplete
	w.Emit(event.EventGameOver, &event.GameOverPayload{
		FinalScore:        w.State.FinalScore(),
		ChallengeComplete: complete,
		Ticks:             w.Tick,
	})
	w.Status.SetString(status.KeyPhase, w.State.Phase().String())

	l.ui.ShowResult(w.State.FinalScore(), complete)
	l.ui.SetResultVisible(true)
	log.Printf("game over: reason=%s score=%d ticks=%d", w.State.Reason(), w.State.FinalScore(), w.Tick)
}

// ToggleMode flips the session mode and updates the toggle label
// Must run on the loop goroutine, between ticks
func (l *GameLoop) ToggleMode() bool {
	w := l.world
	mode, ok := w.State.ToggleMode()
	if !ok {
		return false
	}
	l.ui.SetModeLabel(ModeLabel(mode))
	w.Status.SetString(status.KeyMode, mode.String())
	w.Emit(event.EventModeChanged, &event.ModePayload{
		Challenge: mode == ModeChallenge,
		Goal:      w.State.Goal(),
	})
	l.router.DispatchAll()
	return true
}
