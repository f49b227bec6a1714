// Package game assembles a playable session from the engine, systems and presentation
package game

import (
	"log"

	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/status"
	"github.com/lixenwraith/paperflight/system"
	"github.com/lixenwraith/paperflight/vmath"
)

// Options configures one session
type Options struct {
	Seed     uint64
	Mode     engine.GameMode
	Renderer engine.Renderer
	Input    engine.InputSource
	Ui       engine.UiSink

	// Status is shared across sessions so counters survive a restart; nil creates one
	Status *status.Registry

	// Handlers receive game events after each tick, in registration order
	Handlers []event.Handler
}

// Session is one run from launch to GameOver
// A restart builds a new Session; an ended one is never resumed
type Session struct {
	World     *engine.World
	Loop      *engine.GameLoop
	Scheduler *engine.Scheduler
	Spawner   *system.Spawner
}

// NewSession builds a populated world with every system registered and the loop started
func NewSession(opts Options) *Session {
	sched := engine.NewScheduler()
	queue := event.NewQueue()

	w := engine.NewWorld(engine.WorldConfig{
		Mode:      opts.Mode,
		Rand:      vmath.NewFastRand(opts.Seed),
		Events:    queue,
		Status:    opts.Status,
		Scheduler: sched,
	})
	w.Populate()

	w.AddSystem(system.NewFlightSystem(w))
	w.AddSystem(system.NewScrollSystem())
	w.AddSystem(system.NewRingSystem(w))
	w.AddSystem(system.NewBirdSystem(w))
	w.AddSystem(system.NewScoreSystem())
	w.AddSystem(system.NewCollisionSystem())

	router := event.NewRouter(queue)
	router.Register(NewCounters(w.Status))
	for _, h := range opts.Handlers {
		router.Register(h)
	}

	loop := engine.NewGameLoop(w, opts.Renderer, opts.Input, opts.Ui, router)

	spawner := system.NewSpawner(w)
	spawner.Attach()

	log.Printf("session start: seed=%d mode=%s", opts.Seed, opts.Mode)
	loop.Start()

	return &Session{
		World:     w,
		Loop:      loop,
		Scheduler: sched,
		Spawner:   spawner,
	}
}

// Over reports whether the session reached GameOver
func (s *Session) Over() bool {
	return s.Loop.Finished()
}

// RunTicks steps virtual time one tick interval at a time, n times or until the session ends
// Returns the number of ticks simulated
func (s *Session) RunTicks(n int) int {
	start := s.Scheduler.TickIndex()
	for i := 0; i < n && !s.Over(); i++ {
		s.Scheduler.Step(parameter.TickInterval)
	}
	return int(s.Scheduler.TickIndex() - start)
}
