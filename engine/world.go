package engine

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/status"
	"github.com/lixenwraith/paperflight/vmath"
)

// World is the simulation context for one session
// Everything a system reads or writes hangs off it; there are no package-level singletons
type World struct {
	Player   component.Plane
	Wind     mgl64.Vec3
	Controls component.Controls

	Buildings *component.Pool[component.Building]
	Rings     *component.Pool[component.Ring]
	Birds     *component.Pool[component.Bird]
	Clouds    *component.Pool[component.Cloud]
	Raindrops *component.Pool[component.Raindrop]

	State     *GameState
	Rand      vmath.Rand
	Events    *event.Queue
	Status    *status.Registry
	Scheduler *Scheduler

	// Tick is the index of the tick being simulated, 1-based
	Tick uint64

	systems []System
}

// WorldConfig carries the collaborators a World is assembled from
// Nil fields get fresh defaults
type WorldConfig struct {
	Mode      GameMode
	Rand      vmath.Rand
	Events    *event.Queue
	Status    *status.Registry
	Scheduler *Scheduler
}

// NewWorld creates an empty world with the player at its launch state
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		Player:    component.NewPlane(),
		Buildings: component.NewPool[component.Building](parameter.BuildingCount),
		Rings:     component.NewPool[component.Ring](8),
		Birds:     component.NewPool[component.Bird](8),
		Clouds:    component.NewPool[component.Cloud](parameter.CloudCount),
		Raindrops: component.NewPool[component.Raindrop](parameter.RaindropCount),
		State:     NewGameState(cfg.Mode),
		Rand:      cfg.Rand,
		Events:    cfg.Events,
		Status:    cfg.Status,
		Scheduler: cfg.Scheduler,
	}
	if w.Rand == nil {
		w.Rand = vmath.NewFastRand(1)
	}
	if w.Events == nil {
		w.Events = event.NewQueue()
	}
	if w.Status == nil {
		w.Status = status.NewRegistry()
	}
	if w.Scheduler == nil {
		w.Scheduler = NewScheduler()
	}
	return w
}

// Populate creates the recycled city and ambient weather
func (w *World) Populate() {
	for i := 0; i < parameter.BuildingCount; i++ {
		w.Buildings.Add(component.NewBuilding(w.Rand))
	}
	for i := 0; i < parameter.CloudCount; i++ {
		w.Clouds.Add(component.NewCloud(w.Rand))
	}
	for i := 0; i < parameter.RaindropCount; i++ {
		w.Raindrops.Add(component.NewRaindrop(w.Rand))
	}
}

// AddSystem registers s, keeping systems sorted by priority
// Equal priorities run in registration order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs every system once for the current tick
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(t, payload)
}
