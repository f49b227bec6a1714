package system

import (
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
)

// Spawner adds rings and birds at the far edge on independent periodic timers
// The timers end with the session when the loop cancels every timer on GameOver
type Spawner struct {
	world  *engine.World
	ringID engine.TimerID
	birdID engine.TimerID
}

func NewSpawner(w *engine.World) *Spawner {
	return &Spawner{world: w}
}

// Attach registers both timers on the world scheduler and returns their IDs
func (s *Spawner) Attach() (ring, bird engine.TimerID) {
	s.ringID = s.world.Scheduler.Every(parameter.RingSpawnInterval, s.SpawnRing)
	s.birdID = s.world.Scheduler.Every(parameter.BirdSpawnInterval, s.SpawnBird)
	return s.ringID, s.birdID
}

// SpawnRing adds one ring; ignored once the session has ended
func (s *Spawner) SpawnRing() {
	w := s.world
	if !w.State.Playing() {
		return
	}
	r := component.NewRing(w.Rand)
	id := w.Rings.Add(r)
	w.Emit(event.EventRingSpawned, &event.SpawnPayload{ID: id, Kind: component.KindRing, Position: r.Position})
}

// SpawnBird adds one bird; ignored once the session has ended
func (s *Spawner) SpawnBird() {
	w := s.world
	if !w.State.Playing() {
		return
	}
	b := component.NewBird(w.Rand)
	id := w.Birds.Add(b)
	w.Emit(event.EventBirdSpawned, &event.SpawnPayload{ID: id, Kind: component.KindBird, Position: b.Position})
}
