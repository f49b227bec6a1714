package system

import (
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/physics"
)

// CollisionSystem ends the session when the player box touches a building or bird
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World) {
	// An earlier terminal transition this tick wins
	if !w.State.Playing() {
		return
	}

	player := physics.PlaneBounds(&w.Player)
	hit, kind, found := component.EntityID(0), component.KindPlane, false

	w.Buildings.Each(func(id component.EntityID, b *component.Building) {
		if !found && player.Intersects(b.Bounds()) {
			hit, kind, found = id, component.KindBuilding, true
		}
	})
	if !found {
		w.Birds.Each(func(id component.EntityID, b *component.Bird) {
			if !found && player.Intersects(b.Bounds()) {
				hit, kind, found = id, component.KindBird, true
			}
		})
	}
	if !found {
		return
	}

	w.State.End(engine.ReasonCollision)
	w.Emit(event.EventCollision, &event.CollisionPayload{ID: hit, Kind: kind})
}
