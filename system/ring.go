package system

import (
	"sync/atomic"

	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/physics"
	"github.com/lixenwraith/paperflight/status"
)

// RingSystem scrolls rings and resolves pickups
// A ring is either expired or collected in a tick, never both
type RingSystem struct {
	statLive *atomic.Int64
}

func NewRingSystem(w *engine.World) *RingSystem {
	return &RingSystem{
		statLive: w.Status.Ints.Get(status.KeyRingsLive),
	}
}

func (s *RingSystem) Priority() int {
	return parameter.PriorityRing
}

func (s *RingSystem) Update(w *engine.World) {
	if !w.State.Playing() {
		return
	}

	w.Rings.Each(func(id component.EntityID, r *component.Ring) {
		r.Position[2] += parameter.RingScrollSpeed

		if r.Position[2] > parameter.RecycleZ {
			w.Rings.MarkRemoved(id)
			w.Emit(event.EventRingExpired, &event.DespawnPayload{ID: id, Kind: component.KindRing})
			return
		}

		if physics.RingReached(&w.Player, r, parameter.RingPickupRadius) {
			w.Rings.MarkRemoved(id)
			w.Player.BoostTimer = parameter.BoostTicks
			w.State.AddScore(parameter.ScoreRing)
			left := w.State.CollectRing()
			w.Emit(event.EventRingCollected, &event.RingCollectedPayload{
				ID:       id,
				Award:    parameter.ScoreRing,
				Total:    w.State.Score(),
				GoalLeft: left,
			})
		}
	})

	w.Rings.Compact()
	s.statLive.Store(int64(w.Rings.Len()))
}
