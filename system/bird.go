package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/status"
)

// BirdSystem scrolls birds with a vertical wobble and removes those behind the camera
type BirdSystem struct {
	statLive *atomic.Int64
}

func NewBirdSystem(w *engine.World) *BirdSystem {
	return &BirdSystem{
		statLive: w.Status.Ints.Get(status.KeyBirdsLive),
	}
}

func (s *BirdSystem) Priority() int {
	return parameter.PriorityBird
}

func (s *BirdSystem) Update(w *engine.World) {
	if !w.State.Playing() {
		return
	}

	// Wobble phase follows elapsed time, not the tick index, so all birds bob together
	wobble := math.Sin(w.Scheduler.Millis()*parameter.BirdWobbleFrequency) * parameter.BirdWobbleAmplitude

	w.Birds.Each(func(id component.EntityID, b *component.Bird) {
		b.Position[2] += parameter.BirdScrollSpeed
		b.Position[1] += wobble
		if b.Position[2] > parameter.RecycleZ {
			w.Birds.MarkRemoved(id)
			w.Emit(event.EventBirdExpired, &event.DespawnPayload{ID: id, Kind: component.KindBird})
		}
	})

	w.Birds.Compact()
	s.statLive.Store(int64(w.Birds.Len()))
}
