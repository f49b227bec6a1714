package system

import (
	"sync/atomic"

	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/physics"
	"github.com/lixenwraith/paperflight/status"
)

// FlightSystem integrates the player craft with the polled controls
type FlightSystem struct {
	statShifts *atomic.Int64
}

func NewFlightSystem(w *engine.World) *FlightSystem {
	return &FlightSystem{
		statShifts: w.Status.Ints.Get(status.KeyWindShifts),
	}
}

func (s *FlightSystem) Priority() int {
	return parameter.PriorityFlight
}

func (s *FlightSystem) Update(w *engine.World) {
	if !w.State.Playing() {
		return
	}
	before := w.Wind
	physics.StepFlight(&w.Player, w.Controls, &w.Wind, w.Rand)
	if w.Wind != before {
		s.statShifts.Add(1)
		w.Emit(event.EventWindShift, &event.WindPayload{Wind: w.Wind})
	}
}
