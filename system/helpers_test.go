package system

import (
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
)

// scriptedRand replays vals, then returns fallback forever
type scriptedRand struct {
	vals     []float64
	fallback float64
}

func (s *scriptedRand) Float64() float64 {
	if len(s.vals) == 0 {
		return s.fallback
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func (s *scriptedRand) Range(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// newTestWorld returns an empty world whose rand is pinned to 0.5, which never shifts the wind
func newTestWorld(mode engine.GameMode) *engine.World {
	return engine.NewWorld(engine.WorldConfig{
		Mode: mode,
		Rand: &scriptedRand{fallback: 0.5},
	})
}

// drain returns the types of every queued event
func drain(w *engine.World) []event.EventType {
	var out []event.EventType
	for _, ev := range w.Events.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func countType(types []event.EventType, t event.EventType) int {
	n := 0
	for _, x := range types {
		if x == t {
			n++
		}
	}
	return n
}
