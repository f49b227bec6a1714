package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks          = "sim.ticks"
	KeyScore          = "sim.score"
	KeyAltitude       = "player.altitude"
	KeySpeed          = "player.speed"
	KeyRingsCollected = "rings.collected"
	KeyRingsExpired   = "rings.expired"
	KeyRingsLive      = "rings.live"
	KeyBirdsLive      = "birds.live"
	KeyBuildingsPass  = "buildings.passed"
	KeyWindShifts     = "wind.shifts"
	KeyMode           = "session.mode"
	KeyPhase          = "session.phase"
)

// Registry groups metric maps by value type
// The simulation goroutine writes; renderer overlay and headless summary read
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[atomic.Value]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[atomic.Value](),
	}
}

// SetString stores s under key
func (r *Registry) SetString(key, s string) {
	r.Strings.Get(key).Store(s)
}

// String returns the value under key or empty
func (r *Registry) String(key string) string {
	if !r.Strings.Has(key) {
		return ""
	}
	s, _ := r.Strings.Get(key).Load().(string)
	return s
}

// Count returns the number of registered metrics across all maps
func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value", ints then floats then strings, each sorted
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *atomic.Value) {
		s, _ := v.Load().(string)
		out = append(out, k+"="+s)
	})
	return out
}
