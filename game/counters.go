package game

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/status"
)

// Counters tallies game events into the status registry
type Counters struct {
	ringsCollected *atomic.Int64
	ringsExpired   *atomic.Int64
	buildingsPass  *atomic.Int64
}

func NewCounters(reg *status.Registry) *Counters {
	return &Counters{
		ringsCollected: reg.Ints.Get(status.KeyRingsCollected),
		ringsExpired:   reg.Ints.Get(status.KeyRingsExpired),
		buildingsPass:  reg.Ints.Get(status.KeyBuildingsPass),
	}
}

func (c *Counters) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRingCollected,
		event.EventRingExpired,
		event.EventBuildingPassed,
	}
}

func (c *Counters) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRingCollected:
		c.ringsCollected.Add(1)
	case event.EventRingExpired:
		c.ringsExpired.Add(1)
	case event.EventBuildingPassed:
		c.buildingsPass.Add(1)
	}
}

// EventLogger writes session milestones to the standard logger
type EventLogger struct{}

func (EventLogger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRingCollected,
		event.EventModeChanged,
		event.EventCollision,
		event.EventGameOver,
	}
}

func (EventLogger) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.RingCollectedPayload:
		log.Printf("tick %d: ring %d collected, score=%.1f goal_left=%d", ev.Tick, p.ID, p.Total, p.GoalLeft)
	case *event.ModePayload:
		log.Printf("tick %d: mode changed, challenge=%v goal=%d", ev.Tick, p.Challenge, p.Goal)
	case *event.CollisionPayload:
		log.Printf("tick %d: collision with %s %d", ev.Tick, p.Kind, p.ID)
	case *event.GameOverPayload:
		log.Printf("tick %d: final score %d, challenge complete=%v", ev.Tick, p.FinalScore, p.ChallengeComplete)
	}
}
