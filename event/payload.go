package event

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
)

// SpawnPayload describes a transient entity entering the world
type SpawnPayload struct {
	ID       component.EntityID
	Kind     component.Kind
	Position mgl64.Vec3
}

// DespawnPayload describes a transient entity leaving the world unscored
type DespawnPayload struct {
	ID   component.EntityID
	Kind component.Kind
}

// ScorePayload carries a score award and the running total
type ScorePayload struct {
	ID    component.EntityID
	Award float64
	Total float64
}

// RingCollectedPayload carries pickup details; GoalLeft is only meaningful in Challenge mode
type RingCollectedPayload struct {
	ID       component.EntityID
	Award    float64
	Total    float64
	GoalLeft int
}

// WindPayload carries the new wind vector
type WindPayload struct {
	Wind mgl64.Vec3
}

// ModePayload carries the mode after a toggle
type ModePayload struct {
	Challenge bool
	Goal      int
}

// CollisionPayload identifies the obstacle the player hit
type CollisionPayload struct {
	ID   component.EntityID
	Kind component.Kind
}

// GameOverPayload carries the frozen session result
type GameOverPayload struct {
	FinalScore        int
	ChallengeComplete bool
	Ticks             uint64
}
