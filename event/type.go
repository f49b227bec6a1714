package event

// EventType represents the type of game event
type EventType int

const (
	// === Spawn Event ===

	// EventRingSpawned signals a new ring at the far edge
	// Trigger: Spawner ring timer | Payload: *SpawnPayload
	EventRingSpawned EventType = iota

	// EventBirdSpawned signals a new bird at the far edge
	// Trigger: Spawner bird timer | Payload: *SpawnPayload
	EventBirdSpawned

	// === World Event ===

	// EventBuildingPassed signals a building recycled behind the camera
	// Trigger: ScrollSystem | Consumer: SoundManager, Counters | Payload: *ScorePayload
	EventBuildingPassed

	// EventRingCollected signals a ring pickup and boost start
	// Trigger: RingSystem | Consumer: SoundManager, Counters | Payload: *RingCollectedPayload
	EventRingCollected

	// EventRingExpired signals an uncollected ring passing the camera
	// Trigger: RingSystem | Payload: *DespawnPayload
	EventRingExpired

	// EventBirdExpired signals a bird passing the camera
	// Trigger: BirdSystem | Payload: *DespawnPayload
	EventBirdExpired

	// EventWindShift signals a new wind draw
	// Trigger: FlightSystem | Payload: *WindPayload
	EventWindShift

	// === Session Event ===

	// EventModeChanged signals an Endless/Challenge toggle
	// Trigger: GameLoop.ToggleMode | Payload: *ModePayload
	EventModeChanged

	// EventCollision signals player contact with an obstacle
	// Trigger: CollisionSystem | Consumer: SoundManager | Payload: *CollisionPayload
	EventCollision

	// EventGameOver signals the terminal transition, emitted once per session
	// Trigger: GameLoop | Consumer: SoundManager, Counters, logger | Payload: *GameOverPayload
	EventGameOver
)

var typeNames = map[EventType]string{
	EventRingSpawned:    "ring_spawned",
	EventBirdSpawned:    "bird_spawned",
	EventBuildingPassed: "building_passed",
	EventRingCollected:  "ring_collected",
	EventRingExpired:    "ring_expired",
	EventBirdExpired:    "bird_expired",
	EventWindShift:      "wind_shift",
	EventModeChanged:    "mode_changed",
	EventCollision:      "collision",
	EventGameOver:       "game_over",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed event with an optional payload, stamped with the tick it was emitted on
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
