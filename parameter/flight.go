package parameter

// Flight model, applied per tick in this order: gravity, lift, lateral, drag, boost, wind
const (
	Gravity = 0.008
	Lift    = 0.015
	Drag    = 0.98

	// PitchClimbStep eases pitch toward -PitchLimit while Up is held
	PitchClimbStep = 0.05
	// PitchGlideStep eases pitch toward +PitchLimit otherwise
	PitchGlideStep = 0.02
	PitchLimit     = 0.5

	RollStep  = 0.05
	RollLimit = 0.5
	// RollDecay is the per-tick roll multiplier with no lateral input
	RollDecay = 0.9

	LateralAccel = 0.02
	// LateralDecay is the per-tick velocity.x multiplier with no lateral input
	LateralDecay = 0.95
)

// Boost
const (
	// BoostSpeed overrides velocity.z while boost is active
	BoostSpeed = -0.3
	// BoostTicks is the boost duration granted by a ring
	BoostTicks = 60
)

// Wind random walk
const (
	// WindShiftChance is the per-tick probability of redrawing wind.x
	WindShiftChance = 0.01
	// WindMaxX bounds wind.x to [-WindMaxX, WindMaxX]
	WindMaxX = 0.01
)

// Flight envelope
const (
	BoundMinX = -20.0
	BoundMaxX = 20.0
	BoundMinY = 1.0
	BoundMaxY = 20.0
)

// Player spawn
const (
	PlayerStartX = 0.0
	PlayerStartY = 10.0
	PlayerStartZ = 0.0

	PlayerStartVelocityZ = -0.15
)
