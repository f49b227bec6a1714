package parameter

import "time"

// Scrolling, in world units per tick toward the camera (+z)
const (
	BuildingScrollSpeed = 0.05
	RingScrollSpeed     = 0.05
	BirdScrollSpeed     = 0.07
	CloudScrollSpeed    = 0.01
	RainFallSpeed       = 0.1
)

// Recycling
const (
	// RecycleZ is the z past which entities behind the camera are recycled or destroyed
	RecycleZ = 10.0

	BuildingRespawnZ = -60.0
	CloudRespawnZ    = -100.0

	// RainFloorY is the height below which a raindrop respawns
	RainFloorY = 0.0
)

// Ambient entity counts, created once per session
const (
	BuildingCount = 15
	CloudCount    = 5
	RaindropCount = 100
)

// Building placement
const (
	BuildingMinX = -20.0
	BuildingMaxX = 20.0

	// Initial z is -(rand*BuildingSpawnDepth) - BuildingSpawnNearZ
	BuildingSpawnNearZ = 10.0
	BuildingSpawnDepth = 50.0

	BuildingGlassChance = 0.3
	BuildingRoofChance  = 0.5
	BuildingRoofSize    = 0.5

	// BuildingWindowSpacing is the vertical distance between window rows
	BuildingWindowSpacing = 2.0
	// BuildingWindowInset keeps windows away from face edges
	BuildingWindowInset = 0.6
	// BuildingWindowOffset is how far a window sits outside its face
	BuildingWindowOffset = 0.01
)

// Cloud and rain placement
const (
	CloudMinX   = -50.0
	CloudSpanX  = 100.0
	CloudMinY   = 20.0
	CloudSpanY  = 20.0
	CloudWidth  = 50.0
	CloudHeight = 10.0

	RainMinX  = -20.0
	RainSpanX = 40.0
	RainMinY  = 10.0
	RainSpanY = 20.0
	RainMinZ  = -10.0
	RainSpanZ = 20.0

	RainWidth  = 0.02
	RainLength = 0.5
)

// Transient spawns
const (
	RingSpawnInterval = 5 * time.Second
	BirdSpawnInterval = 7 * time.Second

	SpawnMinX = -20.0
	SpawnMaxX = 20.0
	SpawnMinY = 2.0
	SpawnMaxY = 17.0
	SpawnZ    = -50.0

	// RingPickupRadius is the 3D distance under which a ring is collected
	RingPickupRadius = 1.5
	RingRadius       = 1.0

	BirdRadius = 0.3
	// BirdWobbleAmplitude and BirdWobbleFrequency drive y += sin(ms*freq)*amp
	BirdWobbleAmplitude = 0.02
	BirdWobbleFrequency = 0.005
)

// Sun orbit, t = ms * SunAngularSpeed
const (
	SunAngularSpeed = 0.0005
	SunOrbitRadius  = 10.0
	SunDepth        = 5.0
)
