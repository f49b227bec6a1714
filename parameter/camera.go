package parameter

import "time"

// Chase camera relative to the player, always looking at the player
const (
	CameraOffsetX = 0.0
	CameraOffsetY = 3.0
	CameraOffsetZ = 5.0

	CameraFOVDegrees = 75.0
	CameraNear       = 0.1
	CameraFar        = 1000.0
)

// TickInterval is the fixed simulation step, one rendered frame
const TickInterval = time.Second / 60

// SpeedDisplayScale converts |velocity.z| to the HUD speed readout
const SpeedDisplayScale = 100.0
