package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/parameter"
)

// PlaneHull is the paper plane mesh in local space: nose, wing tips, tail, tail top, folds
var PlaneHull = [...]mgl64.Vec3{
	{0, 0, 0.6},
	{-1.2, 0, -0.4},
	{1.2, 0, -0.4},
	{-0.5, 0, -0.6},
	{0.5, 0, -0.6},
	{0, 0.3, -0.6},
	{-0.8, 0.1, -0.5},
	{0.8, 0.1, -0.5},
}

// Plane is the player craft, owned by the simulation
type Plane struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	// Pitch rotates about x, Roll about z, both bounded to ±0.5 rad
	Pitch float64
	Roll  float64

	// BoostTimer counts remaining boost ticks, never negative
	BoostTimer int
}

// NewPlane returns the craft at its launch state
func NewPlane() Plane {
	return Plane{
		Position: mgl64.Vec3{parameter.PlayerStartX, parameter.PlayerStartY, parameter.PlayerStartZ},
		Velocity: mgl64.Vec3{0, 0, parameter.PlayerStartVelocityZ},
	}
}

// Rotation returns Euler angles (x, y, z) applied to the mesh
func (p *Plane) Rotation() mgl64.Vec3 {
	return mgl64.Vec3{p.Pitch, 0, p.Roll}
}

// Speed is the forward speed readout, |vz| scaled for display
func (p *Plane) Speed() float64 {
	return math.Abs(p.Velocity.Z() * parameter.SpeedDisplayScale)
}

// Boosting reports whether a ring boost is active
func (p *Plane) Boosting() bool {
	return p.BoostTimer > 0
}
