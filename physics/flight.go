// Package physics integrates the player craft one fixed tick at a time
// using hand-tuned arcade constants, not aerodynamics
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/vmath"
)

// StepFlight advances the plane by one tick
// Step order is part of the tuning and must not be rearranged
func StepFlight(p *component.Plane, in component.Controls, wind *mgl64.Vec3, rng vmath.Rand) {
	p.Velocity[1] -= parameter.Gravity

	// Climbing noses the craft down and gliding noses it up
	if in.Up {
		p.Velocity[1] += parameter.Lift
		p.Pitch = vmath.Approach(p.Pitch, -parameter.PitchLimit, parameter.PitchClimbStep)
	} else {
		p.Pitch = vmath.Approach(p.Pitch, parameter.PitchLimit, parameter.PitchGlideStep)
	}

	switch {
	case in.Left:
		p.Velocity[0] -= parameter.LateralAccel
		p.Roll = vmath.Approach(p.Roll, parameter.RollLimit, parameter.RollStep)
	case in.Right:
		p.Velocity[0] += parameter.LateralAccel
		p.Roll = vmath.Approach(p.Roll, -parameter.RollLimit, parameter.RollStep)
	default:
		p.Roll *= parameter.RollDecay
		p.Velocity[0] *= parameter.LateralDecay
	}

	p.Velocity = p.Velocity.Mul(parameter.Drag)

	if p.BoostTimer > 0 {
		p.Velocity[2] = parameter.BoostSpeed
		p.BoostTimer--
	}

	if rng.Float64() < parameter.WindShiftChance {
		*wind = mgl64.Vec3{(rng.Float64() - 0.5) * 2 * parameter.WindMaxX, 0, 0}
	}
	p.Velocity = p.Velocity.Add(*wind)

	p.Position = p.Position.Add(p.Velocity)
	ClampBounds(p)
}

// ClampBounds holds the plane inside the flight envelope
// Touching the floor zeroes vertical speed; contact with the ground is not a crash
func ClampBounds(p *component.Plane) {
	p.Position[0] = vmath.Clamp(p.Position[0], parameter.BoundMinX, parameter.BoundMaxX)
	if p.Position[1] > parameter.BoundMaxY {
		p.Position[1] = parameter.BoundMaxY
	}
	if p.Position[1] < parameter.BoundMinY {
		p.Position[1] = parameter.BoundMinY
		p.Velocity[1] = 0
	}
}
