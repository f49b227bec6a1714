package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/vmath"
)

// HullRotation returns the plane orientation matrix, x (pitch) applied after z (roll)
func HullRotation(p *component.Plane) mgl64.Mat3 {
	return mgl64.Rotate3DX(p.Pitch).Mul3(mgl64.Rotate3DZ(p.Roll))
}

// PlaneBounds returns the world box of the rotated hull vertices
func PlaneBounds(p *component.Plane) vmath.AABB {
	rot := HullRotation(p)
	var pts [len(component.PlaneHull)]mgl64.Vec3
	for i, v := range component.PlaneHull {
		pts[i] = rot.Mul3x1(v).Add(p.Position)
	}
	return vmath.FromPoints(pts[:]...)
}

// RingReached reports whether the plane is inside the pickup sphere
func RingReached(p *component.Plane, ring *component.Ring, radius float64) bool {
	return p.Position.Sub(ring.Position).Len() < radius
}
