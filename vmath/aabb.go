package vmath

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box in world space
type AABB struct {
	Min, Max mgl64.Vec3
}

// FromPoints returns the tightest box enclosing all points, zero box for no points
func FromPoints(points ...mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExpandPoint(p)
	}
	return b
}

// FromCenter returns a box centered at c with the given half extents
func FromCenter(c, half mgl64.Vec3) AABB {
	return AABB{Min: c.Sub(half), Max: c.Add(half)}
}

// ExpandPoint grows the box to include p
func (b AABB) ExpandPoint(p mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Translate offsets the box by d
func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Intersects reports overlap on all three axes, touching faces count as overlap
func (b AABB) Intersects(o AABB) bool {
	return !(o.Max[0] < b.Min[0] || o.Min[0] > b.Max[0] ||
		o.Max[1] < b.Min[1] || o.Min[1] > b.Max[1] ||
		o.Max[2] < b.Min[2] || o.Min[2] > b.Max[2])
}
