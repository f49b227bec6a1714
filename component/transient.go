package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/vmath"
)

// Ring is a boost collectible, destroyed on pickup or when it passes the camera
type Ring struct {
	Position mgl64.Vec3
}

// Bird is a moving obstacle, destroyed when it passes the camera
type Bird struct {
	Position mgl64.Vec3
}

// SpawnPoint draws a position in the transient spawn box at the far edge
func SpawnPoint(r vmath.Rand) mgl64.Vec3 {
	return mgl64.Vec3{
		r.Range(parameter.SpawnMinX, parameter.SpawnMaxX),
		r.Range(parameter.SpawnMinY, parameter.SpawnMaxY),
		parameter.SpawnZ,
	}
}

func NewRing(r vmath.Rand) Ring {
	return Ring{Position: SpawnPoint(r)}
}

func NewBird(r vmath.Rand) Bird {
	return Bird{Position: SpawnPoint(r)}
}

// Bounds returns the bird's collision box
func (b *Bird) Bounds() vmath.AABB {
	return vmath.FromCenter(b.Position, mgl64.Vec3{parameter.BirdRadius, parameter.BirdRadius, parameter.BirdRadius})
}
