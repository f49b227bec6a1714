package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/vmath"
)

// Cloud is a cosmetic background panel that wraps to the far edge
type Cloud struct {
	Position mgl64.Vec3
}

func NewCloud(r vmath.Rand) Cloud {
	return Cloud{Position: mgl64.Vec3{
		r.Range(parameter.CloudMinX, parameter.CloudMinX+parameter.CloudSpanX),
		r.Range(parameter.CloudMinY, parameter.CloudMinY+parameter.CloudSpanY),
		parameter.CloudRespawnZ,
	}}
}

// Raindrop is a cosmetic streak that respawns above the play area once it hits the ground
type Raindrop struct {
	Position mgl64.Vec3
}

func NewRaindrop(r vmath.Rand) Raindrop {
	d := Raindrop{}
	d.Respawn(r)
	return d
}

// Respawn redraws the drop position in the rain volume
func (d *Raindrop) Respawn(r vmath.Rand) {
	d.Position = mgl64.Vec3{
		r.Range(parameter.RainMinX, parameter.RainMinX+parameter.RainSpanX),
		r.Range(parameter.RainMinY, parameter.RainMinY+parameter.RainSpanY),
		r.Range(parameter.RainMinZ, parameter.RainMinZ+parameter.RainSpanZ),
	}
}
