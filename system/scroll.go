package system

import (
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
)

// ScrollSystem moves the recycled city and weather toward the camera
// Nothing here is ever destroyed, only repositioned
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Priority() int {
	return parameter.PriorityScroll
}

func (s *ScrollSystem) Update(w *engine.World) {
	if !w.State.Playing() {
		return
	}

	w.Buildings.Each(func(id component.EntityID, b *component.Building) {
		b.Position[2] += parameter.BuildingScrollSpeed
		if b.Position[2] > parameter.RecycleZ {
			b.Recycle(w.Rand)
			w.State.AddScore(parameter.ScoreBuildingPass)
			w.Emit(event.EventBuildingPassed, &event.ScorePayload{
				ID:    id,
				Award: parameter.ScoreBuildingPass,
				Total: w.State.Score(),
			})
		}
	})

	w.Clouds.Each(func(_ component.EntityID, c *component.Cloud) {
		c.Position[2] += parameter.CloudScrollSpeed
		if c.Position[2] > parameter.RecycleZ {
			c.Position[2] = parameter.CloudRespawnZ
		}
	})

	w.Raindrops.Each(func(_ component.EntityID, d *component.Raindrop) {
		d.Position[1] -= parameter.RainFallSpeed
		if d.Position[1] < parameter.RainFloorY {
			d.Respawn(w.Rand)
		}
	})
}
