package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/parameter"
)

func TestScrollRecyclesBuildings(t *testing.T) {
	w := newTestWorld(engine.ModeEndless)
	passing := w.Buildings.Add(component.Building{Position: mgl64.Vec3{7, 5, 9.96}, Width: 2, Height: 10, Depth: 2})
	near := w.Buildings.Add(component.Building{Position: mgl64.Vec3{-3, 5, 0}, Width: 2, Height: 10, Depth: 2})

	NewScrollSystem().Update(w)

	b, _ := w.Buildings.Get(passing)
	if b.Position.Z() != parameter.BuildingRespawnZ {
		t.Errorf("recycled z = %v, want %v", b.Position.Z(), parameter.BuildingRespawnZ)
	}
	if b.Position.X() != 0 {
		t.Errorf("recycled x = %v, want 0 from rand 0.5", b.Position.X())
	}
	if b.Position.Y() != 5 {
		t.Errorf("recycle changed y to %v", b.Position.Y())
	}
	if w.State.Score() != parameter.ScoreBuildingPass {
		t.Errorf("score = %v, want %v", w.State.Score(), parameter.ScoreBuildingPass)
	}

	n, _ := w.Buildings.Get(near)
	if math.Abs(n.Position.Z()-parameter.BuildingScrollSpeed) > 1e-12 {
		t.Errorf("near building z = %v, want %v", n.Position.Z(), parameter.BuildingScrollSpeed)
	}
	if w.Buildings.Len() != 2 {
		t.Error("scrolling must never destroy buildings")
	}

	evs := drain(w)
	if countType(evs, event.EventBuildingPassed) != 1 {
		t.Errorf("events = %v, want one building_passed", evs)
	}
}

func TestScrollWrapsCloudsAndRain(t *testing.T) {
	w := newTestWorld(engine.ModeEndless)
	cloud := w.Clouds.Add(component.Cloud{Position: mgl64.Vec3{0, 30, 9.995}})
	drop := w.Raindrops.Add(component.Raindrop{Position: mgl64.Vec3{3, 0.05, 1}})
	high := w.Raindrops.Add(component.Raindrop{Position: mgl64.Vec3{3, 15, 1}})

	NewScrollSystem().Update(w)

	c, _ := w.Clouds.Get(cloud)
	if c.Position.Z() != parameter.CloudRespawnZ {
		t.Errorf("cloud z = %v, want %v", c.Position.Z(), parameter.CloudRespawnZ)
	}

	d, _ := w.Raindrops.Get(drop)
	want := mgl64.Vec3{0, 20, 0}
	if !d.Position.ApproxEqual(want) {
		t.Errorf("respawned drop at %v, want %v", d.Position, want)
	}

	h, _ := w.Raindrops.Get(high)
	if math.Abs(h.Position.Y()-(15-parameter.RainFallSpeed)) > 1e-12 {
		t.Errorf("falling drop y = %v", h.Position.Y())
	}
	if w.State.Score() != 0 {
		t.Error("weather must not score")
	}
}

func TestScrollStopsAfterGameOver(t *testing.T) {
	w := newTestWorld(engine.ModeEndless)
	id := w.Buildings.Add(component.Building{Position: mgl64.Vec3{0, 5, -20}})
	w.State.End(engine.ReasonCollision)

	NewScrollSystem().Update(w)

	b, _ := w.Buildings.Get(id)
	if b.Position.Z() != -20 {
		t.Errorf("building moved after GameOver: z = %v", b.Position.Z())
	}
}
