package input

import (
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/parameter"
)

// Autopilot flies the craft for headless runs, holding a cruise altitude
// and weaving slowly across the corridor
type Autopilot struct {
	plane  *component.Plane
	cruise float64
	ticks  int
}

// NewAutopilot reads from the plane it steers; cruise is the target altitude
func NewAutopilot(plane *component.Plane, cruise float64) *Autopilot {
	if cruise <= parameter.BoundMinY || cruise > parameter.BoundMaxY {
		cruise = parameter.PlayerStartY
	}
	return &Autopilot{plane: plane, cruise: cruise}
}

// Poll climbs below cruise altitude and banks toward a slowly moving lateral target
func (a *Autopilot) Poll() component.Controls {
	a.ticks++
	p := a.plane

	var c component.Controls
	c.Up = p.Position.Y() < a.cruise || p.Velocity.Y() < -0.05

	// Lateral target sweeps the corridor every 20 s at 60 Hz
	phase := a.ticks % 1200
	target := float64(phase)/600*20 - 10
	if phase >= 600 {
		target = 30 - float64(phase)/600*20
	}
	switch dx := target - p.Position.X(); {
	case dx < -1:
		c.Left = true
	case dx > 1:
		c.Right = true
	}
	return c
}
