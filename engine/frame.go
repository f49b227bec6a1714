package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/parameter"
)

// Sprite is one drawable world object in a Frame
// Extent is the full size along each axis; Windows is shared with the building and must not be mutated
type Sprite struct {
	ID       component.EntityID
	Kind     component.Kind
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Extent   mgl64.Vec3

	Shape   component.BuildingShape
	Color   uint32
	Glass   bool
	Roof    bool
	Windows []component.Window
}

// Camera is a chase camera looking at the player
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FOV    float64
}

// View returns the world-to-camera matrix
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, parameter.CameraNear, parameter.CameraFar)
}

// Frame is the renderer input for one tick
type Frame struct {
	Tick    uint64
	Millis  float64
	Sprites []Sprite
	Camera  Camera
	Sun     mgl64.Vec3

	Boosting bool
	Mode     GameMode
	Goal     int
}

// ChaseCamera places the camera at the fixed offset from the target
func ChaseCamera(target mgl64.Vec3) Camera {
	return Camera{
		Eye:    target.Add(mgl64.Vec3{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ}),
		Target: target,
		Up:     mgl64.Vec3{0, 1, 0},
		FOV:    parameter.CameraFOVDegrees,
	}
}

// SunPosition returns the orbiting light position at virtual time ms
func SunPosition(ms float64) mgl64.Vec3 {
	t := ms * parameter.SunAngularSpeed
	return mgl64.Vec3{
		parameter.SunOrbitRadius * math.Cos(t),
		parameter.SunOrbitRadius * math.Sin(t),
		parameter.SunDepth,
	}
}

// BuildFrame fills f from the world, reusing its sprite slice
func BuildFrame(w *World, f *Frame) {
	f.Tick = w.Tick
	f.Millis = w.Scheduler.Millis()
	f.Camera = ChaseCamera(w.Player.Position)
	f.Sun = SunPosition(f.Millis)
	f.Boosting = w.Player.Boosting()
	f.Mode = w.State.Mode()
	f.Goal = w.State.Goal()

	sprites := f.Sprites[:0]

	w.Clouds.Each(func(id component.EntityID, c *component.Cloud) {
		sprites = append(sprites, Sprite{
			ID: id, Kind: component.KindCloud, Position: c.Position,
			Extent: mgl64.Vec3{parameter.CloudWidth, parameter.CloudHeight, 0},
		})
	})
	w.Buildings.Each(func(id component.EntityID, b *component.Building) {
		half := b.HalfExtents()
		sprites = append(sprites, Sprite{
			ID: id, Kind: component.KindBuilding, Position: b.Position,
			Extent: half.Mul(2),
			Shape:  b.Shape, Color: b.Color, Glass: b.Glass, Roof: b.Roof, Windows: b.Windows,
		})
	})
	w.Rings.Each(func(id component.EntityID, r *component.Ring) {
		d := parameter.RingRadius * 2
		sprites = append(sprites, Sprite{
			ID: id, Kind: component.KindRing, Position: r.Position,
			Extent: mgl64.Vec3{d, d, 0},
		})
	})
	w.Birds.Each(func(id component.EntityID, b *component.Bird) {
		d := parameter.BirdRadius * 2
		sprites = append(sprites, Sprite{
			ID: id, Kind: component.KindBird, Position: b.Position,
			Extent: mgl64.Vec3{d, d, d},
		})
	})
	w.Raindrops.Each(func(id component.EntityID, d *component.Raindrop) {
		sprites = append(sprites, Sprite{
			ID: id, Kind: component.KindRaindrop, Position: d.Position,
			Extent: mgl64.Vec3{parameter.RainWidth, parameter.RainLength, parameter.RainWidth},
		})
	})
	sprites = append(sprites, Sprite{
		Kind:     component.KindPlane,
		Position: w.Player.Position,
		Rotation: w.Player.Rotation(),
		Extent:   mgl64.Vec3{2.4, 0.3, 1.2},
	})

	f.Sprites = sprites
}
