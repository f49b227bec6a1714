package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/vmath"
)

// BuildingShape selects the footprint generator
type BuildingShape uint8

const (
	ShapeBox BuildingShape = iota
	ShapeCylinder
	ShapeWideBox

	buildingShapeCount
)

// GlassColor tints glass towers
const GlassColor uint32 = 0xadd8e6

// WindowFace identifies the building face a window is mounted on
type WindowFace uint8

const (
	FaceFront WindowFace = iota // +z, toward the camera
	FaceBack                    // -z
	FaceLeft                    // -x
	FaceRight                   // +x
)

// Window is a cosmetic decoration in building-local space
// Offset.Y is measured from the ground, not the building center
type Window struct {
	Face   WindowFace
	Width  float64
	Height float64
	Offset mgl64.Vec3
}

// Building is a recycled obstacle; cosmetics are generated once and kept across recycles
type Building struct {
	Position mgl64.Vec3
	Shape    BuildingShape

	// Width and Depth are the footprint, for cylinders twice the top and bottom radii
	Width  float64
	Height float64
	Depth  float64

	RadiusTop    float64
	RadiusBottom float64

	Glass   bool
	Color   uint32
	Roof    bool
	Windows []Window
}

// NewBuilding draws a building with randomized shape, cosmetics and initial placement
func NewBuilding(r vmath.Rand) Building {
	b := Building{Shape: BuildingShape(int(r.Float64() * float64(buildingShapeCount)))}

	switch b.Shape {
	case ShapeCylinder:
		b.RadiusTop = r.Range(1, 3)
		b.RadiusBottom = r.Range(1, 3)
		b.Height = r.Range(5, 25)
		b.Width = b.RadiusTop * 2
		b.Depth = b.RadiusBottom * 2
	case ShapeWideBox:
		b.Width = r.Range(3, 8)
		b.Height = r.Range(5, 17)
		b.Depth = r.Range(3, 8)
	default:
		b.Shape = ShapeBox
		b.Width = r.Range(2, 5)
		b.Height = r.Range(5, 20)
		b.Depth = r.Range(2, 5)
	}

	b.Glass = r.Float64() > 1-parameter.BuildingGlassChance
	if b.Glass {
		b.Color = GlassColor
	} else {
		b.Color = uint32(r.Float64() * 0xffffff)
	}

	b.Position = mgl64.Vec3{
		r.Range(parameter.BuildingMinX, parameter.BuildingMaxX),
		b.Height / 2,
		-r.Range(parameter.BuildingSpawnNearZ, parameter.BuildingSpawnNearZ+parameter.BuildingSpawnDepth),
	}

	b.Roof = r.Float64() > 1-parameter.BuildingRoofChance
	b.Windows = generateWindows(r, b.Width, b.Height, b.Depth)
	return b
}

// generateWindows places one window per floor on a random face
// All windows of a building share one size, as a single mesh template
func generateWindows(r vmath.Rand, width, height, depth float64) []Window {
	ww := r.Range(0.3, 0.8)
	wh := r.Range(0.3, 0.8)
	count := int(math.Floor(height / parameter.BuildingWindowSpacing))

	windows := make([]Window, 0, count)
	for j := 0; j < count; j++ {
		face := WindowFace(int(r.Float64() * 4))
		y := float64(j)*parameter.BuildingWindowSpacing + 1
		w := Window{Face: face, Width: ww, Height: wh}

		switch face {
		case FaceFront:
			w.Offset = mgl64.Vec3{(r.Float64() - 0.5) * (width - parameter.BuildingWindowInset), y, depth/2 + parameter.BuildingWindowOffset}
		case FaceBack:
			w.Offset = mgl64.Vec3{(r.Float64() - 0.5) * (width - parameter.BuildingWindowInset), y, -depth/2 - parameter.BuildingWindowOffset}
		case FaceLeft:
			w.Offset = mgl64.Vec3{-width/2 - parameter.BuildingWindowOffset, y, (r.Float64() - 0.5) * (depth - parameter.BuildingWindowInset)}
		default:
			w.Face = FaceRight
			w.Offset = mgl64.Vec3{width/2 + parameter.BuildingWindowOffset, y, (r.Float64() - 0.5) * (depth - parameter.BuildingWindowInset)}
		}
		windows = append(windows, w)
	}
	return windows
}

// HalfExtents returns the collision half sizes of the main volume, roof excluded
func (b *Building) HalfExtents() mgl64.Vec3 {
	if b.Shape == ShapeCylinder {
		r := math.Max(b.RadiusTop, b.RadiusBottom)
		return mgl64.Vec3{r, b.Height / 2, r}
	}
	return mgl64.Vec3{b.Width / 2, b.Height / 2, b.Depth / 2}
}

// LocalBounds returns the collision volume around the building center, including roof detail
func (b *Building) LocalBounds() vmath.AABB {
	half := b.HalfExtents()
	box := vmath.AABB{Min: half.Mul(-1), Max: half}
	if b.Roof {
		box.Max[1] += parameter.BuildingRoofSize
	}
	return box
}

// Bounds returns the world-space collision volume
func (b *Building) Bounds() vmath.AABB {
	return b.LocalBounds().Translate(b.Position)
}

// Recycle moves a building that passed the camera back to the far edge with a new x
func (b *Building) Recycle(r vmath.Rand) {
	b.Position[2] = parameter.BuildingRespawnZ
	b.Position[0] = r.Range(parameter.BuildingMinX, parameter.BuildingMaxX)
}
