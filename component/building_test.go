package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/vmath"
)

func TestNewBuildingRanges(t *testing.T) {
	r := vmath.NewFastRand(99)
	shapes := make(map[BuildingShape]int)

	for i := 0; i < 500; i++ {
		b := NewBuilding(r)
		shapes[b.Shape]++

		if b.Position.X() < parameter.BuildingMinX || b.Position.X() > parameter.BuildingMaxX {
			t.Fatalf("x = %v out of range", b.Position.X())
		}
		if b.Position.Z() > -parameter.BuildingSpawnNearZ || b.Position.Z() < -parameter.BuildingSpawnNearZ-parameter.BuildingSpawnDepth {
			t.Fatalf("z = %v out of range", b.Position.Z())
		}
		if b.Position.Y() != b.Height/2 {
			t.Fatalf("building must rest on the ground: y=%v height=%v", b.Position.Y(), b.Height)
		}
		if want := int(math.Floor(b.Height / 2)); len(b.Windows) != want {
			t.Fatalf("windows = %d, want %d for height %v", len(b.Windows), want, b.Height)
		}
		for _, w := range b.Windows {
			if w.Offset.Y() <= 0 || w.Offset.Y() >= b.Height {
				t.Fatalf("window row y=%v outside body of height %v", w.Offset.Y(), b.Height)
			}
		}

		switch b.Shape {
		case ShapeBox:
			if b.Width < 2 || b.Width > 5 || b.Height < 5 || b.Height > 20 {
				t.Fatalf("box dims out of range: %+v", b)
			}
		case ShapeCylinder:
			if b.RadiusTop < 1 || b.RadiusTop > 3 || b.Height < 5 || b.Height > 25 {
				t.Fatalf("cylinder dims out of range: %+v", b)
			}
		case ShapeWideBox:
			if b.Width < 3 || b.Width > 8 || b.Height < 5 || b.Height > 17 {
				t.Fatalf("wide box dims out of range: %+v", b)
			}
		default:
			t.Fatalf("unexpected shape %d", b.Shape)
		}
		if b.Glass && b.Color != GlassColor {
			t.Fatalf("glass building color = %#x", b.Color)
		}
	}

	if len(shapes) != 3 {
		t.Errorf("expected all three shapes over 500 draws, got %v", shapes)
	}
}

func TestBuildingBounds(t *testing.T) {
	b := Building{Shape: ShapeBox, Width: 4, Height: 10, Depth: 2}
	b.Position[1] = 5

	box := b.Bounds()
	if box.Min.Y() != 0 || box.Max.Y() != 10 {
		t.Errorf("y span = [%v,%v], want [0,10]", box.Min.Y(), box.Max.Y())
	}
	if box.Min.X() != -2 || box.Max.Z() != 1 {
		t.Errorf("unexpected footprint %v", box)
	}

	b.Roof = true
	if got := b.Bounds().Max.Y(); got != 10+parameter.BuildingRoofSize {
		t.Errorf("roof top = %v, want %v", got, 10+parameter.BuildingRoofSize)
	}

	cyl := Building{Shape: ShapeCylinder, RadiusTop: 1, RadiusBottom: 2.5, Height: 6}
	if half := cyl.HalfExtents(); half.X() != 2.5 || half.Z() != 2.5 || half.Y() != 3 {
		t.Errorf("cylinder half extents = %v", half)
	}
}

func TestBuildingRecycle(t *testing.T) {
	r := vmath.NewFastRand(3)
	b := NewBuilding(r)
	b.Position[2] = 10.04

	for i := 0; i < 50; i++ {
		b.Recycle(r)
		if b.Position.Z() != parameter.BuildingRespawnZ {
			t.Fatalf("z = %v after recycle", b.Position.Z())
		}
		if b.Position.X() < -20 || b.Position.X() > 20 {
			t.Fatalf("x = %v after recycle", b.Position.X())
		}
	}
}
