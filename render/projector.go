package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/engine"
)

// cellAspect is the height-to-width ratio of a terminal cell
const cellAspect = 2.0

// Projector maps world points to terminal cells for one frame
type Projector struct {
	vp     mgl64.Mat4
	eye    mgl64.Vec3
	width  int
	height int
	top    int
}

// NewProjector builds the view-projection for a viewport of width x height cells starting at row top
func NewProjector(cam engine.Camera, width, height, top int) Projector {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / (float64(height) * cellAspect)
	}
	return Projector{
		vp:     cam.Projection(aspect).Mul4(cam.View()),
		eye:    cam.Eye,
		width:  width,
		height: height,
		top:    top,
	}
}

// Project returns the cell for p and its clip-space depth
// ok is false for points behind the camera
func (pr Projector) Project(p mgl64.Vec3) (x, y int, depth float64, ok bool) {
	clip := pr.vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return 0, 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	fx := (nx + 1) / 2 * float64(pr.width)
	fy := (1 - ny) / 2 * float64(pr.height)
	return int(fx), int(fy) + pr.top, w, true
}

// Distance returns the eye distance to p, used for painter ordering
func (pr Projector) Distance(p mgl64.Vec3) float64 {
	return p.Sub(pr.eye).Len()
}

// Rect is an inclusive cell rectangle
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports a degenerate rectangle
func (r Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// ProjectBox returns the screen bounds of the box centered at c with full size ext
// ok is false if every corner is behind the camera
func (pr Projector) ProjectBox(c, ext mgl64.Vec3) (Rect, bool) {
	half := ext.Mul(0.5)
	r := Rect{X0: 1 << 30, Y0: 1 << 30, X1: -1 << 30, Y1: -1 << 30}
	seen := false
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{
			c.X() + sign(i&1)*half.X(),
			c.Y() + sign(i&2)*half.Y(),
			c.Z() + sign(i&4)*half.Z(),
		}
		x, y, _, ok := pr.Project(corner)
		if !ok {
			continue
		}
		seen = true
		r.X0, r.X1 = min(r.X0, x), max(r.X1, x)
		r.Y0, r.Y1 = min(r.Y0, y), max(r.Y1, y)
	}
	return r, seen
}

// Clip limits r to the viewport
func (pr Projector) Clip(r Rect) Rect {
	r.X0 = max(r.X0, 0)
	r.Y0 = max(r.Y0, pr.top)
	r.X1 = min(r.X1, pr.width-1)
	r.Y1 = min(r.Y1, pr.top+pr.height-1)
	return r
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}
