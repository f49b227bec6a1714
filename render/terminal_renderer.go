package render

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/status"
)

// HUD rows reserved above and below the viewport
const (
	hudTop    = 1
	hudBottom = 1
)

// TerminalRenderer draws frames and the HUD on a tcell screen
// Implements engine.Renderer and engine.UiSink
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	status *status.Registry

	stats         engine.Stats
	modeLabel     string
	finalScore    int
	complete      bool
	resultVisible bool
	paused        bool
	showMetrics   bool
	muted         bool

	order []int
}

// NewTerminalRenderer wraps an initialized screen; reg may be nil
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		status: reg,
	}
}

// UpdateStats stores the HUD readout drawn with the next frame
func (r *TerminalRenderer) UpdateStats(s engine.Stats) {
	r.mu.Lock()
	r.stats = s
	r.mu.Unlock()
}

func (r *TerminalRenderer) SetModeLabel(label string) {
	r.mu.Lock()
	r.modeLabel = label
	r.mu.Unlock()
}

func (r *TerminalRenderer) ShowResult(finalScore int, challengeComplete bool) {
	r.mu.Lock()
	r.finalScore = finalScore
	r.complete = challengeComplete
	r.mu.Unlock()
}

// SetResultVisible shows or hides the result panel and redraws the overlay immediately
func (r *TerminalRenderer) SetResultVisible(visible bool) {
	r.mu.Lock()
	r.resultVisible = visible
	r.mu.Unlock()
	if visible {
		r.Refresh()
	}
}

// SetPaused toggles the pause banner
func (r *TerminalRenderer) SetPaused(paused bool) {
	r.mu.Lock()
	r.paused = paused
	r.mu.Unlock()
	r.Refresh()
}

// SetMuted toggles the mute marker in the HUD
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.mu.Lock()
	r.muted = muted
	r.mu.Unlock()
}

// ToggleMetrics flips the metrics line and returns the new state
func (r *TerminalRenderer) ToggleMetrics() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showMetrics = !r.showMetrics
	return r.showMetrics
}

// SetShowMetrics sets the metrics line visibility
func (r *TerminalRenderer) SetShowMetrics(show bool) {
	r.mu.Lock()
	r.showMetrics = show
	r.mu.Unlock()
}

// Render draws the scene, HUD and overlays
func (r *TerminalRenderer) Render(f *engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.screen.Size()
	viewH := height - hudTop - hudBottom
	if width <= 0 || viewH <= 0 {
		return
	}

	pr := NewProjector(f.Camera, width, viewH, hudTop)
	light := daylight(f.Sun.Y(), parameter.SunOrbitRadius)

	r.drawSky(pr, f, width, viewH, light)
	r.drawSprites(pr, f, light)
	r.drawHud(width, height, f)
	r.drawOverlay(width, height)
	r.screen.Show()
}

// Refresh redraws the HUD and overlays over the current scene
func (r *TerminalRenderer) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.drawHud(width, height, nil)
	r.drawOverlay(width, height)
	r.screen.Show()
}

// drawSky fills the viewport with a sky gradient above the projected horizon and ground below it
func (r *TerminalRenderer) drawSky(pr Projector, f *engine.Frame, width, viewH int, light float64) {
	horizon := hudTop + viewH/2
	far := f.Camera.Eye.Add(mgl64.Vec3{0, -f.Camera.Eye.Y(), -parameter.CameraFar * 0.9})
	if _, y, _, ok := pr.Project(far); ok {
		horizon = y
	}

	day := lerpColor(RgbNight, RgbSkyHorizon, (light-0.35)/0.65)
	zenith := lerpColor(RgbNight, RgbSkyZenith, (light-0.35)/0.65)

	for y := hudTop; y < hudTop+viewH; y++ {
		var style tcell.Style
		if y < horizon {
			t := 1.0
			if horizon > hudTop {
				t = float64(y-hudTop) / float64(horizon-hudTop)
			}
			style = tcell.StyleDefault.Background(lerpColor(zenith, day, t))
		} else {
			ground := RgbGround
			if (y-horizon)%2 == 1 {
				ground = RgbGroundDark
			}
			style = tcell.StyleDefault.Background(lerpColor(RgbGroundDark, ground, light))
		}
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	// The sun is drawn in the view direction regardless of its depth side
	sunDir := mgl64.Vec3{f.Sun.X(), f.Sun.Y(), -math.Abs(f.Sun.Z())}
	if x, y, _, ok := pr.Project(f.Camera.Eye.Add(sunDir.Mul(10))); ok && f.Sun.Y() > 0 && y < horizon {
		r.put(pr, x, y, '●', tcell.StyleDefault.Foreground(RgbSun))
	}
}

// drawSprites paints far to near
func (r *TerminalRenderer) drawSprites(pr Projector, f *engine.Frame, light float64) {
	r.order = r.order[:0]
	for i := range f.Sprites {
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		return pr.Distance(f.Sprites[r.order[a]].Position) > pr.Distance(f.Sprites[r.order[b]].Position)
	})

	for _, i := range r.order {
		s := &f.Sprites[i]
		switch s.Kind {
		case component.KindCloud:
			r.fillBox(pr, s.Position, s.Extent, '░', tcell.StyleDefault.Foreground(RgbCloud))
		case component.KindBuilding:
			r.drawBuilding(pr, s, light)
		case component.KindRing:
			r.drawRing(pr, s)
		case component.KindBird:
			if x, y, _, ok := pr.Project(s.Position); ok {
				r.put(pr, x, y, 'v', tcell.StyleDefault.Foreground(RgbBird))
			}
		case component.KindRaindrop:
			if x, y, _, ok := pr.Project(s.Position); ok {
				r.put(pr, x, y, '╎', tcell.StyleDefault.Foreground(RgbRain))
			}
		case component.KindPlane:
			r.drawPlane(pr, s, f.Boosting)
		}
	}
}

func (r *TerminalRenderer) drawBuilding(pr Projector, s *engine.Sprite, light float64) {
	ch := '█'
	if s.Glass {
		ch = '▓'
	}
	body := tcell.StyleDefault.Foreground(shade(s.Color, light))
	rect, ok := r.fillBox(pr, s.Position, s.Extent, ch, body)
	if !ok {
		return
	}

	if s.Roof && rect.Y0 > pr.top {
		roof := tcell.StyleDefault.Foreground(RgbRoof)
		mid := (rect.X0 + rect.X1) / 2
		r.put(pr, mid, rect.Y0-1, '▄', roof)
	}

	// Windows are anchored at the building base
	base := s.Position.Sub(mgl64.Vec3{0, s.Extent.Y() / 2, 0})
	win := tcell.StyleDefault.Foreground(RgbWindow)
	for _, w := range s.Windows {
		if w.Face != component.FaceFront {
			continue
		}
		if x, y, _, ok := pr.Project(base.Add(w.Offset)); ok && x >= rect.X0 && x <= rect.X1 && y >= rect.Y0 && y <= rect.Y1 {
			r.put(pr, x, y, '▪', win)
		}
	}
}

func (r *TerminalRenderer) drawRing(pr Projector, s *engine.Sprite) {
	cx, cy, _, ok := pr.Project(s.Position)
	if !ok {
		return
	}
	ex, _, _, okx := pr.Project(s.Position.Add(mgl64.Vec3{s.Extent.X() / 2, 0, 0}))
	_, ey, _, oky := pr.Project(s.Position.Add(mgl64.Vec3{0, s.Extent.Y() / 2, 0}))
	style := tcell.StyleDefault.Foreground(RgbRing)
	if !okx || !oky {
		r.put(pr, cx, cy, 'o', style)
		return
	}

	rx := math.Abs(float64(ex - cx))
	ry := math.Abs(float64(ey - cy))
	if rx < 1 && ry < 1 {
		r.put(pr, cx, cy, 'o', style)
		return
	}
	steps := int(math.Max(8, (rx+ry)*4))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(rx*math.Cos(a)))
		y := cy + int(math.Round(ry*math.Sin(a)))
		r.put(pr, x, y, 'O', style)
	}
}

func (r *TerminalRenderer) drawPlane(pr Projector, s *engine.Sprite, boosting bool) {
	x, y, _, ok := pr.Project(s.Position)
	if !ok {
		return
	}
	color := RgbPlane
	if boosting {
		color = RgbBoost
	}
	style := tcell.StyleDefault.Foreground(color)

	// Roll is about z: positive rolls bank left
	body := '▲'
	switch roll := s.Rotation.Z(); {
	case roll > 0.15:
		body = '◣'
	case roll < -0.15:
		body = '◢'
	}
	r.put(pr, x-1, y, '─', style)
	r.put(pr, x, y, body, style)
	r.put(pr, x+1, y, '─', style)
}

// fillBox projects and fills a box, returning the clipped rectangle
func (r *TerminalRenderer) fillBox(pr Projector, c, ext mgl64.Vec3, ch rune, style tcell.Style) (Rect, bool) {
	rect, ok := pr.ProjectBox(c, ext)
	if !ok {
		return Rect{}, false
	}
	rect = pr.Clip(rect)
	if rect.Empty() {
		return rect, false
	}
	for y := rect.Y0; y <= rect.Y1; y++ {
		for x := rect.X0; x <= rect.X1; x++ {
			r.put(pr, x, y, ch, style)
		}
	}
	return rect, true
}

// put writes a cell inside the viewport, keeping the sky background
func (r *TerminalRenderer) put(pr Projector, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= pr.width || y < pr.top || y >= pr.top+pr.height {
		return
	}
	_, _, existing, _ := r.screen.GetContent(x, y)
	_, bg, _ := existing.Decompose()
	r.screen.SetContent(x, y, ch, nil, style.Background(bg))
}

func (r *TerminalRenderer) drawHud(width, height int, f *engine.Frame) {
	hud := tcell.StyleDefault.Foreground(RgbHudText).Background(RgbHudBg)
	line := fmt.Sprintf(" Score: %d   Speed: %.1f   Altitude: %.1f", r.stats.Score, r.stats.Speed, r.stats.Altitude)
	if f != nil && f.Mode == engine.ModeChallenge {
		line += fmt.Sprintf("   Rings left: %d", max(f.Goal, 0))
	}
	if r.muted {
		line += "   [muted]"
	}
	drawText(r.screen, 0, 0, width, line, hud)

	label := " [Tab] " + r.modeLabel + " "
	if lx := width - len([]rune(label)); lx > len([]rune(line))+1 {
		drawText(r.screen, lx, 0, len([]rune(label)), label, tcell.StyleDefault.Foreground(RgbModeText).Background(RgbModeBg))
	}

	bottom := " arrows/space: fly   p: pause   `: metrics   q: quit"
	if r.showMetrics && r.status != nil {
		bottom = " " + strings.Join(r.status.Lines(), "  ")
	}
	drawText(r.screen, 0, height-1, width, bottom, tcell.StyleDefault.Foreground(RgbMetrics).Background(RgbHudBg))
}

func (r *TerminalRenderer) drawOverlay(width, height int) {
	switch {
	case r.resultVisible:
		title, color := "GAME OVER", RgbCrash
		if r.complete {
			title, color = "CHALLENGE COMPLETE", RgbComplete
		}
		lines := []string{
			title,
			fmt.Sprintf("Final score: %d", r.finalScore),
			"",
			"[Enter] play again   [Esc] quit",
		}
		drawPanel(r.screen, width, height, lines, tcell.StyleDefault.Foreground(color).Background(RgbHudBg).Bold(true))
	case r.paused:
		drawPanel(r.screen, width, height, []string{"PAUSED", "", "[p] resume"}, tcell.StyleDefault.Foreground(RgbHudText).Background(RgbHudBg))
	}
}

// drawText writes s at (x, y) padded or cut to n cells
func drawText(screen tcell.Screen, x, y, n int, s string, style tcell.Style) {
	runes := []rune(s)
	for i := 0; i < n; i++ {
		ch := ' '
		if i < len(runes) {
			ch = runes[i]
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawPanel centers a boxed block of lines
func drawPanel(screen tcell.Screen, width, height int, lines []string, style tcell.Style) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	boxW, boxH := inner+4, len(lines)+2
	x0, y0 := (width-boxW)/2, (height-boxH)/2
	if x0 < 0 || y0 < 0 {
		x0, y0 = max(x0, 0), max(y0, 0)
	}

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			ch := ' '
			switch {
			case (y == 0 || y == boxH-1) && (x == 0 || x == boxW-1):
				ch = '+'
			case y == 0 || y == boxH-1:
				ch = '-'
			case x == 0 || x == boxW-1:
				ch = '|'
			}
			screen.SetContent(x0+x, y0+y, ch, nil, style)
		}
	}
	for i, l := range lines {
		pad := (inner - len([]rune(l))) / 2
		drawText(screen, x0+2+pad, y0+1+i, len([]rune(l)), l, style)
	}
}
