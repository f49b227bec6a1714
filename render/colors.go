package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbSkyZenith  = tcell.NewRGBColor(70, 130, 180)  // Steel blue
	RgbSkyHorizon = tcell.NewRGBColor(135, 206, 235) // Sky blue, the scene background
	RgbNight      = tcell.NewRGBColor(20, 24, 48)    // Sky with the sun below the horizon
	RgbGround     = tcell.NewRGBColor(85, 107, 47)   // Dark olive
	RgbGroundDark = tcell.NewRGBColor(60, 75, 35)

	RgbCloud    = tcell.NewRGBColor(255, 255, 255)
	RgbRain     = tcell.NewRGBColor(170, 170, 170)
	RgbRing     = tcell.NewRGBColor(255, 215, 0) // Gold
	RgbBird     = tcell.NewRGBColor(20, 20, 20)
	RgbPlane    = tcell.NewRGBColor(255, 255, 255)
	RgbBoost    = tcell.NewRGBColor(255, 230, 120)
	RgbWindow   = tcell.NewRGBColor(255, 230, 150)
	RgbRoof     = tcell.NewRGBColor(110, 110, 110)
	RgbSun      = tcell.NewRGBColor(255, 240, 170)
	RgbHudText  = tcell.NewRGBColor(255, 255, 255)
	RgbHudBg    = tcell.NewRGBColor(20, 20, 30)
	RgbModeBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeText = tcell.NewRGBColor(0, 0, 0)
	RgbCrash    = tcell.NewRGBColor(220, 60, 60)
	RgbComplete = tcell.NewRGBColor(80, 200, 120)
	RgbMetrics  = tcell.NewRGBColor(180, 180, 180)
)

// hexColor converts 0xRRGGBB to a terminal color
func hexColor(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xff), int32(c>>8&0xff), int32(c&0xff))
}

// shade scales a 0xRRGGBB color by f in [0, 1]
func shade(c uint32, f float64) tcell.Color {
	f = math.Max(0, math.Min(1, f))
	r := float64(c>>16&0xff) * f
	g := float64(c>>8&0xff) * f
	b := float64(c&0xff) * f
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// lerpColor blends two colors, t in [0, 1]
func lerpColor(a, b tcell.Color, t float64) tcell.Color {
	t = math.Max(0, math.Min(1, t))
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return tcell.NewRGBColor(
		ar+int32(float64(br-ar)*t),
		ag+int32(float64(bg-ag)*t),
		ab+int32(float64(bb-ab)*t),
	)
}

// daylight maps sun height to a light factor, night floor 0.35
func daylight(sunY, orbit float64) float64 {
	if orbit <= 0 {
		return 1
	}
	return 0.35 + 0.65*math.Max(0, math.Min(1, (sunY/orbit+1)/2))
}
