package engine

import "github.com/lixenwraith/paperflight/component"

// Renderer draws one simulation frame; the Frame is reused and valid only during the call
type Renderer interface {
	Render(f *Frame)
}

// InputSource reports the logical button state, polled once per tick
type InputSource interface {
	Poll() component.Controls
}

// Stats is the HUD readout pushed each tick
type Stats struct {
	Score    int
	Speed    float64
	Altitude float64
}

// UiSink receives HUD and session result updates
type UiSink interface {
	UpdateStats(s Stats)
	SetModeLabel(label string)
	ShowResult(finalScore int, challengeComplete bool)
	SetResultVisible(visible bool)
}

// System is a per-tick simulation step, run in ascending priority
type System interface {
	Priority() int
	Update(w *World)
}

// NopRenderer discards frames, used by headless runs
type NopRenderer struct{}

func (NopRenderer) Render(*Frame) {}

// NopUiSink discards HUD updates
type NopUiSink struct{}

func (NopUiSink) UpdateStats(Stats)     {}
func (NopUiSink) SetModeLabel(string)   {}
func (NopUiSink) ShowResult(int, bool)  {}
func (NopUiSink) SetResultVisible(bool) {}
