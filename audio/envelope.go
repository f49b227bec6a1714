package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, att, rel time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	a, r := rate.N(att), rate.N(rel)
	if a+r > total {
		a, r = total/2, total-total/2
	}
	return &envelope{streamer: s, attack: a, release: r, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	if len(samples) == 0 {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }
