package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/paperflight/vmath"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundChime   SoundType = iota // ring collected
	SoundTick                     // building passed
	SoundCrash                    // collision
	SoundFanfare                  // challenge complete
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"chime", "tick", "crash", "fanfare"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Effect timing
const (
	chimeNote     = 90 * time.Millisecond
	tickDuration  = 25 * time.Millisecond
	crashDuration = 350 * time.Millisecond
	fanfareNote   = 110 * time.Millisecond
	fanfareFinal  = 260 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 40 * time.Millisecond
)

// Per-effect gain before the master volume
var effectGain = [soundTypeCount]float64{0.6, 0.25, 0.8, 0.7}

// sine returns an endless sine tone, silence if the frequency is above Nyquist
func sine(rate beep.SampleRate, freq float64) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

// note is a shaped sine of fixed length
func note(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return newEnvelope(beep.Take(rate.N(d), sine(rate, freq)), d, attack, release, rate)
}

// noise streams white noise for n samples; rng must not be shared with another goroutine
func noise(n int, rng vmath.Rand) beep.Streamer {
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Range(-1, 1)
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	}))
}

// buzz is a falling sawtooth, one sample of phase per frame
func buzz(rate beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos, phase := 0, 0.0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(total)
			freq := from + (to-from)*t
			v := 2 * (phase - 0.5)
			samples[i][0], samples[i][1] = v, v
			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	}))
}

// gain wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newEffect builds the unity-gain streamer for st, nil if unknown
// rng feeds the noise voices and is owned by the returned streamer
func newEffect(st SoundType, rate beep.SampleRate, rng vmath.Rand) beep.Streamer {
	switch st {
	case SoundChime:
		// E6 then A6
		return beep.Seq(note(rate, 1318.51, chimeNote), note(rate, 1760, chimeNote))
	case SoundTick:
		return note(rate, 1200, tickDuration)
	case SoundCrash:
		n := rate.N(crashDuration)
		return newEnvelope(beep.Mix(
			gain(buzz(rate, 180, 60, crashDuration), 0.6),
			gain(noise(n, rng), 0.4),
		), crashDuration, attack, 200*time.Millisecond, rate)
	case SoundFanfare:
		// C5 E5 G5 C6
		return beep.Seq(
			note(rate, 523.25, fanfareNote),
			note(rate, 659.25, fanfareNote),
			note(rate, 783.99, fanfareNote),
			note(rate, 1046.5, fanfareFinal),
		)
	default:
		return nil
	}
}

// effectDuration is the nominal length of st
func effectDuration(st SoundType) time.Duration {
	switch st {
	case SoundChime:
		return 2 * chimeNote
	case SoundTick:
		return tickDuration
	case SoundCrash:
		return crashDuration
	case SoundFanfare:
		return 3*fanfareNote + fanfareFinal
	default:
		return 0
	}
}
