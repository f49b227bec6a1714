package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/vmath"
)

// SoundManager plays sound effects in response to game events
// Implements event.Handler
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	rngMu sync.Mutex
	rng   *vmath.FastRand

	// sink receives every effect; defaults to the speaker mixer
	sink func(beep.Streamer)
}

// NewSoundManager creates a manager; no device is opened until Init
func NewSoundManager(cfg Config) *SoundManager {
	cfg = cfg.normalized()
	sm := &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		rng:   vmath.NewFastRand(cfg.Seed),
	}
	sm.sink = sm.addToMixer
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Init opens the speaker; a disabled manager skips the device
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences pending effects
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	sm.mu.Lock()
	ready := sm.initialized
	sm.mu.Unlock()
	if !ready {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Play queues st at the configured volume unless muted
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}
	// Each effect gets its own generator since it streams on the speaker goroutine
	sm.rngMu.Lock()
	seed := sm.rng.Next()
	sm.rngMu.Unlock()

	s := newEffect(st, sm.rate, vmath.NewFastRand(seed))
	if s == nil {
		return
	}
	sm.sink(gain(s, effectGain[st]*sm.cfg.Volume))
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			log.Printf("audio: muted=%v", !old)
			return !old
		}
	}
}

func (sm *SoundManager) SetMuted(muted bool) { sm.muted.Store(muted) }
func (sm *SoundManager) Muted() bool        { return sm.muted.Load() }

func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRingCollected,
		event.EventBuildingPassed,
		event.EventCollision,
		event.EventGameOver,
	}
}

func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRingCollected:
		sm.Play(SoundChime)
	case event.EventBuildingPassed:
		sm.Play(SoundTick)
	case event.EventCollision:
		sm.Play(SoundCrash)
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok && p.ChallengeComplete {
			sm.Play(SoundFanfare)
		}
	}
}
