package audio

// Config controls the sound effects output
type Config struct {
	Enabled    bool
	Volume     float64 // master gain in [0, 1]
	SampleRate int
	Seed       uint64 // noise source seed
}

// DefaultConfig returns audio enabled at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// normalized clamps the volume and fills a missing sample rate
func (c Config) normalized() Config {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultConfig().SampleRate
	}
	return c
}
