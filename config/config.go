// Package config resolves runtime settings from defaults, a TOML file, a .env file,
// PAPERFLIGHT_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/paperflight/audio"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/input"
)

const (
	DefaultConfigPath = "paperflight.toml"
	DefaultEnvPath    = ".env"
	DefaultTickRate   = 60
	envPrefix         = "PAPERFLIGHT_"
)

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0 to 1
}

type InputConfig struct {
	InitialHoldMs int `toml:"initial_hold_ms"`
	HoldMs        int `toml:"hold_ms"`
}

type RenderConfig struct {
	ShowMetrics bool `toml:"show_metrics"`
}

// Config is the resolved settings for one process
type Config struct {
	Seed     int64  `toml:"seed"` // 0 picks a time-based seed
	Mode     string `toml:"mode"`
	TickRate int    `toml:"tick_rate"`
	Debug    bool   `toml:"debug"`
	Headless bool   `toml:"headless"`
	Ticks    int    `toml:"ticks"` // headless run length, 0 runs until game over

	Audio  AudioConfig  `toml:"audio"`
	Input  InputConfig  `toml:"input"`
	Render RenderConfig `toml:"render"`

	// Keys maps action names to key names, replacing the action's defaults
	Keys map[string][]string `toml:"keys"`

	// Sources that were actually read, for the startup log
	ConfigFile string `toml:"-"`
	EnvFile    string `toml:"-"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Mode:     engine.ModeEndless.String(),
		TickRate: DefaultTickRate,
		Audio:    AudioConfig{Enabled: true, Volume: 0.5},
		Input: InputConfig{
			InitialHoldMs: int(input.DefaultInitialHold / time.Millisecond),
			HoldMs:        int(input.DefaultRepeatHold / time.Millisecond),
		},
	}
}

// Load resolves the configuration for the given command-line arguments
func Load(args []string) (*Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet("paperflight", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("config", DefaultConfigPath, "TOML config file")
	envPath := flags.String("env", DefaultEnvPath, ".env file")
	seed := flags.Int64("seed", 0, "random seed, 0 for time-based")
	mode := flags.String("mode", "", "starting mode: endless or challenge")
	tickRate := flags.Int("tick-rate", 0, "simulation ticks per second")
	debug := flags.Bool("debug", false, "write logs/paperflight.log")
	headless := flags.Bool("headless", false, "run without a terminal using the autopilot")
	ticks := flags.Int("ticks", 0, "headless tick limit")
	mute := flags.Bool("mute", false, "disable audio")
	metrics := flags.Bool("metrics", false, "show the metrics line")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	if _, err := toml.DecodeFile(*configPath, cfg); err == nil {
		cfg.ConfigFile = *configPath
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file %s: %w", *configPath, err)
	}

	// godotenv never overrides variables already set in the process
	if err := godotenv.Load(*envPath); err == nil {
		cfg.EnvFile = *envPath
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("env file %s: %w", *envPath, err)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	// Only flags present on the command line override
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "mode":
			cfg.Mode = *mode
		case "tick-rate":
			cfg.TickRate = *tickRate
		case "debug":
			cfg.Debug = *debug
		case "headless":
			cfg.Headless = *headless
		case "ticks":
			cfg.Ticks = *ticks
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "metrics":
			cfg.Render.ShowMetrics = *metrics
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv reads PAPERFLIGHT_* overrides through lookup
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("env %sSEED: %w", envPrefix, err)
		}
		cfg.Seed = n
	}
	if v, ok := get("MODE"); ok {
		cfg.Mode = v
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"TICK_RATE", &cfg.TickRate},
		{"INITIAL_HOLD_MS", &cfg.Input.InitialHoldMs},
		{"HOLD_MS", &cfg.Input.HoldMs},
	}
	for _, e := range ints {
		if v, ok := get(e.name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", envPrefix, e.name, err)
			}
			*e.dst = n
		}
	}
	bools := []struct {
		name string
		dst  *bool
	}{
		{"AUDIO_ENABLED", &cfg.Audio.Enabled},
		{"SHOW_METRICS", &cfg.Render.ShowMetrics},
		{"DEBUG", &cfg.Debug},
	}
	for _, e := range bools {
		if v, ok := get(e.name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", envPrefix, e.name, err)
			}
			*e.dst = b
		}
	}
	// Volume is 0-100 in the environment
	if v, ok := get("AUDIO_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %sAUDIO_VOLUME: %w", envPrefix, err)
		}
		cfg.Audio.Volume = float64(n) / 100
	}
	return nil
}

// Validate rejects unusable values and clamps the volume
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	if _, ok := engine.ParseGameMode(c.Mode); !ok {
		return fmt.Errorf("mode %q: want endless or challenge", c.Mode)
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("tick_rate %d: want 1..1000", c.TickRate)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks %d: must not be negative", c.Ticks)
	}
	if c.Input.InitialHoldMs < 0 || c.Input.HoldMs < 0 {
		return fmt.Errorf("input hold times must not be negative")
	}
	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	return nil
}

// GameMode returns the validated starting mode
func (c *Config) GameMode() engine.GameMode {
	m, _ := engine.ParseGameMode(c.Mode)
	return m
}

// TickInterval returns the wall-clock period of one tick
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// AudioSettings converts to the sound manager configuration
func (c *Config) AudioSettings() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.Volume = c.Audio.Volume
	a.Seed = uint64(c.Seed)
	return a
}

// KeyTable returns the default bindings with Keys applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return kt, nil
	}
	if err := kt.Bind(c.Keys); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return kt, nil
}

// Holds returns the key latch windows
func (c *Config) Holds() (initial, repeat time.Duration) {
	return time.Duration(c.Input.InitialHoldMs) * time.Millisecond,
		time.Duration(c.Input.HoldMs) * time.Millisecond
}
