package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/paperflight/audio"
	"github.com/lixenwraith/paperflight/config"
	"github.com/lixenwraith/paperflight/core"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/game"
	"github.com/lixenwraith/paperflight/input"
	"github.com/lixenwraith/paperflight/render"
	"github.com/lixenwraith/paperflight/status"
)

const usage = `usage: paperflight [flags]
  -config path     TOML config file (default paperflight.toml)
  -env path        .env file (default .env)
  -seed n          random seed, 0 for time-based
  -mode name       endless or challenge
  -tick-rate n     simulation ticks per second
  -mute            disable audio
  -metrics         show the metrics line
  -debug           write logs/paperflight.log
  -headless        fly on the autopilot without a terminal
  -ticks n         headless tick limit
`

func main() {
	// Restore the terminal before reporting a panic on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stdout, usage)
			return
		}
		fmt.Fprintf(os.Stderr, "paperflight: %v\n%s", err, usage)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: file=%q env=%q mode=%s tick_rate=%d", cfg.ConfigFile, cfg.EnvFile, cfg.Mode, cfg.TickRate)

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if cfg.Headless {
		if err := runHeadless(cfg, seed, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "paperflight: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, seed); err != nil {
		fmt.Fprintf(os.Stderr, "paperflight: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the life of the process, restarting sessions until quit
func run(cfg *config.Config, seed uint64) error {
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Init(); err != nil {
		// Audio is optional
		log.Printf("audio disabled: %v", err)
		sound.SetMuted(true)
	}
	defer sound.Close()

	initial, repeat := cfg.Holds()
	latch := input.NewKeyLatch(keys, nil, initial, repeat)

	reg := status.NewRegistry()
	renderer := render.NewTerminalRenderer(screen, reg)
	renderer.SetShowMetrics(cfg.Render.ShowMetrics)
	renderer.SetMuted(sound.Muted())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	actions := make(chan input.Action, 32)
	core.Go(func() { pumpEvents(screen, latch, renderer, actions) })

	d := &driver{
		cfg:      cfg,
		renderer: renderer,
		sound:    sound,
		latch:    latch,
		status:   reg,
		actions:  actions,
		cancel:   cancel,
	}
	mode := cfg.GameMode()
	for {
		sess, host := d.newSession(seed, mode)
		if !d.play(ctx, sess, host) {
			return nil
		}
		mode = sess.World.State.Mode()
		if !d.awaitRestart(ctx) {
			return nil
		}
		seed++
	}
}

// pumpEvents forwards key commands until the screen is finalized
// Held controls only update the latch
func pumpEvents(screen tcell.Screen, latch *input.KeyLatch, renderer *render.TerminalRenderer, actions chan<- input.Action) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			a := latch.HandleKey(ev)
			if a == input.ActionNone || a.Held() {
				continue
			}
			select {
			case actions <- a:
			default:
				log.Printf("input: dropped %s", a)
			}
		case *tcell.EventResize:
			screen.Sync()
			renderer.Refresh()
		}
	}
}

// driver routes commands to the current session
type driver struct {
	cfg      *config.Config
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	latch    *input.KeyLatch
	status   *status.Registry
	actions  <-chan input.Action
	cancel   context.CancelFunc
}

func (d *driver) newSession(seed uint64, mode engine.GameMode) (*game.Session, *engine.ClockScheduler) {
	d.latch.Release()
	d.renderer.SetPaused(false)
	sess := game.NewSession(game.Options{
		Seed:     seed,
		Mode:     mode,
		Renderer: d.renderer,
		Input:    d.latch,
		Ui:       d.renderer,
		Status:   d.status,
		Handlers: []event.Handler{d.sound, game.EventLogger{}},
	})
	return sess, engine.NewClockScheduler(sess.Scheduler, nil, d.cfg.TickInterval())
}

// play runs the session in real time; false means the player quit
func (d *driver) play(ctx context.Context, sess *game.Session, host *engine.ClockScheduler) bool {
	done := make(chan error, 1)
	core.Go(func() { done <- host.Run(ctx) })
	defer host.Stop()

	for {
		select {
		case err := <-done:
			if err != nil {
				log.Printf("session stopped: %v", err)
				return false
			}
			return sess.Over()
		case a := <-d.actions:
			switch a {
			case input.ActionQuit:
				d.cancel()
			case input.ActionToggleMode:
				host.Post(func() { sess.Loop.ToggleMode() })
			case input.ActionPause:
				d.renderer.SetPaused(host.TogglePause())
			default:
				d.common(a)
			}
		}
	}
}

// awaitRestart blocks on the result screen; false means quit
func (d *driver) awaitRestart(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case a := <-d.actions:
			switch a {
			case input.ActionQuit:
				return false
			case input.ActionRestart:
				log.Printf("restart requested")
				return true
			default:
				d.common(a)
			}
		}
	}
}

// common handles commands valid in any phase
func (d *driver) common(a input.Action) {
	switch a {
	case input.ActionMute:
		d.renderer.SetMuted(d.sound.ToggleMute())
		d.renderer.Refresh()
	case input.ActionMetrics:
		d.renderer.ToggleMetrics()
		d.renderer.Refresh()
	}
}
