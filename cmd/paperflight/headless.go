package main

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/paperflight/component"
	"github.com/lixenwraith/paperflight/config"
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/event"
	"github.com/lixenwraith/paperflight/game"
	"github.com/lixenwraith/paperflight/input"
	"github.com/lixenwraith/paperflight/parameter"
	"github.com/lixenwraith/paperflight/status"
)

// headlessTickCap bounds a run with no tick limit: ten simulated minutes
const headlessTickCap = 10 * 60 * 60

// runHeadless flies one session on the autopilot in virtual time and writes a summary to out
func runHeadless(cfg *config.Config, seed uint64, out io.Writer) error {
	reg := status.NewRegistry()
	pilot := &deferredInput{}

	sess := game.NewSession(game.Options{
		Seed:     seed,
		Mode:     cfg.GameMode(),
		Input:    pilot,
		Status:   reg,
		Handlers: []event.Handler{game.EventLogger{}},
	})
	pilot.src = input.NewAutopilot(&sess.World.Player, parameter.PlayerStartY)

	limit := cfg.Ticks
	if limit <= 0 {
		limit = headlessTickCap
	}
	ran := sess.RunTicks(limit)

	result := "running"
	if sess.Over() {
		result = "game over"
		if sess.World.State.Reason() == engine.ReasonChallengeComplete {
			result = "challenge complete"
		}
	}
	log.Printf("headless: seed=%d ticks=%d result=%s", seed, ran, result)

	if _, err := fmt.Fprintf(out, "seed=%d ticks=%d result=%s score=%.1f\n", seed, ran, result, sess.World.State.Score()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	for _, line := range reg.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

// deferredInput lets the autopilot be bound after the session creates the plane
type deferredInput struct {
	src engine.InputSource
}

func (d *deferredInput) Poll() (c component.Controls) {
	if d.src == nil {
		return c
	}
	return d.src.Poll()
}
