package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

const statusPrompt = " Press 'q' to exit, any other key to continue "

// trigger is what one input event asks of the game
type trigger int

const (
	triggerRedraw trigger = iota
	triggerAdvance
	triggerQuit
)

// triggerFor maps a terminal event to a trigger: q, Escape and Ctrl-C quit, any other key advances
func triggerFor(ev tcell.Event) trigger {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return triggerRedraw
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return triggerQuit
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return triggerQuit
		}
	}
	return triggerAdvance
}

// worldSize picks the grid dimensions, filling the terminal when the config leaves them at 0
func worldSize(config utils.Config, cols, rows int) (int, int) {
	width, height := config.Width, config.Height
	if width == 0 {
		width = cols
	}
	if height == 0 {
		// keep the last row for the status line
		height = rows - 1
	}
	return width, height
}

// game ties a world to its renderer and bookkeeping
type game struct {
	world    *model.World
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  model.History

	generation  int
	lastAdvance time.Time
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, width, height int) (*game, error) {
	var src model.RandomSource
	if config.Seed != 0 {
		src = model.NewRNG(config.Seed)
	}

	world, err := model.NewWorld(width, height, src)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create world")
	}

	g := &game{
		world:       world,
		renderer:    model.NewTerminalRenderer(config.AliveRune(), config.DeadRune()),
		stats:       utils.NewStats(),
		lastAdvance: time.Now(),
	}
	g.stats.Update(0, world.Population(), 0)
	return g, nil
}

// advance moves the world on by one generation
func (g *game) advance() {
	g.history.Record(g.world.Hash())
	g.world.Advance()
	g.generation++

	now := time.Now()
	g.stats.Update(g.generation, g.world.Population(), now.Sub(g.lastAdvance))
	g.lastAdvance = now
}

// status describes the current generation for the status line
func (g *game) status() string {
	state := "Active"
	if g.history.Stagnant(g.world.Hash()) {
		state = "Stagnant"
	}
	if g.stats.Population == 0 {
		state = "Extinct"
	}
	return fmt.Sprintf("%s| Gen: %d | Living: %d | Status: %s ",
		statusPrompt, g.generation, g.stats.Population, state)
}

func (g *game) draw(screen tcell.Screen) {
	g.renderer.Display(screen, g.world, g.status())
}

// run draws the world and reacts to events until asked to quit.
//
// The world is only ever touched from this goroutine.
func (g *game) run(ctx context.Context, screen tcell.Screen, events <-chan tcell.Event, tick <-chan time.Time) error {
	g.draw(screen)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			g.advance()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch triggerFor(ev) {
			case triggerQuit:
				return nil
			case triggerAdvance:
				g.advance()
			case triggerRedraw:
				screen.Sync()
			}
		}
		g.draw(screen)
	}
}

// printGenerations writes the current generation and the next n as text, separated by blank lines
func (g *game) printGenerations(out io.Writer, n int) error {
	if err := g.renderer.WriteText(out, g.world); err != nil {
		return errors.Wrap(err, "[printGenerations] failed to write generation 0")
	}
	for range n {
		g.advance()
		if _, err := fmt.Fprintln(out); err != nil {
			return errors.Wrap(err, "[printGenerations] failed to write separator")
		}
		if err := g.renderer.WriteText(out, g.world); err != nil {
			return errors.Wrapf(err, "[printGenerations] failed to write generation %d", g.generation)
		}
	}
	return nil
}

// displayFinalStats shows a summary once the terminal has been released
func displayFinalStats(out io.Writer, g *game) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		g.generation, g.stats.Runtime().Seconds())
	fmt.Fprintf(out, "Living: %d | Avg Pop: %.1f\n",
		g.stats.Population, g.stats.AveragePopulation)
}
