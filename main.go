package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus/utils"
)

const (
	defaultConfigPath = "config.json"

	// used by -print when the config does not fix the dimensions
	headlessWidth  = 60
	headlessHeight = 30
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to a JSON configuration file")
	printGens := flag.Int("print", -1, "print this many generations as text instead of opening the terminal")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *printGens >= 0 {
		width, height := worldSize(config, headlessWidth, headlessHeight+1)
		g, err := initializeGame(config, width, height)
		if err != nil {
			log.Fatalf("starting game: %v", err)
		}
		if err = g.printGenerations(os.Stdout, *printGens); err != nil {
			log.Fatalf("printing generations: %v", err)
		}
		return
	}

	if err = runTerminal(ctx, config); err != nil {
		log.Fatalf("running game: %v", err)
	}
}

// loadConfig falls back to defaults when the default config file does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		fmt.Println("Using default configuration (config.json not found)")
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// runTerminal takes over the terminal until the user quits or a signal arrives
func runTerminal(ctx context.Context, config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerminal] failed to initialize screen")
	}

	cols, rows := screen.Size()
	width, height := worldSize(config, cols, rows)
	g, err := initializeGame(config, width, height)
	if err != nil {
		screen.Fini()
		return err
	}

	if err = play(ctx, screen, g, config.FrameRate); err != nil {
		return err
	}
	displayFinalStats(os.Stdout, g)
	return nil
}

// play runs the game loop alongside a goroutine pumping terminal events into it.
// The screen is finalized before play returns.
func play(ctx context.Context, screen tcell.Screen, g *game, frameRate time.Duration) error {
	eg, ctx := errgroup.WithContext(ctx)
	loopCtx, cancel := context.WithCancel(ctx)
	events := make(chan tcell.Event)

	eg.Go(func() error {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				return nil
			}
			select {
			case events <- ev:
			case <-loopCtx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer screen.Fini()
		defer cancel()

		var tick <-chan time.Time
		if frameRate > 0 {
			ticker := time.NewTicker(frameRate)
			defer ticker.Stop()
			tick = ticker.C
		}
		return g.run(loopCtx, screen, events, tick)
	})

	return eg.Wait()
}
