package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifegrid/utils"
)

func main() {
	logger := log.New(os.Stderr, "lifegrid: ", 0)

	// Load configuration - fall back to defaults if the file doesn't exist
	config, err := utils.LoadConfig(utils.DefaultConfigFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("using default configuration: %v", err)
	}

	config, warnings := utils.ParseArgs(config, os.Args[1:])
	for _, warning := range warnings {
		logger.Println(warning)
	}

	if err = run(config, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(config utils.Config, stdout io.Writer, logger *log.Logger) error {
	grid, err := initializeGrid(config)
	if err != nil {
		return err
	}

	renderer, err := initializeRenderer(config, stdout)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		stats     = utils.NewStats()
	)

	eg.Go(func() error {
		defer renderer.Close()
		return runGenerations(egCtx, config, grid, renderer, stats)
	})
	if waiter, ok := renderer.(quitWaiter); ok {
		eg.Go(waiter.WaitForQuit)
	}

	if err = eg.Wait(); err != nil {
		if !isInterruption(err) {
			return err
		}
		logger.Printf("stopped after %d of %d generations", stats.TotalGenerations, config.Generations)
	}

	displaySummary(stdout, grid, stats)
	return nil
}
