package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifegrid/model"
	"github.com/sheikhrachel/go-lifegrid/utils"
)

// quitWaiter is implemented by renderers that let the user stop the run
type quitWaiter interface {
	WaitForQuit() error
}

// initializeGrid builds the grid and seeds it from the pattern or, without one, randomly
func initializeGrid(config utils.Config) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Height, config.Width)
	if err != nil {
		return nil, err
	}

	if config.HasPattern() {
		if err = grid.PopulateFromPattern(config.Pattern); err != nil {
			return nil, err
		}
		return grid, nil
	}

	grid.Randomize(rand.New(rand.NewSource(randomSeed(config))))
	return grid, nil
}

func randomSeed(config utils.Config) int64 {
	if config.Seed != nil {
		return *config.Seed
	}
	return time.Now().UnixNano()
}

// initializeRenderer picks the display for the configured mode
func initializeRenderer(config utils.Config, stdout io.Writer) (model.Renderer, error) {
	switch config.Display {
	case utils.DisplayPanel:
		return model.NewPanelRenderer()
	case utils.DisplayNone:
		return model.NopRenderer{}, nil
	case utils.DisplayText, "":
		return model.NewTextRenderer(stdout), nil
	}
	return nil, errors.Wrapf(utils.ErrInvalidParameter, "[initializeRenderer] unknown display %q", config.Display)
}

// runGenerations shows and advances the grid once per configured generation,
// pausing between generations. It stops early when ctx is done.
func runGenerations(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer model.Renderer,
	stats *utils.Stats,
) error {
	lastFrameTime := time.Now()

	for generation := 1; generation <= config.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := renderer.Show(generation, grid); err != nil {
			return err
		}

		frameTime := time.Now()
		stats.Update(grid.CountLivingCells(), frameTime.Sub(lastFrameTime))
		lastFrameTime = frameTime

		grid.NextGeneration()

		if err := pause(ctx, config.Delay()); err != nil {
			return err
		}
	}

	return nil
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// displaySummary prints the closing statistics
func displaySummary(w io.Writer, grid *model.Grid, stats *utils.Stats) {
	rows, cols := grid.Dimensions()
	fmt.Fprintf(w, "Grid: %dx%d | Generations: %d | Final living: %d\n",
		cols, rows, stats.TotalGenerations, grid.CountLivingCells())
	fmt.Fprintf(w, "Avg Pop: %.1f | Peak Pop: %d | Runtime: %.1fs\n",
		stats.AveragePopulation, stats.PeakPopulation, stats.Runtime().Seconds())
}

// isInterruption reports whether err only means the user stopped the run
func isInterruption(err error) bool {
	return errors.Is(err, model.ErrQuit) || errors.Is(err, context.Canceled)
}
