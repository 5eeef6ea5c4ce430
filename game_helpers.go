package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	*model.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed, err := config.SeedCoordinates(rng)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build seed")
	}

	sim := model.NewSimulation(seed, config.Generator())
	return sim, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulation) {
	fmt.Printf("Pattern: %s | Workers: %d | Max generations: %d\n",
		config.SeedName(), config.Workers, config.MaxGenerations)
	fmt.Printf("Initial living cells: %d | Tracked cells: %d\n",
		sim.Board().Population(), sim.Board().Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(sim *model.Simulation, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Status: %s | Bounding box: %d cells | Tracked: %d\n",
		sim.Generation(), stats.ActiveCells, sim.Status(), stats.BoundingBoxSize, stats.TrackedCells)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// displayFinalStats prints the summary once the loop is over
func displayFinalStats(sim *model.Simulation, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		sim.Generation(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f avg population | Live cells: %v\n",
		stats.AveragePopulation, sim.LiveCoordinates())
}

// endReason describes why a step error ended the run
func endReason(err error) string {
	switch {
	case errors.Is(err, model.ErrStable):
		return "🧊 Board is stable, no cell will ever change again"
	case errors.Is(err, model.ErrCycling):
		return "🔁 Board alternates between two configurations forever"
	default:
		return fmt.Sprintf("Simulation ended: %v", err)
	}
}
