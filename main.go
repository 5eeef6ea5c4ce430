package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	sim, renderer, stats, err := initializeGame(config, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	displayGameInfo(config, sim)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lastFrameTime := time.Now()
	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			displayFinalStats(sim, stats)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		if config.ClearScreen {
			renderer.Clear()
		}

		stats.Update(sim.Generation(), sim.Board(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		displayGameStatus(sim, stats)
		renderer.Display(sim.Board())

		// Check for max generations limit
		if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		if err := sim.Step(); err != nil {
			fmt.Printf("\n%s\n", endReason(err))
			renderer.Display(sim.Board())
			break
		}

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	displayFinalStats(sim, stats)
}
