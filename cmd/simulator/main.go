package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jasonKoogler/tomasulo-sim/internal/config"
	"github.com/jasonKoogler/tomasulo-sim/internal/simulator"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "Path to the configuration file")
	verbose := flag.Bool("v", false, "Enable verbose output")
	maxCycles := flag.Int64("cycles", 0, "Report an error if the finished run took more than this many cycles (0 = no check)")
	showStages := flag.Bool("show-stages", false, "Print the pipeline stage order and exit")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if *verbose {
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	logger.Println("Tomasulo Pipeline Simulator")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("\nConfiguration Summary:")
	fmt.Printf("\tResult buses: %d\n", cfg.ResultBuses)
	fmt.Printf("\tFunctional units: %d ALU, %d branch, %d memory\n", cfg.ALUUnits, cfg.BranchUnits, cfg.MemUnits)
	fmt.Printf("\tFetch width: %d\n", cfg.FetchWidth)
	fmt.Printf("\tReservation station capacity: %d\n", cfg.RSSize())
	fmt.Printf("\tTrace: %s (%s)\n", cfg.TracePath, cfg.TraceFormat)

	sim, err := simulator.New(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize simulator: %v", err)
	}
	defer sim.Close()

	if *showStages {
		fmt.Print("\nPipeline Flow: ")
		stages := sim.DescribeStages()
		for i, name := range stages {
			fmt.Print(name)
			if i < len(stages)-1 {
				fmt.Print(" -> ")
			}
		}
		fmt.Println()
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		logger.Println("Starting simulation...")
		done <- sim.Run(*maxCycles)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Fatalf("Simulation failed: %v", err)
		}
	case <-sigChan:
		logger.Println("Received termination signal. Shutting down...")
		sim.Shutdown()
		logger.Println("Simulation terminated successfully")
		return
	}

	stats := sim.GetStatistics()
	fmt.Println("\nSimulation Statistics:")
	fmt.Printf("\tCycle count: %d\n", stats.CycleCount)
	fmt.Printf("\tInstructions fired: %d (avg %.3f/cycle)\n", stats.TotalFired, stats.AvgInstFired)
	fmt.Printf("\tInstructions retired: %d (avg %.3f/cycle)\n", stats.TotalRetired, stats.AvgInstRetired)
	fmt.Printf("\tDispatch queue size: avg %.3f, max %d\n", stats.AvgDispSize, stats.MaxDispSize)
}
