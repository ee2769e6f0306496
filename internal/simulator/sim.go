// Package simulator is the top-level façade over the pipeline driver: it
// owns the trace source, wires the driver's dependencies, and exposes the
// lifecycle operations the CLI drives (spec.md §5, §6).
package simulator

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/jasonKoogler/tomasulo-sim/internal/config"
	"github.com/jasonKoogler/tomasulo-sim/internal/core"
	"github.com/jasonKoogler/tomasulo-sim/internal/report"
	"github.com/jasonKoogler/tomasulo-sim/internal/stats"
	"github.com/jasonKoogler/tomasulo-sim/internal/trace"
)

// simulator drives one Tomasulo pipeline simulation from a trace file to
// a final statistics report. Unexported, like the teacher's, and
// constructed through New.
type simulator struct {
	config *config.Config
	driver *core.Driver

	traceFile io.Closer
	eventFile io.Closer

	running  atomic.Bool
	stopChan chan struct{}
	wg       sync.WaitGroup

	stats      stats.Snapshot
	statsMutex sync.RWMutex
}

// New opens the configured trace and event-log files and builds a driver
// over them. The caller must call Close when done with the simulator.
func New(cfg *config.Config) (*simulator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil configuration provided")
	}

	traceFile, err := os.Open(cfg.TracePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	reader, err := trace.Open(cfg.TraceFormat, traceFile)
	if err != nil {
		traceFile.Close()
		return nil, fmt.Errorf("failed to construct trace reader: %w", err)
	}

	eventPath := cfg.TracePath + ".events"
	eventFile, err := os.Create(eventPath)
	if err != nil {
		traceFile.Close()
		return nil, fmt.Errorf("failed to create event log: %w", err)
	}

	logger := report.NewLogger(report.DefaultLoggerConfig())
	reporter := report.NewReporter(eventFile)

	sim := &simulator{
		config:    cfg,
		driver:    core.NewDriver(cfg, reader, reporter, logger),
		traceFile: traceFile,
		eventFile: eventFile,
		stopChan:  make(chan struct{}),
	}
	return sim, nil
}

// Run drives the simulation to completion (the driver halts itself once
// the trace is exhausted and the pipeline has drained — spec.md §4.1).
// maxCycles is checked only after the driver has finished: if the run
// took more than maxCycles cycles, Run returns an error. The driver is
// not stopped early, so a trace that never ends is not cut off. Zero
// disables the check.
func (s *simulator) Run(maxCycles int64) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("simulation is already running")
	}
	defer s.running.Store(false)

	s.wg.Add(1)
	defer s.wg.Done()

	done := make(chan stats.Snapshot, 1)
	go func() {
		done <- s.driver.Run()
	}()

	select {
	case snap := <-done:
		s.statsMutex.Lock()
		s.stats = snap
		s.statsMutex.Unlock()
		if maxCycles > 0 && snap.CycleCount > maxCycles {
			return fmt.Errorf("simulation exceeded cycle cap of %d (ran %d cycles)", maxCycles, snap.CycleCount)
		}
		return nil
	case <-s.stopChan:
		return fmt.Errorf("simulation stopped before completion")
	}
}

// GetStatistics returns a copy of the most recently computed statistics.
func (s *simulator) GetStatistics() stats.Snapshot {
	s.statsMutex.RLock()
	defer s.statsMutex.RUnlock()
	return s.stats
}

// Shutdown signals an in-progress Run to abandon the simulation.
func (s *simulator) Shutdown() {
	if !s.running.Load() {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
	s.stopChan = make(chan struct{})
}

// Reset rewinds the driver so a fresh trace can be run through the same
// process (grounded on the teacher's simulator.Reset()).
func (s *simulator) Reset(reader trace.Reader) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()
	s.driver.Reset(reader)
	s.stats = stats.Snapshot{}
}

// DescribeStages exposes the driver's pipeline stage names for the CLI's
// -show-stages flag (SPEC_FULL.md §7).
func (s *simulator) DescribeStages() []string {
	return s.driver.DescribeStages()
}

// Close releases the trace and event-log file handles.
func (s *simulator) Close() error {
	err1 := s.traceFile.Close()
	err2 := s.eventFile.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
