// Package core implements the Pipeline Driver (spec.md §4.1): the cycle
// loop that orchestrates the six-stage pipeline through a fixed
// half-cycle phase ordering each simulated cycle.
package core

import (
	"sort"

	"github.com/jasonKoogler/tomasulo-sim/internal/config"
	"github.com/jasonKoogler/tomasulo-sim/internal/funit"
	"github.com/jasonKoogler/tomasulo-sim/internal/instr"
	"github.com/jasonKoogler/tomasulo-sim/internal/report"
	"github.com/jasonKoogler/tomasulo-sim/internal/rs"
	"github.com/jasonKoogler/tomasulo-sim/internal/scoreboard"
	"github.com/jasonKoogler/tomasulo-sim/internal/stats"
	"github.com/jasonKoogler/tomasulo-sim/internal/trace"
)

// StageNames lists the five pipeline stage names in order, for diagnostic
// display (SPEC_FULL.md §7, the CLI's optional -show-stages dump).
var StageNames = []string{"Fetch", "Dispatch", "Schedule", "Execute", "StateUpdate"}

// Driver owns every piece of mutable simulator state and advances it one
// cycle at a time. It is a plain value type — no process-wide
// singletons — so independent simulations can run side by side.
type Driver struct {
	cfg    *config.Config
	reader trace.Reader

	sb      *scoreboard.Scoreboard
	fu      *funit.Pool
	station *rs.Station

	fetchBuffer   FetchBuffer
	dispatchQueue DispatchQueue

	cycle        int64
	nextTag      int64
	doneFetching bool
	pendingEvict []int64

	reporter *report.Reporter
	progress *report.ProgressReporter
	logger   *report.Logger

	stats *stats.Accumulator
}

// NewDriver builds a driver over the given configuration, trace source,
// event reporter, and diagnostic logger (logger may be nil to disable
// progress reporting and opcode warnings).
func NewDriver(cfg *config.Config, reader trace.Reader, reporter *report.Reporter, logger *report.Logger) *Driver {
	d := &Driver{
		cfg:      cfg,
		reader:   reader,
		reporter: reporter,
		logger:   logger,
		stats:    stats.New(),
		nextTag:  1,
	}
	if logger != nil {
		d.progress = report.NewProgressReporter(logger, cfg.ProgressInterval)
	}
	d.allocateResources()
	return d
}

func (d *Driver) allocateResources() {
	d.sb = scoreboard.New()
	d.fu = funit.New([funit.NumClasses]int{d.cfg.ALUUnits, d.cfg.BranchUnits, d.cfg.MemUnits})
	d.station = rs.New(d.cfg.RSSize())
}

// DescribeStages returns the pipeline's stage names in order, purely for
// descriptive CLI output — it has no bearing on the simulation loop.
func (d *Driver) DescribeStages() []string {
	out := make([]string, len(StageNames))
	copy(out, StageNames)
	return out
}

// Reset reinitializes every piece of driver state so the same process
// can run another trace from a clean slate (SPEC_FULL.md §7, grounded on
// the teacher's Simulator.Reset()/Processor.Reset()).
func (d *Driver) Reset(reader trace.Reader) {
	d.reader = reader
	d.fetchBuffer = FetchBuffer{}
	d.dispatchQueue = DispatchQueue{}
	d.cycle = 0
	d.nextTag = 1
	d.doneFetching = false
	d.pendingEvict = nil
	d.stats.Reset()
	d.allocateResources()
}

// Run drains the trace to completion and returns the final statistics.
func (d *Driver) Run() stats.Snapshot {
	for {
		d.stepCycle()
		if d.done() {
			break
		}
	}
	d.stats.SetCycleCount(d.cycle)
	if err := d.reporter.Flush(); err != nil && d.logger != nil {
		d.logger.Errorf("failed to flush event stream: %v", err)
	}
	return d.stats.Snapshot()
}

func (d *Driver) done() bool {
	return d.doneFetching && d.fetchBuffer.Len() == 0 && d.dispatchQueue.Empty() && d.station.Len() == 0
}

func (d *Driver) stepCycle() {
	d.cycle++
	d.stats.SampleDispatchQueue(d.dispatchQueue.Len())
	if d.progress != nil {
		d.progress.Tick(d.cycle, d.dispatchQueue.Len(), d.station.Len())
	}

	// First half: writeback-to-waiters forwarding.
	d.phaseStateUpdate()
	d.phaseCompleteExecution()
	d.phaseReadyBitPropagation()
	d.phaseFire()

	// Second half: latched pipeline-register transfer.
	d.phaseSchedule()
	d.phaseDispatch()
	d.phaseRSEviction()
	d.phaseFetch()
}

// phaseStateUpdate is step (a): retire up to R completed instructions,
// oldest-completion-first with tag as tiebreak (spec.md §4.1, §5).
func (d *Driver) phaseStateUpdate() {
	var candidates []*instr.Instruction
	for _, e := range d.station.ByTag() {
		if e.ExecutionComplete && e.StateUpdateCycle == instr.Unset {
			candidates = append(candidates, e)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CompleteCycle != candidates[j].CompleteCycle {
			return candidates[i].CompleteCycle < candidates[j].CompleteCycle
		}
		return candidates[i].Tag < candidates[j].Tag
	})

	n := len(candidates)
	if n > d.cfg.ResultBuses {
		n = d.cfg.ResultBuses
	}

	d.pendingEvict = d.pendingEvict[:0]
	for i := 0; i < n; i++ {
		e := candidates[i]
		d.fu.Release(e.FUClass)
		if e.DestReg != instr.None {
			d.sb.Release(e.DestReg, e.Tag)
		}
		e.StateUpdateCycle = d.cycle
		d.stats.RecordRetired(1)
		d.pendingEvict = append(d.pendingEvict, e.Tag)
		d.reporter.Emit(d.cycle, report.StageStateUpdate, e.Tag)
	}
}

// phaseCompleteExecution is step (b): single-cycle latency completion.
func (d *Driver) phaseCompleteExecution() {
	for _, e := range d.station.ByTag() {
		if e.Fired && !e.ExecutionComplete && e.ExecuteCycle < d.cycle {
			e.CompleteCycle = d.cycle
			e.ExecutionComplete = true
			d.reporter.Emit(d.cycle, report.StageExecuted, e.Tag)
		}
	}
}

// phaseReadyBitPropagation is step (c): sticky wakeup from the live
// scoreboard (spec.md §9 prefers this over a captured src_producer).
func (d *Driver) phaseReadyBitPropagation() {
	for _, e := range d.station.ByTag() {
		if e.Fired {
			continue
		}
		for s := 0; s < 2; s++ {
			if e.SrcReady[s] {
				continue
			}
			reg := e.SrcReg[s]
			if reg == instr.None || d.sb.IsReady(reg) {
				e.SrcReady[s] = true
			}
		}
	}
}

// phaseFire is step (d): select-and-dispatch to a free functional unit,
// tag order, no emit on firing alone.
func (d *Driver) phaseFire() {
	var ready []*instr.Instruction
	for _, e := range d.station.ByTag() {
		if !e.Fired && e.SrcReady[0] && e.SrcReady[1] {
			ready = append(ready, e)
		}
	}

	var fired int64
	for _, e := range ready {
		if d.fu.Acquire(e.FUClass) {
			e.Fired = true
			e.ExecuteCycle = d.cycle
			fired++
		}
	}
	d.stats.RecordFired(fired)
}

// phaseSchedule is step (e): move from the dispatch queue into the RS,
// one cycle after dispatch, with sticky ready-bit initialization.
func (d *Driver) phaseSchedule() {
	for !d.dispatchQueue.Empty() && d.station.HasRoom() {
		head, ok := d.dispatchQueue.Pop()
		if !ok {
			break
		}
		head.ScheduleCycle = d.cycle

		for s := 0; s < 2; s++ {
			reg := head.SrcReg[s]
			switch {
			case reg == instr.None:
				head.SrcReady[s] = true
			case reg == head.DestReg:
				head.SrcReady[s] = true // self-dependency carries no hazard
			default:
				head.SrcReady[s] = d.sb.IsReady(reg)
			}
		}

		d.station.Add(head)
		d.reporter.Emit(d.cycle, report.StageScheduled, head.Tag)
	}
}

// phaseDispatch is step (f): claim destination registers and hand the
// fetch buffer's contents to the dispatch queue.
func (d *Driver) phaseDispatch() {
	for _, e := range d.fetchBuffer.Items() {
		e.DispatchCycle = d.cycle
		if e.DestReg != instr.None {
			d.sb.Claim(e.DestReg, e.Tag) // unconditional: latest writer wins (WAW)
		}
		d.dispatchQueue.Push(e)
		d.reporter.Emit(d.cycle, report.StageDispatched, e.Tag)
	}
	d.fetchBuffer.Clear()
}

// phaseRSEviction is step (g): remove the tags retired in phase (a).
func (d *Driver) phaseRSEviction() {
	for _, tag := range d.pendingEvict {
		d.station.Remove(tag)
	}
	d.pendingEvict = d.pendingEvict[:0]
}

// phaseFetch is step (h): pull up to F fresh instructions from the trace.
func (d *Driver) phaseFetch() {
	if d.doneFetching {
		return
	}

	var rec trace.Record
	for i := 0; i < d.cfg.FetchWidth; i++ {
		if !d.reader.Next(&rec) {
			d.doneFetching = true
			return
		}

		class, ok := instr.ClassForOpCode(rec.OpCode)
		if !ok && d.logger != nil {
			d.logger.Warnf("tag=%d opcode=%d outside {-1,0,1,2}; defaulting to class 1", d.nextTag, rec.OpCode)
		}

		in := instr.New(d.nextTag, rec.InstructionAddress, rec.OpCode, rec.SrcReg[0], rec.SrcReg[1], rec.DestReg)
		in.FUClass = class
		in.FetchCycle = d.cycle
		d.nextTag++

		d.fetchBuffer.Add(in)
		d.reporter.Emit(d.cycle, report.StageFetched, in.Tag)
	}
}

// Cycle returns the current cycle number (useful for tests and the CLI's
// verbose trace).
func (d *Driver) Cycle() int64 {
	return d.cycle
}

// Station exposes the reservation station for invariant tests (P1-P6).
func (d *Driver) Station() *rs.Station {
	return d.station
}

// FunitPool exposes the functional-unit pool for invariant tests (P4).
func (d *Driver) FunitPool() *funit.Pool {
	return d.fu
}
