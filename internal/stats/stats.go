// Package stats implements the Statistics Accumulator (spec.md §4.5).
package stats

// Snapshot is the final statistics report (spec.md §4.5), seven fields.
type Snapshot struct {
	CycleCount      int64
	TotalFired      int64
	TotalRetired    int64
	AvgInstFired    float64
	AvgInstRetired  float64
	AvgDispSize     float64
	MaxDispSize     int64
}

// Accumulator maintains running sums and maxima over cycles.
type Accumulator struct {
	totalFired        int64
	totalRetired      int64
	totalDispatchSize int64
	maxDispatchSize   int64
	cycleCount        int64
}

// New returns a zeroed accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// SampleDispatchQueue records the dispatch-queue size sampled at the
// start of a cycle (spec.md §4.1: "sampled at the start").
func (a *Accumulator) SampleDispatchQueue(size int) {
	a.totalDispatchSize += int64(size)
	if int64(size) > a.maxDispatchSize {
		a.maxDispatchSize = int64(size)
	}
}

// RecordFired increments the fired-instruction counter (phase d, per
// firing, not per cycle).
func (a *Accumulator) RecordFired(n int64) {
	a.totalFired += n
}

// RecordRetired increments the retired-instruction counter (phase a,
// per State Update emitted).
func (a *Accumulator) RecordRetired(n int64) {
	a.totalRetired += n
}

// SetCycleCount stamps the terminal cycle count once the driver halts.
func (a *Accumulator) SetCycleCount(cycles int64) {
	a.cycleCount = cycles
}

// Snapshot computes the final report.
func (a *Accumulator) Snapshot() Snapshot {
	s := Snapshot{
		CycleCount:   a.cycleCount,
		TotalFired:   a.totalFired,
		TotalRetired: a.totalRetired,
		MaxDispSize:  a.maxDispatchSize,
	}
	if a.cycleCount > 0 {
		s.AvgInstFired = float64(a.totalFired) / float64(a.cycleCount)
		s.AvgInstRetired = float64(a.totalRetired) / float64(a.cycleCount)
		s.AvgDispSize = float64(a.totalDispatchSize) / float64(a.cycleCount)
	}
	return s
}

// Reset clears every running sum.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
