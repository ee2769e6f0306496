// Package report implements the Event Reporter (spec.md §4.4) and a
// level-gated diagnostic progress logger (spec.md §6), grounded on the
// teacher's cmd/simulator logging style and ehrlich-b-go-ublk's
// internal/logging leveled wrapper.
package report

import (
	"bufio"
	"fmt"
	"io"
)

// Stage names used in event lines, per spec.md §4.4.
const (
	StageFetched     = "FETCHED"
	StageDispatched  = "DISPATCHED"
	StageScheduled   = "SCHEDULED"
	StageExecuted    = "EXECUTED"
	StageStateUpdate = "STATE UPDATE"
)

// Reporter is a single append-only text stream of stage-transition
// events. Each event is "<cycle>\t<STAGE>\t<tag>\n".
type Reporter struct {
	w *bufio.Writer
}

// NewReporter wraps w as a Reporter.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: bufio.NewWriter(w)}
}

// Emit writes a single event line.
func (r *Reporter) Emit(cycle int64, stage string, tag int64) {
	fmt.Fprintf(r.w, "%d\t%s\t%d\n", cycle, stage, tag)
}

// Flush ensures buffered event lines reach the underlying writer before
// program termination, preserving line ordering (spec.md §6).
func (r *Reporter) Flush() error {
	return r.w.Flush()
}
