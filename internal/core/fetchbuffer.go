package core

import "github.com/jasonKoogler/tomasulo-sim/internal/instr"

// FetchBuffer is the single-cycle pipeline latch between Fetch and
// Dispatch (spec.md §2). It holds at most one cycle's worth of freshly
// fetched instructions, drained wholesale by the Dispatch phase.
type FetchBuffer struct {
	items []*instr.Instruction
}

// Add appends a freshly fetched instruction, in fetch order.
func (b *FetchBuffer) Add(i *instr.Instruction) {
	b.items = append(b.items, i)
}

// Items returns the buffer's contents in arrival order.
func (b *FetchBuffer) Items() []*instr.Instruction {
	return b.items
}

// Len reports the current occupancy.
func (b *FetchBuffer) Len() int {
	return len(b.items)
}

// Clear empties the buffer (called after Dispatch drains it).
func (b *FetchBuffer) Clear() {
	b.items = nil
}
