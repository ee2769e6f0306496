package core

import "github.com/jasonKoogler/tomasulo-sim/internal/instr"

// DispatchQueue is the unbounded FIFO of dispatched-but-not-yet-scheduled
// instructions (spec.md §3). Given in-order dispatch, arrival order
// equals tag order.
type DispatchQueue struct {
	items []*instr.Instruction
}

// Push appends to the tail.
func (q *DispatchQueue) Push(i *instr.Instruction) {
	q.items = append(q.items, i)
}

// Pop removes and returns the head, or (nil, false) if empty.
func (q *DispatchQueue) Pop() (*instr.Instruction, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Len reports the current occupancy.
func (q *DispatchQueue) Len() int {
	return len(q.items)
}

// Empty reports whether the queue has no waiting instructions.
func (q *DispatchQueue) Empty() bool {
	return len(q.items) == 0
}
