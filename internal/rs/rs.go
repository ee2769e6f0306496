// Package rs implements the reservation station (spec.md §3, §4): a
// bounded, unordered multiset of in-flight instructions indexed by tag.
package rs

import (
	"sort"

	"github.com/jasonKoogler/tomasulo-sim/internal/instr"
)

// Station is the reservation station. Physical storage order is
// irrelevant (spec.md §3); entries are addressed by tag, and iteration
// in tag order is provided for the phases that require it (Fire,
// State Update selection).
type Station struct {
	capacity int
	entries  map[int64]*instr.Instruction
}

// New creates an empty station with the given capacity (2*(k0+k1+k2)).
func New(capacity int) *Station {
	return &Station{
		capacity: capacity,
		entries:  make(map[int64]*instr.Instruction, capacity),
	}
}

// Len returns the current occupancy.
func (s *Station) Len() int {
	return len(s.entries)
}

// Capacity returns the station's fixed capacity.
func (s *Station) Capacity() int {
	return s.capacity
}

// HasRoom reports whether one more entry can be added without violating I1.
func (s *Station) HasRoom() bool {
	return len(s.entries) < s.capacity
}

// Add inserts instruction i. Callers must check HasRoom first; Add
// panics on overflow rather than silently violating I1.
func (s *Station) Add(i *instr.Instruction) {
	if len(s.entries) >= s.capacity {
		panic("rs: Add called with no room left in the reservation station")
	}
	s.entries[i.Tag] = i
}

// Remove evicts the entry with the given tag, if present.
func (s *Station) Remove(tag int64) {
	delete(s.entries, tag)
}

// Get returns the entry with the given tag.
func (s *Station) Get(tag int64) (*instr.Instruction, bool) {
	e, ok := s.entries[tag]
	return e, ok
}

// ByTag returns every entry, ordered ascending by tag. Logical order is
// by tag for fairness and firing/state-update selection (spec.md §3).
func (s *Station) ByTag() []*instr.Instruction {
	out := make([]*instr.Instruction, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// Reset empties the station.
func (s *Station) Reset() {
	s.entries = make(map[int64]*instr.Instruction, s.capacity)
}
