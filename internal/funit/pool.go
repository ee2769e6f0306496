// Package funit implements the function-unit pool from spec.md §4.3:
// three independent classes of anonymous, symmetric, single-cycle
// execution resources.
package funit

// NumClasses is the fixed number of functional-unit classes.
const NumClasses = 3

// Pool holds per-class availability bitsets. FUs are anonymous within a
// class: Acquire reserves any free slot, Release frees any occupied
// slot, and no binding between a slot and the instruction occupying it
// is preserved (spec.md §4.3, §9 "firing-slot selection").
type Pool struct {
	slots [NumClasses][]bool // true = occupied
}

// New creates a pool with the given per-class capacities.
func New(capacities [NumClasses]int) *Pool {
	p := &Pool{}
	for c := 0; c < NumClasses; c++ {
		p.slots[c] = make([]bool, capacities[c])
	}
	return p
}

// Acquire reserves one free slot of class c, returning true on success.
func (p *Pool) Acquire(class int) bool {
	for i, occupied := range p.slots[class] {
		if !occupied {
			p.slots[class][i] = true
			return true
		}
	}
	return false
}

// Release frees one occupied slot of class c (spec.md: "release one FU
// of the instruction's class — any occupied slot").
func (p *Pool) Release(class int) {
	for i, occupied := range p.slots[class] {
		if occupied {
			p.slots[class][i] = false
			return
		}
	}
}

// OccupiedCount returns the number of currently occupied slots of class c.
func (p *Pool) OccupiedCount(class int) int {
	n := 0
	for _, occupied := range p.slots[class] {
		if occupied {
			n++
		}
	}
	return n
}

// Capacity returns the total slot count of class c.
func (p *Pool) Capacity(class int) int {
	return len(p.slots[class])
}

// Reset frees every slot in every class.
func (p *Pool) Reset() {
	for c := 0; c < NumClasses; c++ {
		for i := range p.slots[c] {
			p.slots[c][i] = false
		}
	}
}
