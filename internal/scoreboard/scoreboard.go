// Package scoreboard implements the register scoreboard described in
// spec.md §4.2: a fixed-size mapping from architectural register to
// either "ready" or the tag of its pending writer.
package scoreboard

// Ready is the sentinel value held for a register with no pending
// writer. Instruction tags are assigned starting at 1, so 0 never
// collides with a real tag.
const Ready int64 = 0

// NumRegisters is the fixed architectural register-file size (spec.md §3).
const NumRegisters = 128

// Scoreboard tracks, per register, the tag of the most recently
// dispatched instruction that will write it.
type Scoreboard struct {
	holder [NumRegisters]int64
}

// New returns a scoreboard with every register ready.
func New() *Scoreboard {
	return &Scoreboard{}
}

// Claim unconditionally records tag as the pending writer of reg. A
// later claim on the same register always wins (WAW resolved by always
// naming the latest dispatched writer).
func (s *Scoreboard) Claim(reg int, tag int64) {
	s.holder[reg] = tag
}

// Release clears reg back to Ready only if tag is still the current
// holder. If a later Dispatch has since claimed the register, the
// later writer is left in place — this is the WAW-ordering-correctness
// rule spec.md §4.2 calls out explicitly.
func (s *Scoreboard) Release(reg int, tag int64) {
	if s.holder[reg] == tag {
		s.holder[reg] = Ready
	}
}

// IsReady reports whether reg currently has no pending writer.
func (s *Scoreboard) IsReady(reg int) bool {
	return s.holder[reg] == Ready
}

// Holder returns the tag currently pending on reg, or Ready.
func (s *Scoreboard) Holder(reg int) int64 {
	return s.holder[reg]
}

// Reset clears every register back to Ready.
func (s *Scoreboard) Reset() {
	for i := range s.holder {
		s.holder[i] = Ready
	}
}
