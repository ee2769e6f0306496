// Package instr defines the in-flight instruction record that flows
// through the fetch buffer, dispatch queue, and reservation station
// (spec.md §3).
package instr

// Unset is the sentinel value for a stage timestamp that has not yet
// been stamped.
const Unset int64 = -1

// None is the sentinel for "no register" in a source/destination slot.
const None = -1

// Instruction is a single in-flight instruction, identified by a
// monotonically assigned tag (1-based).
type Instruction struct {
	Tag     int64
	Addr    uint32
	SrcReg  [2]int
	DestReg int
	OpCode  int
	FUClass int

	SrcReady [2]bool

	Fired             bool
	ExecutionComplete bool

	FetchCycle       int64
	DispatchCycle    int64
	ScheduleCycle    int64
	ExecuteCycle     int64
	CompleteCycle    int64
	StateUpdateCycle int64
}

// New returns a freshly fetched instruction with every timestamp unset.
func New(tag int64, addr uint32, opCode int, src0, src1, dest int) *Instruction {
	class, _ := ClassForOpCode(opCode)
	return &Instruction{
		Tag:              tag,
		Addr:             addr,
		SrcReg:           [2]int{src0, src1},
		DestReg:          dest,
		OpCode:           opCode,
		FUClass:          class,
		FetchCycle:       Unset,
		DispatchCycle:    Unset,
		ScheduleCycle:    Unset,
		ExecuteCycle:     Unset,
		CompleteCycle:    Unset,
		StateUpdateCycle: Unset,
	}
}

// ClassForOpCode resolves a trace opcode to a functional-unit class.
// opcode None (-1) maps to class 1 (spec.md §3). An opcode outside
// {-1,0,1,2} is undefined per spec.md §9; ok is false in that case and
// the caller should fall back to class 1 rather than crash a batch run
// (see SPEC_FULL.md §9, Open Questions).
func ClassForOpCode(opCode int) (class int, ok bool) {
	if opCode == None {
		return 1, true
	}
	if opCode < 0 || opCode > 2 {
		return 1, false
	}
	return opCode, true
}
