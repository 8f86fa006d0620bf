package thumb7

// Bus is the narrow port the core uses to reach the embedder's address space.
// An implementation is supplied once, at construction time, and is never
// swapped out for the lifetime of a Core.
//
// WriteBus32 calls for addresses in the 0xE0000000-0xEFFFFFFF window are
// intercepted by the SysTick peripheral before they would otherwise reach
// the embedder; see systick.go.
type Bus interface {
	ReadBus16(addr uint32) uint16
	ReadBus32(addr uint32) uint32
	WriteBus16(addr uint32, val uint16)
	WriteBus32(addr uint32, val uint32)

	// TrapOnFetch is consulted before every instruction fetch. A non-zero
	// return aborts the current step, and that value becomes the trap code
	// returned from Run. Values used here must stay at or above
	// TrapHostReserved to avoid colliding with the core's own trap codes.
	TrapOnFetch(pc uint32) uint32
}

// TrapCode is the reason a call to Run stopped.
type TrapCode = uint32

const (
	// TrapNone means the cycle budget was exhausted with no exceptional
	// condition encountered.
	TrapNone TrapCode = 0

	// TrapBreakpoint covers BKPT, unrecognized instructions, and SETEND.
	// The historical embedding this core is compatible with never
	// distinguished these from one another; see DESIGN.md.
	TrapBreakpoint TrapCode = 1

	// TrapBLXLeaveThumb is returned when a BLX(2) target's bit 0 is clear,
	// i.e. the branch would leave Thumb state, which this core does not
	// model.
	TrapBLXLeaveThumb TrapCode = 2

	// TrapBXLeaveThumb is the BX counterpart of TrapBLXLeaveThumb.
	TrapBXLeaveThumb TrapCode = 3

	// TrapAborted is returned when AbortRun was observed at a step boundary.
	TrapAborted TrapCode = 10

	// TrapHostReserved is the first value an embedder's TrapOnFetch may
	// return without risk of colliding with a core-defined trap code.
	TrapHostReserved TrapCode = 256
)
