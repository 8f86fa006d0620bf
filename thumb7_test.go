package thumb7

import "testing"

// testBus is a flat 1MB byte-addressed memory, the same "one big array"
// shape the M68K sibling interpreter's testBus uses.
type testBus struct {
	mem [1 << 20]byte
}

func (b *testBus) ReadBus16(addr uint32) uint16 {
	addr &= uint32(len(b.mem) - 1)
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}

func (b *testBus) ReadBus32(addr uint32) uint32 {
	addr &= uint32(len(b.mem) - 1)
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 |
		uint32(b.mem[addr+2])<<16 | uint32(b.mem[addr+3])<<24
}

func (b *testBus) WriteBus16(addr uint32, val uint16) {
	addr &= uint32(len(b.mem) - 1)
	b.mem[addr] = byte(val)
	b.mem[addr+1] = byte(val >> 8)
}

func (b *testBus) WriteBus32(addr uint32, val uint32) {
	addr &= uint32(len(b.mem) - 1)
	b.mem[addr] = byte(val)
	b.mem[addr+1] = byte(val >> 8)
	b.mem[addr+2] = byte(val >> 16)
	b.mem[addr+3] = byte(val >> 24)
}

func (b *testBus) TrapOnFetch(pc uint32) uint32 { return 0 }

func (b *testBus) storeHalf(addr uint32, inst uint16) {
	b.WriteBus16(addr, inst)
}

func newTestCore() (*Core, *testBus) {
	bus := &testBus{}
	c := NewCore(bus)
	c.WriteRegister(rSP, 0x1000)
	c.WriteRegister(rPC, 0x0000)
	return c, bus
}

// step1 stores a single instruction halfword at the address the core is
// about to fetch from (PC-2, the pipeline-offset convention documented on
// checkExceptionExit) and runs exactly one step.
func step1(c *Core, bus *testBus, inst uint16) TrapCode {
	pc := c.ReadRegister(rPC)
	bus.storeHalf(pc-2, inst)
	return c.Run(1)
}

func TestMovImmediateSetsFlags(t *testing.T) {
	c, bus := newTestCore()
	// movs r0, #0
	if trap := step1(c, bus, 0x2000); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(0); got != 0 {
		t.Errorf("r0 = %#x, want 0", got)
	}
	if !c.flags.z {
		t.Errorf("z flag not set after movs r0,#0")
	}
}

func TestAddImmediateCarryAndOverflow(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(0, 0xFFFFFFFF)
	// adds r0, r0, #1  (rd=0 rn=0 imm=1 -> 0x1C00 | imm<<6 = 0x1C40)
	inst := uint16(0x1C00) | 1<<6
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(0); got != 0 {
		t.Errorf("r0 = %#x, want 0", got)
	}
	if !c.flags.c {
		t.Errorf("carry flag not set on 0xFFFFFFFF + 1")
	}
	if !c.flags.z {
		t.Errorf("zero flag not set on 0xFFFFFFFF + 1")
	}
	if c.flags.v {
		t.Errorf("overflow flag set on 0xFFFFFFFF + 1 (-1 + 1 does not overflow)")
	}
}

func TestAdd1FallsThroughToMov2OnZeroImmediate(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(1, 0x55)
	c.flags.c = true
	c.flags.v = true
	// "adds r0, r1, #0" is encoded identically to "movs r0, r1" (imm3==0).
	inst := uint16(0x1C00) | 1<<3
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(0); got != 0x55 {
		t.Errorf("r0 = %#x, want 0x55", got)
	}
	if c.flags.c || c.flags.v {
		t.Errorf("mov(2) must clear C and V, got c=%v v=%v", c.flags.c, c.flags.v)
	}
}

func TestConditionalBranchTaken(t *testing.T) {
	c, bus := newTestCore()
	c.flags.z = true
	// beq #4 (cond=0x0, imm8=2 halfwords forward)
	inst := uint16(0xD000) | 2
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got, want := c.ReadRegister(rPC), uint32(0x0002+4+2); got != want {
		t.Errorf("pc = %#x, want %#x", got, want)
	}
}

func TestConditionalBranchCondEAndFAreNotBranches(t *testing.T) {
	c, bus := newTestCore()
	// cond=0xE is the undefined encoding inside the B(1) band.
	if _, matched := c.execConditionalBranch(0xDE00); matched {
		t.Fatalf("execConditionalBranch claimed cond=0xE, it must fall through")
	}
	// cond=0xF with the B(1) band's fixed bits is bit-identical to SWI 0xFF.
	inst := uint16(0xDFFF)
	_, matched := c.execConditionalBranch(inst)
	if matched {
		t.Fatalf("execConditionalBranch claimed cond=0xF, it must fall through to SWI")
	}
	if trap := step1(c, bus, inst); trap != TrapBreakpoint {
		t.Errorf("swi 0xFF should trap as breakpoint, got %d", trap)
	}
}

func TestSWIMagicReadsCPSR(t *testing.T) {
	c, bus := newTestCore()
	c.flags.n = true
	// swi 0xCC
	inst := uint16(0xDF00) | 0xCC
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(0); got&cpsrN == 0 {
		t.Errorf("r0 = %#x, expected N bit set from CPSR readback", got)
	}
}

func TestBXOddTargetIsNormalBranch(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(1, 0x1001)
	// bx r1
	inst := uint16(0x4700) | 1<<3
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(rPC); got != 0x1002 {
		t.Errorf("pc = %#x, want 0x1002", got)
	}
}

func TestBXEvenTargetTraps(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(1, 0x1000)
	inst := uint16(0x4700) | 1<<3
	if trap := step1(c, bus, inst); trap != TrapBXLeaveThumb {
		t.Errorf("trap = %d, want TrapBXLeaveThumb", trap)
	}
}

func TestBLX2OddTargetSetsLRAndBranches(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(1, 0x1001)
	// blx r1
	inst := uint16(0x4780) | 1<<3
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(rPC); got != 0x1002 {
		t.Errorf("pc = %#x, want 0x1002", got)
	}
	if got := c.ReadRegister(rLR); got&1 == 0 {
		t.Errorf("lr = %#x, want low bit set", got)
	}
}

func TestBLX2EvenTargetTraps(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(1, 0x2000)
	inst := uint16(0x4780) | 1<<3
	if trap := step1(c, bus, inst); trap != TrapBLXLeaveThumb {
		t.Errorf("trap = %d, want TrapBLXLeaveThumb", trap)
	}
}

func TestSystickWriteIsMasked(t *testing.T) {
	c, _ := newTestCore()
	c.writeBus32(systickCtrlAddr, 0xFFFFFFFF)
	if c.timer.ctrl != 0xFFFFFFFF&systickCtrlMask {
		t.Errorf("ctrl = %#x, want masked value %#x", c.timer.ctrl, 0xFFFFFFFF&systickCtrlMask)
	}
}

func TestSystickEnableReloadsCount(t *testing.T) {
	c, _ := newTestCore()
	c.timer.reload = 10
	c.timer.ctrl = 0
	c.writeBus32(systickCtrlAddr, systickEnableBit)
	if c.timer.count != 10 {
		t.Errorf("count = %d, want 10 after enabling with reload=10", c.timer.count)
	}
}

func TestSysTickExceptionEntryAndReturn(t *testing.T) {
	c, bus := newTestCore()
	sp0 := c.ReadRegister(rSP)

	// count=0 so the down-counter reloads and raises its countflag on the
	// very next step, firing entry in that same step.
	c.timer.ctrl = systickTickIntEnable
	c.timer.reload = 1
	c.timer.count = 0

	const vector = 0x00000101
	bus.WriteBus32(systickVectorAddr, vector)
	// movs r2, #5: the handler's first instruction.
	bus.storeHalf(vector, 0x2205)

	if trap := c.Run(1); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if !c.handlerMode {
		t.Fatalf("handler-mode not entered")
	}
	if got, want := c.ReadRegister(rSP), sp0-32; got != want {
		t.Errorf("sp = %#x, want %#x", got, want)
	}
	if got, want := c.ReadRegister(rPC), uint32((vector+2+2)&^1); got != want {
		t.Errorf("pc = %#x, want %#x", got, want)
	}
	if got := c.ReadRegister(rLR); got != exceptionReturnMagic {
		t.Errorf("lr = %#x, want magic return value %#x", got, exceptionReturnMagic)
	}
	if got := c.ReadRegister(2); got != 5 {
		t.Errorf("r2 = %d, want 5 (handler body executed)", got)
	}

	// Acknowledge the interrupt the way a guest handler would, by rewriting
	// ctrl without the countflag bit, then return via the magic LR value.
	c.writeBus32(systickCtrlAddr, systickTickIntEnable)
	c.WriteRegister(rPC, exceptionReturnMagic)

	if trap := c.Run(1); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if c.handlerMode {
		t.Errorf("handler-mode still set after exception return")
	}
	if got := c.ReadRegister(rSP); got != sp0 {
		t.Errorf("sp after return = %#x, want %#x", got, sp0)
	}
}

func TestLDMIABaseInListSuppressesWriteback(t *testing.T) {
	c, bus := newTestCore()
	base := uint32(0x2000)
	bus.WriteBus32(base, 0xAAAAAAAA)
	bus.WriteBus32(base+4, 0xBBBBBBBB)
	c.WriteRegister(0, base)
	// ldmia r0!, {r0, r1}
	inst := uint16(0xC800) | 0<<8 | 0b00000011
	if trap := step1(c, bus, inst); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if got := c.ReadRegister(0); got != 0xAAAAAAAA {
		t.Errorf("r0 = %#x, want loaded value 0xAAAAAAAA (writeback suppressed)", got)
	}
	if got := c.ReadRegister(1); got != 0xBBBBBBBB {
		t.Errorf("r1 = %#x, want 0xBBBBBBBB", got)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, bus := newTestCore()
	c.WriteRegister(0, 0x11111111)
	c.WriteRegister(1, 0x22222222)
	c.WriteRegister(rLR, 0x33333333|1)
	sp0 := c.ReadRegister(rSP)

	// push {r0,r1,lr}
	if trap := step1(c, bus, uint16(0xB500)|0b00000011); trap != TrapNone {
		t.Fatalf("push trap = %d", trap)
	}
	if got := c.ReadRegister(rSP); got != sp0-12 {
		t.Errorf("sp after push = %#x, want %#x", got, sp0-12)
	}

	c.WriteRegister(0, 0)
	c.WriteRegister(1, 0)

	// pop {r0,r1,pc}
	if trap := step1(c, bus, uint16(0xBC00)|0b100000011); trap != TrapNone {
		t.Fatalf("pop trap = %d", trap)
	}
	if got := c.ReadRegister(0); got != 0x11111111 {
		t.Errorf("r0 after pop = %#x, want 0x11111111", got)
	}
	if got := c.ReadRegister(1); got != 0x22222222 {
		t.Errorf("r1 after pop = %#x, want 0x22222222", got)
	}
	if got := c.ReadRegister(rSP); got != sp0 {
		t.Errorf("sp after pop = %#x, want %#x", got, sp0)
	}
}

func TestRunZeroCyclesIsNoOp(t *testing.T) {
	c, _ := newTestCore()
	before := c.registers
	if trap := c.Run(0); trap != TrapNone {
		t.Fatalf("trap = %d, want TrapNone", trap)
	}
	if c.registers != before {
		t.Errorf("Run(0) mutated registers")
	}
}

// abortingBus asks the core to abort after a fixed number of fetches,
// exercising AbortRun's documented "called from within a Bus callback"
// contract.
type abortingBus struct {
	testBus
	core        *Core
	fetchBudget int
}

func (b *abortingBus) TrapOnFetch(pc uint32) uint32 {
	b.fetchBudget--
	if b.fetchBudget <= 0 {
		b.core.AbortRun()
	}
	return 0
}

func TestAbortRunEndsWithTrapAborted(t *testing.T) {
	bus := &abortingBus{fetchBudget: 3}
	c := NewCore(bus)
	bus.core = c
	c.WriteRegister(rSP, 0x1000)
	c.WriteRegister(rPC, 0x0000)
	// an infinite loop: b . (branch to self), stored at the PC-2 fetch address
	bus.storeHalf(c.ReadRegister(rPC)-2, uint16(0xE7FE))

	if trap := c.Run(1000); trap != TrapAborted {
		t.Errorf("trap = %d, want TrapAborted", trap)
	}
}
