package thumb7

// execConditionalBranch implements B(1) (format 16). cond 0xE and 0xF do
// not belong to this instruction (§4.E); matched is false for those so the
// decoder can keep testing other encodings.
func (c *Core) execConditionalBranch(inst uint16) (trap TrapCode, matched bool) {
	cond := uint32(inst>>8) & 0xF
	if cond >= 0xE {
		return TrapNone, false
	}
	imm := signExtend(uint32(inst>>0)&0xFF, 8) << 1
	pc := c.ReadRegister(rPC)
	target := pc + imm + 2
	c.tracef("b<cond=%X> 0x%08X", cond, target-3)
	if c.flags.EvalCondition(cond) {
		c.WriteRegister(rPC, target)
	}
	return TrapNone, true
}

// execBranchUnconditional implements B(2) (format 18).
func (c *Core) execBranchUnconditional(inst uint16) TrapCode {
	imm := signExtend(uint32(inst>>0)&0x7FF, 11) << 1
	pc := c.ReadRegister(rPC)
	target := pc + imm + 2
	c.tracef("b 0x%08X", target-3)
	c.WriteRegister(rPC, target)
	return TrapNone
}

// execBKPT implements BKPT #imm8.
func (c *Core) execBKPT(inst uint16) TrapCode {
	imm := uint32(inst>>0) & 0xFF
	c.warnf("bkpt 0x%02X", imm)
	return TrapBreakpoint
}

// execBranchLinkPrefixSuffix implements the two-halfword BL/BLX(1)
// sequence (format 19). The H=10 prefix latches the sign-extended high
// part into LR; H=11 (thumb) or H=01 (ARM, low bits cleared) complete the
// branch. matched is false only if neither H encoding inside the 0xE000
// band applies, which cannot happen for a correctly masked caller but is
// kept explicit to mirror the historical source's structure.
func (c *Core) execBranchLinkPrefixSuffix(inst uint16) (trap TrapCode, matched bool) {
	pc := c.ReadRegister(rPC)

	if inst&0x1800 == 0x1000 { // H=10: prefix
		offset := signExtend(uint32(inst)&0x7FF, 11) << 12
		c.tracef("bl-prefix")
		c.WriteRegister(rLR, pc+offset)
		return TrapNone, true
	}
	if inst&0x1800 == 0x1800 { // H=11: suffix, branch to Thumb
		target := c.ReadRegister(rLR) + (uint32(inst)&0x7FF)<<1 + 2
		c.tracef("bl 0x%08X", target-3)
		c.WriteRegister(rLR, (pc-2)|1)
		c.WriteRegister(rPC, target)
		return TrapNone, true
	}
	if inst&0x1800 == 0x0800 { // H=01: suffix, branch to ARM (clears low bits)
		target := (c.ReadRegister(rLR) + (uint32(inst)&0x7FF)<<1) &^ 3
		target += 2
		c.tracef("bl 0x%08X", target-3)
		c.WriteRegister(rLR, (pc-2)|1)
		c.WriteRegister(rPC, target)
		return TrapNone, true
	}
	return TrapNone, false
}

// execBLX2 implements BLX(2) Rm, branching through a register (format 5).
func (c *Core) execBLX2(inst uint16) TrapCode {
	rm := uint32(inst>>3) & 0xF
	c.tracef("blx r%d", rm)
	pc := c.ReadRegister(rPC)
	target := c.ReadRegister(rm) + 2
	if target&1 == 0 {
		c.warnf("cannot branch to arm 0x%08X", target)
		return TrapBLXLeaveThumb
	}
	c.WriteRegister(rLR, (pc-2)|1)
	c.WriteRegister(rPC, target&^1)
	return TrapNone
}

// execBX implements BX Rm (format 5).
func (c *Core) execBX(inst uint16) TrapCode {
	rm := uint32(inst>>3) & 0xF
	c.tracef("bx r%d", rm)
	pc := c.ReadRegister(rPC)
	target := c.ReadRegister(rm) + 2
	if target&1 == 0 {
		c.warnf("cannot branch to arm 0x%08X", pc)
		return TrapBXLeaveThumb
	}
	c.WriteRegister(rPC, target&^1)
	return TrapNone
}

// execSWI implements SWI #imm8 (format 17). Immediate 0xCC is repurposed
// by this embedding to read the current CPSR back into R0; every other
// immediate is an unhandled software interrupt.
func (c *Core) execSWI(inst uint16) TrapCode {
	imm := uint32(inst) & 0xFF
	c.tracef("swi 0x%02X", imm)
	if imm == 0xCC {
		c.WriteRegister(0, c.flags.CPSR())
		return TrapNone
	}
	c.warnf("unhandled swi 0x%02X", imm)
	return TrapBreakpoint
}
