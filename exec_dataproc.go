package thumb7

// execADC implements ADC Rd, Rm (format 4).
func (c *Core) execADC(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("adc r%d,r%d", rd, rm)
	ra := c.ReadRegister(rd)
	rb := c.ReadRegister(rm)
	cin := boolToWord(c.flags.c)
	rc := c.flags.addWithCarry(ra, rb, cin)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAND implements AND Rd, Rm (format 4).
func (c *Core) execAND(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("ands r%d,r%d", rd, rm)
	rc := c.flags.logical(c.ReadRegister(rd) & c.ReadRegister(rm))
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAsr1 implements ASR(1) Rd, Rm, #imm5 (format 1).
func (c *Core) execAsr1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	shift := uint32(inst>>6) & 0x1F
	c.tracef("asrs r%d,r%d,#0x%X", rd, rm, shift)
	rc := c.ReadRegister(rm)
	if shift == 0 {
		if rc&0x80000000 != 0 {
			c.flags.c = true
			rc = ^uint32(0)
		} else {
			c.flags.c = false
			rc = 0
		}
	} else {
		c.flags.c = rc&(1<<(shift-1)) != 0
		negative := rc&0x80000000 != 0
		rc >>= shift
		if negative {
			rc |= ^uint32(0) << (32 - shift)
		}
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execAsr2 implements ASR(2) Rd, Rs (format 4, register shift amount).
func (c *Core) execAsr2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rs := uint32(inst>>3) & 0x7
	c.tracef("asrs r%d,r%d", rd, rs)
	rc := c.ReadRegister(rd)
	shift := c.ReadRegister(rs) & 0xFF
	switch {
	case shift == 0:
		// unaffected
	case shift < 32:
		c.flags.c = rc&(1<<(shift-1)) != 0
		negative := rc&0x80000000 != 0
		rc >>= shift
		if negative {
			rc |= ^uint32(0) << (32 - shift)
		}
	default:
		if rc&0x80000000 != 0 {
			c.flags.c = true
			rc = ^uint32(0)
		} else {
			c.flags.c = false
			rc = 0
		}
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execBIC implements BIC Rd, Rm (format 4).
func (c *Core) execBIC(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("bics r%d,r%d", rd, rm)
	rc := c.flags.logical(c.ReadRegister(rd) &^ c.ReadRegister(rm))
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execCMN implements CMN Rn, Rm (format 4, compare negative).
func (c *Core) execCMN(inst uint16) TrapCode {
	rn := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("cmns r%d,r%d", rn, rm)
	c.flags.addWithCarry(c.ReadRegister(rn), c.ReadRegister(rm), 0)
	return TrapNone
}

func (c *Core) compare(ra, rb uint32) {
	c.flags.subWithBorrow(ra, rb, 1)
}

// execCmp1 implements CMP(1) Rn, #imm8 (format 3).
func (c *Core) execCmp1(inst uint16) TrapCode {
	imm := uint32(inst>>0) & 0xFF
	rn := uint32(inst>>8) & 0x7
	c.tracef("cmp r%d,#0x%02X", rn, imm)
	c.compare(c.ReadRegister(rn), imm)
	return TrapNone
}

// execCmp2 implements CMP(2) Rn, Rm, two low registers (format 4).
func (c *Core) execCmp2(inst uint16) TrapCode {
	rn := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("cmps r%d,r%d", rn, rm)
	c.compare(c.ReadRegister(rn), c.ReadRegister(rm))
	return TrapNone
}

// execCmp3 implements CMP(3) Rn, Rm with at least one high register
// (format 5).
func (c *Core) execCmp3(inst uint16) TrapCode {
	rn := uint32(inst>>0)&0x7 | uint32(inst>>4)&0x8
	rm := uint32(inst>>3) & 0xF
	c.tracef("cmps r%d,r%d", rn, rm)
	c.compare(c.ReadRegister(rn), c.ReadRegister(rm))
	return TrapNone
}

// execCPS recognizes "change processor state" but does not implement it:
// the historical source prints "cps TODO" and falls through every
// remaining pattern to the final unknown-instruction trap, so this does
// the same rather than quietly succeeding.
func (c *Core) execCPS(inst uint16) TrapCode {
	c.warnf("cps not implemented")
	return TrapBreakpoint
}

// execEOR implements EOR Rd, Rm (format 4).
func (c *Core) execEOR(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("eors r%d,r%d", rd, rm)
	rc := c.flags.logical(c.ReadRegister(rd) ^ c.ReadRegister(rm))
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execLsl1 implements LSL(1) Rd, Rm, #imm5 (format 1).
func (c *Core) execLsl1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	shift := uint32(inst>>6) & 0x1F
	c.tracef("lsls r%d,r%d,#0x%X", rd, rm, shift)
	rc := c.ReadRegister(rm)
	if shift != 0 {
		c.flags.c = rc&(1<<(32-shift)) != 0
		rc <<= shift
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execLsl2 implements LSL(2) Rd, Rs (format 4).
func (c *Core) execLsl2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rs := uint32(inst>>3) & 0x7
	c.tracef("lsls r%d,r%d", rd, rs)
	rc := c.ReadRegister(rd)
	shift := c.ReadRegister(rs) & 0xFF
	switch {
	case shift == 0:
	case shift < 32:
		c.flags.c = rc&(1<<(32-shift)) != 0
		rc <<= shift
	case shift == 32:
		c.flags.c = rc&1 != 0
		rc = 0
	default:
		c.flags.c = false
		rc = 0
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execLsr1 implements LSR(1) Rd, Rm, #imm5 (format 1).
func (c *Core) execLsr1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	shift := uint32(inst>>6) & 0x1F
	c.tracef("lsrs r%d,r%d,#0x%X", rd, rm, shift)
	rc := c.ReadRegister(rm)
	if shift == 0 {
		c.flags.c = rc&0x80000000 != 0
		rc = 0
	} else {
		c.flags.c = rc&(1<<(shift-1)) != 0
		rc >>= shift
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execLsr2 implements LSR(2) Rd, Rs (format 4).
func (c *Core) execLsr2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rs := uint32(inst>>3) & 0x7
	c.tracef("lsrs r%d,r%d", rd, rs)
	rc := c.ReadRegister(rd)
	shift := c.ReadRegister(rs) & 0xFF
	switch {
	case shift == 0:
	case shift < 32:
		c.flags.c = rc&(1<<(shift-1)) != 0
		rc >>= shift
	case shift == 32:
		c.flags.c = rc&0x80000000 != 0
		rc = 0
	default:
		c.flags.c = false
		rc = 0
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execMUL implements MUL Rd, Rm (format 4).
func (c *Core) execMUL(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("muls r%d,r%d", rd, rm)
	rc := c.flags.logical(c.ReadRegister(rd) * c.ReadRegister(rm))
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execMVN implements MVN Rd, Rm (format 4, bitwise not).
func (c *Core) execMVN(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("mvns r%d,r%d", rd, rm)
	rc := c.flags.logical(^c.ReadRegister(rm))
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execNEG implements NEG Rd, Rm (format 4, two's-complement negate).
func (c *Core) execNEG(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("negs r%d,r%d", rd, rm)
	ra := c.ReadRegister(rm)
	rc := c.flags.addWithCarry(0, ^ra, 1)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execORR implements ORR Rd, Rm (format 4).
func (c *Core) execORR(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("orrs r%d,r%d", rd, rm)
	rc := c.flags.logical(c.ReadRegister(rd) | c.ReadRegister(rm))
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execROR implements ROR Rd, Rs (format 4, rotate right).
func (c *Core) execROR(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rs := uint32(inst>>3) & 0x7
	c.tracef("rors r%d,r%d", rd, rs)
	rc := c.ReadRegister(rd)
	shift := c.ReadRegister(rs) & 0xFF
	if shift != 0 {
		n := shift & 0x1F
		if n == 0 {
			c.flags.c = rc&0x80000000 != 0
		} else {
			c.flags.c = rc&(1<<(n-1)) != 0
			rc = rc>>n | rc<<(32-n)
		}
	}
	c.WriteRegister(rd, rc)
	c.flags.setNZ(rc)
	return TrapNone
}

// execSBC implements SBC Rd, Rm (format 4, subtract with carry/borrow).
func (c *Core) execSBC(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("sbc r%d,r%d", rd, rm)
	ra := c.ReadRegister(rd)
	rb := c.ReadRegister(rm)
	cin := boolToWord(c.flags.c)
	rc := c.flags.subWithBorrow(ra, rb, cin)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execTST implements TST Rn, Rm (format 4).
func (c *Core) execTST(inst uint16) TrapCode {
	rn := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("tst r%d,r%d", rn, rm)
	c.flags.setNZ(c.ReadRegister(rn) & c.ReadRegister(rm))
	return TrapNone
}
