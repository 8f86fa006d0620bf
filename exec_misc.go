package thumb7

// execREV implements REV Rd, Rm: reverse byte order in a word.
func (c *Core) execREV(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("rev r%d,r%d", rd, rm)
	ra := c.ReadRegister(rm)
	rc := ra<<24 | (ra&0x0000FF00)<<8 | (ra&0x00FF0000)>>8 | ra>>24
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execREV16 implements REV16 Rd, Rm: reverse byte order within each half.
func (c *Core) execREV16(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("rev16 r%d,r%d", rd, rm)
	ra := c.ReadRegister(rm)
	rc := (ra&0x00FF0000)<<8 | (ra&0xFF000000)>>8 | (ra&0x000000FF)<<8 | (ra&0x0000FF00)>>8
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execREVSH implements REVSH Rd, Rm: reverse the low half's bytes and
// sign-extend the result to a word.
func (c *Core) execREVSH(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("revsh r%d,r%d", rd, rm)
	ra := c.ReadRegister(rm)
	swapped := (ra&0x000000FF)<<8 | (ra&0x0000FF00)>>8
	c.WriteRegister(rd, signExtend(swapped, 16))
	return TrapNone
}

// execSXTB implements SXTB Rd, Rm: sign-extend the low byte to a word.
func (c *Core) execSXTB(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("sxtb r%d,r%d", rd, rm)
	c.WriteRegister(rd, signExtend(c.ReadRegister(rm)&0xFF, 8))
	return TrapNone
}

// execSXTH implements SXTH Rd, Rm: sign-extend the low halfword to a word.
func (c *Core) execSXTH(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("sxth r%d,r%d", rd, rm)
	c.WriteRegister(rd, signExtend(c.ReadRegister(rm)&0xFFFF, 16))
	return TrapNone
}

// execUXTB implements UXTB Rd, Rm: zero-extend the low byte to a word.
func (c *Core) execUXTB(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("uxtb r%d,r%d", rd, rm)
	c.WriteRegister(rd, c.ReadRegister(rm)&0xFF)
	return TrapNone
}

// execUXTH implements UXTH Rd, Rm: zero-extend the low halfword to a word.
func (c *Core) execUXTH(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("uxth r%d,r%d", rd, rm)
	c.WriteRegister(rd, c.ReadRegister(rm)&0xFFFF)
	return TrapNone
}
