package thumb7

// execLdr1 implements LDR(1) Rd, [Rn, #imm5<<2] (format 9, word offset).
func (c *Core) execLdr1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := (uint32(inst>>6) & 0x1F) << 2
	addr := c.ReadRegister(rn) + imm
	c.tracef("ldr r%d,[r%d,#0x%X]", rd, rn, imm)
	c.WriteRegister(rd, c.bus32(addr))
	return TrapNone
}

// execLdr2 implements LDR(2) Rd, [Rn, Rm] (format 7).
func (c *Core) execLdr2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("ldr r%d,[r%d,r%d]", rd, rn, rm)
	c.WriteRegister(rd, c.bus32(addr))
	return TrapNone
}

// execLdr3 implements LDR(3) Rd, [PC, #imm8<<2] (format 6, PC-relative,
// word-aligned base regardless of the current PC's low bits).
func (c *Core) execLdr3(inst uint16) TrapCode {
	rd := uint32(inst>>8) & 0x7
	imm := (uint32(inst) & 0xFF) << 2
	addr := (c.ReadRegister(rPC) &^ 3) + imm
	c.tracef("ldr r%d,[PC,#0x%X]", rd, imm)
	c.WriteRegister(rd, c.bus32(addr))
	return TrapNone
}

// execLdr4 implements LDR(4) Rd, [SP, #imm8<<2] (format 11).
func (c *Core) execLdr4(inst uint16) TrapCode {
	rd := uint32(inst>>8) & 0x7
	imm := (uint32(inst) & 0xFF) << 2
	addr := c.ReadRegister(rSP) + imm
	c.tracef("ldr r%d,[SP,#0x%X]", rd, imm)
	c.WriteRegister(rd, c.bus32(addr))
	return TrapNone
}

// execLdrb1 implements LDRB(1) Rd, [Rn, #imm5] (format 9, byte offset).
func (c *Core) execLdrb1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := uint32(inst>>6) & 0x1F
	addr := c.ReadRegister(rn) + imm
	c.tracef("ldrb r%d,[r%d,#0x%X]", rd, rn, imm)
	c.WriteRegister(rd, uint32(c.readByte(addr)))
	return TrapNone
}

// execLdrb2 implements LDRB(2) Rd, [Rn, Rm] (format 7).
func (c *Core) execLdrb2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("ldrb r%d,[r%d,r%d]", rd, rn, rm)
	c.WriteRegister(rd, uint32(c.readByte(addr)))
	return TrapNone
}

// execLdrh1 implements LDRH(1) Rd, [Rn, #imm5<<1] (format 10).
func (c *Core) execLdrh1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := (uint32(inst>>6) & 0x1F) << 1
	addr := c.ReadRegister(rn) + imm
	c.tracef("ldrh r%d,[r%d,#0x%X]", rd, rn, imm)
	c.WriteRegister(rd, uint32(c.bus16(addr)))
	return TrapNone
}

// execLdrh2 implements LDRH(2) Rd, [Rn, Rm] (format 8).
func (c *Core) execLdrh2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("ldrh r%d,[r%d,r%d]", rd, rn, rm)
	c.WriteRegister(rd, uint32(c.bus16(addr)))
	return TrapNone
}

// execLDRSB implements LDRSB Rd, [Rn, Rm] (format 8, sign-extended byte).
func (c *Core) execLDRSB(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("ldrsb r%d,[r%d,r%d]", rd, rn, rm)
	c.WriteRegister(rd, signExtend(uint32(c.readByte(addr)), 8))
	return TrapNone
}

// execLDRSH implements LDRSH Rd, [Rn, Rm] (format 8, sign-extended half).
func (c *Core) execLDRSH(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("ldrsh r%d,[r%d,r%d]", rd, rn, rm)
	c.WriteRegister(rd, signExtend(uint32(c.bus16(addr)), 16))
	return TrapNone
}

// execStr1 implements STR(1) Rd, [Rn, #imm5<<2] (format 9).
func (c *Core) execStr1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := (uint32(inst>>6) & 0x1F) << 2
	addr := c.ReadRegister(rn) + imm
	c.tracef("str r%d,[r%d,#0x%X]", rd, rn, imm)
	c.writeBus32(addr, c.ReadRegister(rd))
	return TrapNone
}

// execStr2 implements STR(2) Rd, [Rn, Rm] (format 7).
func (c *Core) execStr2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("str r%d,[r%d,r%d]", rd, rn, rm)
	c.writeBus32(addr, c.ReadRegister(rd))
	return TrapNone
}

// execStr3 implements STR(3) Rd, [SP, #imm8<<2] (format 11).
func (c *Core) execStr3(inst uint16) TrapCode {
	rd := uint32(inst>>8) & 0x7
	imm := (uint32(inst) & 0xFF) << 2
	addr := c.ReadRegister(rSP) + imm
	c.tracef("str r%d,[SP,#0x%X]", rd, imm)
	c.writeBus32(addr, c.ReadRegister(rd))
	return TrapNone
}

// execStrb1 implements STRB(1) Rd, [Rn, #imm5] (format 9).
func (c *Core) execStrb1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := uint32(inst>>6) & 0x1F
	addr := c.ReadRegister(rn) + imm
	c.tracef("strb r%d,[r%d,#0x%X]", rd, rn, imm)
	c.writeByte(addr, uint8(c.ReadRegister(rd)))
	return TrapNone
}

// execStrb2 implements STRB(2) Rd, [Rn, Rm] (format 7).
func (c *Core) execStrb2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("strb r%d,[r%d,r%d]", rd, rn, rm)
	c.writeByte(addr, uint8(c.ReadRegister(rd)))
	return TrapNone
}

// execStrh1 implements STRH(1) Rd, [Rn, #imm5<<1] (format 10).
func (c *Core) execStrh1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := (uint32(inst>>6) & 0x1F) << 1
	addr := c.ReadRegister(rn) + imm
	c.tracef("strh r%d,[r%d,#0x%X]", rd, rn, imm)
	c.writeBus16(addr, uint16(c.ReadRegister(rd)))
	return TrapNone
}

// execStrh2 implements STRH(2) Rd, [Rn, Rm] (format 8).
func (c *Core) execStrh2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	addr := c.ReadRegister(rn) + c.ReadRegister(rm)
	c.tracef("strh r%d,[r%d,r%d]", rd, rn, rm)
	c.writeBus16(addr, uint16(c.ReadRegister(rd)))
	return TrapNone
}
