package thumb7

// execAdd1 implements ADD(1) Rd, Rn, #imm3 (format 2). It reports matched
// == false when the immediate is zero, since that encoding belongs to
// MOV(2) instead (§4.E ordering subtlety).
func (c *Core) execAdd1(inst uint16) (trap TrapCode, matched bool) {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := uint32(inst>>6) & 0x7
	if imm == 0 {
		return TrapNone, false
	}
	c.tracef("adds r%d,r%d,#0x%X", rd, rn, imm)
	ra := c.ReadRegister(rn)
	rc := c.flags.addWithCarry(ra, imm, 0)
	c.WriteRegister(rd, rc)
	return TrapNone, true
}

// execMov2 implements MOV(2) Rd, Rn: register-to-register move through the
// ALU, setting flags (unlike MOV(3)). Shares ADD(1)'s opcode space.
func (c *Core) execMov2(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	c.tracef("movs r%d,r%d", rd, rn)
	rc := c.ReadRegister(rn)
	c.flags.setNZ(rc)
	c.flags.c = false
	c.flags.v = false
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAdd2 implements ADD(2) Rd, #imm8 (format 3).
func (c *Core) execAdd2(inst uint16) TrapCode {
	imm := uint32(inst>>0) & 0xFF
	rd := uint32(inst>>8) & 0x7
	c.tracef("adds r%d,#0x%02X", rd, imm)
	ra := c.ReadRegister(rd)
	rc := c.flags.addWithCarry(ra, imm, 0)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAdd3 implements ADD(3) Rd, Rn, Rm (format 2, three registers).
func (c *Core) execAdd3(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	c.tracef("adds r%d,r%d,r%d", rd, rn, rm)
	ra := c.ReadRegister(rn)
	rb := c.ReadRegister(rm)
	rc := c.flags.addWithCarry(ra, rb, 0)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAdd4 implements ADD(4) Rd, Rm where either may be a high register
// (format 5); it sets no flags and special-cases a PC destination exactly
// like MOV(3).
func (c *Core) execAdd4(inst uint16) TrapCode {
	rd := uint32(inst>>0)&0x7 | uint32(inst>>4)&0x8
	rm := uint32(inst>>3) & 0xF
	c.tracef("add r%d,r%d", rd, rm)
	ra := c.ReadRegister(rd)
	rb := c.ReadRegister(rm)
	rc := ra + rb
	if rd == rPC {
		rc &^= 1
		rc += 2
	}
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAdd5 implements ADD(5) Rd, PC, #imm8 (format 12, PC-relative address).
func (c *Core) execAdd5(inst uint16) TrapCode {
	imm := (uint32(inst>>0) & 0xFF) << 2
	rd := uint32(inst>>8) & 0x7
	c.tracef("add r%d,PC,#0x%02X", rd, imm)
	ra := c.ReadRegister(rPC)
	rc := (ra &^ 3) + imm
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAdd6 implements ADD(6) Rd, SP, #imm8 (format 12, SP-relative address).
func (c *Core) execAdd6(inst uint16) TrapCode {
	imm := (uint32(inst>>0) & 0xFF) << 2
	rd := uint32(inst>>8) & 0x7
	c.tracef("add r%d,SP,#0x%02X", rd, imm)
	rc := c.ReadRegister(rSP) + imm
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execAdd7 implements ADD(7) SP, #imm7 (format 13).
func (c *Core) execAdd7(inst uint16) TrapCode {
	imm := (uint32(inst>>0) & 0x7F) << 2
	c.tracef("add SP,#0x%02X", imm)
	c.WriteRegister(rSP, c.ReadRegister(rSP)+imm)
	return TrapNone
}

// execSub1 implements SUB(1) Rd, Rn, #imm3 (format 2).
func (c *Core) execSub1(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	imm := uint32(inst>>6) & 0x7
	c.tracef("subs r%d,r%d,#0x%X", rd, rn, imm)
	ra := c.ReadRegister(rn)
	rc := c.flags.subWithBorrow(ra, imm, 1)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execSub2 implements SUB(2) Rd, #imm8 (format 3).
func (c *Core) execSub2(inst uint16) TrapCode {
	imm := uint32(inst>>0) & 0xFF
	rd := uint32(inst>>8) & 0x7
	c.tracef("subs r%d,#0x%02X", rd, imm)
	ra := c.ReadRegister(rd)
	rc := c.flags.subWithBorrow(ra, imm, 1)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execSub3 implements SUB(3) Rd, Rn, Rm (format 2, three registers).
func (c *Core) execSub3(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rn := uint32(inst>>3) & 0x7
	rm := uint32(inst>>6) & 0x7
	c.tracef("subs r%d,r%d,r%d", rd, rn, rm)
	ra := c.ReadRegister(rn)
	rb := c.ReadRegister(rm)
	rc := c.flags.subWithBorrow(ra, rb, 1)
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execSub4 implements SUB(4) SP, #imm7 (format 13).
func (c *Core) execSub4(inst uint16) TrapCode {
	imm := (uint32(inst>>0) & 0x7F) << 2
	c.tracef("sub SP,#0x%02X", imm)
	c.WriteRegister(rSP, c.ReadRegister(rSP)-imm)
	return TrapNone
}

// execMov1 implements MOV(1) Rd, #imm8 (format 3).
func (c *Core) execMov1(inst uint16) TrapCode {
	imm := uint32(inst>>0) & 0xFF
	rd := uint32(inst>>8) & 0x7
	c.tracef("movs r%d,#0x%02X", rd, imm)
	c.WriteRegister(rd, imm)
	c.flags.setNZ(imm)
	return TrapNone
}

// execMov3 implements MOV(3) Rd, Rm where either may be a high register
// (format 5). Unlike MOV(2), it sets no flags; a PC destination is masked
// to even and advanced by the pipeline offset.
func (c *Core) execMov3(inst uint16) TrapCode {
	rd := uint32(inst>>0)&0x7 | uint32(inst>>4)&0x8
	rm := uint32(inst>>3) & 0xF
	c.tracef("mov r%d,r%d", rd, rm)
	rc := c.ReadRegister(rm)
	if rd == rPC {
		rc &^= 1
		rc += 2
	}
	c.WriteRegister(rd, rc)
	return TrapNone
}

// execCPY implements CPY Rd, Rm: the low-register form of MOV(3) (both H
// bits clear), and like MOV(3) it sets no flags. Forms naming a high
// register do not reach here; they are decoded as MOV(3).
func (c *Core) execCPY(inst uint16) TrapCode {
	rd := uint32(inst>>0) & 0x7
	rm := uint32(inst>>3) & 0x7
	c.tracef("cpy r%d,r%d", rd, rm)
	c.WriteRegister(rd, c.ReadRegister(rm))
	return TrapNone
}
