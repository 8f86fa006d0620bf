package thumb7

import "math/bits"

// execLDMIA implements LDMIA Rn!, {reglist} (format 15). Writeback to the
// base register is suppressed when the base also appears in the register
// list, since the loaded value must win.
func (c *Core) execLDMIA(inst uint16) TrapCode {
	rn := uint32(inst>>8) & 0x7
	list := uint32(inst) & 0xFF
	addr := c.ReadRegister(rn)
	c.tracef("ldmia r%d!,{0x%02X}", rn, list)
	baseInList := list&(1<<rn) != 0
	for r := uint32(0); r < 8; r++ {
		if list&(1<<r) == 0 {
			continue
		}
		c.WriteRegister(r, c.bus32(addr))
		addr += 4
	}
	if !baseInList {
		c.WriteRegister(rn, addr)
	}
	return TrapNone
}

// execSTMIA implements STMIA Rn!, {reglist} (format 15).
func (c *Core) execSTMIA(inst uint16) TrapCode {
	rn := uint32(inst>>8) & 0x7
	list := uint32(inst) & 0xFF
	addr := c.ReadRegister(rn)
	c.tracef("stmia r%d!,{0x%02X}", rn, list)
	for r := uint32(0); r < 8; r++ {
		if list&(1<<r) == 0 {
			continue
		}
		c.writeBus32(addr, c.ReadRegister(r))
		addr += 4
	}
	c.WriteRegister(rn, addr)
	return TrapNone
}

// execPUSH implements PUSH {reglist}{,LR} (format 14).
func (c *Core) execPUSH(inst uint16) TrapCode {
	list := uint32(inst) & 0xFF
	pushLR := inst&0x0100 != 0
	c.tracef("push {0x%02X,lr=%v}", list, pushLR)
	count := bits.OnesCount32(list)
	if pushLR {
		count++
	}
	addr := c.ReadRegister(rSP) - uint32(count)*4
	base := addr
	for r := uint32(0); r < 8; r++ {
		if list&(1<<r) == 0 {
			continue
		}
		c.writeBus32(addr, c.ReadRegister(r))
		addr += 4
	}
	if pushLR {
		lr := c.ReadRegister(rLR)
		if lr&1 == 0 {
			c.warnf("push of lr with low bit clear (0x%08X)", lr)
		}
		c.writeBus32(addr, lr)
	}
	c.WriteRegister(rSP, base)
	return TrapNone
}

// execPOP implements POP {reglist}{,PC} (format 14). A popped PC with its
// low bit clear is a diagnosable oddity, not a fault: the bit is masked and
// the normal pipeline offset is restored.
func (c *Core) execPOP(inst uint16) TrapCode {
	list := uint32(inst) & 0xFF
	popPC := inst&0x0100 != 0
	c.tracef("pop {0x%02X,pc=%v}", list, popPC)
	addr := c.ReadRegister(rSP)
	for r := uint32(0); r < 8; r++ {
		if list&(1<<r) == 0 {
			continue
		}
		c.WriteRegister(r, c.bus32(addr))
		addr += 4
	}
	if popPC {
		pc := c.bus32(addr)
		addr += 4
		if pc&1 == 0 {
			c.warnf("pop of pc with low bit clear (0x%08X)", pc)
		}
		c.WriteRegister(rPC, (pc&^1)+2)
	}
	c.WriteRegister(rSP, addr)
	return TrapNone
}
