package main

import (
	"fmt"
	"os"

	"github.com/northfield-labs/thumb7"
	"github.com/northfield-labs/thumb7/internal/coreerr"
)

// flatBus is a flat byte-addressed memory, the same "one big array" shape
// the M68K sibling example's testBus uses, sized generously enough to hold
// a cartridge image plus a working stack.
type flatBus struct {
	mem [1 << 20]byte
}

func (b *flatBus) ReadBus16(addr uint32) uint16 {
	addr &= uint32(len(b.mem) - 1)
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}

func (b *flatBus) ReadBus32(addr uint32) uint32 {
	addr &= uint32(len(b.mem) - 1)
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 |
		uint32(b.mem[addr+2])<<16 | uint32(b.mem[addr+3])<<24
}

func (b *flatBus) WriteBus16(addr uint32, val uint16) {
	addr &= uint32(len(b.mem) - 1)
	b.mem[addr] = byte(val)
	b.mem[addr+1] = byte(val >> 8)
}

func (b *flatBus) WriteBus32(addr uint32, val uint32) {
	addr &= uint32(len(b.mem) - 1)
	b.mem[addr] = byte(val)
	b.mem[addr+1] = byte(val >> 8)
	b.mem[addr+2] = byte(val >> 16)
	b.mem[addr+3] = byte(val >> 24)
}

// TrapOnFetch never intercepts a fetch; a standalone runner has no
// breakpoint or watchpoint surface to offer.
func (b *flatBus) TrapOnFetch(pc uint32) uint32 {
	return 0
}

func loadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, coreerr.Errorf("run", "load image %s: %w", path, err)
	}
	return data, nil
}

// runImage loads image into a fresh bus at address 0, wires a Core against
// it using cfg's initial register values, and runs it to completion or to
// cfg.cycleBudget. It returns the trap code the run ended with so the
// caller can report it.
func runImage(cfg config, image []byte) (thumb7.TrapCode, *thumb7.Core, error) {
	bus := &flatBus{}
	if len(image) > len(bus.mem) {
		return 0, nil, coreerr.Errorf("run", "image %d bytes exceeds %d-byte memory", len(image), len(bus.mem))
	}
	copy(bus.mem[:], image)

	core := thumb7.NewCore(bus)
	core.EnableDebug(cfg.debug)
	core.WriteRegister(13, cfg.initialSP)
	// cfg.initialPC is the address of the first instruction to execute; the
	// core's R15 convention runs two bytes ahead of the fetch address (see
	// Core's pipeline-offset doc), so the register write carries that bias.
	core.WriteRegister(15, cfg.initialPC+2)

	trap := core.Run(cfg.cycleBudget)
	return trap, core, nil
}

func reportRun(trap thumb7.TrapCode, core *thumb7.Core) {
	fmt.Printf("trap = %d\n%s\n", trap, core)
}
