// Package cpu implements the MOS Technology 6502 microprocessor: registers,
// status flags, the addressing-mode resolver, and the fetch-decode-execute
// interpreter for its documented instruction set.
package cpu

import (
	"strconv"
	"strings"

	"github.com/hbishop/p6502/mem"
)

// Cpu has no memory of its own, aside from its small set of registers.
// Instead it addresses a Bus that holds the full 64 KiB of memory.
type Cpu struct {
	Bus *mem.Bus

	Flags Flags

	A byte // Accumulator
	X byte // index register X
	Y byte // index register Y

	// SP addresses a byte within the stack page (0x0100-0x01ff). It
	// points to the next free slot: pushes write at 0x0100|SP then
	// decrement; pulls increment then read.
	SP byte

	// PC points to the next byte to fetch.
	PC uint16

	Cycles uint64 // monotonically increasing; not cycle-accurate

	M           byte   // operand byte fetched by the addressing-mode resolver
	AbsAddress  uint16 // effective address computed by the resolver
	PageCrossed bool   // set by the resolver, consumed by cycle accounting

	mode AddressingMode // addressing mode of the instruction currently executing
}

// Read reads one byte from addr via the Bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write writes data to addr via the Bus.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// ProgramStart is the fixed address at which Reset points PC, and at which
// LoadProgram installs a program by default.
const ProgramStart uint16 = 0x0600

// LoadProgram copies program into the Bus starting at addr, truncating
// anything that would land beyond 0xFFFF.
func (c *Cpu) LoadProgram(program []byte, addr uint16) {
	for i, b := range program {
		target := int(addr) + i
		if target > 0xFFFF {
			return
		}
		c.Bus.Write(uint16(target), b)
	}
}

// LoadHexProgram is a convenience wrapper for hand-written test fixtures: it
// parses a whitespace-separated hex dump (as produced by the hand_asm-style
// snippets used throughout the test suite) and installs it at addr.
func (c *Cpu) LoadHexProgram(hexDump string, addr uint16) error {
	var program []byte
	for _, tok := range strings.Fields(hexDump) {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return err
		}
		program = append(program, byte(v))
	}
	c.LoadProgram(program, addr)
	return nil
}

// AddressingMode tells the resolver where to find the operand for an
// instruction. There are 13 modes: the 6502's usual twelve, with Implied and
// Accumulator kept as separate modes.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand fetch
	Accumulator                       // operates on A directly

	Immediate // the operand byte is the value itself
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX
	IndirectX // (zp,X)

	IndirectY // (zp),Y; may involve page crossing
	Relative  // branches

	Absolute
	AbsoluteX // may involve page crossing
	AbsoluteY // may involve page crossing

	Indirect // JMP only; carries the page-boundary bug
)

// decode computes AbsAddress (and, for read-bearing modes, M) for the given
// addressing mode, advancing PC by the number of operand bytes the mode
// consumes. It sets PageCrossed whenever an indexed mode crosses a page
// boundary; Step turns that into an extra cycle for the opcodes that pay one.
func (c *Cpu) decode(a AddressingMode) {
	switch a {

	case Implied:
		return

	case Accumulator:
		c.M = c.A
		return

	case Immediate:
		c.AbsAddress = c.PC
		c.PC++

	case ZeroPage:
		c.AbsAddress = uint16(c.Read(c.PC))
		c.PC++

	case ZeroPageX:
		c.AbsAddress = uint16(c.Read(c.PC)+c.X) & 0x00FF
		c.PC++

	case ZeroPageY:
		c.AbsAddress = uint16(c.Read(c.PC)+c.Y) & 0x00FF
		c.PC++

	case Relative:
		// the displacement is a signed 8-bit two's-complement offset
		// from the address of the byte following it
		rel := int8(c.Read(c.PC))
		c.PC++
		c.AbsAddress = uint16(int32(c.PC) + int32(rel))

	case Absolute:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		c.AbsAddress = word(hi, lo)

	case AbsoluteX:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		base := word(hi, lo)
		c.AbsAddress = base + uint16(c.X)
		if c.AbsAddress&0xFF00 != base&0xFF00 {
			c.PageCrossed = true
		}

	case AbsoluteY:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		base := word(hi, lo)
		c.AbsAddress = base + uint16(c.Y)
		if c.AbsAddress&0xFF00 != base&0xFF00 {
			c.PageCrossed = true
		}

	case IndirectX:
		ptr := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(ptr+c.X) & 0x00FF)
		hi := c.Read(uint16(ptr+c.X+1) & 0x00FF)
		c.AbsAddress = word(hi, lo)

	case IndirectY:
		ptr := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(ptr) & 0x00FF)
		hi := c.Read(uint16(ptr+1) & 0x00FF)
		base := word(hi, lo)
		c.AbsAddress = base + uint16(c.Y)
		if c.AbsAddress&0xFF00 != base&0xFF00 {
			c.PageCrossed = true
		}

	case Indirect:
		ptrLo := c.Read(c.PC)
		c.PC++
		ptrHi := c.Read(c.PC)
		c.PC++
		ptr := word(ptrHi, ptrLo)

		lo := c.Read(ptr)
		var hi byte
		if ptrLo == 0xFF {
			// the infamous page-boundary bug: the high byte wraps
			// to the start of the same page instead of crossing
			// into the next one
			hi = c.Read(ptr & 0xFF00)
		} else {
			hi = c.Read(ptr + 1)
		}
		c.AbsAddress = word(hi, lo)
	}

	if a != Relative {
		c.M = c.Read(c.AbsAddress)
	}
}

// word concatenates hi and lo into a little-endian 16-bit value.
func word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
