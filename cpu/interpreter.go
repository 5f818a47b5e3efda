package cpu

import "fmt"

// resetSP is the stack pointer value after Reset. The real 6502 reads its
// reset vector from 0xFFFC/0xFFFD; this interpreter instead starts PC at the
// fixed ProgramStart address, matching the convention used by its test
// fixtures and the command-line entrypoint.
const resetSP = 0xFF

// Reset puts the Cpu into its power-on state: registers zeroed, PC at
// ProgramStart, SP at the top of the stack page, and memory cleared. It does
// not touch Bus itself if the Cpu has none yet.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = resetSP
	c.PC = ProgramStart
	c.Cycles = 0
	c.M = 0
	c.AbsAddress = 0
	c.PageCrossed = false
	c.Flags = Flags{B: true}
	if c.Bus != nil {
		c.Bus.Clear()
	}
}

// UnknownOpcodeError reports an opcode byte with no entry in Opcodes.
type UnknownOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Halted reports whether opcode 0x00 has been fetched. The real 6502 treats
// 0x00 as BRK, a software interrupt; this interpreter instead uses it as a
// halt sentinel, since there is no interrupt vector or supervisor to handle
// a real BRK.
type Halted struct{}

func (Halted) Error() string { return "halted" }

// Step fetches, decodes, and executes a single instruction, advancing PC and
// Cycles accordingly. It returns Halted when the fetched opcode is 0x00, and
// an *UnknownOpcodeError for any byte not present in Opcodes.
func (c *Cpu) Step() error {
	opByte := c.Read(c.PC)
	if opByte == 0x00 {
		return Halted{}
	}

	op, ok := Opcodes[opByte]
	if !ok || op.Instruction == nil {
		return &UnknownOpcodeError{Opcode: opByte, PC: c.PC}
	}

	c.PC++
	c.mode = op.AddressingMode
	c.PageCrossed = false
	c.decode(op.AddressingMode)

	op.Instruction(c)

	c.Cycles += uint64(op.Cycles)
	if c.PageCrossed && pageCrossAddsCycle(opByte) {
		c.Cycles++
	}

	return nil
}

// pageCrossAddsCycle reports whether opByte belongs to the subset of
// indexed-addressing opcodes that incur an extra cycle on a page crossing.
// Write instructions (STA and the read-modify-write instructions) always pay
// the indexed-addressing cost up front and never get the discount, so they're
// excluded here even though they share an addressing mode with instructions
// that do.
func pageCrossAddsCycle(opByte byte) bool {
	switch opByte {
	case 0x9D, 0x99, 0x91, 0x81: // STA AbsoluteX/AbsoluteY/IndirectY/IndirectX
		return false
	case 0x1E, 0x3E, 0x5E, 0x7E, 0xDE, 0xFE: // ASL/ROL/LSR/ROR/DEC/INC AbsoluteX
		return false
	}
	op := Opcodes[opByte]
	switch op.AddressingMode {
	case AbsoluteX, AbsoluteY, IndirectY:
		return true
	default:
		return false
	}
}

// Run steps the Cpu until it halts, hits an unknown opcode, or maxSteps
// instructions have executed (a safety valve against runaway loops with no
// halt instruction). It returns nil on a clean halt.
func (c *Cpu) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		err := c.Step()
		if err == nil {
			continue
		}
		if _, halted := err.(Halted); halted {
			return nil
		}
		return err
	}
	return fmt.Errorf("exceeded %d steps without halting", maxSteps)
}
