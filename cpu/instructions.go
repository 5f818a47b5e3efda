package cpu

// Each instruction handler reads its operand from c.M (already fetched by
// decode for the current addressing mode) and, for memory-writing
// instructions, writes back to c.AbsAddress -- or to the Accumulator, when
// c.mode is Accumulator. Instructions never advance PC themselves (JMP/JSR/
// RTS/RTI/branches are the sole exceptions, since altering PC is their
// entire point).

func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// writeResult stores v back to wherever the current addressing mode read
// its operand from: the Accumulator, or the memory cell at AbsAddress.
func (c *Cpu) writeResult(v byte) {
	if c.mode == Accumulator {
		c.A = v
	} else {
		c.Write(c.AbsAddress, v)
	}
}

// ADC - Add with Carry
func (c *Cpu) ADC() {
	result, carry, overflow := addWithCarry(c.A, c.M, c.Flags.Carry)
	c.A = result
	c.Flags.Carry = carry
	c.Flags.Overflow = overflow
	c.setZN(c.A)
}

// SBC - Subtract with Carry
func (c *Cpu) SBC() {
	result, carry, overflow := subWithCarry(c.A, c.M, c.Flags.Carry)
	c.A = result
	c.Flags.Carry = carry
	c.Flags.Overflow = overflow
	c.setZN(c.A)
}

// AND - Logical AND
func (c *Cpu) AND() {
	c.A &= c.M
	c.setZN(c.A)
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA() {
	c.A |= c.M
	c.setZN(c.A)
}

// EOR - Exclusive OR
func (c *Cpu) EOR() {
	c.A ^= c.M
	c.setZN(c.A)
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL() {
	result, carry := shiftLeft(c.M)
	c.Flags.Carry = carry
	c.writeResult(result)
	c.setZN(result)
}

// LSR - Logical Shift Right
func (c *Cpu) LSR() {
	result, carry := shiftRight(c.M)
	c.Flags.Carry = carry
	c.writeResult(result)
	c.setZN(result)
}

// ROL - Rotate Left
func (c *Cpu) ROL() {
	result, carry := rotateLeft(c.M, c.Flags.Carry)
	c.Flags.Carry = carry
	c.writeResult(result)
	c.setZN(result)
}

// ROR - Rotate Right
func (c *Cpu) ROR() {
	result, carry := rotateRight(c.M, c.Flags.Carry)
	c.Flags.Carry = carry
	c.writeResult(result)
	c.setZN(result)
}

// BIT - Bit Test
func (c *Cpu) BIT() {
	c.Flags.Zero = c.A&c.M == 0
	c.Flags.Overflow = c.M&0x40 != 0
	c.Flags.Negative = c.M&0x80 != 0
}

// CMP - Compare Accumulator
func (c *Cpu) CMP() {
	carry, zero, negative := compare(c.A, c.M)
	c.Flags.Carry = carry
	c.Flags.Zero = zero
	c.Flags.Negative = negative
}

// CPX - Compare X Register
func (c *Cpu) CPX() {
	carry, zero, negative := compare(c.X, c.M)
	c.Flags.Carry = carry
	c.Flags.Zero = zero
	c.Flags.Negative = negative
}

// CPY - Compare Y Register
func (c *Cpu) CPY() {
	carry, zero, negative := compare(c.Y, c.M)
	c.Flags.Carry = carry
	c.Flags.Zero = zero
	c.Flags.Negative = negative
}

// INC - Increment Memory
func (c *Cpu) INC() {
	v := c.M + 1
	c.Write(c.AbsAddress, v)
	c.setZN(v)
}

// DEC - Decrement Memory
func (c *Cpu) DEC() {
	v := c.M - 1
	c.Write(c.AbsAddress, v)
	c.setZN(v)
}

// INX - Increment X Register
func (c *Cpu) INX() {
	c.X++
	c.setZN(c.X)
}

// INY - Increment Y Register
func (c *Cpu) INY() {
	c.Y++
	c.setZN(c.Y)
}

// DEX - Decrement X Register
func (c *Cpu) DEX() {
	c.X--
	c.setZN(c.X)
}

// DEY - Decrement Y Register
func (c *Cpu) DEY() {
	c.Y--
	c.setZN(c.Y)
}

// LDA - Load Accumulator
func (c *Cpu) LDA() {
	c.A = c.M
	c.setZN(c.A)
}

// LDX - Load X Register
func (c *Cpu) LDX() {
	c.X = c.M
	c.setZN(c.X)
}

// LDY - Load Y Register
func (c *Cpu) LDY() {
	c.Y = c.M
	c.setZN(c.Y)
}

// STA - Store Accumulator
func (c *Cpu) STA() {
	c.Write(c.AbsAddress, c.A)
}

// STX - Store X Register
func (c *Cpu) STX() {
	c.Write(c.AbsAddress, c.X)
}

// STY - Store Y Register
func (c *Cpu) STY() {
	c.Write(c.AbsAddress, c.Y)
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX() {
	c.X = c.A
	c.setZN(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY() {
	c.Y = c.A
	c.setZN(c.Y)
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA() {
	c.A = c.X
	c.setZN(c.A)
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA() {
	c.A = c.Y
	c.setZN(c.A)
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX() {
	c.X = c.SP
	c.setZN(c.X)
}

// TXS - Transfer X to Stack Pointer. Unlike TSX, this does not affect flags.
func (c *Cpu) TXS() {
	c.SP = c.X
}

// push writes v to the stack page and decrements SP, wrapping modulo 256.
func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pull increments SP (wrapping modulo 256) and reads the stack page.
func (c *Cpu) pull() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return word(hi, lo)
}

// PHA - Push Accumulator
func (c *Cpu) PHA() {
	c.push(c.A)
}

// PLA - Pull Accumulator
func (c *Cpu) PLA() {
	c.A = c.pull()
	c.setZN(c.A)
}

// PHP - Push Processor Status
func (c *Cpu) PHP() {
	c.push(c.Flags.AsBinary())
}

// PLP - Pull Processor Status
func (c *Cpu) PLP() {
	c.Flags = FromBinary(c.pull())
}

// JMP - Jump
func (c *Cpu) JMP() {
	c.PC = c.AbsAddress
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the JSR
// instruction (PC-1, since decode already advanced PC past the operand),
// high byte first.
func (c *Cpu) JSR() {
	c.pushWord(c.PC - 1)
	c.PC = c.AbsAddress
}

// RTS - Return from Subroutine. Pulls the return address and adds one,
// undoing JSR's PC-1 push.
func (c *Cpu) RTS() {
	c.PC = c.pullWord() + 1
}

// RTI - Return from Interrupt. Pulls flags then PC, with no adjustment.
func (c *Cpu) RTI() {
	c.Flags = FromBinary(c.pull())
	c.PC = c.pullWord()
}

// branch takes the branch to AbsAddress when taken is true, applying the
// 6502's branch cycle rules: one extra cycle if taken, one more if the
// branch crosses a page boundary.
func (c *Cpu) branch(taken bool) {
	if !taken {
		return
	}
	c.Cycles++
	if c.AbsAddress&0xFF00 != c.PC&0xFF00 {
		c.Cycles++
	}
	c.PC = c.AbsAddress
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC() { c.branch(!c.Flags.Carry) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS() { c.branch(c.Flags.Carry) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ() { c.branch(c.Flags.Zero) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE() { c.branch(!c.Flags.Zero) }

// BMI - Branch if Minus
func (c *Cpu) BMI() { c.branch(c.Flags.Negative) }

// BPL - Branch if Positive
func (c *Cpu) BPL() { c.branch(!c.Flags.Negative) }

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC() { c.branch(!c.Flags.Overflow) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS() { c.branch(c.Flags.Overflow) }

// CLC - Clear Carry Flag
func (c *Cpu) CLC() { c.Flags.Carry = false }

// SEC - Set Carry Flag
func (c *Cpu) SEC() { c.Flags.Carry = true }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI() { c.Flags.Interrupt = false }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI() { c.Flags.Interrupt = true }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD() { c.Flags.Decimal = false }

// SED - Set Decimal Flag
func (c *Cpu) SED() { c.Flags.Decimal = true }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV() { c.Flags.Overflow = false }

// NOP - No Operation
func (c *Cpu) NOP() {}
