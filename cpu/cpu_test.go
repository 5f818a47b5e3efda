package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbishop/p6502/mem"
)

func newCpu(t *testing.T) *Cpu {
	t.Helper()
	c := &Cpu{Bus: mem.New()}
	c.Reset()
	return c
}

func run(t *testing.T, hexDump string) *Cpu {
	t.Helper()
	c := newCpu(t)
	require.NoError(t, c.LoadHexProgram(hexDump, ProgramStart))
	require.NoError(t, c.Run(10000))
	return c
}

func TestLoadProgram(t *testing.T) {
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"

	c := newCpu(t)
	require.NoError(t, c.LoadHexProgram(program, 0x8000))

	assert.Equal(t, byte(0xa2), c.Bus.RAM[0x8000])
	assert.Equal(t, byte(0x0a), c.Bus.RAM[0x8001])
	assert.Equal(t, byte(0x8e), c.Bus.RAM[0x8002])
	assert.Equal(t, byte(0xea), c.Bus.RAM[0x801b])
	assert.Equal(t, byte(0), c.Bus.RAM[0x801c])

	assert.Equal(t, "LDX", Opcodes[c.Bus.RAM[0x8000]].Name)
	assert.Equal(t, "ASL", Opcodes[c.Bus.RAM[0x8001]].Name)
	assert.Equal(t, "STX", Opcodes[c.Bus.RAM[0x8002]].Name)
	assert.Equal(t, "NOP", Opcodes[c.Bus.RAM[0x801b]].Name)
	assert.Equal(t, "BRK", Opcodes[c.Bus.RAM[0x801c]].Name)
}

// TestMultiplyByRepeatedAddition multiplies 10 by 3 via a loop, matching the
// hand-assembled fixture the teacher's own test suite used.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA 00"

	c := run(t, program)

	assert.Equal(t, byte(30), c.A)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(10), c.Bus.RAM[0x0000])
	assert.Equal(t, byte(3), c.Bus.RAM[0x0001])
	assert.Equal(t, byte(30), c.Bus.RAM[0x0002])
}

func TestScenario_ADC_IndexedIndirect(t *testing.T) {
	c := run(t, "A9 FC 85 B4 A9 1C 85 B5 A9 AB 8D FC 1C A9 BA A2 04 61 B0 00")
	assert.Equal(t, byte(0x65), c.A)
	assert.Equal(t, byte(0b01110001), c.Flags.AsBinary())
}

func TestScenario_SBC_Immediate(t *testing.T) {
	c := run(t, "A9 AB E9 43 00")
	assert.Equal(t, byte(0x67), c.A)
	assert.Equal(t, byte(0b01110001), c.Flags.AsBinary())
}

func TestScenario_JMP_Indirect(t *testing.T) {
	c := run(t, "A9 01 AA 86 05 69 01 69 01 69 01 AA 86 06 6C 05 00 00")
	assert.Equal(t, uint16(0x0401), c.PC)
	assert.Equal(t, byte(0x04), c.A)
	assert.Equal(t, byte(0x04), c.X)
}

// TestScenario_IndirectJMP_PageBug exercises the hardware bug where an
// indirect JMP whose pointer low byte is 0xFF reads its high byte from the
// start of the same page instead of the next one.
func TestScenario_IndirectJMP_PageBug(t *testing.T) {
	c := run(t, "A9 40 8D 00 30 A9 80 8D FF 30 6C FF 30 00")
	assert.Equal(t, uint16(0x4080), c.PC)
}

func TestScenario_MultiplyFiveByTen(t *testing.T) {
	c := run(t, "A9 05 85 00 A9 0A 85 01 A9 00 18 65 00 C6 01 A6 01 E0 00 D0 F5 00")
	assert.Equal(t, byte(0x32), c.A)
	assert.Equal(t, byte(0b00110011), c.Flags.AsBinary())
}

func TestScenario_DEX_FromZero(t *testing.T) {
	c := run(t, "CA 00")
	assert.Equal(t, byte(0xFF), c.X)
	assert.Equal(t, byte(0b10110000), c.Flags.AsBinary())
}

func TestZeroPageX_Wraps(t *testing.T) {
	c := newCpu(t)
	c.X = 0x01
	c.PC = ProgramStart
	c.Write(ProgramStart, 0xFF)
	c.decode(ZeroPageX)
	assert.Equal(t, uint16(0x00), c.AbsAddress)
}

func TestBranch_NegativeDisplacement(t *testing.T) {
	// BPL with displacement 0x80 (-128) from PC=0x0602 lands at 0x0582.
	c := newCpu(t)
	require.NoError(t, c.LoadHexProgram("10 80", ProgramStart))
	c.PC = ProgramStart
	require.NoError(t, c.Step())
	assert.Equal(t, ProgramStart-126, c.PC)
}

func TestStackPointer_WrapsOnPush(t *testing.T) {
	c := newCpu(t)
	c.SP = 0x00
	c.push(0xAB)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0xAB), c.Bus.RAM[0x0100])
}

func TestUnknownOpcode(t *testing.T) {
	c := newCpu(t)
	require.NoError(t, c.LoadHexProgram("02", ProgramStart))
	err := c.Step()
	require.Error(t, err)
	var unk *UnknownOpcodeError
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, byte(0x02), unk.Opcode)
}

func TestHaltSentinel(t *testing.T) {
	c := newCpu(t)
	require.NoError(t, c.LoadHexProgram("EA 00", ProgramStart))
	require.NoError(t, c.Step()) // NOP
	err := c.Step()
	assert.Equal(t, Halted{}, err)
}

func TestCyclesMonotonic(t *testing.T) {
	c := newCpu(t)
	require.NoError(t, c.LoadHexProgram("A9 05 85 00 A9 0A 85 01 A9 00 18 65 00 C6 01 A6 01 E0 00 D0 F5 00", ProgramStart))
	prev := c.Cycles
	for {
		err := c.Step()
		if _, halted := err.(Halted); halted {
			break
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Cycles, prev)
		prev = c.Cycles
	}
	assert.Greater(t, c.Cycles, uint64(0))
}
