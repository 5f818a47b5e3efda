package cpu

// Snapshot is a point-in-time, read-only copy of the Cpu's architectural
// state, suitable for handing to the monitor or debugger without exposing
// the Bus itself.
type Snapshot struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	Flags   byte
	Cycles  uint64
}

// Observe captures the Cpu's current architectural state.
func (c *Cpu) Observe() Snapshot {
	return Snapshot{
		A:      c.A,
		X:      c.X,
		Y:      c.Y,
		SP:     c.SP,
		PC:     c.PC,
		Flags:  c.Flags.AsBinary(),
		Cycles: c.Cycles,
	}
}

// Peek returns the byte at addr without disturbing PageCrossed/M, for
// inspection tools that read memory outside of instruction execution.
func (c *Cpu) Peek(addr uint16) byte {
	return c.Read(addr)
}

// MemoryWindow returns a copy of the bytes in [start, end) of the Bus. Since
// both bounds are uint16, end never exceeds the top of the address space; an
// end before start returns nil.
func (c *Cpu) MemoryWindow(start, end uint16) []byte {
	if end < start {
		return nil
	}
	n := int(end) - int(start)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = c.Read(start + uint16(i))
	}
	return out
}
