// Package mem implements the flat 64 KiB address space that the Cpu reads
// and writes through. Keeping it as its own package, rather than a field on
// Cpu, lets other components (the loader, the monitor, the TUI debugger)
// hold a reference to the same backing array without reaching into cpu
// internals.
package mem

// Size is the number of addressable bytes: the 6502's full 16-bit range.
const Size = 64 * 1024

// A Bus is the central object that connects the Cpu to its memory. There is
// no mapping or mirroring: the full 64 kB is one contiguous array, zeroed on
// construction. A Bus is always held by pointer; Write must mutate the
// caller's own backing array, not a copy of it.
type Bus struct {
	RAM [Size]byte
}

// New returns a Bus with all memory zeroed.
func New() *Bus {
	return &Bus{}
}

// Write stores data at addr. addr is a uint16, so every value is in range by
// construction.
func (b *Bus) Write(addr uint16, data byte) {
	b.RAM[addr] = data
}

// Read returns the byte stored at addr.
func (b *Bus) Read(addr uint16) byte {
	return b.RAM[addr]
}

// Clear zeroes the entire address space, used by Cpu.Reset.
func (b *Bus) Clear() {
	b.RAM = [Size]byte{}
}
