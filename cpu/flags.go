package cpu

import "github.com/hbishop/p6502/mask"

// Flags holds the seven architectural status flags as discrete booleans.
// Keeping them as separate fields, rather than a single packed byte, is
// clearer for instruction handlers to read and set; AsBinary/FromBinary
// define the packed boundary used whenever the flags cross into memory (PHP,
// PLP, RTI).
//
// Packed layout (bit7 .. bit0): N V 1 B D I Z C
type Flags struct {
	Carry     bool
	Zero      bool
	Interrupt bool
	Decimal   bool
	B         bool
	Overflow  bool
	Negative  bool
}

// bit positions in mask's 1-indexed-from-MSB convention: pos 1 is bit7, pos
// 8 is bit0.
const (
	bitN = 1
	bitV = 2
	// bit 3 (the packed form's bit5) is always 1 and has no Flags field
	bitB = 4
	bitD = 5
	bitI = 6
	bitZ = 7
	bitC = 8
)

// AsBinary packs the flags into the canonical 8-bit status-register form,
// with the unused bit 5 always set, matching what the 6502 pushes to the
// stack on PHP/BRK.
func (f Flags) AsBinary() byte {
	var b byte
	b = mask.Set(b, 3, 1) // bit 5, always set
	if f.Negative {
		b = mask.Set(b, bitN, 1)
	}
	if f.Overflow {
		b = mask.Set(b, bitV, 1)
	}
	if f.B {
		b = mask.Set(b, bitB, 1)
	}
	if f.Decimal {
		b = mask.Set(b, bitD, 1)
	}
	if f.Interrupt {
		b = mask.Set(b, bitI, 1)
	}
	if f.Zero {
		b = mask.Set(b, bitZ, 1)
	}
	if f.Carry {
		b = mask.Set(b, bitC, 1)
	}
	return b
}

// FromBinary unpacks a status byte (as pulled by PLP/RTI) into Flags. The
// always-set bit 5 carries no information and is discarded.
func FromBinary(b byte) Flags {
	return Flags{
		Negative:  mask.IsSet(b, bitN),
		Overflow:  mask.IsSet(b, bitV),
		B:         mask.IsSet(b, bitB),
		Decimal:   mask.IsSet(b, bitD),
		Interrupt: mask.IsSet(b, bitI),
		Zero:      mask.IsSet(b, bitZ),
		Carry:     mask.IsSet(b, bitC),
	}
}
