package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		packed := FromBinary(byte(b)).AsBinary()
		unpacked := FromBinary(packed)
		again := FromBinary(byte(b))
		assert.Equal(t, again, unpacked)
		assert.NotZero(t, packed&0x20, "bit 5 must always be set by AsBinary")
	}
}

func TestFlagsAsBinary(t *testing.T) {
	f := Flags{Negative: true, Carry: true}
	// N(bit7) 1, V 0, unused 1, B 0, D 0, I 0, Z 0, C(bit0) 1 => 10100001
	assert.Equal(t, byte(0b10100001), f.AsBinary())
}

func TestFlagsFromBinary(t *testing.T) {
	f := FromBinary(0b11000011)
	assert.True(t, f.Negative)
	assert.True(t, f.Overflow)
	assert.False(t, f.B)
	assert.False(t, f.Decimal)
	assert.False(t, f.Interrupt)
	assert.True(t, f.Zero)
	assert.True(t, f.Carry)
}
