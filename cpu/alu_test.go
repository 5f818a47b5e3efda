package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddWithCarry(t *testing.T) {
	cases := []struct {
		a, m       byte
		carryIn    bool
		result     byte
		carryOut   bool
		overflow   bool
		name       string
	}{
		{a: 0x01, m: 0x01, carryIn: false, result: 0x02, carryOut: false, overflow: false, name: "simple"},
		{a: 0xFF, m: 0x01, carryIn: false, result: 0x00, carryOut: true, overflow: false, name: "unsigned carry, no signed overflow"},
		{a: 0x7F, m: 0x01, carryIn: false, result: 0x80, carryOut: false, overflow: true, name: "positive overflow"},
		{a: 0x80, m: 0x80, carryIn: false, result: 0x00, carryOut: true, overflow: true, name: "negative overflow"},
		{a: 0xAB, m: 0xBA, carryIn: true, result: 0x66, carryOut: true, overflow: true, name: "with carry in"},
	}
	for _, c := range cases {
		result, carryOut, overflow := addWithCarry(c.a, c.m, c.carryIn)
		assert.Equal(t, c.result, result, c.name)
		assert.Equal(t, c.carryOut, carryOut, c.name+" carry")
		assert.Equal(t, c.overflow, overflow, c.name+" overflow")
	}
}

// TestAddSubComplement checks that subWithCarry(a, m, c) agrees with
// addWithCarry(a, ^m, c), since subWithCarry is defined purely in terms of
// addWithCarry's one's-complement trick.
func TestAddSubComplement(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for m := 0; m < 256; m += 23 {
			for _, carryIn := range []bool{true, false} {
				wantR, wantC, wantV := addWithCarry(byte(a), ^byte(m), carryIn)
				gotR, gotC, gotV := subWithCarry(byte(a), byte(m), carryIn)
				assert.Equal(t, wantR, gotR)
				assert.Equal(t, wantC, gotC)
				assert.Equal(t, wantV, gotV)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	carry, zero, negative := compare(0x10, 0x10)
	assert.True(t, carry)
	assert.True(t, zero)
	assert.False(t, negative)

	carry, zero, negative = compare(0x10, 0x20)
	assert.False(t, carry)
	assert.False(t, zero)
	assert.True(t, negative)

	carry, zero, negative = compare(0x20, 0x10)
	assert.True(t, carry)
	assert.False(t, zero)
	assert.False(t, negative)
}

func TestShiftLeft(t *testing.T) {
	result, carry := shiftLeft(0x81)
	assert.Equal(t, byte(0x02), result)
	assert.True(t, carry)

	result, carry = shiftLeft(0x01)
	assert.Equal(t, byte(0x02), result)
	assert.False(t, carry)
}

func TestShiftRight(t *testing.T) {
	result, carry := shiftRight(0x81)
	assert.Equal(t, byte(0x40), result)
	assert.True(t, carry)

	result, carry = shiftRight(0x02)
	assert.Equal(t, byte(0x01), result)
	assert.False(t, carry)
}

func TestRotateLeft(t *testing.T) {
	result, carry := rotateLeft(0x80, false)
	assert.Equal(t, byte(0x00), result)
	assert.True(t, carry)

	result, carry = rotateLeft(0x00, true)
	assert.Equal(t, byte(0x01), result)
	assert.False(t, carry)
}

func TestRotateRight(t *testing.T) {
	result, carry := rotateRight(0x01, false)
	assert.Equal(t, byte(0x00), result)
	assert.True(t, carry)

	result, carry = rotateRight(0x00, true)
	assert.Equal(t, byte(0x80), result)
	assert.False(t, carry)
}

// TestShiftLeftThenRight checks the documented non-round-trip property:
// ASL then LSR restores v only when v's bit 7 was already clear.
func TestShiftLeftThenRight(t *testing.T) {
	for v := 0; v < 0x80; v++ {
		shifted, _ := shiftLeft(byte(v))
		restored, _ := shiftRight(shifted)
		assert.Equal(t, byte(v), restored)
	}

	shifted, carry := shiftLeft(0x81)
	assert.True(t, carry)
	restored, _ := shiftRight(shifted)
	assert.NotEqual(t, byte(0x81), restored)
}
