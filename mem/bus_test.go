package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteThenRead(t *testing.T) {
	b := New()
	b.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), b.Read(0x1234))
}

// TestWriteThroughPointer guards against the value-receiver mistake: Write
// and Read must operate on the same backing array as seen through a *Bus.
func TestWriteThroughPointer(t *testing.T) {
	b := New()
	for addr := 0; addr < Size; addr += 4099 {
		b.Write(uint16(addr), byte(addr))
		assert.Equal(t, byte(addr), b.Read(uint16(addr)))
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.Write(0x00FF, 0x42)
	b.Clear()
	assert.Equal(t, byte(0), b.Read(0x00FF))
}
