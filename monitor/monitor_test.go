package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbishop/p6502/cpu"
	"github.com/hbishop/p6502/mem"
)

func newTestCpu(t *testing.T) *cpu.Cpu {
	t.Helper()
	c := &cpu.Cpu{Bus: mem.New()}
	c.Reset()
	return c
}

func TestStatusCommand(t *testing.T) {
	c := newTestCpu(t)
	c.A = 0x42

	var out bytes.Buffer
	err := Run(c, strings.NewReader("status\nexit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "A=$42")
}

func TestMemCommand(t *testing.T) {
	c := newTestCpu(t)
	c.Write(0x0600, 0xAB)

	var out bytes.Buffer
	err := Run(c, strings.NewReader("mem 600 610\nexit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ab")
}

func TestMemCommandDefaultsEndToStartPlus16(t *testing.T) {
	c := newTestCpu(t)
	c.Write(0x0600, 0xAB)
	c.Write(0x060F, 0xCD)

	var out bytes.Buffer
	err := Run(c, strings.NewReader("mem 600\nexit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ab")
	assert.Contains(t, out.String(), "cd")
}

func TestHelpCommand(t *testing.T) {
	c := newTestCpu(t)
	var out bytes.Buffer
	err := Run(c, strings.NewReader("help\nquit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Basic commands are:")
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	c := newTestCpu(t)
	var out bytes.Buffer
	err := Run(c, strings.NewReader("bogus\nexit\n"), &out)
	require.NoError(t, err)
}

func TestEOFEndsSession(t *testing.T) {
	c := newTestCpu(t)
	var out bytes.Buffer
	err := Run(c, strings.NewReader(""), &out)
	require.NoError(t, err)
}
