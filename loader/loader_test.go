package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutAddresses(t *testing.T) {
	program, err := Load(strings.NewReader("A9 01 AA\n86 05"), false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x01, 0xAA, 0x86, 0x05}, program)
}

func TestLoadWithAddresses(t *testing.T) {
	program, err := Load(strings.NewReader("0600 A9 01 AA\n0603 86 05"), true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x01, 0xAA, 0x86, 0x05}, program)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	program, err := Load(strings.NewReader("A9 01\n\n\nAA"), false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x01, 0xAA}, program)
}

func TestLoadMalformedToken(t *testing.T) {
	_, err := Load(strings.NewReader("A9 ZZ"), false)
	require.Error(t, err)
	var malformed *ErrMalformedToken
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "ZZ", malformed.Token)
	assert.Equal(t, 1, malformed.Line)
}

func TestLoadMalformedTokenWithoutAddressesFlag(t *testing.T) {
	// a dump that has addresses but was loaded without -a: the address
	// column itself fails to parse as a lone byte.
	_, err := Load(strings.NewReader("0600 A9 01"), false)
	require.Error(t, err)
}
