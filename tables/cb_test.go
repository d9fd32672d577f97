package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBTableIsTotalAndFullyImplemented(t *testing.T) {
	for i, o := range CB {
		assert.NotEmpty(t, o.Name, "CB opcode 0x%02X has no name", i)
		assert.NotNil(t, o.Ast, "CB opcode 0x%02X has no emitter", i)
	}
}

func TestCBBitZeroOfRegisterA(t *testing.T) {
	// BIT 0,A is 0x47.
	require.Equal(t, "BIT 0,A", CB[0x47].Name)
}

func TestCBSetSevenOfHLIndirect(t *testing.T) {
	// SET 7,(HL) is 0xFE.
	require.Equal(t, "SET 7,(HL)", CB[0xFE].Name)
}

func TestCBRLCBIsRow0Col0(t *testing.T) {
	assert.Equal(t, "RLC B", CB[0x00].Name)
}
