package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEDTableIsTotal(t *testing.T) {
	for i, o := range ED {
		assert.NotEmpty(t, o.Name, "ED opcode 0x%02X has no name", i)
		assert.NotNil(t, o.Ast, "ED opcode 0x%02X has no emitter (should fall back to NOP)", i)
	}
}

func TestEDUndefinedSlotsAreNoOps(t *testing.T) {
	out := ED[0x00].Ast(0, 0, 0)
	assert.Len(t, out, 0)
	assert.Equal(t, "NOP*", ED[0x00].Name)
}

func TestEDLDBCIndirect(t *testing.T) {
	require.Equal(t, "LD (nn),BC", ED[0x43].Name)
	require.Equal(t, UINT16, ED[0x43].Operand)
	require.Equal(t, "LD BC,(nn)", ED[0x4B].Name)
}

func TestEDSPVariantsUseIdentifier(t *testing.T) {
	require.Equal(t, "LD (nn),SP", ED[0x73].Name)
	require.Equal(t, "LD SP,(nn)", ED[0x7B].Name)
}

func TestEDBlockOps(t *testing.T) {
	assert.Equal(t, "LDIR", ED[0xB0].Name)
	assert.Equal(t, "CPDR", ED[0xB9].Name)
}

func TestEDInOutViaC(t *testing.T) {
	assert.Equal(t, "IN b,(C)", ED[0x40].Name)
	assert.Equal(t, "OUT (C),a", ED[0x79].Name)
}
