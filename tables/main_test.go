package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainTableIsTotal(t *testing.T) {
	for i, o := range Main {
		assert.NotEmpty(t, o.Name, "opcode 0x%02X has no name", i)
	}
}

func TestMainTableHALTOverridesLDHLHL(t *testing.T) {
	assert.Equal(t, "HALT", Main[0x76].Name)
	require.NotNil(t, Main[0x76].Ast)
}

func TestMainTableNOPIsEmptyEffect(t *testing.T) {
	out := Main[0x00].Ast(0, 0, 0)
	assert.Len(t, out, 0)
}

func TestMainTableLDBCNN(t *testing.T) {
	// rom = [0x01, 0x34, 0x12] => LD BC,0x1234
	require.Equal(t, UINT16, Main[0x01].Operand)
	require.NotNil(t, Main[0x01].Ast)
}

func TestMainTablePrefixSlotsCarryNoAst(t *testing.T) {
	for _, prefix := range []int{0xCB, 0xDD, 0xED, 0xFD} {
		assert.Nil(t, Main[prefix].Ast, "prefix byte 0x%02X should not carry its own emitter", prefix)
	}
}

func TestMainTableOperandKindsAreInClosedSet(t *testing.T) {
	for i, o := range Main {
		assert.GreaterOrEqual(t, int(o.Operand), int(None), "opcode 0x%02X", i)
		assert.LessOrEqual(t, int(o.Operand), int(UINT16), "opcode 0x%02X", i)
	}
}

func TestRLCAAndRRCAAreUndecodedTerminators(t *testing.T) {
	// Genuine gaps: the main table carries no emitter for these two
	// rotates, so the decoder stops on them.
	assert.Nil(t, Main[0x07].Ast)
	assert.Nil(t, Main[0x0F].Ast)
}
