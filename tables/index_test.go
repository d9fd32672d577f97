package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTableEquivalenceOfShape(t *testing.T) {
	// Property: the IX and IY tables carry an emitter at exactly the
	// same set of byte positions (the prefix changes which index
	// register is touched, never which opcodes are indexable).
	for i := range IX {
		if (IX[i].Ast == nil) != (IY[i].Ast == nil) {
			t.Fatalf("opcode 0x%02X: IX ast-presence disagrees with IY", i)
		}
	}
}

func TestIndexTableLDImm16(t *testing.T) {
	// rom = [0xDD, 0x21, 0xCD, 0xAB] => LD IX,0xABCD
	require.NotNil(t, IX[0x21].Ast)
	out := IX[0x21].Ast(0xABCD, 0, 0)
	require.Len(t, out, 1)
}

func TestIndexTablePassthroughSlotsAreNil(t *testing.T) {
	// 0x00 (NOP) has no indexed meaning; the decoder re-reads it
	// through Main.
	assert.Nil(t, IX[0x00].Ast)
	assert.Nil(t, IY[0x00].Ast)
}

func TestIndexTablePreservesTheKnownBug(t *testing.T) {
	// BUG: 0x76 should be undisplaced HALT, not an indexed store of B.
	require.NotNil(t, IX[0x76].Ast)
	assert.Equal(t, "LD (IX+d),B", IX[0x76].Name)
}

func TestIndexTableIndexedArithmetic(t *testing.T) {
	require.NotNil(t, IX[0x86].Ast) // ADD A,(IX+d)
	require.NotNil(t, IY[0xBE].Ast) // CP (IY+d)
}

func TestIndexCBTableIsTotal(t *testing.T) {
	for i, o := range IXCB {
		assert.NotNil(t, o.Ast, "DDCB opcode 0x%02X has no emitter", i)
	}
	for i, o := range IYCB {
		assert.NotNil(t, o.Ast, "FDCB opcode 0x%02X has no emitter", i)
	}
}

func TestIndexCBDisplacementFlowsAsValue(t *testing.T) {
	out := IXCB[0x46].Ast(0xFE, 0, 0) // BIT 0,(IX-2)
	require.Len(t, out, 1)
}
