package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/z80core/ir"
)

func TestLD_X_NSplitsDisplacementAndImmediate(t *testing.T) {
	// d = -2 (0xFE), n = 0x42: packed as a little-endian word 0x42FE.
	out := LD_X_N("IX")(0x42FE, 0, 0)
	write := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	addr := write.Args[0].(*ir.BinaryExpression)
	assert.EqualValues(t, -2, addr.Right.(*ir.Literal).Value)
	assert.EqualValues(t, 0x42, write.Args[1].(*ir.Literal).Value)
}

func TestLD_WRITE_MEM_SP(t *testing.T) {
	out := LD_WRITE_MEM_SP()(0x9000, 0, 0)
	require.Len(t, out, 2)
	first := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.EqualValues(t, 0x9000, first.Args[0].(*ir.Literal).Value)
}

func TestLD_SP_MEM(t *testing.T) {
	out := LD_SP_MEM()(0x9000, 0, 0)
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	call := assign.Right.(*ir.CallExpression)
	assert.Equal(t, "readMemWord", call.Callee.Name)
}

func TestEX_DE_HL(t *testing.T) {
	out := EX_DE_HL()(0, 0, 0)
	call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "exDEHL", call.Callee.Name)
}
