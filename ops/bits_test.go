package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/z80core/ir"
)

func TestROTRegister(t *testing.T) {
	out := ROT(2, "b")(0, 0, 0) // row 2 = RL
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	call := assign.Right.(*ir.CallExpression)
	assert.Equal(t, "rl8", call.Callee.Name)
}

func TestROTMemory(t *testing.T) {
	out := ROT(0, "h", "l")(0, 0, 0) // row 0 = RLC
	write := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "writeMem", write.Callee.Name)
	inner := write.Args[1].(*ir.CallExpression)
	assert.Equal(t, "rlc8", inner.Callee.Name)
}

func TestBITSetsZeroOnClearBit(t *testing.T) {
	out := BIT(0, "a")(0, 0, 0)
	require.Len(t, out, 1)
	ifStmt := out[0].(*ir.IfStatement)
	require.NotNil(t, ifStmt.Alternate)
	setZ := ifStmt.Consequent.(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "|=", setZ.Op)
}

func TestBITViaMemory(t *testing.T) {
	out := BIT(7, "h", "l")(0, 0, 0)
	ifStmt := out[0].(*ir.IfStatement)
	bin := ifStmt.Test.(*ir.BinaryExpression).Left.(*ir.BinaryExpression)
	call := bin.Left.(*ir.CallExpression)
	assert.Equal(t, "readMem", call.Callee.Name)
}

func TestRESClearsBitMask(t *testing.T) {
	out := RES(3, "c")(0, 0, 0)
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "&=", assign.Op)
	assert.EqualValues(t, ^int32(1<<3), assign.Right.(*ir.Literal).Value)
}

func TestSETSetsBitMask(t *testing.T) {
	out := SET(5, "d")(0, 0, 0)
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "|=", assign.Op)
	assert.EqualValues(t, 1<<5, assign.Right.(*ir.Literal).Value)
}

func TestROT_XUsesDisplacementAsValue(t *testing.T) {
	out := ROT_X(4, "IX")(0xFE, 0, 0) // d = -2
	write := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	addr := write.Args[0].(*ir.BinaryExpression)
	assert.EqualValues(t, -2, addr.Right.(*ir.Literal).Value)
}
