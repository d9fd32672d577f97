package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/z80core/cpu"
	"github.com/oisee/z80core/ir"
)

func TestXORCollapsesToLiteralForA(t *testing.T) {
	out := XOR("a")(0, 0, 0)
	require.Len(t, out, 2)

	zeroA := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "a", zeroA.Left.(*ir.Register).Name)
	assert.EqualValues(t, 0, zeroA.Right.(*ir.Literal).Value)

	flags := out[1].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "f", flags.Left.(*ir.Identifier).Name)
	lit, ok := flags.Right.(*ir.Literal)
	require.True(t, ok, "XOR A must fold f to a literal, not SZP_TABLE[a]")
	assert.EqualValues(t, cpu.SZPTable[0], lit.Value)
}

func TestXOROtherRegisterUsesMemberLookup(t *testing.T) {
	out := XOR("b")(0, 0, 0)
	require.Len(t, out, 2)
	flags := out[1].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	_, ok := flags.Right.(*ir.MemberExpression)
	assert.True(t, ok)
}

func TestANDCollapsesFlagOnlyForA(t *testing.T) {
	out := AND("a")(0, 0, 0)
	require.Len(t, out, 1)
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "f", assign.Left.(*ir.Identifier).Name)
}

func TestADDShapes(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		out := ADD("b")(0, 0, 0)
		call := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression).Right.(*ir.CallExpression)
		assert.Equal(t, "add_a", call.Callee.Name)
		assert.Equal(t, "b", call.Args[0].(*ir.Register).Name)
	})

	t.Run("immediate", func(t *testing.T) {
		out := ADD()(0x10, 0, 0)
		call := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression).Right.(*ir.CallExpression)
		assert.EqualValues(t, 0x10, call.Args[0].(*ir.Literal).Value)
	})

	t.Run("via HL", func(t *testing.T) {
		out := ADD("h", "l")(0, 0, 0)
		call := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression).Right.(*ir.CallExpression)
		inner := call.Args[0].(*ir.CallExpression)
		assert.Equal(t, "readMem", inner.Callee.Name)
	})
}

func TestCPDoesNotAssignA(t *testing.T) {
	out := CP("b")(0, 0, 0)
	require.Len(t, out, 1)
	_, isAssign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.False(t, isAssign, "CP must not mutate A")
	call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "cp_a", call.Callee.Name)
}

func TestADD16(t *testing.T) {
	out := ADD16("h", "l", "b", "c")(0, 0, 0)
	call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "setHL", call.Callee.Name)
	inner := call.Args[0].(*ir.CallExpression)
	assert.Equal(t, "add16", inner.Callee.Name)
}
