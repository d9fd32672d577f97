package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/z80core/ir"
)

func TestPOPPair(t *testing.T) {
	out := POP("b", "c")(0, 0, 0)
	require.Len(t, out, 2)
	set := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "setBC", set.Callee.Name)
	inc := out[1].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "+=", inc.Op)
}

func TestPOPIndexed(t *testing.T) {
	out := POP("i", "IX")(0, 0, 0)
	set := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "setIX", set.Callee.Name)
}

func TestPUSHPair(t *testing.T) {
	out := PUSH("h", "l")(0, 0, 0)
	require.Len(t, out, 3)
	dec := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "-=", dec.Op)
	low := out[1].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "writeMem", low.Callee.Name)
	assert.Equal(t, "l", low.Args[1].(*ir.Register).Name)
	high := out[2].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "h", high.Args[1].(*ir.Register).Name)
}

func TestPUSHIndexed(t *testing.T) {
	out := PUSH("i", "IX")(0, 0, 0)
	require.Len(t, out, 3)
	low := out[1].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	lowExpr := low.Args[1].(*ir.BinaryExpression)
	assert.Equal(t, "&", lowExpr.Op)
}
