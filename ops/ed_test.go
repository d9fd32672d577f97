package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/z80core/ir"
)

func TestNEG(t *testing.T) {
	out := NEG()(0, 0, 0)
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	call := assign.Right.(*ir.CallExpression)
	assert.Equal(t, "neg", call.Callee.Name)
}

func TestIMFixesMode(t *testing.T) {
	out := IM(2)(0, 0, 0)
	call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.EqualValues(t, 2, call.Args[0].(*ir.Literal).Value)
}

func TestRETNShape(t *testing.T) {
	out := RETN()(0, 0, 0)
	require.Len(t, out, 4)
	restore := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "retn", restore.Callee.Name)
	_, isReturn := out[3].(*ir.ReturnStatement)
	assert.True(t, isReturn)
}

func TestADC16AndSBC16(t *testing.T) {
	out := ADC16("h", "l", "sp")(0, 0, 0)
	call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "setHL", call.Callee.Name)
	inner := call.Args[0].(*ir.CallExpression)
	assert.Equal(t, "adc16", inner.Callee.Name)
	assert.Equal(t, "sp", inner.Args[1].(*ir.Identifier).Name)

	out2 := SBC16("h", "l", "b", "c")(0, 0, 0)
	inner2 := out2[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression).Args[0].(*ir.CallExpression)
	assert.Equal(t, "sbc16", inner2.Callee.Name)
}

func TestBlockOpsDelegateToHost(t *testing.T) {
	for _, c := range []struct {
		em   Emitter
		call string
	}{
		{LDIR(), "ldir"}, {CPDR(), "cpdr"}, {INIR(), "inir"}, {OTDR(), "otdr"},
	} {
		out := c.em(0, 0, 0)
		call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
		assert.Equal(t, c.call, call.Callee.Name)
	}
}
