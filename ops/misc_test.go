package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/z80core/ir"
)

func TestNOOPProducesNoStatements(t *testing.T) {
	out := NOOP()(0, 0, 0)
	assert.Len(t, out, 0)
}

func TestCall0Shapes(t *testing.T) {
	cases := []struct {
		name string
		em   Emitter
		call string
	}{
		{"EX_AF", EX_AF(), "exAF"},
		{"EXX", EXX(), "exx"},
		{"RLA", RLA(), "rla_a"},
		{"RRA", RRA(), "rra_a"},
		{"DAA", DAA(), "daa"},
		{"CPL", CPL(), "cpl_a"},
		{"SCF", SCF(), "scf"},
		{"CCF", CCF(), "ccf"},
		{"DI", DI(), "di"},
		{"EI", EI(), "ei"},
		{"HALT", HALT(), "halt"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := c.em(0, 0, 0)
			require.Len(t, out, 1)
			call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
			assert.Equal(t, c.call, call.Callee.Name)
		})
	}
}

func TestIN_A_N(t *testing.T) {
	out := IN_A_N()(0x10, 0, 0)
	assign := out[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	assert.Equal(t, "a", assign.Left.(*ir.Register).Name)
	call := assign.Right.(*ir.CallExpression)
	assert.Equal(t, "in_a", call.Callee.Name)
	assert.EqualValues(t, 0x10, call.Args[0].(*ir.Literal).Value)
}

func TestOUT_N_A(t *testing.T) {
	out := OUT_N_A()(0x20, 0, 0)
	call := out[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	assert.Equal(t, "out_a", call.Callee.Name)
	assert.EqualValues(t, 0x20, call.Args[0].(*ir.Literal).Value)
	assert.Equal(t, "a", call.Args[1].(*ir.Register).Name)
}
