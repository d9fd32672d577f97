// Package ops is the combinator library: a family of parameterized
// builders that each return a pending emitter. A pending emitter is
// invoked once per decode site with the concrete immediate operand,
// branch target, and current-instruction PC, and produces the IR for
// that one instruction. This is what makes the decoder a recompiler
// front-end rather than a giant interpreter switch — the combinators
// are evaluated once at table-construction time, the emitters they
// return are evaluated once per decoded instruction.
package ops

import (
	"github.com/pkg/errors"

	"github.com/oisee/z80core/ir"
)

// Emitter is a pending emitter: given the instruction's immediate
// operand, computed branch target, and the PC of the instruction
// itself, it returns the IR statements for that instruction. Any of
// the three arguments may be unused by a given emitter.
type Emitter func(value, target, currentPC int32) []ir.Stmt

// ErrInvalidCombinatorArity is raised when a combinator is invoked
// with an argument pattern outside the shapes its table documents.
// It is only ever raised at table-construction (package init) time,
// making it fatal to startup per spec.
var ErrInvalidCombinatorArity = errors.New("ops: invalid combinator arity")

// arityError builds the wrapped, combinator-named form of
// ErrInvalidCombinatorArity.
func arityError(combinator string, args ...string) error {
	return errors.Wrapf(ErrInvalidCombinatorArity, "%s%v", combinator, args)
}

// n is the sentinel argument standing in for the source's quoted 'n'
// placeholder: a marker meaning "this position takes the instruction's
// immediate operand" rather than a register name.
const n = "n"

func stmts(s ...ir.Stmt) []ir.Stmt { return s }

func exprStmt(e ir.Expr) ir.Stmt { return ir.NewExprStmt(e) }

func pairName(hi, lo string) string {
	upper := func(s string) string {
		if s >= "a" && s <= "z" {
			return string(s[0] - ('a' - 'A'))
		}
		return s
	}
	return upper(hi) + upper(lo)
}
