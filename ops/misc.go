package ops

import "github.com/oisee/z80core/ir"

// NOOP builds the empty-effect emitter, used for NOP and for unknown
// CB/ED sub-opcodes per Z80 lore (treated as no-ops, not faults).
func NOOP() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts()
	}
}

// call0 builds an opaque no-argument host call as a statement. Used
// by the handful of instructions (EX AF,AF'; EXX; DAA; ...) whose
// full effect is more naturally owned by the host CPU module than
// decomposed into this IR's register/flag primitives.
func call0(name string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall(name)))
	}
}

// EX_AF builds exAF(): swap AF with the shadow AF'.
func EX_AF() Emitter { return call0("exAF") }

// EXX builds exx(): swap BC/DE/HL with their shadow registers.
func EXX() Emitter { return call0("exx") }

// RLA builds rla_a(): rotate A left through carry.
func RLA() Emitter { return call0("rla_a") }

// RRA builds rra_a(): rotate A right through carry.
func RRA() Emitter { return call0("rra_a") }

// DAA builds daa(): decimal-adjust A after a BCD add/subtract.
func DAA() Emitter { return call0("daa") }

// CPL builds cpl_a(): complement A, set N and H.
func CPL() Emitter { return call0("cpl_a") }

// SCF builds scf(): set the carry flag.
func SCF() Emitter { return call0("scf") }

// CCF builds ccf(): complement the carry flag.
func CCF() Emitter { return call0("ccf") }

// DI builds di(): disable maskable interrupts.
func DI() Emitter { return call0("di") }

// EI builds ei(): enable maskable interrupts.
func EI() Emitter { return call0("ei") }

// HALT builds halt(): the decoder treats HALT as a block terminator
// regardless of whether this emitter is present.
func HALT() Emitter { return call0("halt") }

// IN_A_N builds "IN A,(n)": a = in_a(value).
func IN_A_N() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall("in_a", ir.NewLiteral(value)))))
	}
}

// OUT_N_A builds "OUT (n),A": out_a(value, a).
func OUT_N_A() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("out_a", ir.NewLiteral(value), ir.NewRegister("a"))))
	}
}
