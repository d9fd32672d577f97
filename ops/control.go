package ops

import "github.com/oisee/z80core/ir"

// FlagCond is a condition tested against the F register: (f & Mask) Op 0.
// Op is "==" for the "flag clear" conditions (NZ, NC, PO, P) and "!="
// for the "flag set" conditions (Z, C, PE, M).
type FlagCond struct {
	Op   string
	Mask uint8
}

func (c FlagCond) test() ir.Expr {
	return ir.NewBinary(c.Op, ir.NewBinary("&", ir.NewIdentifier("f"), ir.NewLiteral(int32(c.Mask))), ir.NewLiteral(0))
}

// JR builds a relative jump. With no condition it is unconditional
// (test is the literal true); with one condition it only branches
// when the condition holds. Both forms emit:
//
//	if (test) { pc = target; tstates -= 5 }
func JR(cond ...FlagCond) Emitter {
	test := func() ir.Expr { return ir.NewLiteral(1) }
	switch len(cond) {
	case 0:
	case 1:
		c := cond[0]
		test = c.test
	default:
		panic(arityError("JR"))
	}
	return func(value, target, currentPC int32) []ir.Stmt {
		body := ir.NewBlock(
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(target))),
			exprStmt(ir.NewAssign("-=", ir.NewIdentifier("tstates"), ir.NewLiteral(5))),
		)
		return stmts(ir.NewIf(test(), body))
	}
}

// DJNZ builds: b = (b-1) & 0xFF; if (b != 0) { pc = target; tstates -= 5 }
func DJNZ() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		decB := exprStmt(ir.NewAssign("=", ir.NewRegister("b"),
			ir.NewBinary("&", ir.NewBinary("-", ir.NewRegister("b"), ir.NewLiteral(1)), ir.NewLiteral(0xFF))))
		test := ir.NewBinary("!=", ir.NewRegister("b"), ir.NewLiteral(0))
		body := ir.NewBlock(
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(target))),
			exprStmt(ir.NewAssign("-=", ir.NewIdentifier("tstates"), ir.NewLiteral(5))),
		)
		return stmts(decB, ir.NewIf(test, body))
	}
}

// RET builds a return. With no condition: pc = readMemWord(sp); sp +=
// 2; return. With one condition, the taken/not-taken decision and
// the sp/pc update both live in the host ret(cond) callable:
// ret((f & mask) op 0).
func RET(cond ...FlagCond) Emitter {
	switch len(cond) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.ReadMem16(ir.NewIdentifier("sp")))),
				exprStmt(ir.NewAssign("+=", ir.NewIdentifier("sp"), ir.NewLiteral(2))),
				ir.NewReturn(),
			)
		}
	case 1:
		c := cond[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewCall("ret", c.test())))
		}
	default:
		panic(arityError("RET"))
	}
}

// JP builds an absolute jump. Unconditional: pc = target; return.
// Conditional: if (cond) { pc = target; return }.
func JP(cond ...FlagCond) Emitter {
	switch len(cond) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(value))),
				ir.NewReturn(),
			)
		}
	case 1:
		c := cond[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			body := ir.NewBlock(
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(value))),
				ir.NewReturn(),
			)
			return stmts(ir.NewIf(c.test(), body))
		}
	default:
		panic(arityError("JP"))
	}
}

// JP_X builds "JP (IX)"/"JP (IY)": pc = get<FAMILY>(); return. Despite
// the parenthesized syntax this reads the register, not memory.
func JP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.Getter(family))),
			ir.NewReturn(),
		)
	}
}

// CALL builds a call. Unconditional: push1(currentPC+2); pc = target;
// return. Conditional wraps the same effect in the test, with an
// extra tstates -= 7 for the taken branch's additional cycles.
func CALL(cond ...FlagCond) Emitter {
	switch len(cond) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewCall("push1", ir.NewLiteral(currentPC+2))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(value))),
				ir.NewReturn(),
			)
		}
	case 1:
		c := cond[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			body := ir.NewBlock(
				exprStmt(ir.NewAssign("-=", ir.NewIdentifier("tstates"), ir.NewLiteral(7))),
				exprStmt(ir.NewCall("push1", ir.NewLiteral(currentPC+2))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(value))),
				ir.NewReturn(),
			)
			return stmts(ir.NewIf(c.test(), body))
		}
	default:
		panic(arityError("CALL"))
	}
}

// RST builds: push1(currentPC); pc = addr; return. addr is fixed at
// table-construction time (0x00, 0x08, ... 0x38), not a decoded operand.
func RST(addr int32) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(
			exprStmt(ir.NewCall("push1", ir.NewLiteral(currentPC))),
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.NewLiteral(addr))),
			ir.NewReturn(),
		)
	}
}

// EX_SP_X builds "EX (SP),IX"/"EX (SP),IY": swap the top-of-stack
// word with the index register. Like EX_AF, the atomic swap (it needs
// a temporary the IR has no variable slot for) is delegated whole to
// a single host callable rather than decomposed into reads and writes.
func EX_SP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("exSP" + family)))
	}
}
