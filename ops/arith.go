package ops

import (
	"github.com/oisee/z80core/cpu"
	"github.com/oisee/z80core/ir"
)

// szpOf builds the member expression SZP_TABLE[a].
func szpOf(reg string) ir.Expr {
	return ir.NewMember(ir.NewIdentifier("SZP_TABLE"), ir.NewRegister(reg))
}

// ADD16 builds set<DH DL>(add16(get<DH DL>(), get<SH SL>())). A
// trailing "sp" in place of sh/sl addresses the stack pointer instead
// of a register pair (ADD HL,SP has no register-letter source).
func ADD16(dh, dl string, src ...string) Emitter {
	dst := pairName(dh, dl)
	srcExpr := sixteenBitSource(src)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.Setter(dst, ir.NewCall("add16", ir.Getter(dst), srcExpr))))
	}
}

// ADC16 builds set<DH DL>(adc16(get<DH DL>(), <src>)), ED-prefixed
// 16-bit add-with-carry. Mirrors ADD16's source shapes.
func ADC16(dh, dl string, src ...string) Emitter {
	dst := pairName(dh, dl)
	srcExpr := sixteenBitSource(src)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.Setter(dst, ir.NewCall("adc16", ir.Getter(dst), srcExpr))))
	}
}

// SBC16 builds set<DH DL>(sbc16(get<DH DL>(), <src>)), ED-prefixed
// 16-bit subtract-with-carry.
func SBC16(dh, dl string, src ...string) Emitter {
	dst := pairName(dh, dl)
	srcExpr := sixteenBitSource(src)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.Setter(dst, ir.NewCall("sbc16", ir.Getter(dst), srcExpr))))
	}
}

// sixteenBitSource resolves a 16-bit ADD/ADC/SBC source: either a
// (hi, lo) register-pair pair or the single sentinel "sp".
func sixteenBitSource(src []string) ir.Expr {
	switch len(src) {
	case 1:
		if src[0] != "sp" {
			panic(arityError("sixteenBitSource", src...))
		}
		return ir.NewIdentifier("sp")
	case 2:
		return ir.Getter(pairName(src[0], src[1]))
	default:
		panic(arityError("sixteenBitSource", src...))
	}
}

// ADD16_X builds set<FAMILY>(add16(get<FAMILY>(), <src>)) for the
// indexed 16-bit adds (ADD IX,BC / ADD IX,IX / ADD IX,SP, and the IY
// equivalents). The index register is both an addend and the
// destination when src is the family itself.
func ADD16_X(family string, src ...string) Emitter {
	srcExpr := func() ir.Expr {
		if len(src) == 1 {
			switch src[0] {
			case "sp":
				return ir.NewIdentifier("sp")
			default:
				return ir.Getter(src[0])
			}
		}
		return ir.Getter(pairName(src[0], src[1]))
	}()
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.Setter(family, ir.NewCall("add16", ir.Getter(family), srcExpr))))
	}
}

// ADD builds 8-bit addition into A. Tolerated shapes:
//
//	ADD(r)        —     add_a(r)
//	ADD()        imm8   add_a(value)
//	ADD(hi, lo)   —     add_a(readMem(get<HI LO>()))
func ADD(args ...string) Emitter {
	return aluOp("add_a", args)
}

// SUB builds 8-bit subtraction from A. Tolerated shapes:
//
//	SUB(r)       —     sub_a(r)
//	SUB()       imm8   sub_a(value)
func SUB(args ...string) Emitter {
	return aluOp("sub_a", args)
}

// ADC builds 8-bit add-with-carry into A, mirroring ADD.
func ADC(args ...string) Emitter {
	return aluOp("adc_a", args)
}

// SBC builds 8-bit subtract-with-carry from A, mirroring SUB.
func SBC(args ...string) Emitter {
	return aluOp("sbc_a", args)
}

// CP builds an 8-bit compare against A (flags only, A unmodified),
// mirroring ADD/SUB's argument shapes.
func CP(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewCall("cp_a", ir.NewLiteral(value))))
		}
	case 1:
		r := args[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewCall("cp_a", ir.NewRegister(r))))
		}
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewCall("cp_a", ir.ReadMem8(ir.Getter(pair)))))
		}
	default:
		panic(arityError("CP", args...))
	}
}

// aluOp is the shared dispatcher for ADD/SUB/ADC/SBC: a = <call>(operand).
func aluOp(call string, args []string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall(call, ir.NewLiteral(value)))))
		}
	case 1:
		r := args[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall(call, ir.NewRegister(r)))))
		}
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall(call, ir.ReadMem8(ir.Getter(pair))))))
		}
	default:
		panic(arityError(call, args...))
	}
}

// AND builds a bitwise AND into A, setting flags from SZP_TABLE plus
// the half-carry flag AND always sets. Tolerated shapes:
//
//	AND(r)   —    a &= r; f = SZP_TABLE[a] | F_HALFCARRY
//	AND()   imm8  a &= value; f = SZP_TABLE[a] | F_HALFCARRY
//
// AND("a") collapses to the flag-only form: a &= a is a no-op.
func AND(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("&=", ir.NewRegister("a"), ir.NewLiteral(value))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), ir.NewBinary("|", szpOf("a"), ir.NewLiteral(int32(cpu.F_HALFCARRY))))),
			)
		}
	case 1:
		r := args[0]
		flags := exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), ir.NewBinary("|", szpOf("a"), ir.NewLiteral(int32(cpu.F_HALFCARRY)))))
		if r == "a" {
			return func(value, target, currentPC int32) []ir.Stmt {
				return stmts(flags)
			}
		}
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("&=", ir.NewRegister("a"), ir.NewRegister(r))), flags)
		}
	case 2:
		pair := pairName(args[0], args[1])
		flags := exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), ir.NewBinary("|", szpOf("a"), ir.NewLiteral(int32(cpu.F_HALFCARRY)))))
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("&=", ir.NewRegister("a"), ir.ReadMem8(ir.Getter(pair)))), flags)
		}
	default:
		panic(arityError("AND", args...))
	}
}

// OR builds a bitwise OR into A. Tolerated shapes:
//
//	OR(r)   —    a |= r; f = SZP_TABLE[a]
//	OR()   imm8  a |= value; f = SZP_TABLE[a]
//
// OR("a") collapses to the flag-only form.
func OR(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("|=", ir.NewRegister("a"), ir.NewLiteral(value))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a"))),
			)
		}
	case 1:
		r := args[0]
		flags := exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a")))
		if r == "a" {
			return func(value, target, currentPC int32) []ir.Stmt {
				return stmts(flags)
			}
		}
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("|=", ir.NewRegister("a"), ir.NewRegister(r))), flags)
		}
	case 2:
		pair := pairName(args[0], args[1])
		flags := exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a")))
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("|=", ir.NewRegister("a"), ir.ReadMem8(ir.Getter(pair)))), flags)
		}
	default:
		panic(arityError("OR", args...))
	}
}

// XOR builds a bitwise XOR into A. Tolerated shapes:
//
//	XOR(r)   —    a ^= r; f = SZP_TABLE[a]
//	XOR()   imm8  a ^= value; f = SZP_TABLE[a]
//
// XOR("a") is known at table-construction time to zero A, so it
// collapses to literal statements rather than a member lookup:
// a = 0; f = SZP_TABLE[0].
func XOR(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("^=", ir.NewRegister("a"), ir.NewLiteral(value))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a"))),
			)
		}
	case 1:
		r := args[0]
		if r == "a" {
			return func(value, target, currentPC int32) []ir.Stmt {
				return stmts(
					exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewLiteral(0))),
					exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), ir.NewLiteral(int32(cpu.SZPTable[0])))),
				)
			}
		}
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("^=", ir.NewRegister("a"), ir.NewRegister(r))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a"))),
			)
		}
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(
				exprStmt(ir.NewAssign("^=", ir.NewRegister("a"), ir.ReadMem8(ir.Getter(pair)))),
				exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a"))),
			)
		}
	default:
		panic(arityError("XOR", args...))
	}
}

// ADD_X builds add_a(readMem(get<FAMILY>() + d)) assigned into A.
func ADD_X(family string) Emitter { return aluOpX("add_a", family) }

// SUB_X, ADC_X, SBC_X mirror ADD_X for the other three ALU ops that
// share its a = <call>(readMem(addr)) shape.
func SUB_X(family string) Emitter { return aluOpX("sub_a", family) }
func ADC_X(family string) Emitter { return aluOpX("adc_a", family) }
func SBC_X(family string) Emitter { return aluOpX("sbc_a", family) }

func aluOpX(call, family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall(call, ir.ReadMem8(addr)))))
	}
}

// AND_X builds the indexed AND, mirroring AND's register form.
func AND_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(
			exprStmt(ir.NewAssign("&=", ir.NewRegister("a"), ir.ReadMem8(addr))),
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), ir.NewBinary("|", szpOf("a"), ir.NewLiteral(int32(cpu.F_HALFCARRY))))),
		)
	}
}

// OR_X builds the indexed OR: a |= readMem(addr); f = SZP_TABLE[a].
func OR_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(
			exprStmt(ir.NewAssign("|=", ir.NewRegister("a"), ir.ReadMem8(addr))),
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a"))),
		)
	}
}

// XOR_X builds the indexed XOR, mirroring OR_X.
func XOR_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(
			exprStmt(ir.NewAssign("^=", ir.NewRegister("a"), ir.ReadMem8(addr))),
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("f"), szpOf("a"))),
		)
	}
}

// CP_X builds the indexed compare: cp_a(readMem(addr)).
func CP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(exprStmt(ir.NewCall("cp_a", ir.ReadMem8(addr))))
	}
}
