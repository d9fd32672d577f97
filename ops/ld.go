package ops

import "github.com/oisee/z80core/ir"

// LD8 builds an 8-bit load. The tolerated argument shapes are:
//
//	LD8(dst)            imm8   dst = value
//	LD8(dst, src)        —     dst = src
//	LD8(dst, "n", "n")   imm16  dst = readMem(value)
//	LD8(dst, hi, lo)      —     dst = readMem(get<HI LO>())
//
// Call sites read left-to-right as the assignment direction
// (LD8("b", "c") means B = C) regardless of the combinator's internal
// parameter names.
func LD8(args ...string) Emitter {
	switch len(args) {
	case 1:
		dst := args[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(dst), ir.NewLiteral(value))))
		}
	case 2:
		dst, src := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(dst), ir.NewRegister(src))))
		}
	case 3:
		dst := args[0]
		if args[1] == n && args[2] == n {
			return func(value, target, currentPC int32) []ir.Stmt {
				return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(dst), ir.ReadMem8(ir.NewLiteral(value)))))
			}
		}
		pair := pairName(args[1], args[2])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(dst), ir.ReadMem8(ir.Getter(pair)))))
		}
	default:
		panic(arityError("LD8", args...))
	}
}

// LD16 builds a 16-bit pair load. Tolerated shapes:
//
//	LD16(hi, lo)             imm16  set<HI LO>(value)
//	LD16(hi, lo, "n", "n")   imm16  set<HI LO>(readMemWord(value))
func LD16(args ...string) Emitter {
	switch len(args) {
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.Setter(pair, ir.NewLiteral(value))))
		}
	case 4:
		if args[2] != n || args[3] != n {
			panic(arityError("LD16", args...))
		}
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.Setter(pair, ir.ReadMem16(ir.NewLiteral(value)))))
		}
	default:
		panic(arityError("LD16", args...))
	}
}

// LD_WRITE_MEM builds a store through a 16-bit address. Tolerated shapes:
//
//	LD_WRITE_MEM(hi, lo)            imm8   writeMem(get<HI LO>(), value)
//	LD_WRITE_MEM(hi, lo, src)        —     writeMem(get<HI LO>(), src)
//	LD_WRITE_MEM("n", "n", src)     imm16  writeMem(value, src)
//	LD_WRITE_MEM("n", "n", hi, lo)  imm16  writeMem(value, lo); writeMem(value+1, hi)
func LD_WRITE_MEM(args ...string) Emitter {
	switch len(args) {
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.WriteMem8(ir.Getter(pair), ir.NewLiteral(value))))
		}
	case 3:
		if args[0] == n && args[1] == n {
			src := args[2]
			return func(value, target, currentPC int32) []ir.Stmt {
				return stmts(exprStmt(ir.WriteMem8(ir.NewLiteral(value), ir.NewRegister(src))))
			}
		}
		pair := pairName(args[0], args[1])
		src := args[2]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.WriteMem8(ir.Getter(pair), ir.NewRegister(src))))
		}
	case 4:
		if args[0] != n || args[1] != n {
			panic(arityError("LD_WRITE_MEM", args...))
		}
		hi, lo := args[2], args[3]
		return func(value, target, currentPC int32) []ir.Stmt {
			addr := ir.NewLiteral(value)
			addrPlus1 := ir.NewBinary("+", ir.NewLiteral(value), ir.NewLiteral(1))
			return stmts(
				exprStmt(ir.WriteMem8(addr, ir.NewRegister(lo))),
				exprStmt(ir.WriteMem8(addrPlus1, ir.NewRegister(hi))),
			)
		}
	default:
		panic(arityError("LD_WRITE_MEM", args...))
	}
}

// LD_SP builds the imm16 load of the stack pointer: sp = value.
func LD_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewIdentifier("sp"), ir.NewLiteral(value))))
	}
}

// LD_SP_X builds "LD SP,IX"/"LD SP,IY": sp = get<FAMILY>().
func LD_SP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewIdentifier("sp"), ir.Getter(family))))
	}
}

// LD8_D builds the indexed load dst = readMem(get<FAMILY>() + d). The
// displacement is read as an unsigned byte by the decoder and sign
// extended here before being embedded as a Literal.
func LD8_D(dst, family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(dst), ir.ReadMem8(addr))))
	}
}

// LD_X builds the indexed store writeMem(get<FAMILY>() + d, src).
func LD_X(src, family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewRegister(src))))
	}
}

// indexedAddr sign-extends the raw displacement byte and builds
// get<FAMILY>() + d.
func indexedAddr(family string, rawByte int32) ir.Expr {
	d := int32(int8(uint8(rawByte)))
	return ir.NewBinary("+", ir.Getter(family), ir.NewLiteral(d))
}
