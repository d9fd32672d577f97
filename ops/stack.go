package ops

import "github.com/oisee/z80core/ir"

// POP builds a pop into a register pair. Tolerated shapes:
//
//	POP(hi, lo)       set<HI LO>(readMemWord(sp)); sp += 2
//	POP("i", family)  set<FAMILY>(readMemWord(sp)); sp += 2
func POP(args ...string) Emitter {
	if len(args) != 2 {
		panic(arityError("POP", args...))
	}
	var pair string
	if args[0] == "i" {
		pair = args[1]
	} else {
		pair = pairName(args[0], args[1])
	}
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(
			exprStmt(ir.Setter(pair, ir.ReadMem16(ir.NewIdentifier("sp")))),
			exprStmt(ir.NewAssign("+=", ir.NewIdentifier("sp"), ir.NewLiteral(2))),
		)
	}
}

// PUSH builds a push of a register pair. Tolerated shapes mirror POP:
//
//	PUSH(hi, lo)       sp -= 2; writeMem(sp, lo); writeMem(sp+1, hi)
//	PUSH("i", family)  sp -= 2; writeMem(sp, low byte); writeMem(sp+1, high byte)
//
// The low-then-high write order matches LD_WRITE_MEM("n","n",hi,lo).
func PUSH(args ...string) Emitter {
	if len(args) != 2 {
		panic(arityError("PUSH", args...))
	}
	if args[0] == "i" {
		family := args[1]
		return func(value, target, currentPC int32) []ir.Stmt {
			sp := ir.NewIdentifier("sp")
			low := ir.NewBinary("&", ir.Getter(family), ir.NewLiteral(0xFF))
			high := ir.NewBinary("&", ir.NewBinary(">>", ir.Getter(family), ir.NewLiteral(8)), ir.NewLiteral(0xFF))
			return stmts(
				exprStmt(ir.NewAssign("-=", sp, ir.NewLiteral(2))),
				exprStmt(ir.WriteMem8(sp, low)),
				exprStmt(ir.WriteMem8(ir.NewBinary("+", sp, ir.NewLiteral(1)), high)),
			)
		}
	}
	hi, lo := args[0], args[1]
	return func(value, target, currentPC int32) []ir.Stmt {
		sp := ir.NewIdentifier("sp")
		return stmts(
			exprStmt(ir.NewAssign("-=", sp, ir.NewLiteral(2))),
			exprStmt(ir.WriteMem8(sp, ir.NewRegister(lo))),
			exprStmt(ir.WriteMem8(ir.NewBinary("+", sp, ir.NewLiteral(1)), ir.NewRegister(hi))),
		)
	}
}
