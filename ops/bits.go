package ops

import "github.com/oisee/z80core/ir"

// rotShiftCalls names the eight CB-prefix rotate/shift host callables
// in opcode-row order: RLC, RRC, RL, RR, SLA, SRA, SLL (undocumented),
// SRL. Each takes the current byte and returns the new one; the host
// owns the flag side effects, same as inc8/dec8.
var rotShiftCalls = [8]string{"rlc8", "rrc8", "rl8", "rr8", "sla8", "sra8", "sll8", "srl8"}

// ROT builds a CB-prefix rotate/shift. row selects the operation via
// rotShiftCalls. Tolerated shapes:
//
//	ROT(row, r)       r = <call>(r)
//	ROT(row, hi, lo)  writeMem(addr, <call>(readMem(addr))), addr = get<HI LO>()
func ROT(row int, args ...string) Emitter {
	call := rotShiftCalls[row]
	switch len(args) {
	case 1:
		r := args[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(r), ir.NewCall(call, ir.NewRegister(r)))))
		}
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			addr := ir.Getter(pair)
			return stmts(exprStmt(ir.WriteMem8(addr, ir.NewCall(call, ir.ReadMem8(addr)))))
		}
	default:
		panic(arityError("ROT", args...))
	}
}

// ROT_X builds the DDCB/FDCB-prefix rotate/shift at (IX+d)/(IY+d). The
// displacement arrives as value per the DDCB/FDCB decode convention
// (see decode.Block): it is consumed ahead of the sub-opcode lookup,
// then handed to the emitter in the slot an ordinary operand would
// occupy.
func ROT_X(row int, family string) Emitter {
	call := rotShiftCalls[row]
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		addr2 := indexedAddr(family, value)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewCall(call, ir.ReadMem8(addr2)))))
	}
}

// bitLiteral builds the literal 1<<bit mask.
func bitLiteral(bit int) *ir.Literal { return ir.NewLiteral(1 << uint(bit)) }

// BIT builds a CB-prefix bit test. Tolerated shapes mirror ROT:
//
//	BIT(bit, r)       test r & (1<<bit)
//	BIT(bit, hi, lo)  test readMem(get<HI LO>()) & (1<<bit)
//
// Z is set when the tested bit is clear, cleared when it is set; H is
// always set and N always cleared by the real hardware, elided here
// along with the undocumented bit3/bit5 copy-through since this IR
// only tracks the Z component the decoder's callers rely on.
func BIT(bit int, args ...string) Emitter {
	var operand ir.Expr
	switch len(args) {
	case 1:
		operand = ir.NewRegister(args[0])
	case 2:
		operand = ir.ReadMem8(ir.Getter(pairName(args[0], args[1])))
	default:
		panic(arityError("BIT", args...))
	}
	return func(value, target, currentPC int32) []ir.Stmt {
		test := ir.NewBinary("==", ir.NewBinary("&", operand, bitLiteral(bit)), ir.NewLiteral(0))
		setZ := exprStmt(ir.NewAssign("|=", ir.NewIdentifier("f"), ir.NewLiteral(int32(0x40))))
		clearZ := exprStmt(ir.NewAssign("&=", ir.NewIdentifier("f"), ir.NewLiteral(int32(^uint8(0x40)))))
		return stmts(ir.NewIf(test, setZ).WithElse(clearZ))
	}
}

// BIT_X builds the DDCB/FDCB bit test at (IX+d)/(IY+d), displacement
// arriving as value per the ROT_X convention.
func BIT_X(bit int, family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		test := ir.NewBinary("==", ir.NewBinary("&", ir.ReadMem8(addr), bitLiteral(bit)), ir.NewLiteral(0))
		setZ := exprStmt(ir.NewAssign("|=", ir.NewIdentifier("f"), ir.NewLiteral(int32(0x40))))
		clearZ := exprStmt(ir.NewAssign("&=", ir.NewIdentifier("f"), ir.NewLiteral(int32(^uint8(0x40)))))
		return stmts(ir.NewIf(test, setZ).WithElse(clearZ))
	}
}

// RES builds a CB-prefix bit clear. Tolerated shapes mirror ROT.
func RES(bit int, args ...string) Emitter {
	mask := ir.NewLiteral(^int32(1 << uint(bit)))
	switch len(args) {
	case 1:
		r := args[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("&=", ir.NewRegister(r), mask)))
		}
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			addr := ir.Getter(pair)
			return stmts(exprStmt(ir.WriteMem8(addr, ir.NewBinary("&", ir.ReadMem8(addr), mask))))
		}
	default:
		panic(arityError("RES", args...))
	}
}

// RES_X builds the DDCB/FDCB bit clear at (IX+d)/(IY+d).
func RES_X(bit int, family string) Emitter {
	mask := ir.NewLiteral(^int32(1 << uint(bit)))
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		addr2 := indexedAddr(family, value)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewBinary("&", ir.ReadMem8(addr2), mask))))
	}
}

// SET builds a CB-prefix bit set. Tolerated shapes mirror ROT.
func SET(bit int, args ...string) Emitter {
	mask := bitLiteral(bit)
	switch len(args) {
	case 1:
		r := args[0]
		return func(value, target, currentPC int32) []ir.Stmt {
			return stmts(exprStmt(ir.NewAssign("|=", ir.NewRegister(r), mask)))
		}
	case 2:
		pair := pairName(args[0], args[1])
		return func(value, target, currentPC int32) []ir.Stmt {
			addr := ir.Getter(pair)
			return stmts(exprStmt(ir.WriteMem8(addr, ir.NewBinary("|", ir.ReadMem8(addr), mask))))
		}
	default:
		panic(arityError("SET", args...))
	}
}

// SET_X builds the DDCB/FDCB bit set at (IX+d)/(IY+d).
func SET_X(bit int, family string) Emitter {
	mask := bitLiteral(bit)
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		addr2 := indexedAddr(family, value)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewBinary("|", ir.ReadMem8(addr2), mask))))
	}
}
