package ops

import "github.com/oisee/z80core/ir"

// INC8 builds r = inc8(r). Flag side effects live in the host inc8.
func INC8(r string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(r), ir.NewCall("inc8", ir.NewRegister(r)))))
	}
}

// DEC8 builds r = dec8(r). Flag side effects live in the host dec8.
func DEC8(r string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(r), ir.NewCall("dec8", ir.NewRegister(r)))))
	}
}

// INC16 builds inc<HI LO>(). 16-bit inc/dec never touch flags.
func INC16(hi, lo string) Emitter {
	pair := pairName(hi, lo)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("inc" + pair)))
	}
}

// DEC16 builds dec<HI LO>().
func DEC16(hi, lo string) Emitter {
	pair := pairName(hi, lo)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("dec" + pair)))
	}
}

// INC_X builds the indexed increment at (IX+d)/(IY+d):
// writeMem(addr, inc8(readMem(addr))).
func INC_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		addr2 := indexedAddr(family, value)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewCall("inc8", ir.ReadMem8(addr2)))))
	}
}

// DEC_X builds the indexed decrement at (IX+d)/(IY+d).
func DEC_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		addr := indexedAddr(family, value)
		addr2 := indexedAddr(family, value)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewCall("dec8", ir.ReadMem8(addr2)))))
	}
}

// INC_MEM builds the plain (undisplaced) memory increment "INC (HL)":
// writeMem(get<HI LO>(), inc8(readMem(get<HI LO>()))).
func INC_MEM(hi, lo string) Emitter {
	pair := pairName(hi, lo)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.WriteMem8(ir.Getter(pair), ir.NewCall("inc8", ir.ReadMem8(ir.Getter(pair))))))
	}
}

// DEC_MEM builds "DEC (HL)", mirroring INC_MEM.
func DEC_MEM(hi, lo string) Emitter {
	pair := pairName(hi, lo)
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.WriteMem8(ir.Getter(pair), ir.NewCall("dec8", ir.ReadMem8(ir.Getter(pair))))))
	}
}

// INC_SP builds "INC SP": sp = (sp + 1) & 0xFFFF. SP has no
// register-pair name, so it is addressed as a plain identifier rather
// than through a get/set pair like INC16.
func INC_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		sp := ir.NewIdentifier("sp")
		return stmts(exprStmt(ir.NewAssign("=", sp, ir.NewBinary("&", ir.NewBinary("+", sp, ir.NewLiteral(1)), ir.NewLiteral(0xFFFF)))))
	}
}

// DEC_SP builds "DEC SP", mirroring INC_SP.
func DEC_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		sp := ir.NewIdentifier("sp")
		return stmts(exprStmt(ir.NewAssign("=", sp, ir.NewBinary("&", ir.NewBinary("-", sp, ir.NewLiteral(1)), ir.NewLiteral(0xFFFF)))))
	}
}
