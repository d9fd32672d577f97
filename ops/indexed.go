package ops

import "github.com/oisee/z80core/ir"

// EX_DE_HL builds "EX DE,HL": exDEHL(), the unindexed sibling of
// EX_SP_X for the one plain register-pair swap the main table needs.
func EX_DE_HL() Emitter { return call0("exDEHL") }

// LD_WRITE_MEM_SP builds "LD (nn),SP": writeMem(value, sp & 0xFF);
// writeMem(value+1, (sp>>8) & 0xFF). SP has no register-letter pair,
// so it can't route through LD_WRITE_MEM's hi/lo shape.
func LD_WRITE_MEM_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		sp := ir.NewIdentifier("sp")
		low := ir.NewBinary("&", sp, ir.NewLiteral(0xFF))
		high := ir.NewBinary("&", ir.NewBinary(">>", sp, ir.NewLiteral(8)), ir.NewLiteral(0xFF))
		addr := ir.NewLiteral(value)
		addrPlus1 := ir.NewBinary("+", ir.NewLiteral(value), ir.NewLiteral(1))
		return stmts(
			exprStmt(ir.WriteMem8(addr, low)),
			exprStmt(ir.WriteMem8(addrPlus1, high)),
		)
	}
}

// LD_SP_MEM builds "LD SP,(nn)": sp = readMemWord(value).
func LD_SP_MEM() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewIdentifier("sp"), ir.ReadMem16(ir.NewLiteral(value)))))
	}
}

// LD16Family builds "LD IX,nn"/"LD IY,nn": set<FAMILY>(value).
func LD16Family(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.Setter(family, ir.NewLiteral(value))))
	}
}

// LD_WRITE_MEM_FAMILY builds "LD (nn),IX"/"LD (nn),IY": writeMem(value,
// low byte of family); writeMem(value+1, high byte of family).
func LD_WRITE_MEM_FAMILY(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		reg := ir.Getter(family)
		low := ir.NewBinary("&", reg, ir.NewLiteral(0xFF))
		high := ir.NewBinary("&", ir.NewBinary(">>", reg, ir.NewLiteral(8)), ir.NewLiteral(0xFF))
		addr := ir.NewLiteral(value)
		addrPlus1 := ir.NewBinary("+", ir.NewLiteral(value), ir.NewLiteral(1))
		return stmts(
			exprStmt(ir.WriteMem8(addr, low)),
			exprStmt(ir.WriteMem8(addrPlus1, high)),
		)
	}
}

// LD16FamilyMem builds "LD IX,(nn)"/"LD IY,(nn)": set<FAMILY>(readMemWord(value)).
func LD16FamilyMem(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.Setter(family, ir.ReadMem16(ir.NewLiteral(value)))))
	}
}

// INC16Family builds "INC IX"/"INC IY": inc<FAMILY>().
func INC16Family(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("inc" + family)))
	}
}

// DEC16Family builds "DEC IX"/"DEC IY": dec<FAMILY>().
func DEC16Family(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("dec" + family)))
	}
}

// LD_X_N builds "LD (IX+d),n"/"LD (IY+d),n": writeMem(get<FAMILY>() +
// d, n). The opcode carries two trailing bytes (d then n), which
// doesn't fit any of the three single-read OperandKind tags on its
// own; the table instead declares this entry UINT16 and reads d and n
// together as one little-endian word, where d naturally lands in the
// low byte and n in the high byte of that read.
func LD_X_N(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		d := value & 0xFF
		imm := (value >> 8) & 0xFF
		addr := indexedAddr(family, d)
		return stmts(exprStmt(ir.WriteMem8(addr, ir.NewLiteral(imm))))
	}
}
