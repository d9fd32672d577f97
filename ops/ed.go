package ops

import "github.com/oisee/z80core/ir"

// NEG builds "NEG": a = neg(a).
func NEG() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall("neg", ir.NewRegister("a")))))
	}
}

// IM builds "IM 0"/"IM 1"/"IM 2": im(mode). mode is fixed at
// table-construction time, not a decoded operand.
func IM(mode int32) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("im", ir.NewLiteral(mode))))
	}
}

// RETN builds "RETN": restore IFF1 from IFF2, then return exactly like
// the unconditional RET. The IFF bookkeeping is delegated to the host
// the same way EX_AF delegates its swap.
func RETN() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(
			exprStmt(ir.NewCall("retn")),
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.ReadMem16(ir.NewIdentifier("sp")))),
			exprStmt(ir.NewAssign("+=", ir.NewIdentifier("sp"), ir.NewLiteral(2))),
			ir.NewReturn(),
		)
	}
}

// RETI builds "RETI", identical in shape to RETN but signaling
// interrupt-service completion to the host rather than an NMI return.
func RETI() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(
			exprStmt(ir.NewCall("reti")),
			exprStmt(ir.NewAssign("=", ir.NewIdentifier("pc"), ir.ReadMem16(ir.NewIdentifier("sp")))),
			exprStmt(ir.NewAssign("+=", ir.NewIdentifier("sp"), ir.NewLiteral(2))),
			ir.NewReturn(),
		)
	}
}

// LD_I_A builds "LD I,A": setI(a).
func LD_I_A() Emitter { return callWithReg("setI", "a") }

// LD_R_A builds "LD R,A": setR(a).
func LD_R_A() Emitter { return callWithReg("setR", "a") }

// LD_A_I builds "LD A,I": a = getI(). The real instruction also
// copies IFF2 into the P/V flag; that host-owned detail is left to
// the CPU module the same way EX_AF's swap is.
func LD_A_I() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall("getI"))))
	}
}

// LD_A_R builds "LD A,R": a = getR().
func LD_A_R() Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister("a"), ir.NewCall("getR"))))
	}
}

func callWithReg(call, r string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall(call, ir.NewRegister(r))))
	}
}

// IN_R_C builds "IN r,(C)": r = in_c().
func IN_R_C(r string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewAssign("=", ir.NewRegister(r), ir.NewCall("in_c"))))
	}
}

// OUT_C_R builds "OUT (C),r": out_c(r).
func OUT_C_R(r string) Emitter {
	return func(value, target, currentPC int32) []ir.Stmt {
		return stmts(exprStmt(ir.NewCall("out_c", ir.NewRegister(r))))
	}
}

// RRD builds "RRD": rrd(), a 4-bit rotate through (HL) and A's low
// nibble, atomic enough to delegate whole to the host.
func RRD() Emitter { return call0("rrd") }

// RLD builds "RLD", mirroring RRD.
func RLD() Emitter { return call0("rld") }

// Block transfer/search/IO instructions (LDI/LDD/LDIR/LDDR,
// CPI/CPD/CPIR/CPDR, INI/IND/INIR/INDR, OUTI/OUTD/OTIR/OTDR) each
// touch BC, DE or HL, memory, and flags in instruction-specific ways
// with no shared shape this IR's primitives reuse; each is delegated
// whole to a single host callable, same precedent as EX_AF/EXX.
func LDI() Emitter  { return call0("ldi") }
func LDD() Emitter  { return call0("ldd") }
func LDIR() Emitter { return call0("ldir") }
func LDDR() Emitter { return call0("lddr") }

func CPI() Emitter  { return call0("cpi") }
func CPD() Emitter  { return call0("cpd") }
func CPIR() Emitter { return call0("cpir") }
func CPDR() Emitter { return call0("cpdr") }

func INI() Emitter  { return call0("ini") }
func IND() Emitter  { return call0("ind") }
func INIR() Emitter { return call0("inir") }
func INDR() Emitter { return call0("indr") }

func OUTI() Emitter { return call0("outi") }
func OUTD() Emitter { return call0("outd") }
func OTIR() Emitter { return call0("otir") }
func OTDR() Emitter { return call0("otdr") }
