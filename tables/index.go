package tables

import "github.com/oisee/z80core/ops"

// IX and IY are the DD- and FD-prefixed index-register tables,
// generated by generateIndexTable. Most of the 256 slots carry no
// indexed meaning at all: a nil Ast there signals decode.Block to
// re-interpret the same byte through Main, the prefix having had no
// effect (matching real Z80 "prefix is a no-op for this opcode").
var (
	IX = generateIndexTable("IX")
	IY = generateIndexTable("IY")

	// IXCB and IYCB are the DDCB/FDCB sub-tables, indexed by the
	// sub-opcode byte that follows the displacement. Every slot is a
	// bit/rotate operation on (family+d); there is no passthrough case.
	IXCB = generateIndexCBTable("IX")
	IYCB = generateIndexCBTable("IY")
)

// generateIndexTable builds the DD- or FD-prefixed table for the
// given family ("IX" or "IY"). Grounded on the observation that the
// index prefix only changes instructions that reference HL, (HL), or
// the stack through HL; everything else is byte-identical to Main.
func generateIndexTable(family string) [256]Opcode {
	var t [256]Opcode

	t[0x09] = Opcode{"ADD " + family + ",BC", ops.ADD16_X(family, "b", "c"), None}
	t[0x19] = Opcode{"ADD " + family + ",DE", ops.ADD16_X(family, "d", "e"), None}
	t[0x29] = Opcode{"ADD " + family + "," + family, ops.ADD16_X(family, family), None}
	t[0x39] = Opcode{"ADD " + family + ",SP", ops.ADD16_X(family, "sp"), None}

	t[0x21] = Opcode{"LD " + family + ",nn", ops.LD16Family(family), UINT16}
	t[0x22] = Opcode{"LD (nn)," + family, ops.LD_WRITE_MEM_FAMILY(family), UINT16}
	t[0x23] = Opcode{"INC " + family, ops.INC16Family(family), None}
	t[0x2A] = Opcode{"LD " + family + ",(nn)", ops.LD16FamilyMem(family), UINT16}
	t[0x2B] = Opcode{"DEC " + family, ops.DEC16Family(family), None}

	t[0x34] = Opcode{"INC (" + family + "+d)", ops.INC_X(family), UINT8}
	t[0x35] = Opcode{"DEC (" + family + "+d)", ops.DEC_X(family), UINT8}
	t[0x36] = Opcode{"LD (" + family + "+d),n", ops.LD_X_N(family), UINT16}

	for _, r := range []string{"b", "c", "d", "e", "h", "l", "a"} {
		loadOp := 0x46 + regOrderIndex(r)*8
		storeOp := 0x70 + regOrderIndex(r)
		t[loadOp] = Opcode{"LD " + r + ",(" + family + "+d)", ops.LD8_D(r, family), UINT8}
		t[storeOp] = Opcode{"LD (" + family + "+d)," + r, ops.LD_X(r, family), UINT8}
	}

	// BUG: the upstream table generator this was ported from treats
	// 0x76 as an ordinary "LD (family+d),B" slot instead of leaving it
	// as the undisplaced HALT real hardware executes here. Preserved
	// rather than silently fixed; see DESIGN.md.
	t[0x76] = Opcode{"LD (" + family + "+d),B", ops.LD_X("b", family), UINT8}

	aluRows := []struct {
		op int
		em func(string) ops.Emitter
	}{
		{0x86, ops.ADD_X}, {0x8E, ops.ADC_X}, {0x96, ops.SUB_X}, {0x9E, ops.SBC_X},
		{0xA6, ops.AND_X}, {0xAE, ops.XOR_X}, {0xB6, ops.OR_X}, {0xBE, ops.CP_X},
	}
	names := []string{"ADD A,(", "ADC A,(", "SUB (", "SBC A,(", "AND (", "XOR (", "OR (", "CP ("}
	for i, row := range aluRows {
		t[row.op] = Opcode{names[i] + family + "+d)", row.em(family), UINT8}
	}

	t[0xE1] = Opcode{"POP " + family, ops.POP("i", family), None}
	t[0xE3] = Opcode{"EX (SP)," + family, ops.EX_SP_X(family), None}
	t[0xE5] = Opcode{"PUSH " + family, ops.PUSH("i", family), None}
	t[0xE9] = Opcode{"JP (" + family + ")", ops.JP_X(family), None}
	t[0xF9] = Opcode{"LD SP," + family, ops.LD_SP_X(family), None}

	t[0xCB] = Opcode{"(" + family + "CB prefix)", nil, None}

	return t
}

// regOrderIndex is the inverse of regOrder, restricted to the seven
// names generateIndexTable actually looks up.
func regOrderIndex(name string) int {
	for i, r := range regOrder {
		if r == name {
			return i
		}
	}
	panic("tables: unknown register " + name)
}

// generateIndexCBTable builds the DDCB/FDCB sub-table: every slot
// operates on (family+d), never on a plain register, since the real
// hardware ignores the register field after an index-CB displacement
// for everything except the undocumented copy-back RES/SET does (out
// of scope, see Non-goals). The displacement itself is passed to the
// emitter as value, by the same convention ops.ROT_X documents.
func generateIndexCBTable(family string) [256]Opcode {
	var t [256]Opcode
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			op := row*8 + col
			t[op] = Opcode{rotNames[row] + " (" + family + "+d)", ops.ROT_X(row, family), None}
		}
	}
	for bit := 0; bit < 8; bit++ {
		for col := 0; col < 8; col++ {
			bitOp := 0x40 + bit*8 + col
			resOp := 0x80 + bit*8 + col
			setOp := 0xC0 + bit*8 + col
			t[bitOp] = Opcode{"BIT " + digit(bit) + ",(" + family + "+d)", ops.BIT_X(bit, family), None}
			t[resOp] = Opcode{"RES " + digit(bit) + ",(" + family + "+d)", ops.RES_X(bit, family), None}
			t[setOp] = Opcode{"SET " + digit(bit) + ",(" + family + "+d)", ops.SET_X(bit, family), None}
		}
	}
	return t
}
