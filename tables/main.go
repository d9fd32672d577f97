package tables

import "github.com/oisee/z80core/ops"

// regOrder is the canonical Z80 register encoding used by the LD r,r'
// and 8-bit ALU blocks: index 6 means "through (HL)", not a register.
var regOrder = [8]string{"b", "c", "d", "e", "h", "l", "", "a"}

// Main is the 256-entry unprefixed opcode table.
var Main [256]Opcode

func init() {
	buildMainRow0()
	buildMainLDBlock()
	buildMainALUBlock()
	buildMainRow3()
}

// buildMainRow0 covers 0x00-0x3F: NOP, 16-bit inc/dec/add, 8-bit
// inc/dec/load, and the assorted single-byte ops in that range.
func buildMainRow0() {
	Main[0x00] = Opcode{"NOP", ops.NOOP(), None}
	Main[0x01] = Opcode{"LD BC,nn", ops.LD16("b", "c"), UINT16}
	Main[0x02] = Opcode{"LD (BC),A", ops.LD_WRITE_MEM("b", "c", "a"), None}
	Main[0x03] = Opcode{"INC BC", ops.INC16("b", "c"), None}
	Main[0x04] = Opcode{"INC B", ops.INC8("b"), None}
	Main[0x05] = Opcode{"DEC B", ops.DEC8("b"), None}
	Main[0x06] = Opcode{"LD B,n", ops.LD8("b"), UINT8}
	Main[0x07] = Opcode{"RLCA", nil, None}
	Main[0x08] = Opcode{"EX AF,AF'", ops.EX_AF(), None}
	Main[0x09] = Opcode{"ADD HL,BC", ops.ADD16("h", "l", "b", "c"), None}
	Main[0x0A] = Opcode{"LD A,(BC)", ops.LD8("a", "b", "c"), None}
	Main[0x0B] = Opcode{"DEC BC", ops.DEC16("b", "c"), None}
	Main[0x0C] = Opcode{"INC C", ops.INC8("c"), None}
	Main[0x0D] = Opcode{"DEC C", ops.DEC8("c"), None}
	Main[0x0E] = Opcode{"LD C,n", ops.LD8("c"), UINT8}
	Main[0x0F] = Opcode{"RRCA", nil, None}

	Main[0x10] = Opcode{"DJNZ e", ops.DJNZ(), INT8}
	Main[0x11] = Opcode{"LD DE,nn", ops.LD16("d", "e"), UINT16}
	Main[0x12] = Opcode{"LD (DE),A", ops.LD_WRITE_MEM("d", "e", "a"), None}
	Main[0x13] = Opcode{"INC DE", ops.INC16("d", "e"), None}
	Main[0x14] = Opcode{"INC D", ops.INC8("d"), None}
	Main[0x15] = Opcode{"DEC D", ops.DEC8("d"), None}
	Main[0x16] = Opcode{"LD D,n", ops.LD8("d"), UINT8}
	Main[0x17] = Opcode{"RLA", ops.RLA(), None}
	Main[0x18] = Opcode{"JR e", ops.JR(), INT8}
	Main[0x19] = Opcode{"ADD HL,DE", ops.ADD16("h", "l", "d", "e"), None}
	Main[0x1A] = Opcode{"LD A,(DE)", ops.LD8("a", "d", "e"), None}
	Main[0x1B] = Opcode{"DEC DE", ops.DEC16("d", "e"), None}
	Main[0x1C] = Opcode{"INC E", ops.INC8("e"), None}
	Main[0x1D] = Opcode{"DEC E", ops.DEC8("e"), None}
	Main[0x1E] = Opcode{"LD E,n", ops.LD8("e"), UINT8}
	Main[0x1F] = Opcode{"RRA", ops.RRA(), None}

	nz := ops.FlagCond{Op: "==", Mask: fZero}
	z := ops.FlagCond{Op: "!=", Mask: fZero}
	nc := ops.FlagCond{Op: "==", Mask: fCarry}
	c := ops.FlagCond{Op: "!=", Mask: fCarry}

	Main[0x20] = Opcode{"JR NZ,e", ops.JR(nz), INT8}
	Main[0x21] = Opcode{"LD HL,nn", ops.LD16("h", "l"), UINT16}
	Main[0x22] = Opcode{"LD (nn),HL", ops.LD_WRITE_MEM(n, n, "h", "l"), UINT16}
	Main[0x23] = Opcode{"INC HL", ops.INC16("h", "l"), None}
	Main[0x24] = Opcode{"INC H", ops.INC8("h"), None}
	Main[0x25] = Opcode{"DEC H", ops.DEC8("h"), None}
	Main[0x26] = Opcode{"LD H,n", ops.LD8("h"), UINT8}
	Main[0x27] = Opcode{"DAA", ops.DAA(), None}
	Main[0x28] = Opcode{"JR Z,e", ops.JR(z), INT8}
	Main[0x29] = Opcode{"ADD HL,HL", ops.ADD16("h", "l", "h", "l"), None}
	Main[0x2A] = Opcode{"LD HL,(nn)", ops.LD16("h", "l", n, n), UINT16}
	Main[0x2B] = Opcode{"DEC HL", ops.DEC16("h", "l"), None}
	Main[0x2C] = Opcode{"INC L", ops.INC8("l"), None}
	Main[0x2D] = Opcode{"DEC L", ops.DEC8("l"), None}
	Main[0x2E] = Opcode{"LD L,n", ops.LD8("l"), UINT8}
	Main[0x2F] = Opcode{"CPL", ops.CPL(), None}

	Main[0x30] = Opcode{"JR NC,e", ops.JR(nc), INT8}
	Main[0x31] = Opcode{"LD SP,nn", ops.LD_SP(), UINT16}
	Main[0x32] = Opcode{"LD (nn),A", ops.LD_WRITE_MEM(n, n, "a"), UINT16}
	Main[0x33] = Opcode{"INC SP", ops.INC_SP(), None}
	Main[0x34] = Opcode{"INC (HL)", ops.INC_MEM("h", "l"), None}
	Main[0x35] = Opcode{"DEC (HL)", ops.DEC_MEM("h", "l"), None}
	Main[0x36] = Opcode{"LD (HL),n", ops.LD_WRITE_MEM("h", "l"), UINT8}
	Main[0x37] = Opcode{"SCF", ops.SCF(), None}
	Main[0x38] = Opcode{"JR C,e", ops.JR(c), INT8}
	Main[0x39] = Opcode{"ADD HL,SP", ops.ADD16("h", "l", "sp"), None}
	Main[0x3A] = Opcode{"LD A,(nn)", ops.LD8("a", n, n), UINT16}
	Main[0x3B] = Opcode{"DEC SP", ops.DEC_SP(), None}
	Main[0x3C] = Opcode{"INC A", ops.INC8("a"), None}
	Main[0x3D] = Opcode{"DEC A", ops.DEC8("a"), None}
	Main[0x3E] = Opcode{"LD A,n", ops.LD8("a"), UINT8}
	Main[0x3F] = Opcode{"CCF", ops.CCF(), None}
}

// n is the local immediate-operand sentinel mirroring ops.n, spelled
// out again here because it isn't exported across the package
// boundary.
const n = "n"

// buildMainLDBlock covers 0x40-0x7F: the 8x8 LD r,r' grid, with 0x76
// (which would be "LD (HL),(HL)") standing in for HALT instead.
//
// BUG: real Z80 hardware treats 0x76 as HALT unconditionally. This
// table construction loop writes HALT into regOrder[6]==regOrder[6]
// explicitly below, but the DD/FD index-table factory's analogous
// slot (see index.go) inherited the upstream generator's mistake of
// treating that slot as an ordinary LD (IX+d),B — preserved here
// rather than silently corrected, per the decision recorded in
// DESIGN.md.
func buildMainLDBlock() {
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := 0x40 + dst*8 + src
			if op == 0x76 {
				Main[op] = Opcode{"HALT", ops.HALT(), None}
				continue
			}
			dstName, srcName := regOrder[dst], regOrder[src]
			switch {
			case dst == 6:
				Main[op] = Opcode{"LD (HL)," + srcName, ops.LD_WRITE_MEM("h", "l", srcName), None}
			case src == 6:
				Main[op] = Opcode{"LD " + dstName + ",(HL)", ops.LD8(dstName, "h", "l"), None}
			default:
				Main[op] = Opcode{"LD " + dstName + "," + srcName, ops.LD8(dstName, srcName), None}
			}
		}
	}
}

// buildMainALUBlock covers 0x80-0xBF: ADD/ADC/SUB/SBC/AND/XOR/OR/CP
// against each of the eight regOrder operands including (HL).
func buildMainALUBlock() {
	type row struct {
		name string
		reg  func(args ...string) ops.Emitter
	}
	rows := [8]row{
		{"ADD A,", ops.ADD},
		{"ADC A,", ops.ADC},
		{"SUB ", ops.SUB},
		{"SBC A,", ops.SBC},
		{"AND ", ops.AND},
		{"XOR ", ops.XOR},
		{"OR ", ops.OR},
		{"CP ", ops.CP},
	}
	for r := 0; r < 8; r++ {
		for operand := 0; operand < 8; operand++ {
			op := 0x80 + r*8 + operand
			reg := regOrder[operand]
			if operand == 6 {
				Main[op] = Opcode{rows[r].name + "(HL)", rows[r].reg("h", "l"), None}
				continue
			}
			Main[op] = Opcode{rows[r].name + reg, rows[r].reg(reg), None}
		}
	}
}

// buildMainRow3 covers 0xC0-0xFF: conditional RET/JP/CALL, PUSH/POP,
// RST, and the remaining single-byte ops.
func buildMainRow3() {
	nz := ops.FlagCond{Op: "==", Mask: fZero}
	z := ops.FlagCond{Op: "!=", Mask: fZero}
	nc := ops.FlagCond{Op: "==", Mask: fCarry}
	c := ops.FlagCond{Op: "!=", Mask: fCarry}
	po := ops.FlagCond{Op: "==", Mask: fParity}
	pe := ops.FlagCond{Op: "!=", Mask: fParity}
	p := ops.FlagCond{Op: "==", Mask: fSign}
	m := ops.FlagCond{Op: "!=", Mask: fSign}

	Main[0xC0] = Opcode{"RET NZ", ops.RET(nz), None}
	Main[0xC1] = Opcode{"POP BC", ops.POP("b", "c"), None}
	Main[0xC2] = Opcode{"JP NZ,nn", ops.JP(nz), UINT16}
	Main[0xC3] = Opcode{"JP nn", ops.JP(), UINT16}
	Main[0xC4] = Opcode{"CALL NZ,nn", ops.CALL(nz), UINT16}
	Main[0xC5] = Opcode{"PUSH BC", ops.PUSH("b", "c"), None}
	Main[0xC6] = Opcode{"ADD A,n", ops.ADD(), UINT8}
	Main[0xC7] = Opcode{"RST 00H", ops.RST(0x00), None}
	Main[0xC8] = Opcode{"RET Z", ops.RET(z), None}
	Main[0xC9] = Opcode{"RET", ops.RET(), None}
	Main[0xCA] = Opcode{"JP Z,nn", ops.JP(z), UINT16}
	Main[0xCB] = Opcode{"(CB prefix)", nil, None}
	Main[0xCC] = Opcode{"CALL Z,nn", ops.CALL(z), UINT16}
	Main[0xCD] = Opcode{"CALL nn", ops.CALL(), UINT16}
	Main[0xCE] = Opcode{"ADC A,n", ops.ADC(), UINT8}
	Main[0xCF] = Opcode{"RST 08H", ops.RST(0x08), None}

	Main[0xD0] = Opcode{"RET NC", ops.RET(nc), None}
	Main[0xD1] = Opcode{"POP DE", ops.POP("d", "e"), None}
	Main[0xD2] = Opcode{"JP NC,nn", ops.JP(nc), UINT16}
	Main[0xD3] = Opcode{"OUT (n),A", ops.OUT_N_A(), UINT8}
	Main[0xD4] = Opcode{"CALL NC,nn", ops.CALL(nc), UINT16}
	Main[0xD5] = Opcode{"PUSH DE", ops.PUSH("d", "e"), None}
	Main[0xD6] = Opcode{"SUB n", ops.SUB(), UINT8}
	Main[0xD7] = Opcode{"RST 10H", ops.RST(0x10), None}
	Main[0xD8] = Opcode{"RET C", ops.RET(c), None}
	Main[0xD9] = Opcode{"EXX", ops.EXX(), None}
	Main[0xDA] = Opcode{"JP C,nn", ops.JP(c), UINT16}
	Main[0xDB] = Opcode{"IN A,(n)", ops.IN_A_N(), UINT8}
	Main[0xDC] = Opcode{"CALL C,nn", ops.CALL(c), UINT16}
	Main[0xDD] = Opcode{"(DD prefix)", nil, None}
	Main[0xDE] = Opcode{"SBC A,n", ops.SBC(), UINT8}
	Main[0xDF] = Opcode{"RST 18H", ops.RST(0x18), None}

	Main[0xE0] = Opcode{"RET PO", ops.RET(po), None}
	Main[0xE1] = Opcode{"POP HL", ops.POP("h", "l"), None}
	Main[0xE2] = Opcode{"JP PO,nn", ops.JP(po), UINT16}
	Main[0xE3] = Opcode{"EX (SP),HL", ops.EX_SP_X("HL"), None}
	Main[0xE4] = Opcode{"CALL PO,nn", ops.CALL(po), UINT16}
	Main[0xE5] = Opcode{"PUSH HL", ops.PUSH("h", "l"), None}
	Main[0xE6] = Opcode{"AND n", ops.AND(), UINT8}
	Main[0xE7] = Opcode{"RST 20H", ops.RST(0x20), None}
	Main[0xE8] = Opcode{"RET PE", ops.RET(pe), None}
	Main[0xE9] = Opcode{"JP (HL)", ops.JP_X("HL"), None}
	Main[0xEA] = Opcode{"JP PE,nn", ops.JP(pe), UINT16}
	Main[0xEB] = Opcode{"EX DE,HL", ops.EX_DE_HL(), None}
	Main[0xEC] = Opcode{"CALL PE,nn", ops.CALL(pe), UINT16}
	Main[0xED] = Opcode{"(ED prefix)", nil, None}
	Main[0xEE] = Opcode{"XOR n", ops.XOR(), UINT8}
	Main[0xEF] = Opcode{"RST 28H", ops.RST(0x28), None}

	Main[0xF0] = Opcode{"RET P", ops.RET(p), None}
	Main[0xF1] = Opcode{"POP AF", ops.POP("a", "f"), None}
	Main[0xF2] = Opcode{"JP P,nn", ops.JP(p), UINT16}
	Main[0xF3] = Opcode{"DI", ops.DI(), None}
	Main[0xF4] = Opcode{"CALL P,nn", ops.CALL(p), UINT16}
	Main[0xF5] = Opcode{"PUSH AF", ops.PUSH("a", "f"), None}
	Main[0xF6] = Opcode{"OR n", ops.OR(), UINT8}
	Main[0xF7] = Opcode{"RST 30H", ops.RST(0x30), None}
	Main[0xF8] = Opcode{"RET M", ops.RET(m), None}
	Main[0xF9] = Opcode{"LD SP,HL", ops.LD_SP_X("HL"), None}
	Main[0xFA] = Opcode{"JP M,nn", ops.JP(m), UINT16}
	Main[0xFB] = Opcode{"EI", ops.EI(), None}
	Main[0xFC] = Opcode{"CALL M,nn", ops.CALL(m), UINT16}
	Main[0xFD] = Opcode{"(FD prefix)", nil, None}
	Main[0xFE] = Opcode{"CP n", ops.CP(), UINT8}
	Main[0xFF] = Opcode{"RST 38H", ops.RST(0x38), None}
}
