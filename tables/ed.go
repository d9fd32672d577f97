package tables

import "github.com/oisee/z80core/ops"

// ED is the 256-entry ED-prefix table. Most bytes in this space are
// undefined on real hardware and behave as no-ops; those slots get a
// working NOOP ast rather than being left as decode terminators, per
// the same "unknown CB/ED sub-opcodes are harmless" rule CB relies on.
var ED [256]Opcode

func init() {
	for i := range ED {
		ED[i] = Opcode{"NOP*", ops.NOOP(), None}
	}

	pairs := []struct {
		hi, lo string
	}{{"b", "c"}, {"d", "e"}, {"h", "l"}, {}}
	for i, p := range pairs {
		sbc := 0x42 + i*0x10
		adc := 0x4A + i*0x10
		ldToMem := 0x43 + i*0x10
		ldFromMem := 0x4B + i*0x10
		if p.hi == "" { // SP has no register-letter pair
			ED[sbc] = Opcode{"SBC HL,SP", ops.SBC16("h", "l", "sp"), None}
			ED[adc] = Opcode{"ADC HL,SP", ops.ADC16("h", "l", "sp"), None}
			ED[ldToMem] = Opcode{"LD (nn),SP", ops.LD_WRITE_MEM_SP(), UINT16}
			ED[ldFromMem] = Opcode{"LD SP,(nn)", ops.LD_SP_MEM(), UINT16}
			continue
		}
		ED[sbc] = Opcode{"SBC HL," + upperPair(p.hi, p.lo), ops.SBC16("h", "l", p.hi, p.lo), None}
		ED[adc] = Opcode{"ADC HL," + upperPair(p.hi, p.lo), ops.ADC16("h", "l", p.hi, p.lo), None}
		ED[ldToMem] = Opcode{"LD (nn)," + upperPair(p.hi, p.lo), ops.LD_WRITE_MEM(n, n, p.hi, p.lo), UINT16}
		ED[ldFromMem] = Opcode{"LD " + upperPair(p.hi, p.lo) + ",(nn)", ops.LD16(p.hi, p.lo, n, n), UINT16}
	}

	ED[0x44] = Opcode{"NEG", ops.NEG(), None}
	ED[0x45] = Opcode{"RETN", ops.RETN(), None}
	ED[0x4D] = Opcode{"RETI", ops.RETI(), None}
	ED[0x46] = Opcode{"IM 0", ops.IM(0), None}
	ED[0x56] = Opcode{"IM 1", ops.IM(1), None}
	ED[0x5E] = Opcode{"IM 2", ops.IM(2), None}
	ED[0x47] = Opcode{"LD I,A", ops.LD_I_A(), None}
	ED[0x4F] = Opcode{"LD R,A", ops.LD_R_A(), None}
	ED[0x57] = Opcode{"LD A,I", ops.LD_A_I(), None}
	ED[0x5F] = Opcode{"LD A,R", ops.LD_A_R(), None}
	ED[0x67] = Opcode{"RRD", ops.RRD(), None}
	ED[0x6F] = Opcode{"RLD", ops.RLD(), None}

	ioRegs := []struct {
		byteIn, byteOut int
		reg             string
	}{{0x40, 0x41, "b"}, {0x48, 0x49, "c"}, {0x50, 0x51, "d"}, {0x58, 0x59, "e"}, {0x60, 0x61, "h"}, {0x68, 0x69, "l"}, {0x78, 0x79, "a"}}
	for _, r := range ioRegs {
		ED[r.byteIn] = Opcode{"IN " + r.reg + ",(C)", ops.IN_R_C(r.reg), None}
		ED[r.byteOut] = Opcode{"OUT (C)," + r.reg, ops.OUT_C_R(r.reg), None}
	}

	ED[0xA0] = Opcode{"LDI", ops.LDI(), None}
	ED[0xA1] = Opcode{"CPI", ops.CPI(), None}
	ED[0xA2] = Opcode{"INI", ops.INI(), None}
	ED[0xA3] = Opcode{"OUTI", ops.OUTI(), None}
	ED[0xA8] = Opcode{"LDD", ops.LDD(), None}
	ED[0xA9] = Opcode{"CPD", ops.CPD(), None}
	ED[0xAA] = Opcode{"IND", ops.IND(), None}
	ED[0xAB] = Opcode{"OUTD", ops.OUTD(), None}
	ED[0xB0] = Opcode{"LDIR", ops.LDIR(), None}
	ED[0xB1] = Opcode{"CPIR", ops.CPIR(), None}
	ED[0xB2] = Opcode{"INIR", ops.INIR(), None}
	ED[0xB3] = Opcode{"OTIR", ops.OTIR(), None}
	ED[0xB8] = Opcode{"LDDR", ops.LDDR(), None}
	ED[0xB9] = Opcode{"CPDR", ops.CPDR(), None}
	ED[0xBA] = Opcode{"INDR", ops.INDR(), None}
	ED[0xBB] = Opcode{"OTDR", ops.OTDR(), None}
}

func upperPair(hi, lo string) string {
	up := func(s string) byte { return s[0] - ('a' - 'A') }
	return string([]byte{up(hi), up(lo)})
}
