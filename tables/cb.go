package tables

import "github.com/oisee/z80core/ops"

// rotNames mirrors ops.rotShiftCalls in display order.
var rotNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

// CB is the 256-entry CB-prefix table: rotate/shift (0x00-0x3F), BIT
// (0x40-0x7F), RES (0x80-0xBF), SET (0xC0-0xFF), each crossed with
// the eight regOrder operands. Every slot has a working emitter; Z80
// lore treats even undefined CB sub-opcodes as real instructions, not
// terminators, so there's no "unimplemented" slot to leave nil here.
var CB [256]Opcode

func init() {
	for row := 0; row < 8; row++ {
		for operand := 0; operand < 8; operand++ {
			op := row*8 + operand
			reg := regOrder[operand]
			name := rotNames[row]
			if operand == 6 {
				CB[op] = Opcode{name + " (HL)", ops.ROT(row, "h", "l"), None}
				continue
			}
			CB[op] = Opcode{name + " " + reg, ops.ROT(row, reg), None}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for operand := 0; operand < 8; operand++ {
			reg := regOrder[operand]
			bitOp := 0x40 + bit*8 + operand
			resOp := 0x80 + bit*8 + operand
			setOp := 0xC0 + bit*8 + operand
			if operand == 6 {
				CB[bitOp] = Opcode{"BIT " + digit(bit) + ",(HL)", ops.BIT(bit, "h", "l"), None}
				CB[resOp] = Opcode{"RES " + digit(bit) + ",(HL)", ops.RES(bit, "h", "l"), None}
				CB[setOp] = Opcode{"SET " + digit(bit) + ",(HL)", ops.SET(bit, "h", "l"), None}
				continue
			}
			CB[bitOp] = Opcode{"BIT " + digit(bit) + "," + reg, ops.BIT(bit, reg), None}
			CB[resOp] = Opcode{"RES " + digit(bit) + "," + reg, ops.RES(bit, reg), None}
			CB[setOp] = Opcode{"SET " + digit(bit) + "," + reg, ops.SET(bit, reg), None}
		}
	}
}

// digit renders 0-7 without pulling in strconv for a single-character
// conversion used only while building table names.
func digit(n int) string { return string(rune('0' + n)) }
