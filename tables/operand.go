// Package tables holds the six byte-indexed opcode tables the decoder
// consults: the unprefixed table, the CB- and ED-prefixed tables, and
// the DD/FD (index register) tables together with their DDCB/FDCB
// sub-tables. Each entry names an instruction and, where implemented,
// the pending emitter that builds its IR.
package tables

import "github.com/oisee/z80core/ops"

// Operand tags how many trailing bytes, if any, a table entry reads
// after its opcode byte, and how decode.Block should interpret them
// before invoking the entry's emitter.
type Operand int

const (
	// None: the instruction is fully determined by its opcode byte(s).
	None Operand = iota
	// UINT8: one unsigned byte follows (immediate, port, or an index
	// displacement).
	UINT8
	// INT8: one byte follows, read signed (JR/DJNZ displacement).
	INT8
	// UINT16: two bytes follow, read little-endian (also the packed
	// d-then-n operand of the indexed store; see LD_X_N).
	UINT16
)

// Opcode describes one table slot. Ast is nil for an entry the
// decoder cannot yet emit IR for (a decode terminator); Name is never
// empty, even for those entries.
type Opcode struct {
	Name    string
	Ast     ops.Emitter
	Operand Operand
}
