// Package cpu holds the Z80 flag constants and precomputed flag
// tables the opcode combinators reference by name when they build IR.
// The tables themselves are host-runtime data (computed once here,
// shared with the CPU module out of scope for this repository); the
// IR they are embedded into always addresses them through
// ir.Identifier("SZP_TABLE") rather than evaluating them at decode
// time, except where the source collapses to a literal (XOR A).
package cpu

// Z80 flag bit positions in the F register. The undocumented bits 3/5
// and the subtract flag are carried along because the
// half-carry/overflow/parity machinery below needs them.
const (
	FlagCarry     uint8 = 0x01
	FlagSubtract  uint8 = 0x02
	FlagParity    uint8 = 0x04
	FlagOverflow        = FlagParity // same bit as parity
	FlagUndoc3    uint8 = 0x08
	FlagHalfCarry uint8 = 0x10
	FlagUndoc5    uint8 = 0x20
	FlagZero      uint8 = 0x40
	FlagSign      uint8 = 0x80
)

// Aliases for the flags the opcode combinators embed into emitted IR
// as Literal values.
const (
	F_CARRY     = FlagCarry
	F_ZERO      = FlagZero
	F_PARITY    = FlagParity
	F_SIGN      = FlagSign
	F_HALFCARRY = FlagHalfCarry
)

// Precomputed flag tables, ported from remogatto/z80 by way of the
// teacher's superoptimizer (pkg/cpu/flags.go).
var (
	// Sz53Table holds the S, Z, 5, 3 flags for each byte value.
	Sz53Table [256]uint8
	// SZPTable is Sz53Table with the parity flag folded in.
	SZPTable [256]uint8
	// ParityTable holds the parity flag for each byte value.
	ParityTable [256]uint8

	// HalfcarryAddTable and HalfcarrySubTable are indexed by bits 3 of
	// {result, arg1, arg2} for 8-bit ops, or bits 11/15 for 16-bit
	// ADC/SBC HL.
	HalfcarryAddTable = [8]uint8{0, FlagHalfCarry, FlagHalfCarry, FlagHalfCarry, 0, 0, 0, FlagHalfCarry}
	HalfcarrySubTable = [8]uint8{0, 0, FlagHalfCarry, 0, FlagHalfCarry, 0, FlagHalfCarry, FlagHalfCarry}
	OverflowAddTable  = [8]uint8{0, 0, 0, FlagOverflow, FlagOverflow, 0, 0, 0}
	OverflowSubTable  = [8]uint8{0, FlagOverflow, 0, 0, 0, 0, FlagOverflow, 0}
)

func init() {
	for i := 0; i < 256; i++ {
		Sz53Table[i] = uint8(i) & (FlagUndoc3 | FlagUndoc5 | FlagSign)

		j := uint8(i)
		parity := uint8(0)
		for k := 0; k < 8; k++ {
			parity ^= j & 1
			j >>= 1
		}
		if parity == 0 {
			ParityTable[i] = FlagParity
		}
		SZPTable[i] = Sz53Table[i] | ParityTable[i]
	}
	Sz53Table[0] |= FlagZero
	SZPTable[0] |= FlagZero
}
