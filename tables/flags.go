package tables

import "github.com/oisee/z80core/cpu"

// Flag-mask aliases local to table construction, short enough to read
// cleanly inline in the condition tables below.
const (
	fZero   = cpu.F_ZERO
	fCarry  = cpu.F_CARRY
	fParity = cpu.F_PARITY
	fSign   = cpu.F_SIGN
)
