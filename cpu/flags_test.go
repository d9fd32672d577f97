package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFlagTables verifies the precomputed tables match expected values.
func TestFlagTables(t *testing.T) {
	assert.NotZero(t, Sz53Table[0]&FlagZero, "Sz53Table[0] should have Z flag")
	assert.NotZero(t, SZPTable[0]&FlagZero, "SZPTable[0] should have Z flag")
	assert.NotZero(t, Sz53Table[0x80]&FlagSign, "Sz53Table[0x80] should have S flag")
	assert.NotZero(t, ParityTable[0]&FlagParity, "ParityTable[0] should have P flag (even parity)")
	assert.Zero(t, ParityTable[1]&FlagParity, "ParityTable[1] should NOT have P flag (odd parity)")
	assert.NotZero(t, ParityTable[0xFF]&FlagParity, "ParityTable[0xFF] should have P flag")
}

func TestSpecFlagAliasesMatchBitPositions(t *testing.T) {
	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"F_CARRY", F_CARRY, 0x01},
		{"F_ZERO", F_ZERO, 0x40},
		{"F_PARITY", F_PARITY, 0x04},
		{"F_SIGN", F_SIGN, 0x80},
		{"F_HALFCARRY", F_HALFCARRY, 0x10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestHalfcarryAndOverflowTablesAreDistinctBits(t *testing.T) {
	for i, v := range HalfcarryAddTable {
		if v != 0 {
			assert.Equal(t, FlagHalfCarry, v, "index %d", i)
		}
	}
	for i, v := range OverflowAddTable {
		if v != 0 {
			assert.Equal(t, FlagOverflow, v, "index %d", i)
		}
	}
}
