// Package decode drives the opcode tables to turn a byte slice into a
// sequence of decoded instructions, each carrying the IR its table
// entry's emitter produced. It is a thin loop: all instruction
// semantics live in ops and tables, never here.
package decode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oisee/z80core/ir"
	"github.com/oisee/z80core/tables"
)

// Instruction is one decoded opcode: its address, display name, and
// the IR statements its emitter produced.
type Instruction struct {
	PC   uint16
	Name string
	IR   []ir.Stmt
}

// TerminatedBy records why Block stopped decoding.
type TerminatedBy string

const (
	// TerminatedByRange means the decoder reached the end of rom
	// cleanly, with no instruction left incomplete.
	TerminatedByRange TerminatedBy = "range"
	// TerminatedByRet means the block ended on an unconditional RET,
	// RETN, or RETI. Only an instruction whose IR ends in a
	// ReturnStatement ends a block; JR never does, even unconditional.
	TerminatedByRet TerminatedBy = "ret"
	// TerminatedByJP means the block ended on an unconditional JP
	// (including "JP (HL)"/"JP (IX)"/"JP (IY)").
	TerminatedByJP TerminatedBy = "jp"
	// TerminatedByCall means the block ended on an unconditional CALL.
	TerminatedByCall TerminatedBy = "call"
	// TerminatedByRst means the block ended on an RST.
	TerminatedByRst TerminatedBy = "rst"
	// TerminatedByHalt means the last decoded instruction was HALT.
	TerminatedByHalt TerminatedBy = "halt"
	// TerminatedByUndecodable means the block ended because the next
	// opcode's table entry has no emitter.
	TerminatedByUndecodable TerminatedBy = "undecodable"
)

// Result is what Block returns on success.
type Result struct {
	Instructions []Instruction
	TerminatedBy TerminatedBy
	EndPC        uint16
}

// ErrUndecodableOpcode is returned when a table entry has no emitter:
// a genuine decode terminator, not an error in the input.
type ErrUndecodableOpcode struct {
	PC    uint16
	Bytes []byte
}

func (e *ErrUndecodableOpcode) Error() string {
	return fmt.Sprintf("decode: undecodable opcode %X at PC=0x%04X", e.Bytes, e.PC)
}

// ErrTruncatedOperand is returned when an instruction's declared
// operand runs past the end of rom.
type ErrTruncatedOperand struct {
	PC   uint16
	Need int
	Have int
}

func (e *ErrTruncatedOperand) Error() string {
	return fmt.Sprintf("decode: truncated operand at PC=0x%04X: need %d bytes, have %d", e.PC, e.Need, e.Have)
}

var log = logrus.WithField("component", "decode")

// Block decodes instructions starting at startPC within rom until it
// hits an unconditional control transfer, HALT, an undecodable
// opcode, a truncated operand, or the end of rom.
func Block(rom []byte, startPC uint16) (Result, error) {
	var result Result
	pc := startPC

	for {
		if int(pc) >= len(rom) {
			result.TerminatedBy = TerminatedByRange
			result.EndPC = pc
			return result, nil
		}

		instrPC := pc
		entry, consumed, err := lookup(rom, pc)
		if err != nil {
			result.EndPC = instrPC
			log.WithError(err).Warn("truncated opcode")
			return result, err
		}
		pc += uint16(consumed)

		if entry.Ast == nil {
			result.TerminatedBy = TerminatedByUndecodable
			result.EndPC = pc
			err := errors.WithStack(&ErrUndecodableOpcode{PC: instrPC, Bytes: rom[instrPC:pc]})
			log.WithError(err).Warn("undecodable opcode")
			return result, err
		}

		value, advance, err := readOperand(rom, pc, entry.Operand)
		if err != nil {
			result.EndPC = pc
			log.WithError(err).Warn("truncated operand")
			return result, errors.Wrapf(err, "reading operand for opcode at PC=0x%04X", instrPC)
		}
		pc += uint16(advance)

		target := branchTarget(entry.Operand, value, pc)
		stmts := entry.Ast(value, target, int32(instrPC))

		log.WithFields(logrus.Fields{
			"pc":   instrPC,
			"name": entry.Name,
		}).Debug("decoded instruction")

		result.Instructions = append(result.Instructions, Instruction{PC: instrPC, Name: entry.Name, IR: stmts})

		if entry.Name == "HALT" {
			result.TerminatedBy = TerminatedByHalt
			result.EndPC = pc
			return result, nil
		}
		if endsBlock(stmts) {
			result.TerminatedBy = terminationReason(entry.Name)
			result.EndPC = pc
			return result, nil
		}
	}
}

// branchTarget computes the absolute target for a relative (INT8)
// operand: the displacement is relative to the address of the byte
// immediately after the full instruction, which is exactly pcAfter
// since it's computed post-operand-read.
func branchTarget(kind tables.Operand, value int32, pcAfter uint16) int32 {
	if kind != tables.INT8 {
		return value
	}
	return int32(pcAfter) + value
}

// endsBlock reports whether the last statement in stmts is a
// ReturnStatement, meaning control definitely leaves this block.
func endsBlock(stmts []ir.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	switch stmts[len(stmts)-1].(type) {
	case *ir.ReturnStatement:
		return true
	case *ir.IfStatement:
		return false
	default:
		return false
	}
}

// terminationReason classifies a block-ending instruction by its
// mnemonic. Only called when endsBlock(stmts) is true, which (HALT
// aside, handled separately) only happens for unconditional RET,
// RETN, RETI, JP, CALL, and RST — every table entry named one of
// those prefixes.
func terminationReason(name string) TerminatedBy {
	switch {
	case strings.HasPrefix(name, "RET"):
		return TerminatedByRet
	case strings.HasPrefix(name, "JP"):
		return TerminatedByJP
	case strings.HasPrefix(name, "CALL"):
		return TerminatedByCall
	case strings.HasPrefix(name, "RST"):
		return TerminatedByRst
	default:
		panic(fmt.Sprintf("decode: %q ends a block but isn't a recognized terminator mnemonic", name))
	}
}

// lookup resolves the opcode at pc to a table entry, handling the
// CB/DD/ED/FD prefix bytes and the DDCB/FDCB double-prefix case.
// Returns the entry and the number of opcode bytes consumed (not
// counting any trailing operand).
func lookup(rom []byte, pc uint16) (tables.Opcode, int, error) {
	if int(pc) >= len(rom) {
		return tables.Opcode{}, 0, errors.WithStack(&ErrTruncatedOperand{PC: pc, Need: 1, Have: 0})
	}
	b0 := rom[pc]

	switch b0 {
	case 0xCB:
		if int(pc)+1 >= len(rom) {
			return tables.Opcode{}, 0, errors.WithStack(&ErrTruncatedOperand{PC: pc, Need: 2, Have: len(rom) - int(pc)})
		}
		return tables.CB[rom[pc+1]], 2, nil

	case 0xED:
		if int(pc)+1 >= len(rom) {
			return tables.Opcode{}, 0, errors.WithStack(&ErrTruncatedOperand{PC: pc, Need: 2, Have: len(rom) - int(pc)})
		}
		return tables.ED[rom[pc+1]], 2, nil

	case 0xDD, 0xFD:
		// Each DD/FD byte consumes one tick, but only the last prefix
		// before the real opcode byte applies: walk past any repeated
		// prefix bytes, keeping only the final one.
		lastPrefix := b0
		var offset uint16 = 1
		for int(pc)+int(offset) < len(rom) {
			next := rom[pc+offset]
			if next != 0xDD && next != 0xFD {
				break
			}
			lastPrefix = next
			offset++
		}
		if int(pc)+int(offset) >= len(rom) {
			return tables.Opcode{}, 0, errors.WithStack(&ErrTruncatedOperand{PC: pc, Need: int(offset) + 1, Have: len(rom) - int(pc)})
		}

		indexTable, cbTable := tables.IX, tables.IXCB
		if lastPrefix == 0xFD {
			indexTable, cbTable = tables.IY, tables.IYCB
		}
		b1 := rom[pc+offset]
		if b1 == 0xCB {
			// DDCB/FDCB: displacement precedes the sub-opcode byte and
			// is consumed here, not via the entry's declared Operand.
			if int(pc)+int(offset)+2 >= len(rom) {
				return tables.Opcode{}, 0, errors.WithStack(&ErrTruncatedOperand{PC: pc, Need: int(offset) + 3, Have: len(rom) - int(pc)})
			}
			d := rom[pc+offset+1]
			sub := rom[pc+offset+2]
			entry := cbTable[sub]
			return displacementPreboundEntry(entry, d), int(offset) + 3, nil
		}
		entry := indexTable[b1]
		if entry.Ast == nil {
			// Prefix had no effect on this byte; fall back to Main,
			// consuming the prefix byte(s) as a no-op and re-decoding
			// b1 as an ordinary opcode.
			mainEntry := tables.Main[b1]
			return mainEntry, int(offset) + 1, nil
		}
		return entry, int(offset) + 1, nil

	default:
		return tables.Main[b0], 1, nil
	}
}

// displacementPreboundEntry wraps entry so its emitter ignores
// whatever the caller passes as value and always uses d, matching the
// DDCB/FDCB convention documented on ops.ROT_X.
func displacementPreboundEntry(entry tables.Opcode, d byte) tables.Opcode {
	if entry.Ast == nil {
		return entry
	}
	ast := entry.Ast
	bound := func(value, target, currentPC int32) []ir.Stmt {
		return ast(int32(d), target, currentPC)
	}
	return tables.Opcode{Name: entry.Name, Ast: bound, Operand: entry.Operand}
}

// readOperand consumes the trailing bytes an Operand kind declares,
// starting at pc, and returns the decoded value plus how many bytes
// were consumed.
func readOperand(rom []byte, pc uint16, kind tables.Operand) (int32, int, error) {
	switch kind {
	case tables.None:
		return 0, 0, nil
	case tables.UINT8:
		if int(pc) >= len(rom) {
			return 0, 0, &ErrTruncatedOperand{PC: pc, Need: 1, Have: len(rom) - int(pc)}
		}
		return int32(rom[pc]), 1, nil
	case tables.INT8:
		if int(pc) >= len(rom) {
			return 0, 0, &ErrTruncatedOperand{PC: pc, Need: 1, Have: len(rom) - int(pc)}
		}
		return int32(int8(rom[pc])), 1, nil
	case tables.UINT16:
		if int(pc)+1 >= len(rom) {
			return 0, 0, &ErrTruncatedOperand{PC: pc, Need: 2, Have: len(rom) - int(pc)}
		}
		return int32(rom[pc]) | int32(rom[pc+1])<<8, 2, nil
	default:
		return 0, 0, errors.Errorf("decode: unknown operand kind %d", kind)
	}
}
