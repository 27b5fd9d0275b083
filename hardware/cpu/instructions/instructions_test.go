// This file is part of Gomos6502.
//
// Gomos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gomos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gomos6502.  If not, see <https://www.gnu.org/licenses/>.

package instructions_test

import (
	"testing"

	"github.com/hexworth/gomos6502/hardware/cpu/instructions"
	"github.com/hexworth/gomos6502/test"
)

// the 6502 has exactly 151 documented opcodes. every defined entry must be
// stored at the index matching its opcode field
func TestTableCompleteness(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	documented := 0
	for i, defn := range defs {
		if defn == nil {
			continue
		}
		documented++
		test.ExpectEquality(t, int(defn.OpCode), i, "opcode %#02x", i)
		test.ExpectSuccess(t, defn.Bytes >= 1 && defn.Bytes <= 3, "opcode %#02x", i)
		test.ExpectSuccess(t, defn.Cycles >= 2 && defn.Cycles <= 7, "opcode %#02x", i)
	}

	test.ExpectEquality(t, documented, 151)
}

// bytes consumed must agree with the addressing mode
func TestTableBytes(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		var expected int
		switch defn.AddressingMode {
		case instructions.Implied:
			expected = 1
		case instructions.Absolute, instructions.Indirect:
			expected = 3
		case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
			expected = 3
		default:
			expected = 2
		}

		test.ExpectEquality(t, defn.Bytes, expected, "opcode %#02x", defn.OpCode)
	}
}

func TestTableSpotChecks(t *testing.T) {
	defs := instructions.GetDefinitions()

	// LDA immediate
	test.DemandSuccess(t, defs[0xa9] != nil)
	test.ExpectEquality(t, defs[0xa9].Operator, instructions.Lda)
	test.ExpectEquality(t, defs[0xa9].AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defs[0xa9].Mnemonic(), "LDA")

	// JMP indirect
	test.DemandSuccess(t, defs[0x6c] != nil)
	test.ExpectEquality(t, defs[0x6c].Operator, instructions.Jmp)
	test.ExpectEquality(t, defs[0x6c].AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defs[0x6c].Effect, instructions.Flow)

	// branches are identifiable
	test.DemandSuccess(t, defs[0xd0] != nil)
	test.ExpectSuccess(t, defs[0xd0].IsBranch())
	test.ExpectFailure(t, defs[0x4c].IsBranch())

	// stores never have the read effect
	for _, o := range []uint8{0x85, 0x95, 0x8d, 0x9d, 0x99, 0x81, 0x91, 0x86, 0x96, 0x8e, 0x84, 0x94, 0x8c} {
		test.DemandSuccess(t, defs[o] != nil)
		test.ExpectEquality(t, defs[o].Effect, instructions.Write, "opcode %#02x", o)
	}

	// a selection of undocumented opcodes
	for _, o := range []uint8{0x02, 0x3f, 0x80, 0xff} {
		test.ExpectSuccess(t, defs[o] == nil, "opcode %#02x", o)
	}
}
