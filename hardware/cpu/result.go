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

package cpu

import (
	"fmt"

	"github.com/hexworth/gomos6502/hardware/cpu/instructions"
)

// Result records the instruction most recently executed by the CPU. It is
// reset at the start of every Step() and is valid once Step() has returned.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// instruction definition for the opcode. nil if the CPU has only just
	// been reset or if decoding failed
	Defn *instructions.Definition

	// the operand bytes of the instruction, if any
	InstructionData uint16

	// whether a branch instruction took its branch
	BranchSuccess bool
}

// Reset the result in preparation for the next instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.BranchSuccess = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("0x%04x ???", r.Address)
	}

	operand := ""
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf(" ($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf(" ($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf(" ($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf(" $%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf(" $%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf(" $%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf(" $%02x,Y", r.InstructionData)
	}

	return fmt.Sprintf("0x%04x %s%s", r.Address, r.Defn.Mnemonic(), operand)
}
