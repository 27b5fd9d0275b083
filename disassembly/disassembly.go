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

// Package disassembly is a linear disassembler for the 6502. Every byte in
// the requested range is treated as the potential start of an instruction;
// once an instruction has been decoded the disassembly continues after its
// operand. There is no attempt to follow the flow of the program, so data
// bytes interleaved with code will produce junk entries. Bytes that decode
// to no documented instruction are emitted as .byte directives.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/hexworth/gomos6502/hardware/cpu/instructions"
	"github.com/hexworth/gomos6502/hardware/memory/cpubus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16

	// nil if the byte at Address is not a documented opcode
	Defn *instructions.Definition

	// the operand bytes assembled into a single value. zero if the
	// instruction has no operand
	Operand uint16

	// the raw bytes of the instruction, opcode included
	Bytes []uint8
}

// String returns the disassembled instruction in the standard 6502 assembly
// format.
func (e Entry) String() string {
	if e.Defn == nil {
		return fmt.Sprintf(".byte $%02x", e.Bytes[0])
	}

	operand := ""
	switch e.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", e.Operand)
	case instructions.Relative:
		// relative operands are resolved to the branch target
		target := e.Address + 2
		if e.Operand&0x80 == 0x80 {
			target += e.Operand | 0xff00
		} else {
			target += e.Operand
		}
		operand = fmt.Sprintf(" $%04x", target)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", e.Operand)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", e.Operand)
	case instructions.Indirect:
		operand = fmt.Sprintf(" ($%04x)", e.Operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf(" ($%02x,X)", e.Operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf(" ($%02x),Y", e.Operand)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf(" $%04x,X", e.Operand)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf(" $%04x,Y", e.Operand)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf(" $%02x,X", e.Operand)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf(" $%02x,Y", e.Operand)
	}

	return fmt.Sprintf("%s%s", e.Defn.Mnemonic(), operand)
}

// Decode the instruction at address. The returned address is the address of
// the next instruction, which wraps at the top of memory.
func Decode(mem cpubus.Memory, address uint16) (Entry, uint16) {
	e := Entry{Address: address}

	opcode := mem.Read(address)
	e.Bytes = append(e.Bytes, opcode)

	e.Defn = instructions.GetDefinitions()[opcode]
	if e.Defn == nil {
		return e, address + 1
	}

	for i := 1; i < e.Defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, mem.Read(address+uint16(i)))
	}

	switch len(e.Bytes) {
	case 2:
		e.Operand = uint16(e.Bytes[1])
	case 3:
		e.Operand = (uint16(e.Bytes[2]) << 8) | uint16(e.Bytes[1])
	}

	return e, address + uint16(e.Defn.Bytes)
}

// Write a disassembly of the address range [from, to] to the io.Writer. The
// range is inclusive at both ends.
func Write(output io.Writer, mem cpubus.Memory, from uint16, to uint16) error {
	address := from
	for {
		e, next := Decode(mem, address)

		raw := strings.Builder{}
		for _, b := range e.Bytes {
			raw.WriteString(fmt.Sprintf("%02x ", b))
		}

		_, err := fmt.Fprintf(output, "$%04x  %-9s %s\n", e.Address, strings.TrimSpace(raw.String()), e.String())
		if err != nil {
			return err
		}

		// the decode address wraps at the top of memory, which also ends the
		// disassembly
		if next > to || next < address {
			return nil
		}
		address = next
	}
}
