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

// Package memory implements the flat 64k address space presented to the CPU.
// The address space is split into a writable RAM area and a read-only ROM
// area by a single boundary address.
package memory

import (
	"fmt"

	"github.com/hexworth/gomos6502/hardware/memory/cpubus"
)

// MaxMemorySize is the number of addressable bytes.
const MaxMemorySize = 0x10000

// RomRam is a 64k memory image. Addresses from RomStart upwards are treated
// as read-only; writes to those addresses through the cpubus interface return
// a ROMViolationError.
type RomRam struct {
	cells [MaxMemorySize]uint8

	// addresses >= RomStart refuse writes. the default of 0xffff leaves
	// almost the entire address space writable
	RomStart uint16
}

// NewRomRam is the preferred method of initialisation for RomRam.
func NewRomRam(romStart uint16) *RomRam {
	return &RomRam{
		RomStart: romStart,
	}
}

func (mem *RomRam) String() string {
	return fmt.Sprintf("64k ram, rom from 0x%04x", mem.RomStart)
}

// Read implements the cpubus.Memory interface. Reads are total and never
// fail.
func (mem *RomRam) Read(address uint16) uint8 {
	return mem.cells[address]
}

// Write implements the cpubus.Memory interface.
func (mem *RomRam) Write(address uint16, data uint8) error {
	if address >= mem.RomStart {
		return cpubus.ROMViolationError{Address: address}
	}
	mem.cells[address] = data
	return nil
}

// Peek reads a memory address without any of the semantics of the cpubus
// interface. Used by the disassembler and the debugger.
func (mem *RomRam) Peek(address uint16) uint8 {
	return mem.cells[address]
}

// Poke writes directly to memory, bypassing the ROM write check. Used when
// seeding memory with a program image and by the debugger.
func (mem *RomRam) Poke(address uint16, data uint8) {
	mem.cells[address] = data
}

// Load copies data into memory starting at origin, bypassing the ROM write
// check. Data that would extend past the top of memory is truncated.
func (mem *RomRam) Load(origin uint16, data []byte) {
	copy(mem.cells[origin:], data)
}

// SetResetVector points the hardware reset vector at the supplied address.
func (mem *RomRam) SetResetVector(address uint16) {
	mem.cells[cpubus.Reset] = uint8(address)
	mem.cells[cpubus.Reset+1] = uint8(address >> 8)
}
