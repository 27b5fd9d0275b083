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

// Package cpubus defines how the CPU sees memory. Any memory implementation
// that is to be connected to the CPU must implement the Memory interface.
//
// Reads are total. The full 64k address space is always readable and a read
// can never fail; unmapped or uninitialised addresses simply return whatever
// value the implementation stores there. Writes on the other hand can be
// refused, most notably when the target address falls inside a read-only
// region.
package cpubus

import "fmt"

// Memory defines the operations for the memory system when accessed from the
// CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8) error
}

// The hardware vectors of the 6502. Each is the address of the first of a two
// byte little-endian pointer.
const (
	NMI   uint16 = 0xfffa
	Reset uint16 = 0xfffc
	IRQ   uint16 = 0xfffe
)

// ROMViolationError is returned by Memory.Write() implementations when the
// target address falls inside the read-only region.
type ROMViolationError struct {
	Address uint16
}

func (e ROMViolationError) Error() string {
	return fmt.Sprintf("memory: write to read-only address (%#04x)", e.Address)
}
