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
	"errors"
	"fmt"
)

// Sentinel errors for the stack faults. With stack wraparound disabled, a
// push when the stack pointer is already at the bottom of the stack page is
// an overflow; a pull when the pointer is already at the top is an underflow.
var (
	StackOverflow  = errors.New("cpu: stack overflow")
	StackUnderflow = errors.New("cpu: stack underflow")
)

// IllegalOpcodeError is returned by Step() when the fetched opcode has no
// entry in the instruction table. The CPU is jammed until the next Reset().
type IllegalOpcodeError struct {
	OpCode  uint8
	Address uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode (0x%02x) at (0x%04x)", e.OpCode, e.Address)
}
