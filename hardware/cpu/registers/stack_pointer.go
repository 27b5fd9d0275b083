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

package registers

import "fmt"

// StackPointer is the special purpose register that keeps track of the
// hardware stack. The stack always occupies page one of the address space so
// the pointer itself only needs to be 8 bits wide.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: NewRegister(val, "SP"),
	}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=0x%02x", sp.Value())
}

// Address returns the location in the stack page that the pointer currently
// points to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}
