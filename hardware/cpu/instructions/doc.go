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

// Package instructions defines the instruction set of the 6502 as data. Every
// instruction is described by an instance of the Definition type, collected
// into a single table indexed by opcode.
//
// Only the 151 documented opcodes have entries in the table. The CPU treats
// a nil entry as an illegal opcode and enters the jam state.
package instructions
