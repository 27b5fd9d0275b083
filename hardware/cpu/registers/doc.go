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

// Package registers implements the register file of the 6502. The registers
// do not self-regulate and all logic that joins the registers together (the
// flag changes that follow an arithmetic operation, for instance) is handled
// by the cpu package.
//
// Decimal mode addition and subtraction is implemented by the register types
// directly, including the peculiar flag behaviour described in "Flags on
// Decimal mode in the NMOS 6502" by Jorge Cwik.
package registers
