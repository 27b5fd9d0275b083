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

// Package cpu implements the instruction level semantics of the 6502. It is
// not cycle accurate: Step() executes a whole instruction (or services a
// whole interrupt) per call and the caller is expected to pace execution if
// real time behaviour is wanted. The Cycles field in the instruction
// definition records what the instruction would cost on real silicon and can
// be used for that pacing.
//
// Memory is abstracted by the cpubus.Memory interface. Reads are total;
// writes can fail, which the CPU treats as a fault.
//
// The CPU is strict about error states. An illegal opcode, a stack boundary
// violation or a write to read only memory halts the CPU with a fault which
// Step() returns on every subsequent call. Only Reset() clears a fault. This
// is deliberately unlike real hardware, where an errant program would be
// free to corrupt whatever it liked: the emulator is intended for running
// and validating 6502 programs and treats these conditions as bugs to be
// surfaced, not quirks to be emulated. Stack wraparound can be restored with
// the AllowStackWraparound field for programs (and test suites) that
// legitimately exercise it.
package cpu
