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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/hexworth/gomos6502/hardware/cpu"
	rtest "github.com/hexworth/gomos6502/hardware/cpu/registers/assert"
	"github.com/hexworth/gomos6502/hardware/memory"
	"github.com/hexworth/gomos6502/hardware/memory/cpubus"
	"github.com/hexworth/gomos6502/test"
)

func TestIllegalOpcode(t *testing.T) {
	mc, mem := startup()
	mem.putInstructions(0x0000,
		0xa9, 0x55, // LDA #$55
		0x02, // illegal
	)

	step(t, mc) // LDA #$55

	err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, mc.Halted())

	var ill cpu.IllegalOpcodeError
	test.DemandSuccess(t, errors.As(err, &ill))
	test.ExpectEquality(t, ill.OpCode, uint8(0x02))
	test.ExpectEquality(t, ill.Address, uint16(0x0002))

	// the faulting fetch is rolled back. the PC points at the illegal opcode
	// and the registers are as they were
	rtest.Assert(t, mc.PC, 0x0002)
	rtest.Assert(t, mc.A, 0x55)
}

func TestFaultIsSticky(t *testing.T) {
	mc, mem := startup()
	mem.putInstructions(0x0000, 0x02) // illegal

	first := mc.Step()
	test.ExpectFailure(t, first)

	// repeated steps return the same fault and change nothing
	for i := 0; i < 3; i++ {
		err := mc.Step()
		test.ExpectErrorIs(t, err, mc.Fault())
		test.ExpectEquality(t, err, first)
		rtest.Assert(t, mc.PC, 0x0000)
	}

	// only Reset() clears the fault
	mc.Reset()
	test.ExpectEquality(t, mc.Halted(), false)
	test.ExpectSuccess(t, mc.Fault() == nil)
}

func TestStackOverflow(t *testing.T) {
	mc, mem := startup()
	mem.putInstructions(0x0000,
		0xa2, 0x00, // LDX #$00
		0x9a,       // TXS
		0xa9, 0xaa, // LDA #$aa
		0x48, // PHA
	)

	step(t, mc) // LDX #$00
	step(t, mc) // TXS
	step(t, mc) // LDA #$aa

	err := mc.Step() // PHA with SP at the bottom of the stack page
	test.ExpectErrorIs(t, err, cpu.StackOverflow)

	// the boundary check happens before anything is mutated
	rtest.Assert(t, mc.SP, 0x00)
	test.ExpectEquality(t, mem.internal[0x0100], uint8(0x00))

	// the register snapshot taken when the fault occurred survives Reset(),
	// apart from the registers the reset sequence itself assigns
	mc.Reset()
	rtest.Assert(t, mc.A, 0xaa)
	rtest.Assert(t, mc.SP, 0xff)
}

func TestStackUnderflow(t *testing.T) {
	mc, mem := startup()
	mem.putInstructions(0x0000, 0x68) // PLA with SP at the top of the stack page

	err := mc.Step()
	test.ExpectErrorIs(t, err, cpu.StackUnderflow)
	rtest.Assert(t, mc.SP, 0xff)
}

func TestStackWraparound(t *testing.T) {
	mc, mem := startup()
	mc.AllowStackWraparound = true

	mem.putInstructions(0x0000,
		0xa2, 0x00, // LDX #$00
		0x9a,       // TXS
		0xa9, 0xaa, // LDA #$aa
		0x48, // PHA
		0x68, // PLA
	)

	step(t, mc) // LDX #$00
	step(t, mc) // TXS
	step(t, mc) // LDA #$aa

	step(t, mc) // PHA wraps the pointer to the top of the page
	rtest.Assert(t, mc.SP, 0xff)
	test.ExpectEquality(t, mem.internal[0x0100], uint8(0xaa))

	step(t, mc) // PLA wraps it back
	rtest.Assert(t, mc.SP, 0x00)
	rtest.Assert(t, mc.A, 0xaa)
}

func TestROMViolation(t *testing.T) {
	mem := memory.NewRomRam(0x8000)
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Poke(0x0000, 0xa9) // LDA #$ff
	mem.Poke(0x0001, 0xff)
	mem.Poke(0x0002, 0x8d) // STA $8000
	mem.Poke(0x0003, 0x00)
	mem.Poke(0x0004, 0x80)

	step(t, mc) // LDA #$ff

	err := mc.Step() // STA $8000
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, mc.Halted())

	var rve cpubus.ROMViolationError
	test.DemandSuccess(t, errors.As(err, &rve))
	test.ExpectEquality(t, rve.Address, uint16(0x8000))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x00))
}
