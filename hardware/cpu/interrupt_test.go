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
	"testing"

	rtest "github.com/hexworth/gomos6502/hardware/cpu/registers/assert"
	"github.com/hexworth/gomos6502/test"
)

func TestIRQ(t *testing.T) {
	mc, mem := startup()

	// IRQ vector -> $0600
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x06

	mem.putInstructions(0x0000,
		0x58, // CLI
		0xea, // NOP
		0xea, // NOP
	)
	mem.putInstructions(0x0600, 0x40) // RTI

	step(t, mc) // CLI
	mc.SignalIRQ()

	// the interrupt is serviced instead of the instruction at $0001
	step(t, mc)
	rtest.Assert(t, mc.PC, 0x0600)
	rtest.Assert(t, mc.SP, 0xfc)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// pushed status has the break flag clear and the interrupt disable flag
	// as it was before servicing
	test.ExpectEquality(t, mem.internal[0x01ff], uint8(0x00))
	test.ExpectEquality(t, mem.internal[0x01fe], uint8(0x01))
	test.ExpectEquality(t, mem.internal[0x01fd], uint8(0x20))

	step(t, mc) // RTI
	rtest.Assert(t, mc.PC, 0x0001)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
}

func TestIRQMasked(t *testing.T) {
	mc, mem := startup()
	mem.putInstructions(0x0000,
		0xea, // NOP
		0x58, // CLI
		0xea, // NOP
	)
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x06

	// the interrupt disable flag is set after reset; the line stays asserted
	// but is not serviced
	mc.SignalIRQ()
	step(t, mc) // NOP
	rtest.Assert(t, mc.PC, 0x0001)

	step(t, mc) // CLI

	// now the pending interrupt is serviced
	step(t, mc)
	rtest.Assert(t, mc.PC, 0x0600)
}

func TestNMI(t *testing.T) {
	mc, mem := startup()

	// NMI vector -> $0700
	mem.internal[0xfffa] = 0x00
	mem.internal[0xfffb] = 0x07

	mem.putInstructions(0x0000, 0xea) // NOP

	// NMI is serviced even with the interrupt disable flag set
	mc.SignalNMI()
	step(t, mc)
	rtest.Assert(t, mc.PC, 0x0700)
	rtest.Assert(t, mc.SP, 0xfc)
}

func TestNMIPriority(t *testing.T) {
	mc, mem := startup()

	mem.internal[0xfffa] = 0x00
	mem.internal[0xfffb] = 0x07
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x06

	mem.putInstructions(0x0000, 0x58) // CLI
	mem.putInstructions(0x0700, 0x40) // RTI
	step(t, mc)

	// with both lines asserted the non-maskable interrupt is serviced first
	mc.SignalIRQ()
	mc.SignalNMI()
	step(t, mc)
	rtest.Assert(t, mc.PC, 0x0700)

	// returning from the NMI handler restores the interrupt disable flag to
	// its pre-interrupt state; the still asserted maskable line is serviced
	// next
	step(t, mc) // RTI
	step(t, mc)
	rtest.Assert(t, mc.PC, 0x0600)
}
