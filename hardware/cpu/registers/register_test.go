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

package registers_test

import (
	"testing"

	"github.com/hexworth/gomos6502/hardware/cpu/registers"
	"github.com/hexworth/gomos6502/test"
)

func TestAdd(t *testing.T) {
	r := registers.NewRegister(0, "test")

	carry, overflow := r.Add(1, false)
	test.ExpectEquality(t, r.Value(), uint8(1))
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, overflow)

	// 0xff + 1 carries around to zero
	r.Load(0xff)
	carry, overflow = r.Add(1, false)
	test.ExpectEquality(t, r.Value(), uint8(0))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	// carry input is added to the result
	r.Load(0x10)
	carry, _ = r.Add(0x0f, true)
	test.ExpectEquality(t, r.Value(), uint8(0x20))
	test.ExpectFailure(t, carry)

	// two positive numbers whose sum is negative overflows
	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	// two negative numbers whose sum is positive overflows
	r.Load(0x80)
	carry, overflow = r.Add(0x80, false)
	test.ExpectEquality(t, r.Value(), uint8(0))
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)
}

func TestSubtract(t *testing.T) {
	r := registers.NewRegister(0x0b, "test")

	// carry set means no borrow
	carry, overflow := r.Subtract(3, true)
	test.ExpectEquality(t, r.Value(), uint8(0x08))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	// carry clear borrows one
	r.Load(0x0b)
	carry, _ = r.Subtract(3, false)
	test.ExpectEquality(t, r.Value(), uint8(0x07))
	test.ExpectSuccess(t, carry)

	// subtracting past zero clears carry
	r.Load(0x02)
	carry, _ = r.Subtract(3, true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectFailure(t, carry)

	// subtracting a negative number from a positive number can overflow
	r.Load(0x7f)
	_, overflow = r.Subtract(0xff, true)
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectSuccess(t, overflow)
}

func TestShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "test")

	carry := r.ASL()
	test.ExpectEquality(t, r.Value(), uint8(0x02))
	test.ExpectSuccess(t, carry)

	carry = r.LSR()
	test.ExpectEquality(t, r.Value(), uint8(0x01))
	test.ExpectFailure(t, carry)

	carry = r.LSR()
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectSuccess(t, carry)

	// rotates fold the carry flag back in
	r.Load(0x80)
	carry = r.ROL(true)
	test.ExpectEquality(t, r.Value(), uint8(0x01))
	test.ExpectSuccess(t, carry)

	r.Load(0x01)
	carry = r.ROR(true)
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectSuccess(t, carry)
}

func TestLogicalOperators(t *testing.T) {
	r := registers.NewRegister(0, "test")

	r.ORA(0xff)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	r.EOR(0xf0)
	test.ExpectEquality(t, r.Value(), uint8(0x0f))
	r.AND(0x01)
	test.ExpectEquality(t, r.Value(), uint8(0x01))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x1000)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(0x1002))

	// negative branch offset
	pc.AddOffset(0xfe)
	test.ExpectEquality(t, pc.Address(), uint16(0x1000))

	// positive branch offset
	pc.AddOffset(0x10)
	test.ExpectEquality(t, pc.Address(), uint16(0x1010))

	// program counter wraps around
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))

	sp.Load(0x00)
	test.ExpectEquality(t, sp.Address(), uint16(0x0100))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// unused bit is always set in the packed value
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr.Sign = true
	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), uint8(0xa1))
	test.ExpectEquality(t, sr.String(), "Sv-bdizC")

	// round trip through the packed representation
	var o registers.StatusRegister
	o.Load(sr.Value())
	test.ExpectEquality(t, o.Value(), sr.Value())

	// reset state: interrupts disabled, decimal mode off
	sr.Reset()
	test.ExpectSuccess(t, sr.InterruptDisable)
	test.ExpectFailure(t, sr.DecimalMode)
	test.ExpectEquality(t, sr.String(), "sv-bdIzc")
}
