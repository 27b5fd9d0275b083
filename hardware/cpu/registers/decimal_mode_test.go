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

func toBCD(v uint8) uint8 {
	return ((v / 10) << 4) | (v % 10)
}

func fromBCD(v uint8) uint8 {
	return (v>>4)*10 + (v & 0x0f)
}

// exhaustive comparison of AddDecimal() against a plain base 10 addition for
// every valid pair of BCD operands
func TestAddDecimal(t *testing.T) {
	for a := uint8(0); a < 100; a++ {
		for b := uint8(0); b < 100; b++ {
			for _, carry := range []bool{false, true} {
				r := registers.NewRegister(toBCD(a), "A")
				rcarry, _, _, _ := r.AddDecimal(toBCD(b), carry)

				expected := int(a) + int(b)
				if carry {
					expected++
				}

				test.ExpectEquality(t, fromBCD(r.Value()), uint8(expected%100),
					"decimal %d + %d (carry %v)", a, b, carry)
				test.ExpectEquality(t, rcarry, expected > 99,
					"decimal carry %d + %d (carry %v)", a, b, carry)
			}
		}
	}
}

// exhaustive comparison of SubtractDecimal() against a plain base 10
// subtraction for every valid pair of BCD operands
func TestSubtractDecimal(t *testing.T) {
	for a := uint8(0); a < 100; a++ {
		for b := uint8(0); b < 100; b++ {
			for _, carry := range []bool{false, true} {
				r := registers.NewRegister(toBCD(a), "A")
				rcarry, _, _, _ := r.SubtractDecimal(toBCD(b), carry)

				expected := int(a) - int(b)
				if !carry {
					expected--
				}
				borrowed := expected < 0
				if borrowed {
					expected += 100
				}

				test.ExpectEquality(t, fromBCD(r.Value()), uint8(expected),
					"decimal %d - %d (carry %v)", a, b, carry)
				test.ExpectEquality(t, rcarry, !borrowed,
					"decimal borrow %d - %d (carry %v)", a, b, carry)
			}
		}
	}
}

// specific flag examples from the Cwik document
func TestAddDecimalFlags(t *testing.T) {
	// 0x99 + 0x01 = 0x00 with carry set and the zero flag unset. the zero
	// flag reflects the uncorrected binary result
	r := registers.NewRegister(0x99, "A")
	carry, zero, _, _ := r.AddDecimal(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, zero)

	// 0x00 + 0x00 is zero in any base
	r.Load(0x00)
	carry, zero, _, _ = r.AddDecimal(0x00, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, zero)

	// the overflow flag follows the Cwik bit-2 rule, which disagrees with
	// the binary sign-mismatch formula for some operands. 0x80 + 0x80
	// overflows a binary addition but the hardware reports no overflow
	r.Load(0x80)
	_, _, overflow, _ := r.AddDecimal(0x80, false)
	test.ExpectFailure(t, overflow)
}

func TestSubtractDecimalFlags(t *testing.T) {
	// decimal subtraction flags follow the binary subtraction
	r := registers.NewRegister(0x00, "A")
	carry, zero, _, sign := r.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r.Value(), uint8(0x99))
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, zero)
	test.ExpectSuccess(t, sign)

	r.Load(0x42)
	carry, zero, _, sign = r.SubtractDecimal(0x42, true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, zero)
	test.ExpectFailure(t, sign)
}
