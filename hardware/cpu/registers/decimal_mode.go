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

// the decimal functions return information about the zero and sign bits in
// addition to the carry and overflow. the cpu uses these values to set the
// status flags. this is different to binary addition/subtraction which only
// returns information for the carry and overflow flags.
//
// flag details are from "Flags on Decimal mode in the NMOS 6502" v1.0 by
// Jorge Cwik.

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds value to register as though both values are binary coded
// decimal representations. Returns new carry state, zero, overflow and sign
// bit information.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var zero, overflow, sign bool
	var ucarry, tcarry bool

	// binary addition of units and tens
	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits, ucarry = addDecimal(runits, vunits, carry)

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = addDecimal(rtens, vtens, ucarry)

	// from the Cwik document:
	//
	// "The Z flag is computed before performing any decimal adjust."
	zero = runits == 0x00 && rtens == 0x00

	// decimal correction for units
	if ucarry {
		runits -= 10
	}

	// from the Cwik document:
	//
	// "The N and V flags are computed after a decimal adjust of the low
	// nibble, but before adjusting the high nibble."
	//
	// not forgetting that the tens value has not been shifted into the upper
	// nibble yet
	//
	// the bit-2 test is the Cwik derivation of what the hardware produces.
	// it does not always agree with the binary sign-mismatch formula
	// (0x80 + 0x80 for instance)
	overflow = rtens&0x04 == 0x04
	sign = rtens&0x08 == 0x08

	// decimal correction for tens
	if tcarry {
		rtens -= 10
	}

	// pack units/tens nibbles into register
	r.value = (rtens << 4) | runits

	return tcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// binary coded decimal representations. Returns new carry state, zero,
// overflow and sign bit information.
//
// The flags of a decimal mode subtraction are those of the equivalent binary
// subtraction. Only the stored result is decimal adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	// binary subtraction on a copy of the register gives us all four flags
	bin := *r
	rcarry, overflow := bin.Subtract(val, carry)
	zero := bin.IsZero()
	sign := bin.IsNegative()

	// the carry flag is a borrow indicator during subtraction
	borrow := !carry

	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits -= vunits
	if borrow {
		runits--
	}
	uborrow := runits&0x80 == 0x80

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens -= vtens
	if uborrow {
		runits += 10
		rtens--
	}
	if rtens&0x80 == 0x80 {
		rtens += 10
	}

	// pack units/tens nibbles into register
	r.value = ((rtens & 0x0f) << 4) | (runits & 0x0f)

	return rcarry, zero, overflow, sign
}
