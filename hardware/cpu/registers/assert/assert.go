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

// Package assert helps test the state of the CPU registers. The status
// register can be asserted against a string of the form returned by the
// StatusRegister String() function, eg. "sv-bdiZC". Upper-case means the flag
// is expected to be set, lower-case means unset.
package assert

import (
	"reflect"
	"testing"

	"github.com/hexworth/gomos6502/hardware/cpu/registers"
)

// Assert is used to test equality between a register and a literal value.
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Errorf("assert failed (unknown register type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert %s failed (%#02x - wanted %#02x)", r.Label(), r.Value(), x)
			}
		}

	case registers.StackPointer:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert SP failed (%#02x - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert PC failed (%#04x - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert SR failed (%#02x - wanted %#02x)", r.Value(), x)
			}

		case string:
			if len(x) != 8 {
				t.Fatalf("assert SR failed (status flags must be an integer or a string of 8 chars)")
			}
			if r.String() != x {
				t.Errorf("assert SR failed (%s - wanted %s)", r.String(), x)
			}
		}
	}
}
