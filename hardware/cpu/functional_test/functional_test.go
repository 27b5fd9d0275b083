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

package functional_test

import (
	"os"
	"testing"

	"github.com/hexworth/gomos6502/hardware/cpu"
	"github.com/hexworth/gomos6502/hardware/memory"
	"github.com/hexworth/gomos6502/test"
)

// these addresses are specific to the functional test binary
var programOrigin = uint16(0x0400)
var loadAddress = uint16(0x000a)
var successAddress = uint16(0x347d)

// loadBinary finds the functional test binary. the test is skipped if it is
// not present.
func loadBinary(t *testing.T) []byte {
	t.Helper()

	path := os.Getenv("GOMOS6502_FUNCTIONAL_TEST")
	if path == "" {
		path = "testdata/6502_functional_test.bin"
	}

	d, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("functional test binary not available (%s)", path)
	}
	return d
}

func TestFunctional(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	mem := memory.NewRomRam(0xffff)
	mem.Load(loadAddress, loadBinary(t))
	mem.SetResetVector(programOrigin)

	mc := cpu.NewCPU(mem)

	// the test suite deliberately exercises stack wraparound
	mc.AllowStackWraparound = true

	mc.Reset()

	for {
		addr := mc.PC.Address()

		if err := mc.Step(); err != nil {
			t.Fatalf("%s: %s", mc.LastResult.String(), err.Error())
		}

		// reaching the successAddress means that all tests have completed
		if mc.PC.Address() == successAddress {
			break
		}

		// "Loop on program counter determines error or successful completion
		// of test"
		if mc.PC.Address() == addr {
			t.Fatalf("functional test trap at %#04x (%s)", addr, mc.String())
		}
	}

	test.ExpectEquality(t, mc.PC.Address(), successAddress)
}
