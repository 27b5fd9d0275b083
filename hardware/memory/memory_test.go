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

package memory_test

import (
	"errors"
	"testing"

	"github.com/hexworth/gomos6502/hardware/memory"
	"github.com/hexworth/gomos6502/hardware/memory/cpubus"
	"github.com/hexworth/gomos6502/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewRomRam(0xffff)

	test.ExpectSuccess(t, mem.Write(0x1234, 0xab))
	test.ExpectEquality(t, mem.Read(0x1234), uint8(0xab))

	// uninitialised memory reads as zero. reads never fail
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x00))
}

func TestROMBoundary(t *testing.T) {
	mem := memory.NewRomRam(0x8000)

	// one byte below the boundary is writable
	test.ExpectSuccess(t, mem.Write(0x7fff, 0x01))

	// the boundary itself and everything above is not
	err := mem.Write(0x8000, 0x01)
	test.ExpectFailure(t, err)

	var rve cpubus.ROMViolationError
	test.DemandSuccess(t, errors.As(err, &rve))
	test.ExpectEquality(t, rve.Address, uint16(0x8000))

	err = mem.Write(0xffff, 0x01)
	test.ExpectFailure(t, err)

	// a refused write leaves memory untouched
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x00))

	// Poke bypasses the boundary
	mem.Poke(0x8000, 0xff)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0xff))
}

func TestResetVector(t *testing.T) {
	mem := memory.NewRomRam(0xffff)
	mem.SetResetVector(0x0400)
	test.ExpectEquality(t, mem.Read(cpubus.Reset), uint8(0x00))
	test.ExpectEquality(t, mem.Read(cpubus.Reset+1), uint8(0x04))
}
