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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/hexworth/gomos6502/disassembly"
	"github.com/hexworth/gomos6502/hardware/memory"
	"github.com/hexworth/gomos6502/test"
)

func TestDecode(t *testing.T) {
	mem := memory.NewRomRam(0xffff)
	mem.Load(0x0400, []byte{
		0xa9, 0xff, // LDA #$ff
		0x8d, 0x32, 0x04, // STA $0432
		0xd0, 0xfe, // BNE -2
		0x6c, 0xff, 0x02, // JMP ($02ff)
		0xea, // NOP
	})

	e, next := disassembly.Decode(mem, 0x0400)
	test.ExpectEquality(t, e.String(), "LDA #$ff")
	test.ExpectEquality(t, next, uint16(0x0402))

	e, next = disassembly.Decode(mem, next)
	test.ExpectEquality(t, e.String(), "STA $0432")
	test.ExpectEquality(t, next, uint16(0x0405))

	// branch operands are resolved to the target address
	e, next = disassembly.Decode(mem, next)
	test.ExpectEquality(t, e.String(), "BNE $0405")
	test.ExpectEquality(t, next, uint16(0x0407))

	e, next = disassembly.Decode(mem, next)
	test.ExpectEquality(t, e.String(), "JMP ($02ff)")

	e, _ = disassembly.Decode(mem, next)
	test.ExpectEquality(t, e.String(), "NOP")
}

func TestDecodeIllegal(t *testing.T) {
	mem := memory.NewRomRam(0xffff)
	mem.Poke(0x0400, 0x02)

	e, next := disassembly.Decode(mem, 0x0400)
	test.ExpectSuccess(t, e.Defn == nil)
	test.ExpectEquality(t, e.String(), ".byte $02")
	test.ExpectEquality(t, next, uint16(0x0401))
}

func TestWrite(t *testing.T) {
	mem := memory.NewRomRam(0xffff)
	mem.Load(0x0400, []byte{
		0xa2, 0x03, // LDX #$03
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3
	})

	w := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(w, mem, 0x0400, 0x0404))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "$0400  a2 03     LDX #$03")
	test.ExpectEquality(t, lines[1], "$0402  ca        DEX")
	test.ExpectEquality(t, lines[2], "$0403  d0 fd     BNE $0402")
}
