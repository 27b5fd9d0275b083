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

package main

import (
	"fmt"
	"os"

	"github.com/hexworth/gomos6502/modalflag"
)

const additionalHelp = `The memory file list seeds the 64k address space before the CPU is reset.

Format is path[:load_addr],... where load_addr is an unadorned 16 bit hex
number (0000-ffff). Load addresses must increase and the loaded files must
not overlap. Gaps are filled with zero.`

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DISASM", "DEBUG")
	md.AdditionalHelp(additionalHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err.Error())
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "DISASM":
		err = disasm(md)
	case "DEBUG":
		err = debug(md)
	default:
		err = fmt.Errorf("%s mode unrecognised", md.Mode())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err.Error())
		os.Exit(10)
	}
}
