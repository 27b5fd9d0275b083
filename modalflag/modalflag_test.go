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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/hexworth/gomos6502/modalflag"
	"github.com/hexworth/gomos6502/test"
)

func TestNoModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"program.bin"})
	md.AddSubModes("RUN", "DISASM", "DEBUG")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	// the argument matches no sub-mode so the default is selected and the
	// argument is left over
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
}

func TestSubModeSelection(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"disasm", "program.bin"})
	md.AddSubModes("RUN", "DISASM", "DEBUG")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	// sub-mode comparison is case insensitive. the consumed argument is not
	// part of the remaining arguments of the next mode
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
}

func TestModeFlags(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"run", "-pause", "program.bin"})
	md.AddSubModes("RUN", "DISASM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	pause := md.AddBool("pause", false, "pause execution on start")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *pause)
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
}

func TestUnrecognisedFlag(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, strings.Contains(output.String(), "available sub-modes: RUN, DISASM"))
	test.ExpectSuccess(t, strings.Contains(output.String(), "default: RUN"))
}

func TestModePath(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"debug"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "DEBUG")
	test.ExpectEquality(t, md.Mode(), "DEBUG")
}