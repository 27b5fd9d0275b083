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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios calls in functions with friendlier names and keeps a copy of
// the canonical terminal attributes for restoration on exit.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the base type for terminals that want to work in raw mode.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// canonical terminal attributes as they were when Initialise() was
	// called. CleanUp() returns the terminal to this state
	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the terminal and note the current terminal attributes.
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	et.input = input
	et.output = output

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return err
	}

	// raw mode: no line buffering and no echo. signal generation is left
	// switched on, ctrl-c is handled by the rune reader
	et.rawAttr = et.canAttr
	et.rawAttr.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	et.rawAttr.Cc[unix.VMIN] = 1
	et.rawAttr.Cc[unix.VTIME] = 0

	return nil
}

// CleanUp restores the terminal to its canonical state.
func (et *EasyTerm) CleanUp() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.canAttr)
}

// RawMode switches the terminal to raw mode.
func (et *EasyTerm) RawMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.rawAttr)
}

// CanonicalMode switches the terminal back to the mode it was in when
// Initialise() was called.
func (et *EasyTerm) CanonicalMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.canAttr)
}

// TermPrint writes the string to the terminal output with no decoration.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}
