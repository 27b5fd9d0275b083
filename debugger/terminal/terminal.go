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

// Package terminal defines the operations required by the debugger's command
// line interface. Implementations are found in the plainterm and colorterm
// sub-packages.
package terminal

import "errors"

// UserInterrupt is returned by TermRead() when the user has interrupted the
// read, with ctrl-c for example.
var UserInterrupt = errors.New("user interrupt")

// Style is used to hint at the formatting of a line of output. How the hint
// is interpreted depends on the terminal implementation.
type Style int

// List of terminal styles.
const (
	StyleOutput Style = iota
	StyleInstruction
	StyleRegisters
	StyleHelp
	StyleError
)

// Prompt specifies the prompt text presented ahead of a TermRead().
type Prompt struct {
	Content string
}

func (p Prompt) String() string {
	return "[ " + p.Content + " ] >> "
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input, without the trailing
	// newline.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that take input
	// from a real user.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// to make sure the terminal is returned to canonical mode.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
