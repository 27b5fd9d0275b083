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

// Package colorterm implements the Terminal interface for the debugger. It
// uses ANSI control codes to embellish the output and puts the terminal into
// raw mode while reading, giving a line editor with command history.
package colorterm

import (
	"bufio"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hexworth/gomos6502/debugger/terminal"
	"github.com/hexworth/gomos6502/debugger/terminal/colorterm/easyterm"
	"github.com/hexworth/gomos6502/debugger/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         *bufio.Reader
	commandHistory []string
	silenced       bool
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0)
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	case terminal.StyleInstruction:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleRegisters:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	input := []byte{}
	historyIdx := len(ct.commandHistory)

	showInput := func() {
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.DimPens["cyan"])
		ct.TermPrint(prompt.String())
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
	}
	showInput()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", terminal.UserInterrupt

		case easyterm.KeyCarriageReturn:
			ct.TermPrint("\n")
			s := strings.TrimSpace(string(input))
			if s != "" {
				ct.commandHistory = append(ct.commandHistory, s)
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				_, sz := utf8.DecodeLastRune(input)
				input = input[:len(input)-sz]
				showInput()
			}

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if historyIdx > 0 {
					historyIdx--
					input = []byte(ct.commandHistory[historyIdx])
					showInput()
				}
			case easyterm.CursorDown:
				if historyIdx < len(ct.commandHistory)-1 {
					historyIdx++
					input = []byte(ct.commandHistory[historyIdx])
				} else {
					historyIdx = len(ct.commandHistory)
					input = input[:0]
				}
				showInput()
			}

		case easyterm.KeyTab:
			// no tab completion

		default:
			if unicode.IsPrint(r) {
				input = utf8.AppendRune(input, r)
				showInput()
			}
		}
	}
}
