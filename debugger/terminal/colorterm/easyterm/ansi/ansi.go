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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore and CursorRestore save and restore the cursor position.
const (
	CursorStore   = "\033[s"
	CursorRestore = "\033[u"
)

// CursorMove moves the cursor n characters forward (positive) or backward
// (negative).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

func pen(col int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[3%d;1m", col)
	}
	return fmt.Sprintf("\033[3%dm", col)
}

// Pens is the table of bright colors to be used for text.
var Pens = map[string]string{
	"red":     pen(colRed, true),
	"green":   pen(colGreen, true),
	"yellow":  pen(colYellow, true),
	"blue":    pen(colBlue, true),
	"magenta": pen(colMagenta, true),
	"cyan":    pen(colCyan, true),
	"white":   pen(colWhite, true),
}

// DimPens is the table of normal intensity colors to be used for text.
var DimPens = map[string]string{
	"red":     pen(colRed, false),
	"green":   pen(colGreen, false),
	"yellow":  pen(colYellow, false),
	"blue":    pen(colBlue, false),
	"magenta": pen(colMagenta, false),
	"cyan":    pen(colCyan, false),
	"white":   pen(colWhite, false),
}
