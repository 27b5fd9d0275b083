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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. The program is started in one of a number of named modes
// (RUN, DISASM, etc.) with each mode defining its own flags. The first
// non-flag argument selects the mode; if it matches none of the registered
// sub-modes the default (first registered) mode is selected and the argument
// is left for the mode to interpret.
//
// The idiomatic usage pattern:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//
//	p, err := md.Parse()
//	// handle p == modalflag.ParseHelp and p == modalflag.ParseError
//
//	switch md.Mode() {
//	...
//	}
//
// Sub-mode comparison is case insensitive.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides sub-moded command line parsing. The Output field should be
// specified before calling Parse() or help messages will be lost.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. argsIdx
	// advances past consumed sub-mode arguments
	args    []string
	argsIdx int

	// sub-modes registered for the next Parse(). the first entry is the
	// default
	subModes []string

	// the series of sub-modes found during subsequent calls to Parse()
	path []string

	// extensive help text printed after the flag summary
	additionalHelp string
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing, separated by "/".
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes struct with a list of arguments, os.Args[1:]
// for example.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode. Flags and sub-modes must be registered again.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AddSubModes registers the sub-modes for the next call to Parse(). The
// first sub-mode is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp adds extensive help text to be displayed in addition to the
// regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	// the flag package writes its own usage message; buffer it so it can be
	// reshaped by printHelp()
	buf := &strings.Builder{}
	md.flags.SetOutput(buf)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp(buf.String())
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// assume the default sub-mode unless the first argument matches a
		// registered sub-mode
		mode := md.subModes[0]
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp(flagUsage string) {
	output := md.Output
	if output == nil {
		output = io.Discard
	}

	banner := md.Path()
	if banner != "" {
		fmt.Fprintf(output, "Usage of %s mode:\n", banner)
	} else {
		fmt.Fprintf(output, "Usage:\n")
	}

	// drop the flag package's own banner line
	if lines := strings.SplitN(flagUsage, "\n", 2); len(lines) > 1 {
		_, _ = io.WriteString(output, lines[1])
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments after a call to Parse() that are not
// flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint flag for next call to Parse().
func (md *Modes) AddUint(name string, value uint, usage string) *uint {
	return md.flags.Uint(name, value, usage)
}
