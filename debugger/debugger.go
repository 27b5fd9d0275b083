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

// Package debugger implements an interactive monitor for the emulated CPU.
// It is deliberately small: single stepping, register and memory inspection,
// pokes, disassembly and free running until a fault or a trap loop.
package debugger

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hexworth/gomos6502/debugger/terminal"
	"github.com/hexworth/gomos6502/disassembly"
	"github.com/hexworth/gomos6502/hardware/cpu"
	"github.com/hexworth/gomos6502/hardware/memory"
)

const helpText = `STEP [n]          execute the next instruction (or the next n instructions)
RUN [addr]        run until a fault, a trap loop, or the PC reaches addr
REGS              show the CPU registers
PEEK addr [n]     show n bytes of memory (default 1). addresses in hex
POKE addr val     write a byte to memory, bypassing the ROM write check
DISASM [from to]  disassemble a memory range (default: from the PC)
RESET             reset the CPU
QUIT              leave the debugger`

// Debugger is an interactive monitor for the emulated CPU.
type Debugger struct {
	mc   *cpu.CPU
	mem  *memory.RomRam
	term terminal.Terminal
}

// NewDebugger is the preferred method of initialisation for the Debugger.
func NewDebugger(mc *cpu.CPU, mem *memory.RomRam, term terminal.Terminal) *Debugger {
	return &Debugger{
		mc:   mc,
		mem:  mem,
		term: term,
	}
}

// Start the input loop. The function returns when the user asks to QUIT or
// when input is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	for {
		input, err := dbg.term.TermRead(terminal.Prompt{
			Content: fmt.Sprintf("$%04x", dbg.mc.PC.Address()),
		})
		if err != nil {
			if errors.Is(err, terminal.UserInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		if !dbg.parseInput(input) {
			return nil
		}
	}
}

// parseInput dispatches a single command. Returns false if the input loop
// should end.
func (dbg *Debugger) parseInput(input string) bool {
	toks := strings.Fields(strings.ToUpper(input))
	if len(toks) == 0 {
		return true
	}

	switch toks[0] {
	case "QUIT", "Q", "EXIT":
		return false

	case "HELP", "?":
		dbg.term.TermPrintLine(terminal.StyleHelp, helpText)

	case "STEP", "S":
		n := 1
		if len(toks) > 1 {
			v, err := strconv.Atoi(toks[1])
			if err != nil || v < 1 {
				dbg.printError("STEP: bad instruction count (%s)", toks[1])
				return true
			}
			n = v
		}
		for i := 0; i < n; i++ {
			if !dbg.step() {
				break // for loop
			}
		}
		dbg.printRegisters()

	case "RUN", "R":
		var until uint16
		var haveUntil bool
		if len(toks) > 1 {
			addr, err := parseAddress(toks[1])
			if err != nil {
				dbg.printError("RUN: %s", err.Error())
				return true
			}
			until = addr
			haveUntil = true
		}
		dbg.run(until, haveUntil)
		dbg.printRegisters()

	case "REGS":
		dbg.printRegisters()

	case "PEEK":
		if len(toks) < 2 {
			dbg.printError("PEEK: address required")
			return true
		}
		addr, err := parseAddress(toks[1])
		if err != nil {
			dbg.printError("PEEK: %s", err.Error())
			return true
		}
		n := uint16(1)
		if len(toks) > 2 {
			n, err = parseAddress(toks[2])
			if err != nil {
				dbg.printError("PEEK: %s", err.Error())
				return true
			}
		}
		for i := uint16(0); i < n; i++ {
			a := addr + i
			dbg.term.TermPrintLine(terminal.StyleOutput,
				fmt.Sprintf("$%04x = 0x%02x", a, dbg.mem.Peek(a)))
		}

	case "POKE":
		if len(toks) < 3 {
			dbg.printError("POKE: address and value required")
			return true
		}
		addr, err := parseAddress(toks[1])
		if err != nil {
			dbg.printError("POKE: %s", err.Error())
			return true
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(toks[2], "$"), "0X"), 16, 8)
		if err != nil {
			dbg.printError("POKE: bad value (%s)", toks[2])
			return true
		}
		dbg.mem.Poke(addr, uint8(val))

	case "DISASM", "D":
		from := dbg.mc.PC.Address()
		to := from + 16
		var err error
		if len(toks) > 1 {
			from, err = parseAddress(toks[1])
			if err != nil {
				dbg.printError("DISASM: %s", err.Error())
				return true
			}
			to = from + 16
		}
		if len(toks) > 2 {
			to, err = parseAddress(toks[2])
			if err != nil {
				dbg.printError("DISASM: %s", err.Error())
				return true
			}
		}
		s := &strings.Builder{}
		if err := disassembly.Write(s, dbg.mem, from, to); err != nil {
			dbg.printError("DISASM: %s", err.Error())
			return true
		}
		dbg.term.TermPrintLine(terminal.StyleInstruction, strings.TrimSuffix(s.String(), "\n"))

	case "RESET":
		dbg.mc.Reset()
		dbg.printRegisters()

	default:
		dbg.printError("unknown command (%s). type HELP for the command list", toks[0])
	}

	return true
}

// step the CPU by one instruction, printing the instruction or the fault.
// Returns false if the CPU has halted.
func (dbg *Debugger) step() bool {
	if err := dbg.mc.Step(); err != nil {
		dbg.printError(err.Error())
		return false
	}
	dbg.term.TermPrintLine(terminal.StyleInstruction, dbg.mc.LastResult.String())
	return true
}

// run the CPU until a fault or until the PC stops moving, which is how test
// programs signal success and failure. with haveUntil, the run also ends
// when the PC reaches the until address.
func (dbg *Debugger) run(until uint16, haveUntil bool) {
	for {
		prev := dbg.mc.PC.Address()
		if err := dbg.mc.Step(); err != nil {
			dbg.printError(err.Error())
			return
		}
		pc := dbg.mc.PC.Address()
		if haveUntil && pc == until {
			dbg.term.TermPrintLine(terminal.StyleOutput,
				fmt.Sprintf("stopped at $%04x", pc))
			return
		}
		if pc == prev {
			dbg.term.TermPrintLine(terminal.StyleOutput,
				fmt.Sprintf("trap loop at $%04x", prev))
			return
		}
	}
}

func (dbg *Debugger) printRegisters() {
	dbg.term.TermPrintLine(terminal.StyleRegisters, dbg.mc.String())
}

func (dbg *Debugger) printError(format string, args ...interface{}) {
	dbg.term.TermPrintLine(terminal.StyleError, fmt.Sprintf(format, args...))
}

// parseAddress converts a 16 bit hex string, with or without a $ or 0x
// prefix, to an address.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address (%s)", s)
	}
	return uint16(v), nil
}
