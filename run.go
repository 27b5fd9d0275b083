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
	"os/signal"
	"strconv"
	"time"

	"github.com/hexworth/gomos6502/debugger"
	"github.com/hexworth/gomos6502/debugger/terminal"
	"github.com/hexworth/gomos6502/debugger/terminal/colorterm"
	"github.com/hexworth/gomos6502/debugger/terminal/plainterm"
	"github.com/hexworth/gomos6502/disassembly"
	"github.com/hexworth/gomos6502/hardware/cpu"
	"github.com/hexworth/gomos6502/hardware/memory"
	"github.com/hexworth/gomos6502/logger"
	"github.com/hexworth/gomos6502/memimage"
	"github.com/hexworth/gomos6502/modalflag"
	"github.com/hexworth/gomos6502/statsview"
)

// parseWord converts a 16 bit number in any of the formats accepted by
// strconv.ParseUint with base 0 (1024, 0x400, 0o2000).
func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address (%s)", s)
	}
	return uint16(v), nil
}

// prepareMemory assembles the memory image from the file list argument,
// wraps it in a RomRam and points the reset vector at resetPC.
func prepareMemory(fileList string, romStart uint16, resetPC uint16) (*memory.RomRam, error) {
	if fileList == "" {
		return nil, fmt.Errorf("memory file list required")
	}

	image, err := memimage.Read(fileList)
	if err != nil {
		return nil, err
	}

	mem := memory.NewRomRam(romStart)
	mem.Load(0x0000, image)
	mem.SetResetVector(resetPC)

	return mem, nil
}

func emulate(md *modalflag.Modes) error {
	md.NewMode()

	romStart := md.AddString("rom", "0xffff", "ROM start. writes into ROM will cause a fault")
	resetPC := md.AddString("pc", "0x400", "initial program counter")
	exitPC := md.AddString("exit", "0x3469", "program counter at which to exit")
	wrap := md.AddBool("wrap", false, "allow stack wraparound")
	stats := md.AddUint("stats", 0, "print statistics every n instructions")
	pause := md.AddDuration("pause", 0, "pause between executing instructions")
	deadLoop := md.AddUint("deadloop", 0x10000, "dead loop iterations before exit")
	log := md.AddBool("log", false, "echo log entries to stderr")
	stview := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stview {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("statsview not available in this build. compile with the statsview build tag")
		}
	}

	romAddr, err := parseWord(*romStart)
	if err != nil {
		return err
	}
	pcAddr, err := parseWord(*resetPC)
	if err != nil {
		return err
	}
	exitAddr, err := parseWord(*exitPC)
	if err != nil {
		return err
	}

	mem, err := prepareMemory(md.GetArg(0), romAddr, pcAddr)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU(mem)
	mc.AllowStackWraparound = *wrap
	mc.Reset()

	logger.Logf("run", "reset vector set to 0x%04x", pcAddr)
	logger.Logf("run", "will exit at 0x%04x", exitAddr)
	logger.Logf("run", "stack wraparound allowed: %t", *wrap)

	// ctrl-c ends the run cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	startTime := time.Now()
	var instructions uint64

	prevPC := mc.PC.Address()
	var deadLoopCount uint

	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			printRunSummary(mc, instructions, startTime)
			return nil
		default:
		}

		if err := mc.Step(); err != nil {
			printRunSummary(mc, instructions, startTime)
			return err
		}
		instructions++

		if *stats > 0 && instructions%uint64(*stats) == 0 {
			fmt.Printf("instructions emulated: %d\n", instructions)
			fmt.Printf("last one: %s, %s\n", mc.LastResult.String(), mc.String())
		}

		if *pause > 0 {
			time.Sleep(*pause)
		}

		pc := mc.PC.Address()
		if pc == exitAddr {
			fmt.Printf("exiting as the program is at the exit PC 0x%04x\n", pc)
			printRunSummary(mc, instructions, startTime)
			return nil
		}

		// "Loop on program counter determines error or successful completion
		// of test"
		if pc == prevPC {
			deadLoopCount++
			if deadLoopCount > *deadLoop {
				printRunSummary(mc, instructions, startTime)
				return fmt.Errorf("dead loop at 0x%04x for %d iterations, aborting", pc, deadLoopCount)
			}
		} else {
			prevPC = pc
			deadLoopCount = 0
		}
	}
}

func printRunSummary(mc *cpu.CPU, instructions uint64, startTime time.Time) {
	elapsed := time.Since(startTime)
	fmt.Printf("instructions emulated: %d in %s\n", instructions, elapsed.Round(time.Millisecond))
	fmt.Println(mc.String())
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	from := md.AddString("from", "0x400", "address to disassemble from")
	to := md.AddString("to", "0x4ff", "address to disassemble to")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	fromAddr, err := parseWord(*from)
	if err != nil {
		return err
	}
	toAddr, err := parseWord(*to)
	if err != nil {
		return err
	}

	// the reset vector is irrelevant for disassembly
	mem, err := prepareMemory(md.GetArg(0), 0xffff, 0x0000)
	if err != nil {
		return err
	}

	return disassembly.Write(os.Stdout, mem, fromAddr, toAddr)
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	romStart := md.AddString("rom", "0xffff", "ROM start. writes into ROM will cause a fault")
	resetPC := md.AddString("pc", "0x400", "initial program counter")
	wrap := md.AddBool("wrap", false, "allow stack wraparound")
	useColor := md.AddBool("color", true, "use a color terminal with line editing")
	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	romAddr, err := parseWord(*romStart)
	if err != nil {
		return err
	}
	pcAddr, err := parseWord(*resetPC)
	if err != nil {
		return err
	}

	mem, err := prepareMemory(md.GetArg(0), romAddr, pcAddr)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU(mem)
	mc.AllowStackWraparound = *wrap
	mc.Reset()

	var term terminal.Terminal
	if *useColor {
		term = &colorterm.ColorTerminal{}
	} else {
		term = &plainterm.PlainTerminal{}
	}

	return debugger.NewDebugger(mc, mem, term).Start()
}
