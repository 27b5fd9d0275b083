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

package cpu

import (
	"errors"
	"fmt"

	"github.com/hexworth/gomos6502/hardware/cpu/instructions"
	"github.com/hexworth/gomos6502/hardware/cpu/registers"
	"github.com/hexworth/gomos6502/hardware/memory/cpubus"
	"github.com/hexworth/gomos6502/logger"
)

// CPU implements the instruction semantics of the MOS 6502. Register logic
// is implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// AllowStackWraparound controls the stack discipline. When false (the
	// default) the stack pointer moving past either end of the stack page is
	// a fault. When true the pointer wraps around modulo 256.
	AllowStackWraparound bool

	// pending interrupt lines. the lines stay asserted until serviced
	irqPending bool
	nmiPending bool

	// the fault that has halted the CPU. nil when the CPU is running
	// normally. every call to Step() returns the same fault until Reset()
	fault error

	// register file as it was at the start of the current Step(). the fault
	// model rolls back to this
	preInstruction registerFile

	// register file as it was before the faulting instruction began. restored
	// by Reset()
	faultSnapshot *registerFile

	// last result. valid once Step() has returned
	LastResult Result
}

// registerFile is a copy of the CPU registers, used for the pre-instruction
// snapshot that the fault model rolls back to.
type registerFile struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.StackPointer
	status registers.StatusRegister
}

func (mc *CPU) snapshotRegisters() registerFile {
	return registerFile{
		pc:     mc.PC,
		a:      mc.A,
		x:      mc.X,
		y:      mc.Y,
		sp:     mc.SP,
		status: mc.Status,
	}
}

func (mc *CPU) restoreRegisters(r registerFile) {
	mc.PC = r.pc
	mc.A = r.a
	mc.X = r.x
	mc.Y = r.y
	mc.SP = r.sp
	mc.Status = r.status
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is in an undefined state until Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new Memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Halted returns true if the CPU has stopped because of a fault. A halted
// CPU can only be restarted with Reset().
func (mc *CPU) Halted() bool {
	return mc.fault != nil
}

// Fault returns the fault that has halted the CPU, or nil if the CPU is
// running normally.
func (mc *CPU) Fault() error {
	return mc.fault
}

// Reset the CPU and load the program counter from the hardware reset vector.
// Any fault is cleared and the registers saved when the fault occurred are
// restored before the reset sequence is applied.
//
// The reset sequence sets the stack pointer to the top of the stack page,
// sets the interrupt disable flag and clears decimal mode. Use LoadPC() after
// Reset() to override the reset vector.
func (mc *CPU) Reset() {
	if mc.faultSnapshot != nil {
		mc.restoreRegisters(*mc.faultSnapshot)
		mc.faultSnapshot = nil
	}
	mc.fault = nil
	mc.irqPending = false
	mc.nmiPending = false
	mc.LastResult.Reset()

	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// LoadPC loads directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// SignalIRQ asserts the maskable interrupt line. The interrupt is serviced
// at the start of the next Step(), unless the interrupt disable flag is set.
func (mc *CPU) SignalIRQ() {
	mc.irqPending = true
}

// SignalNMI asserts the non-maskable interrupt line. The interrupt is
// serviced at the start of the next Step().
func (mc *CPU) SignalNMI() {
	mc.nmiPending = true
}

// fetch reads the next byte of the instruction stream and advances the PC.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// fetch16 reads the next two bytes of the instruction stream as a
// little-endian address.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return (uint16(hi) << 8) | uint16(lo)
}

// read16 reads a little-endian address from memory.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// push a byte onto the stack. The stack boundary is checked before anything
// is mutated; a faulting push leaves the stack pointer and memory untouched.
func (mc *CPU) push(data uint8) error {
	if !mc.AllowStackWraparound && mc.SP.Value() == 0x00 {
		return StackOverflow
	}
	if err := mc.mem.Write(mc.SP.Address(), data); err != nil {
		return err
	}
	mc.SP.Add(0xff, false)
	return nil
}

// pull a byte from the stack. As with push, the boundary is checked before
// anything is mutated.
func (mc *CPU) pull() (uint8, error) {
	if !mc.AllowStackWraparound && mc.SP.Value() == 0xff {
		return 0, StackUnderflow
	}
	mc.SP.Add(1, false)
	return mc.mem.Read(mc.SP.Address()), nil
}

// pushAddress pushes a 16 bit address onto the stack, high byte first.
func (mc *CPU) pushAddress(address uint16) error {
	if err := mc.push(uint8(address >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(address))
}

// pullAddress pulls a 16 bit address from the stack, low byte first.
func (mc *CPU) pullAddress() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// interrupt performs the hardware interrupt sequence: push the PC and the
// status register (with the break flag clear), set the interrupt disable
// flag, and load the PC from the supplied vector.
func (mc *CPU) interrupt(vector uint16) error {
	if err := mc.pushAddress(mc.PC.Address()); err != nil {
		return err
	}

	// the pushed status has the interrupt disable flag as it was before the
	// interrupt, so that RTI restores it correctly
	sr := mc.Status
	sr.Break = false
	if err := mc.push(sr.Value()); err != nil {
		return err
	}

	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))
	return nil
}

// branch adjusts the PC by the two's complement offset if flag is true.
func (mc *CPU) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag
	if flag {
		mc.PC.AddOffset(offset)
	}
}

// Step the CPU forward one instruction; or, if an interrupt line has been
// asserted, service the interrupt instead.
//
// A nil return means normal continuation. A non-nil return is a fault:
// IllegalOpcodeError, StackOverflow, StackUnderflow or
// cpubus.ROMViolationError. Once a fault has occurred the CPU is halted and
// every subsequent Step() returns the same fault, without any state change,
// until Reset() is called.
func (mc *CPU) Step() error {
	if mc.fault != nil {
		return mc.fault
	}

	mc.preInstruction = mc.snapshotRegisters()

	// service pending interrupts ahead of the instruction fetch. the
	// non-maskable line wins if both are asserted
	if mc.nmiPending {
		mc.nmiPending = false
		return mc.faultCheck(mc.interrupt(cpubus.NMI))
	}
	if mc.irqPending && !mc.Status.InterruptDisable {
		mc.irqPending = false
		return mc.faultCheck(mc.interrupt(cpubus.IRQ))
	}

	return mc.faultCheck(mc.executeInstruction())
}

// faultCheck latches the error returned by an instruction, halting the CPU.
// An illegal opcode additionally rolls the registers back to the snapshot
// taken before the faulting fetch: the faulting byte is never "executed".
func (mc *CPU) faultCheck(err error) error {
	if err == nil {
		return nil
	}

	snapshot := mc.preInstruction
	mc.faultSnapshot = &snapshot

	var ill IllegalOpcodeError
	if errors.As(err, &ill) {
		mc.restoreRegisters(snapshot)
	}

	mc.fault = err
	logger.Logf("CPU", "halted: %s", err.Error())

	return err
}
