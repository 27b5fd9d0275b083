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
	"fmt"

	"github.com/hexworth/gomos6502/hardware/cpu/instructions"
	"github.com/hexworth/gomos6502/hardware/cpu/registers"
	"github.com/hexworth/gomos6502/hardware/memory/cpubus"
)

// executeInstruction decodes and executes the instruction at the current PC.
// The returned error, if any, is one of the fault types; the caller is
// responsible for latching it.
func (mc *CPU) executeInstruction() error {
	opcodeAddress := mc.PC.Address()
	opcode := mc.fetch()

	defn := mc.instructions[opcode]
	if defn == nil {
		return IllegalOpcodeError{OpCode: opcode, Address: opcodeAddress}
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = opcodeAddress
	mc.LastResult.Defn = defn

	// the effective address of the instruction's operand, resolved from the
	// addressing mode. not used by implied or immediate instructions
	var address uint16

	// the operand value. for read instructions this is the value at the
	// effective address; for write instructions it is the value to be written
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// nothing to resolve. the shift/rotate instructions with implied
		// addressing operate on the accumulator

	case instructions.Immediate:
		value = mc.fetch()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		value = mc.fetch()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		address = mc.fetch16()
		mc.LastResult.InstructionData = address

	case instructions.ZeroPage:
		address = uint16(mc.fetch())
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		pointer := mc.fetch16()
		mc.LastResult.InstructionData = pointer

		if pointer&0x00ff == 0x00ff {
			// the 6502 does not carry the low byte increment into the high
			// byte when the pointer straddles a page. JMP ($xxff) reads the
			// high byte of the target from the start of the same page
			lo := mc.mem.Read(pointer)
			hi := mc.mem.Read(pointer & 0xff00)
			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			address = mc.read16(pointer)
		}

	case instructions.IndexedIndirect:
		indirectAddress := mc.fetch()
		mc.LastResult.InstructionData = uint16(indirectAddress)

		// zero page indexing never leaves the zero page. both the pointer
		// and the read of its high byte wrap at 0xff
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)
		lo := mc.mem.Read(mc.acc8.Address())
		mc.acc8.Add(1, false)
		hi := mc.mem.Read(mc.acc8.Address())
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndirectIndexed:
		indirectAddress := mc.fetch()
		mc.LastResult.InstructionData = uint16(indirectAddress)

		lo := mc.mem.Read(uint16(indirectAddress))
		hi := mc.mem.Read(uint16(indirectAddress + 1))
		address = (uint16(hi) << 8) | uint16(lo)
		address += mc.Y.Address()

	case instructions.AbsoluteIndexedX:
		address = mc.fetch16()
		mc.LastResult.InstructionData = address
		address += mc.X.Address()

	case instructions.AbsoluteIndexedY:
		address = mc.fetch16()
		mc.LastResult.InstructionData = address
		address += mc.Y.Address()

	case instructions.ZeroPageIndexedX:
		indirectAddress := mc.fetch()
		mc.LastResult.InstructionData = uint16(indirectAddress)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)
		address = mc.acc8.Address()

	case instructions.ZeroPageIndexedY:
		indirectAddress := mc.fetch()
		mc.LastResult.InstructionData = uint16(indirectAddress)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.Y.Value(), false)
		address = mc.acc8.Address()

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %#02x", opcode)
	}

	// read the operand for instructions that consume memory. immediate and
	// relative instructions have already fetched their operand
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		value = mc.A.Value()

	case instructions.Stx:
		value = mc.X.Value()

	case instructions.Sty:
		value = mc.Y.Value()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Ror:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Cmp:
		// compare is a subtraction with the result discarded. the carry flag
		// is preloaded so the comparison is not off by one
		cmp := mc.A
		mc.Status.Carry, _ = cmp.Subtract(value, true)
		mc.Status.Zero = cmp.IsZero()
		mc.Status.Sign = cmp.IsNegative()

	case instructions.Cpx:
		cmp := mc.X
		mc.Status.Carry, _ = cmp.Subtract(value, true)
		mc.Status.Zero = cmp.IsZero()
		mc.Status.Sign = cmp.IsNegative()

	case instructions.Cpy:
		cmp := mc.Y
		mc.Status.Carry, _ = cmp.Subtract(value, true)
		mc.Status.Zero = cmp.IsZero()
		mc.Status.Sign = cmp.IsNegative()

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		if err := mc.push(mc.A.Value()); err != nil {
			return err
		}

	case instructions.Pla:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		// the break flag is set in the pushed copy
		sr := mc.Status
		sr.Break = true
		if err := mc.push(sr.Value()); err != nil {
			return err
		}

	case instructions.Plp:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// the address pushed is the address of the final byte of the JSR
		// instruction. RTS compensates
		if err := mc.pushAddress(mc.PC.Address() - 1); err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		rtsAddress, err := mc.pullAddress()
		if err != nil {
			return err
		}
		mc.PC.Load(rtsAddress + 1)

	case instructions.Brk:
		// BRK is a two byte instruction despite the implied addressing. the
		// pad byte is skipped
		mc.fetch()

		if err := mc.pushAddress(mc.PC.Address()); err != nil {
			return err
		}

		// the break flag distinguishes a pushed BRK status from a pushed
		// hardware interrupt status
		sr := mc.Status
		sr.Break = true
		if err := mc.push(sr.Value()); err != nil {
			return err
		}

		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.read16(cpubus.IRQ))

	case instructions.Rti:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

		rtiAddress, err := mc.pullAddress()
		if err != nil {
			return err
		}
		mc.PC.Load(rtiAddress)

	default:
		return fmt.Errorf("cpu: unimplemented operator %s", defn.Operator)
	}

	// write back for instructions that modify memory
	switch defn.Effect {
	case instructions.Write:
		if err := mc.mem.Write(address, value); err != nil {
			return err
		}
	case instructions.RMW:
		if err := mc.mem.Write(address, value); err != nil {
			return err
		}
	}

	return nil
}
