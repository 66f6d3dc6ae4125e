// Package cpu executes decoded instructions on an 8086 register file.
// Only register and immediate forms of mov are supported, memory is not modeled.
package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/disasm86/internal/instruction"
)

// ErrNotImplemented is returned for instructions that the executor does not model.
var ErrNotImplemented = errors.New("not implemented")

// State is the register file of the cpu.
type State struct {
	Registers [8]uint16 // ax, cx, dx, bx, sp, bp, si, di
	Segments  [4]uint16 // es, cs, ss, ds
	IP        uint16
}

// Register contains the name and value of a register.
type Register struct {
	Name  string
	Value uint16
}

// New returns a new state with all registers cleared.
func New() *State {
	return &State{}
}

// Exec executes a single instruction and advances the instruction pointer.
// The instruction pointer also advances past unsupported instructions,
// all other registers are left unchanged for them.
func (s *State) Exec(rec instruction.Record) error {
	s.IP = uint16(rec.Next())

	if rec.Kind != instruction.Mov {
		return fmt.Errorf("%w: %s", ErrNotImplemented, rec.Kind)
	}
	if rec.IsMemory() {
		return fmt.Errorf("%w: mov with memory operand", ErrNotImplemented)
	}

	wide := rec.Flags.Wide
	switch rec.Format {
	case instruction.RMReg:
		dst, src := rec.Fields.RM, rec.Fields.Reg
		if rec.Flags.Direction {
			dst, src = src, dst
		}
		s.SetRegister(dst, wide, s.Register(src, wide))

	case instruction.RegImm:
		s.SetRegister(rec.Fields.Reg, wide, rec.Data)

	case instruction.RMImm:
		s.SetRegister(rec.Fields.RM, wide, rec.Data)

	case instruction.RMSR:
		if rec.Flags.Direction {
			s.Segments[rec.Fields.SR] = s.Registers[rec.Fields.RM]
		} else {
			s.Registers[rec.Fields.RM] = s.Segments[rec.Fields.SR]
		}

	default:
		return fmt.Errorf("%w: mov with operand format %d", ErrNotImplemented, rec.Format)
	}

	return nil
}

// Register returns the value of a general register selected by a 3 bit register field.
// Byte registers 0-3 are the low and 4-7 the high halves of ax, cx, dx and bx.
func (s *State) Register(reg byte, wide bool) uint16 {
	reg &= 7
	if wide {
		return s.Registers[reg]
	}
	value := s.Registers[reg&3]
	if reg >= 4 {
		return value >> 8
	}
	return value & 0xFF
}

// SetRegister sets a general register selected by a 3 bit register field.
func (s *State) SetRegister(reg byte, wide bool, value uint16) {
	reg &= 7
	if wide {
		s.Registers[reg] = value
		return
	}

	word := &s.Registers[reg&3]
	if reg >= 4 {
		*word = *word&0x00FF | (value&0xFF)<<8
	} else {
		*word = *word&0xFF00 | value&0xFF
	}
}

// NonZero returns all registers that have a value other than zero,
// general registers first, followed by segment registers and ip.
func (s *State) NonZero() []Register {
	var regs []Register
	for i, value := range s.Registers {
		if value != 0 {
			regs = append(regs, Register{Name: instruction.RegisterName(byte(i), true), Value: value})
		}
	}
	for i, value := range s.Segments {
		if value != 0 {
			regs = append(regs, Register{Name: instruction.Segment(i).String(), Value: value})
		}
	}
	if s.IP != 0 {
		regs = append(regs, Register{Name: "ip", Value: s.IP})
	}
	return regs
}
