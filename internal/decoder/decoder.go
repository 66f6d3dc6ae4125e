// Package decoder extracts a typed instruction record from an 8086 machine code image.
package decoder

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/disasm86/internal/instruction"
	"github.com/retroenv/disasm86/internal/opcode"
)

var (
	// ErrOutOfBounds is returned when an instruction extends past the end of the image.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrUnknownOpcode is returned when an opcode has no valid decoding.
	ErrUnknownOpcode = errors.New("unknown opcode")
)

// DecodeError describes a failure to decode the instruction at an image offset.
type DecodeError struct {
	Offset int
	Opcode byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("opcode 0x%02x at offset 0x%04x: %s", e.Opcode, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode decodes the instruction that starts at the given offset of the image.
// An opcode without valid decoding returns a record of kind Unknown and no error,
// the caller decides whether that is fatal.
func Decode(image []byte, offset int) (instruction.Record, error) {
	if offset < 0 || offset >= len(image) {
		return instruction.Record{}, fmt.Errorf("%w: offset %d of image with %d bytes",
			ErrOutOfBounds, offset, len(image))
	}

	op := image[offset]
	tmpl := opcode.Lookup(op)
	if tmpl.Format == instruction.Extended {
		if offset+1 >= len(image) {
			return instruction.Record{}, outOfBounds(offset, op)
		}
		group, _ := opcode.Group(op)
		tmpl = opcode.LookupExtended(group, image[offset+1]>>3)
	}

	rec := instruction.Record{
		Kind:     tmpl.Kind,
		Format:   tmpl.Format,
		Flags:    tmpl.Flags,
		Prefixes: tmpl.Prefixes,
		Offset:   offset,
		Size:     tmpl.Size,
	}
	if tmpl.Kind == instruction.Unknown {
		rec.Bytes = image[offset : offset+1]
		return rec, nil
	}

	if offset+rec.Size > len(image) {
		return instruction.Record{}, outOfBounds(offset, op)
	}

	if tmpl.Format.HasModRM() {
		decodeModRM(&rec, image[offset+1])
		rec.Size += displacementSize(rec.Fields)
		if offset+rec.Size > len(image) {
			return instruction.Record{}, outOfBounds(offset, op)
		}
		rec.Disp = readDisplacement(image[offset+2:], displacementSize(rec.Fields))
	}

	decodeOperands(&rec, tmpl, image[offset:offset+rec.Size])
	rec.Bytes = image[offset : offset+rec.Size]
	return rec, nil
}

func outOfBounds(offset int, op byte) error {
	return &DecodeError{
		Offset: offset,
		Opcode: op,
		Err:    ErrOutOfBounds,
	}
}

func decodeModRM(rec *instruction.Record, modrm byte) {
	rec.Fields.Mod = modrm >> 6
	rec.Fields.Reg = (modrm >> 3) & 7
	rec.Fields.RM = modrm & 7
}

// displacementSize returns the number of displacement bytes following the modrm byte.
func displacementSize(fields instruction.Fields) int {
	switch fields.Mod {
	case 0:
		if fields.RM == 6 {
			return 2
		}
		return 0
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 0
	}
}

func readDisplacement(b []byte, size int) int16 {
	switch size {
	case 1:
		return int16(int8(b[0]))
	case 2:
		return int16(binary.LittleEndian.Uint16(b))
	default:
		return 0
	}
}

// decodeOperands extracts the format specific fields, data holds the complete
// encoding of the instruction starting with the opcode byte.
func decodeOperands(rec *instruction.Record, tmpl opcode.Template, data []byte) {
	op := data[0]

	switch rec.Format {
	case instruction.None:
		if len(data) > 1 {
			rec.Data = uint16(data[1])
		}
		if rec.Kind == instruction.SegmentOverride {
			rec.Fields.SR = tmpl.Segment
		}

	case instruction.RM, instruction.RMReg, instruction.Shift:

	case instruction.RMImm:
		immediateOffset := 2 + displacementSize(rec.Fields)
		rec.Data = readImmediate(data[immediateOffset:], rec.Flags)

	case instruction.RMSR:
		rec.Fields.SR = instruction.Segment(rec.Fields.Reg & 3)

	case instruction.EscRM:
		rec.Fields.Esc = (op&7)<<3 | rec.Fields.Reg

	case instruction.Reg, instruction.AccReg:
		rec.Fields.Reg = op & 7

	case instruction.RegImm:
		rec.Fields.Reg = op & 7
		rec.Data = readImmediate(data[1:], rec.Flags)

	case instruction.SR:
		rec.Fields.SR = tmpl.Segment

	case instruction.AccImm, instruction.Imm:
		rec.Data = readImmediate(data[1:], rec.Flags)

	case instruction.AccPort:
		rec.Data = uint16(data[1])

	case instruction.AccMem:
		rec.Data = binary.LittleEndian.Uint16(data[1:])

	case instruction.AccDX:

	case instruction.Short:
		rec.Disp = int16(int8(data[1]))

	case instruction.Near:
		rec.Disp = int16(binary.LittleEndian.Uint16(data[1:]))

	case instruction.Far:
		rec.Data = binary.LittleEndian.Uint16(data[1:])
		rec.DataExt = binary.LittleEndian.Uint16(data[3:])

	case instruction.Extended:
		panic("extended opcode was not resolved")
	}
}

func readImmediate(b []byte, flags instruction.Flags) uint16 {
	switch {
	case flags.SignExtend:
		return uint16(int16(int8(b[0])))
	case flags.Wide:
		return binary.LittleEndian.Uint16(b)
	default:
		return uint16(b[0])
	}
}
