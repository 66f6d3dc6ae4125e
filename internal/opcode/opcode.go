// Package opcode contains the 8086 opcode table that maps opcode bytes to decoding templates.
package opcode

import "github.com/retroenv/disasm86/internal/instruction"

// Template describes how an opcode is decoded.
type Template struct {
	Kind     instruction.Kind
	Format   instruction.Format
	Flags    instruction.Flags
	Prefixes instruction.Prefixes // implied prefixes of the encoding
	Size     int                  // encoded size without displacement bytes
	Segment  instruction.Segment  // segment register selected by the opcode
}

// GroupCount is the number of extended opcode groups.
const GroupCount = 17

var groupOpcodes = [GroupCount]byte{
	0x80, 0x81, 0x82, 0x83,
	0x8C, 0x8E, 0x8F,
	0xC6, 0xC7,
	0xD0, 0xD1, 0xD2, 0xD3,
	0xF6, 0xF7,
	0xFE, 0xFF,
}

var (
	primary  = buildPrimary()
	extended = buildExtended()
)

// Lookup returns the template of a primary opcode byte. Opcodes of extended
// groups return a template with the Extended format.
func Lookup(b byte) Template {
	return primary[b]
}

// Group returns the extended group index of an opcode byte.
func Group(b byte) (int, bool) {
	for i, op := range groupOpcodes {
		if op == b {
			return i, true
		}
	}
	return 0, false
}

// GroupOpcode returns the primary opcode byte of an extended group.
func GroupOpcode(group int) byte {
	return groupOpcodes[group]
}

// LookupExtended returns the template of a sub opcode of an extended group.
// Only the lowest 3 bits of the sub opcode are used. Invalid groups return
// the unknown template.
func LookupExtended(group int, sub byte) Template {
	if group < 0 || group >= GroupCount {
		return unknown
	}
	return extended[group][sub&7]
}

var unknown = newTemplate(instruction.Unknown, instruction.None, 1)

func newTemplate(kind instruction.Kind, format instruction.Format, size int) Template {
	return Template{
		Kind:   kind,
		Format: format,
		Size:   size,
	}
}

func (t Template) wide() Template {
	t.Flags.Wide = true
	return t
}

func (t Template) direction() Template {
	t.Flags.Direction = true
	return t
}

func (t Template) signExtend() Template {
	t.Flags.SignExtend = true
	return t
}

func (t Template) shiftByCL() Template {
	t.Flags.ShiftByCL = true
	return t
}

func (t Template) memoryOnly() Template {
	t.Flags.MemoryOnly = true
	return t
}

func (t Template) sizeHint() Template {
	t.Prefixes.SizeHint = true
	return t
}

func (t Template) far() Template {
	t.Prefixes.Far = true
	return t
}

func (t Template) segment(seg instruction.Segment) Template {
	t.Segment = seg
	return t
}
