// Package render converts decoded instruction records to assembly source text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/disasm86/internal/instruction"
	"github.com/retroenv/disasm86/internal/symbols"
)

// effective address bases indexed by the rm field.
var addressBases = [8]string{
	"bx + si",
	"bx + di",
	"bp + si",
	"bp + di",
	"si",
	"di",
	"bp",
	"bx",
}

// Renderer renders the instructions of an image that is loaded at an origin.
// Branch destinations without label are printed as addresses relative to the origin.
type Renderer struct {
	origin int
}

// New returns a renderer for an image loaded at the given origin.
func New(origin uint16) Renderer {
	return Renderer{origin: int(origin)}
}

// Render returns the text of an instruction of an image loaded at origin 0.
func Render(rec instruction.Record) string {
	return Renderer{}.Render(rec)
}

// Instruction returns the instruction text of an image loaded at origin 0.
func Instruction(rec instruction.Record) string {
	return Renderer{}.Instruction(rec)
}

// Render returns the text of an instruction, preceded by a label definition
// line if the instruction is a branch destination.
func (r Renderer) Render(rec instruction.Record) string {
	line := r.Instruction(rec)
	if label, ok := Label(rec); ok {
		return label + ":\n" + line
	}
	return line
}

// Label returns the label name of an instruction that is a branch destination.
func Label(rec instruction.Record) (string, bool) {
	if !rec.Flags.Label {
		return "", false
	}
	return symbols.Name(rec.Start()), true
}

// Instruction returns the instruction text without label.
func (r Renderer) Instruction(rec instruction.Record) string {
	var b strings.Builder

	if rec.Prefixes.Lock {
		b.WriteString("lock ")
	}
	if rec.Prefixes.Override && !usesSegment(rec) {
		b.WriteString(rec.Prefixes.Segment.String() + " ")
	}
	switch {
	case rec.Prefixes.Rep:
		b.WriteString("rep ")
	case rec.Prefixes.RepNE:
		b.WriteString("repne ")
	}

	b.WriteString(rec.Kind.String())
	switch {
	case rec.Prefixes.Far:
		b.WriteString(" far")
	case rec.Kind == instruction.Jmp && rec.Format == instruction.Near:
		// E9 stays a 3 byte encoding even for close targets
		b.WriteString(" near")
	}

	ops := operands(rec, r.origin)
	if len(ops) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(ops, ", "))
	}
	return b.String()
}

// usesSegment returns whether an operand prints the segment override.
func usesSegment(rec instruction.Record) bool {
	return rec.IsMemory() || rec.Format == instruction.AccMem
}

func operands(rec instruction.Record, origin int) []string {
	switch rec.Format {
	case instruction.None:
		return nil

	case instruction.RM:
		return []string{registerOrMemory(rec)}

	case instruction.RMReg:
		return ordered(rec, registerOrMemory(rec), register(rec.Fields.Reg, rec.Flags.Wide))

	case instruction.RMImm:
		return []string{registerOrMemory(rec), immediate(rec)}

	case instruction.RMSR:
		return ordered(rec, registerOrMemory(rec), rec.Fields.SR.String())

	case instruction.Shift:
		count := "1"
		if rec.Flags.ShiftByCL {
			count = "cl"
		}
		return []string{registerOrMemory(rec), count}

	case instruction.Reg:
		return []string{register(rec.Fields.Reg, rec.Flags.Wide)}

	case instruction.RegImm:
		return []string{register(rec.Fields.Reg, rec.Flags.Wide), immediate(rec)}

	case instruction.SR:
		return []string{rec.Fields.SR.String()}

	case instruction.AccImm:
		return []string{accumulator(rec), immediate(rec)}

	case instruction.AccPort:
		return ordered(rec, accumulator(rec), strconv.Itoa(int(rec.Data)))

	case instruction.AccDX:
		return ordered(rec, accumulator(rec), "dx")

	case instruction.AccReg:
		return []string{accumulator(rec), register(rec.Fields.Reg, rec.Flags.Wide)}

	case instruction.AccMem:
		return ordered(rec, accumulator(rec), segmentPrefix(rec)+"["+strconv.Itoa(int(rec.Data))+"]")

	case instruction.Imm:
		return []string{immediate(rec)}

	case instruction.Short, instruction.Near:
		return []string{branchTarget(rec, origin)}

	case instruction.Far:
		return []string{fmt.Sprintf("%d:%d", rec.DataExt, rec.Data)}

	case instruction.EscRM:
		return []string{strconv.Itoa(int(rec.Fields.Esc)), registerOrMemory(rec)}

	case instruction.Extended:
		panic("extended opcode was not resolved")
	}

	panic(fmt.Sprintf("unsupported operand format %d", rec.Format))
}

// ordered returns the operands in table order, or swapped if the direction flag is set.
func ordered(rec instruction.Record, first, second string) []string {
	if rec.Flags.Direction {
		return []string{second, first}
	}
	return []string{first, second}
}

func register(reg byte, wide bool) string {
	return instruction.RegisterName(reg, wide)
}

func accumulator(rec instruction.Record) string {
	return register(0, rec.Flags.Wide)
}

func immediate(rec instruction.Record) string {
	return strconv.Itoa(int(int16(rec.Data)))
}

func segmentPrefix(rec instruction.Record) string {
	if !rec.Prefixes.Override {
		return ""
	}
	return rec.Prefixes.Segment.String() + ":"
}

func registerOrMemory(rec instruction.Record) string {
	if !rec.IsMemory() {
		return register(rec.Fields.RM, rec.Flags.Wide)
	}

	var b strings.Builder
	switch {
	case rec.Prefixes.SizeHint && rec.Flags.Wide:
		b.WriteString("word ")
	case rec.Prefixes.SizeHint:
		b.WriteString("byte ")
	}
	b.WriteString(segmentPrefix(rec))
	b.WriteByte('[')

	if rec.IsDirectAddress() {
		b.WriteString(strconv.Itoa(int(uint16(rec.Disp))))
	} else {
		b.WriteString(addressBases[rec.Fields.RM])
		switch {
		case rec.Disp > 0:
			b.WriteString(" + " + strconv.Itoa(int(rec.Disp)))
		case rec.Disp < 0:
			b.WriteString(" - " + strconv.Itoa(-int(rec.Disp)))
		}
	}

	b.WriteByte(']')
	return b.String()
}

// branchTarget returns the label of the branch destination, or the address
// of the destination if it is not the start of a decoded instruction.
func branchTarget(rec instruction.Record, origin int) string {
	target, _ := rec.Target()
	if rec.Flags.TargetLabel {
		return symbols.Name(target)
	}
	return strconv.Itoa(origin + target)
}
