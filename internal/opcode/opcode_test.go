package opcode

import (
	"testing"

	"github.com/retroenv/disasm86/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup_Exhaustive(t *testing.T) {
	for b := range 256 {
		tmpl := Lookup(byte(b))
		assert.True(t, tmpl.Size >= 1, "opcode has no size")

		_, isGroup := Group(byte(b))
		assert.Equal(t, isGroup, tmpl.Format == instruction.Extended)
	}

	for group := range GroupCount {
		for sub := range byte(8) {
			tmpl := LookupExtended(group, sub)
			if tmpl.Kind == instruction.Unknown {
				assert.Equal(t, 1, tmpl.Size)
				continue
			}
			assert.True(t, tmpl.Format.HasModRM(), "extended opcode without modrm")
			assert.True(t, tmpl.Size >= 2, "extended opcode too short")
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		kind   instruction.Kind
		format instruction.Format
		size   int
		wide   bool
		dir    bool
	}{
		{"add rm reg", 0x00, instruction.Add, instruction.RMReg, 2, false, false},
		{"sub reg rm", 0x2B, instruction.Sub, instruction.RMReg, 2, true, true},
		{"sub acc imm", 0x2D, instruction.Sub, instruction.AccImm, 3, true, false},
		{"cmp acc imm8", 0x3C, instruction.Cmp, instruction.AccImm, 2, false, false},
		{"xchg rm reg", 0x87, instruction.Xchg, instruction.RMReg, 2, true, false},
		{"mov rm reg", 0x89, instruction.Mov, instruction.RMReg, 2, true, false},
		{"mov reg rm", 0x8B, instruction.Mov, instruction.RMReg, 2, true, true},
		{"lea", 0x8D, instruction.Lea, instruction.RMReg, 2, true, true},
		{"xchg acc", 0x93, instruction.Xchg, instruction.AccReg, 1, true, false},
		{"call far", 0x9A, instruction.Call, instruction.Far, 5, false, false},
		{"mov mem acc", 0xA3, instruction.Mov, instruction.AccMem, 3, true, true},
		{"stosw", 0xAB, instruction.Stosw, instruction.None, 1, true, false},
		{"mov reg imm8", 0xB1, instruction.Mov, instruction.RegImm, 2, false, false},
		{"mov reg imm16", 0xB8, instruction.Mov, instruction.RegImm, 3, true, false},
		{"ret imm", 0xC2, instruction.Ret, instruction.Imm, 3, true, false},
		{"int", 0xCD, instruction.Int, instruction.Imm, 2, false, false},
		{"aam", 0xD4, instruction.Aam, instruction.None, 2, false, false},
		{"esc", 0xDB, instruction.Esc, instruction.EscRM, 2, false, false},
		{"jcxz", 0xE3, instruction.Jcxz, instruction.Short, 2, false, false},
		{"out port", 0xE6, instruction.Out, instruction.AccPort, 2, false, true},
		{"call near", 0xE8, instruction.Call, instruction.Near, 3, false, false},
		{"in dx", 0xED, instruction.In, instruction.AccDX, 1, true, false},
		{"jne", 0x75, instruction.Jne, instruction.Short, 2, false, false},
		{"jg", 0x7F, instruction.Jg, instruction.Short, 2, false, false},
		{"lock", 0xF0, instruction.Lock, instruction.None, 1, false, false},
		{"unknown 0x0f", 0x0F, instruction.Unknown, instruction.None, 1, false, false},
		{"unknown 0x60", 0x60, instruction.Unknown, instruction.None, 1, false, false},
		{"unknown 0xf1", 0xF1, instruction.Unknown, instruction.None, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Lookup(tt.opcode)
			assert.Equal(t, tt.kind, tmpl.Kind)
			assert.Equal(t, tt.format, tmpl.Format)
			assert.Equal(t, tt.size, tmpl.Size)
			assert.Equal(t, tt.wide, tmpl.Flags.Wide)
			assert.Equal(t, tt.dir, tmpl.Flags.Direction)
		})
	}
}

func TestLookup_Segments(t *testing.T) {
	tests := []struct {
		opcode  byte
		kind    instruction.Kind
		segment instruction.Segment
	}{
		{0x06, instruction.Push, instruction.ES},
		{0x0E, instruction.Push, instruction.CS},
		{0x17, instruction.Pop, instruction.SS},
		{0x1F, instruction.Pop, instruction.DS},
		{0x26, instruction.SegmentOverride, instruction.ES},
		{0x2E, instruction.SegmentOverride, instruction.CS},
		{0x36, instruction.SegmentOverride, instruction.SS},
		{0x3E, instruction.SegmentOverride, instruction.DS},
	}

	for _, tt := range tests {
		tmpl := Lookup(tt.opcode)
		assert.Equal(t, tt.kind, tmpl.Kind)
		assert.Equal(t, tt.segment, tmpl.Segment)
	}
}

func TestLookupExtended(t *testing.T) {
	tests := []struct {
		name     string
		opcode   byte
		sub      byte
		kind     instruction.Kind
		size     int
		far      bool
		sizeHint bool
	}{
		{"add imm8", 0x80, 0, instruction.Add, 3, false, true},
		{"cmp imm16", 0x81, 7, instruction.Cmp, 4, false, true},
		{"sub sign extended", 0x83, 5, instruction.Sub, 3, false, true},
		{"or sign extended", 0x83, 1, instruction.Unknown, 1, false, false},
		{"mov rm sr", 0x8C, 3, instruction.Mov, 2, false, false},
		{"invalid sr", 0x8E, 4, instruction.Unknown, 1, false, false},
		{"pop rm", 0x8F, 0, instruction.Pop, 2, false, true},
		{"mov rm imm16", 0xC7, 0, instruction.Mov, 4, false, true},
		{"shl by cl", 0xD3, 4, instruction.Shl, 2, false, true},
		{"shift slot 6", 0xD0, 6, instruction.Unknown, 1, false, false},
		{"test imm8", 0xF6, 0, instruction.Test, 3, false, true},
		{"idiv", 0xF7, 7, instruction.Idiv, 2, false, true},
		{"dec byte", 0xFE, 1, instruction.Dec, 2, false, true},
		{"call near indirect", 0xFF, 2, instruction.Call, 2, false, false},
		{"call far indirect", 0xFF, 3, instruction.Call, 2, true, false},
		{"jmp far indirect", 0xFF, 5, instruction.Jmp, 2, true, false},
		{"push rm", 0xFF, 6, instruction.Push, 2, false, true},
		{"ff slot 7", 0xFF, 7, instruction.Unknown, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, ok := Group(tt.opcode)
			assert.True(t, ok)
			assert.Equal(t, tt.opcode, GroupOpcode(group))

			tmpl := LookupExtended(group, tt.sub)
			assert.Equal(t, tt.kind, tmpl.Kind)
			assert.Equal(t, tt.size, tmpl.Size)
			assert.Equal(t, tt.far, tmpl.Prefixes.Far)
			assert.Equal(t, tt.sizeHint, tmpl.Prefixes.SizeHint)
		})
	}
}

func TestLookupExtended_InvalidGroup(t *testing.T) {
	assert.Equal(t, instruction.Unknown, LookupExtended(-1, 0).Kind)
	assert.Equal(t, instruction.Unknown, LookupExtended(GroupCount, 0).Kind)
}
