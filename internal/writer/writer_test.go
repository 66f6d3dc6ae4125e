package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/disasm86/internal/instruction"
	"github.com/retroenv/disasm86/internal/program"
	"github.com/retroenv/retrogolib/assert"
)

func testProgram() *program.Program {
	app := program.New("test.bin", []byte{0x89, 0xD8, 0x75, 0xFC})
	app.Instructions = []program.Instruction{
		{
			Record: instruction.Record{Offset: 0, Size: 2, Bytes: []byte{0x89, 0xD8}},
			Label:  "label_0",
			Code:   "mov ax, bx",
		},
		{
			Record: instruction.Record{Offset: 2, Size: 2, Bytes: []byte{0x75, 0xFC}},
			Code:   "jne label_0",
		},
	}
	app.Labels = []int{0}
	return app
}

func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		origin   uint16
		expected string
	}{
		{
			name:     "plain listing",
			expected: "; test.bin\n\nbits 16\n\nlabel_0:\nmov ax, bx\njne label_0\n",
		},
		{
			name:     "com origin",
			origin:   0x100,
			expected: "; test.bin\n\nbits 16\norg 0x100\n\nlabel_0:\nmov ax, bx\njne label_0\n",
		},
		{
			name:    "offset and hex comments",
			options: Options{HexComments: true, OffsetComments: true},
			expected: "; test.bin\n\nbits 16\n\nlabel_0:\n" +
				"mov ax, bx                     ; 0000  89 D8\n" +
				"jne label_0                    ; 0002  75 FC\n",
		},
		{
			name:    "hex comments",
			options: Options{HexComments: true},
			expected: "; test.bin\n\nbits 16\n\nlabel_0:\n" +
				"mov ax, bx                     ; 89 D8\n" +
				"jne label_0                    ; 75 FC\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testProgram()
			app.Origin = tt.origin

			var buf bytes.Buffer
			w := New(app, &buf, tt.options)
			assert.NoError(t, w.Write())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriter_PrefixedInstructionComment(t *testing.T) {
	app := program.New("test.bin", nil)
	app.Instructions = []program.Instruction{
		{
			Record: instruction.Record{
				Offset:   4,
				Size:     2,
				Prefixes: instruction.Prefixes{Count: 1},
				Bytes:    []byte{0x26, 0x8B, 0x07},
			},
			Code: "mov ax, es:[bx]",
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, New(app, &buf, Options{HexComments: true, OffsetComments: true}).Write())
	assert.Contains(t, buf.String(), "mov ax, es:[bx]                ; 0003  26 8B 07\n")
}

func TestWriter_Registers(t *testing.T) {
	app := testProgram()
	app.Registers = []program.Register{
		{Name: "ax", Value: 1},
		{Name: "es", Value: 0xFFFF},
	}

	var buf bytes.Buffer
	assert.NoError(t, New(app, &buf, Options{}).Write())
	assert.Contains(t, buf.String(), "jne label_0\n\n; Final registers:\n"+
		";      ax: 0x0001 (1)\n"+
		";      es: 0xffff (65535)\n")
}
