package disasm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/disasm86/internal/decoder"
	"github.com/retroenv/disasm86/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testImage = []byte{
	0xB9, 0x03, 0x00, // mov cx, 3
	0x26, 0x8B, 0x07, // mov ax, es:[bx]
	0x49,             // dec cx
	0x75, 0xFA,       // jne 3
	0x89, 0xC3,       // mov bx, ax
	0xC3,             // ret
}

func TestProcess(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.NewDisassembler()
	dis := New(logger, "test.bin", testImage, opts)

	var buf bytes.Buffer
	app, err := dis.Process(context.Background(), &buf)
	assert.NoError(t, err)

	expected := "; test.bin\n\nbits 16\n\n" +
		"mov cx, 3\n" +
		"label_3:\n" +
		"mov ax, es:[bx]\n" +
		"dec cx\n" +
		"jne label_3\n" +
		"mov bx, ax\n" +
		"ret\n"
	assert.Equal(t, expected, buf.String())

	assert.Len(t, app.Instructions, 6)
	assert.Equal(t, []int{3}, app.Labels)
	assert.Equal(t, "label_3", app.Instructions[1].Label)
	assert.Equal(t, len(testImage), app.Size)
	assert.Empty(t, app.Registers)
}

func TestProcess_Options(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Disassembler{
		Origin:         options.ComOrigin,
		Workers:        4,
		Execute:        true,
		HexComments:    true,
		OffsetComments: true,
	}
	dis := New(logger, "test.com", testImage, opts)

	var buf bytes.Buffer
	app, err := dis.Process(context.Background(), &buf)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "bits 16\norg 0x100\n")
	assert.Contains(t, output, "mov ax, es:[bx]                ; 0003  26 8B 07\n")
	assert.Contains(t, output, "; Final registers:\n;      cx: 0x0003 (3)\n;      ip: 0x000c (12)\n")
	assert.Equal(t, uint16(options.ComOrigin), app.Origin)
}

func TestProcess_Errors(t *testing.T) {
	logger := log.NewTestLogger(t)

	dis := New(logger, "bad.bin", []byte{0x90, 0x0F}, options.NewDisassembler())
	var buf bytes.Buffer
	app, err := dis.Process(context.Background(), &buf)
	assert.True(t, app == nil)
	assert.True(t, errors.Is(err, decoder.ErrUnknownOpcode))
	assert.Equal(t, 0, buf.Len())

	dis = New(logger, "short.bin", []byte{0x90, 0x8B}, options.NewDisassembler())
	_, err = dis.Process(context.Background(), &buf)
	assert.True(t, errors.Is(err, decoder.ErrOutOfBounds))
}

func TestProcess_Cancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dis := New(logger, "test.bin", testImage, options.NewDisassembler())
	var buf bytes.Buffer
	_, err := dis.Process(ctx, &buf)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProcess_BranchIntoInstruction(t *testing.T) {
	image := []byte{
		0xB8, 0x01, 0x00, // mov ax, 1
		0xEB, 0xFC,       // jmp 1
		0xE9, 0x00, 0x01, // jmp 264
	}

	tests := []struct {
		name     string
		origin   uint16
		expected string
	}{
		{
			name:   "binary image",
			origin: 0,
			expected: "jmp " + pad("1", 26) + "; branch into instruction\n" +
				"jmp near " + pad("264", 21) + "; branch outside of image\n",
		},
		{
			name:   "com image",
			origin: options.ComOrigin,
			expected: "jmp " + pad("257", 26) + "; branch into instruction\n" +
				"jmp near " + pad("520", 21) + "; branch outside of image\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.NewTestLogger(t)
			opts := options.NewDisassembler()
			opts.Origin = tt.origin
			dis := New(logger, "test.bin", image, opts)

			var buf bytes.Buffer
			app, err := dis.Process(context.Background(), &buf)
			assert.NoError(t, err)
			assert.Empty(t, app.Labels)
			assert.Contains(t, buf.String(), tt.expected)
			assert.Equal(t, "branch into instruction", app.Instructions[1].Comment)
			assert.Equal(t, "branch outside of image", app.Instructions[2].Comment)
			assert.Equal(t, "", app.Instructions[0].Comment)
		})
	}
}

// pad returns the operand padded to the comment column of the listing.
func pad(operand string, width int) string {
	return operand + strings.Repeat(" ", width-len(operand)+1)
}
