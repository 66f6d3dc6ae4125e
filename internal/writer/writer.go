// Package writer outputs a disassembled program as nasm compatible assembly source.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/disasm86/internal/program"
)

// Writer implements the assembly file writing.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexComments    bool
	OffsetComments bool
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the complete program.
func (w Writer) Write() error {
	if err := w.WriteCommentHeader(); err != nil {
		return err
	}

	for _, ins := range w.app.Instructions {
		if err := w.writeLabel(ins); err != nil {
			return err
		}
		if err := w.writeCodeLine(ins); err != nil {
			return err
		}
	}

	return w.writeRegisters()
}

// WriteCommentHeader writes the image name comment and the assembler directives.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; %s\n\nbits 16\n", w.app.Name); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if w.app.Origin != 0 {
		if _, err := fmt.Fprintf(w.writer, "org 0x%x\n", w.app.Origin); err != nil {
			return fmt.Errorf("writing origin: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w Writer) writeLabel(ins program.Instruction) error {
	if ins.Label == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", ins.Label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(ins program.Instruction) error {
	comment := w.comment(ins)

	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "%s\n", ins.Code)
	} else {
		_, err = fmt.Fprintf(w.writer, "%-30s ; %s\n", ins.Code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w Writer) comment(ins program.Instruction) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("%04X", ins.Record.Start()))
	}
	if w.options.HexComments {
		parts = append(parts, fmt.Sprintf("% X", ins.Record.Bytes))
	}
	if ins.Comment != "" {
		parts = append(parts, ins.Comment)
	}
	return strings.Join(parts, "  ")
}

func (w Writer) writeRegisters() error {
	if len(w.app.Registers) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w.writer, "\n; Final registers:\n"); err != nil {
		return fmt.Errorf("writing register header: %w", err)
	}
	for _, reg := range w.app.Registers {
		if _, err := fmt.Fprintf(w.writer, ";      %s: 0x%04x (%d)\n", reg.Name, reg.Value, reg.Value); err != nil {
			return fmt.Errorf("writing register: %w", err)
		}
	}
	return nil
}
