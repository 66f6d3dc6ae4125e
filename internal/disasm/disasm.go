// Package disasm implements the 8086 disassembler.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/disasm86/internal/cpu"
	"github.com/retroenv/disasm86/internal/instruction"
	"github.com/retroenv/disasm86/internal/options"
	"github.com/retroenv/disasm86/internal/program"
	"github.com/retroenv/disasm86/internal/render"
	"github.com/retroenv/disasm86/internal/scanner"
	"github.com/retroenv/disasm86/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	name  string // name of the image, used in the output header
	image []byte
}

// New creates a new disassembler for the passed image.
func New(logger *log.Logger, name string, image []byte, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		name:    name,
		image:   image,
	}
}

// Process disassembles the image and writes the assembly source to the writer.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) (*program.Program, error) {
	records, err := scanner.Scan(dis.image)
	if err != nil {
		return nil, fmt.Errorf("scanning image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scanning image: %w", err)
	}
	dis.logger.Debug("Image scanned",
		log.Int("bytes", len(dis.image)),
		log.Int("instructions", len(records)))

	renderer := render.New(dis.options.Origin)
	lines, err := renderer.RenderAll(ctx, records, dis.options.Workers)
	if err != nil {
		return nil, fmt.Errorf("rendering instructions: %w", err)
	}

	app := dis.convertToProgram(records, lines)
	dis.checkBranchDestinations(app)

	if dis.options.Execute {
		if err := dis.execute(app, records); err != nil {
			return nil, err
		}
	}

	opts := writer.Options{
		HexComments:    dis.options.HexComments,
		OffsetComments: dis.options.OffsetComments,
	}
	fileWriter := writer.New(app, mainWriter, opts)
	if err = fileWriter.Write(); err != nil {
		return nil, fmt.Errorf("writing app to file: %w", err)
	}
	return app, nil
}

// checkBranchDestinations logs and comments branches whose destination could not get a label.
func (dis *Disasm) checkBranchDestinations(app *program.Program) {
	for i := range app.Instructions {
		ins := &app.Instructions[i]
		target, ok := ins.Record.Target()
		if !ok || ins.Record.Flags.TargetLabel {
			continue
		}

		if target >= 0 && target < len(dis.image) {
			ins.Comment = "branch into instruction"
			dis.logger.Warn("Branch into instruction detected",
				log.Hex("offset", ins.Record.Start()),
				log.Hex("target", target))
		} else {
			ins.Comment = "branch outside of image"
			dis.logger.Debug("Branch destination outside of image",
				log.Hex("offset", ins.Record.Start()),
				log.Int("target", target))
		}
	}
}

func (dis *Disasm) convertToProgram(records []instruction.Record, lines []string) *program.Program {
	app := program.New(dis.name, dis.image)
	app.Origin = dis.options.Origin
	app.Instructions = make([]program.Instruction, len(records))

	for i, rec := range records {
		ins := program.Instruction{
			Record: rec,
			Code:   lines[i],
		}
		if label, ok := render.Label(rec); ok {
			ins.Label = label
		}
		app.Instructions[i] = ins
	}

	app.Labels = scanner.Labels(records).Sorted()

	dis.logger.Debug("Program converted",
		log.Int("labels", len(app.Labels)),
		log.String("checksum", fmt.Sprintf("%08x", app.Checksum)))
	return app
}

// execute runs all supported instructions in image order on a fresh register file.
func (dis *Disasm) execute(app *program.Program, records []instruction.Record) error {
	state := cpu.New()
	var executed, skipped int

	for _, rec := range records {
		err := state.Exec(rec)
		switch {
		case err == nil:
			executed++
		case errors.Is(err, cpu.ErrNotImplemented):
			skipped++
		default:
			return fmt.Errorf("executing instruction at offset %d: %w", rec.Offset, err)
		}
	}

	for _, reg := range state.NonZero() {
		app.Registers = append(app.Registers, program.Register{
			Name:  reg.Name,
			Value: reg.Value,
		})
	}

	dis.logger.Debug("Executed instructions",
		log.Int("executed", executed),
		log.Int("skipped", skipped))
	return nil
}
