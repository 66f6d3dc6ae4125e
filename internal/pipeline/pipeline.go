// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/disasm86/internal/detector"
	"github.com/retroenv/disasm86/internal/disasm"
	"github.com/retroenv/disasm86/internal/loader"
	"github.com/retroenv/disasm86/internal/options"
	"github.com/retroenv/disasm86/internal/program"
	"github.com/retroenv/disasm86/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {
	format := p.detector.Detect(opts)

	image, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	return p.ExecuteWithImage(ctx, image, opts, disasmOpts, writer, format)
}

// ExecuteWithImage runs the disassembly pipeline with an image that is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, image []byte, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer, format string) (*program.Program, error) {

	switch format {
	case options.FormatCOM:
		disasmOpts.Origin = options.ComOrigin
	case options.FormatBinary:
		disasmOpts.Origin = 0
	default:
		return nil, fmt.Errorf("unsupported image format '%s'", format)
	}

	p.printInfo(opts, image, format)

	dis := disasm.New(p.logger, imageName(opts.Input), image, disasmOpts)
	result, err := dis.Process(ctx, writer)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if opts.AssembleTest {
		if closer, ok := writer.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				return nil, fmt.Errorf("closing output: %w", err)
			}
		}
		if err := verification.VerifyOutput(ctx, p.logger, opts, image); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// printInfo prints information about the image being processed.
func (p *Pipeline) printInfo(opts options.Program, image []byte, format string) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing 8086 image",
		log.String("file", opts.Input),
		log.String("format", format),
		log.Int("size", len(image)),
	)
}

func imageName(input string) string {
	if input == loader.StdinName || input == "" {
		return "stdin"
	}
	return filepath.Base(input)
}
