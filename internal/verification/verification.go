// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/disasm86/internal/assembler"
	"github.com/retroenv/disasm86/internal/assembler/nasm"
	"github.com/retroenv/disasm86/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput verifies that the output file assembles to the exact input image.
func VerifyOutput(ctx context.Context, logger *log.Logger, options options.Program, image []byte) error {
	if options.Output == "" {
		return errors.New("can not verify console output")
	}

	filePart := filepath.Ext(options.Output)
	var (
		err        error
		outputFile *os.File
	)

	if options.Debug {
		outputFile, err = os.Create("debug.bin")
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", "debug.bin", err)
		}
	} else {
		outputFile, err = os.CreateTemp("", filePart+".*.bin")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		defer func() {
			_ = os.Remove(outputFile.Name())
		}()
	}
	_ = outputFile.Close()

	if err := nasm.AssembleUsingExternalApp(ctx, options.Output, outputFile.Name()); err != nil {
		return fmt.Errorf("reassembling image using %s failed: %w", assembler.Nasm, err)
	}

	destination, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	return checkBufferEqual(logger, image, destination)
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
