// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/disasm86/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	return opts, createDisasmOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: disasm86 [options] <image to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 1 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)

	switch opts.Format {
	case "", options.FormatBinary, options.FormatCOM:
	default:
		return fmt.Errorf("unsupported image format: %s. Valid options: %s, %s",
			opts.Format, options.FormatBinary, options.FormatCOM)
	}

	if opts.AssembleTest && opts.Output == "" && opts.Batch == "" {
		return errors.New("verification requires an output file, set one with -o")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler()
	disasmOptions.Workers = opts.Workers
	disasmOptions.Execute = opts.Execute
	disasmOptions.HexComments = opts.HexComments
	disasmOptions.OffsetComments = opts.Offsets
	return disasmOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input image file, - reads the image from stdin")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.StringVar(&opts.Format, "f", "", "image format (bin/com) - if not auto-detected from file extension")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling with nasm and check if it matches the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.HexComments, "hexcomments", false, "output instruction bytes as hex values in comments")
	flags.BoolVar(&opts.Offsets, "offsets", false, "output image offsets in comments")
	flags.BoolVar(&opts.Execute, "exec", false, "execute mov instructions and output the final register values")
	flags.IntVar(&opts.Workers, "workers", 1, "number of parallel instruction rendering workers")
}
