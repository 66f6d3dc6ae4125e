// Package loader handles image file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/disasm86/internal/options"
	"golang.org/x/term"
)

// StdinName is the input name that reads the image from standard input.
const StdinName = "-"

// ErrTerminalInput is returned when the image should be read from an interactive terminal.
var ErrTerminalInput = errors.New("refusing to read image from a terminal, pipe the image into stdin")

// Loader handles loading image files from disk or stdin.
type Loader struct {
	stdin *os.File
}

// New creates a new image loader.
func New() *Loader {
	return &Loader{
		stdin: os.Stdin,
	}
}

// Load reads the complete image named by the input option.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	if opts.Input == StdinName {
		return l.loadStdin()
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return LoadFromReader(file)
}

func (l *Loader) loadStdin() ([]byte, error) {
	if term.IsTerminal(int(l.stdin.Fd())) {
		return nil, ErrTerminalInput
	}
	return LoadFromReader(l.stdin)
}

// LoadFromReader reads an image from the reader.
func LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}
	return data, nil
}
