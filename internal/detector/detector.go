// Package detector handles image format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/disasm86/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles image format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the image format from options or file auto-detection.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Format != "" {
		return opts.Format
	}

	format := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected format",
		log.String("format", format),
		log.String("file", opts.Input))
	return format
}

// detectFromFile determines the image format based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".com" {
		return options.FormatCOM
	}
	// flat binaries have no header and are loaded at offset 0
	return options.FormatBinary
}
