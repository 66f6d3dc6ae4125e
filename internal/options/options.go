// Package options contains the program options.
package options

// Image formats.
const (
	FormatBinary = "bin"
	FormatCOM    = "com"
)

// ComOrigin is the load address of a .com image.
const ComOrigin = 0x100

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input image file, - reads from stdin"`
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
}

// Flags contains behavior options.
type Flags struct {
	Format       string `flag:"f" usage:"image format: bin, com (default: auto-detect)"`
	AssembleTest bool   `flag:"verify" usage:"verify output by reassembling with nasm and comparing to input"`
	Debug        bool   `flag:"debug" usage:"enable debug logging"`
	Quiet        bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	HexComments bool `flag:"hexcomments" usage:"output instruction bytes as hex values in comments"`
	Offsets     bool `flag:"offsets" usage:"output image offsets in comments"`
	Execute     bool `flag:"exec" usage:"execute mov instructions and output the final register values"`
	Workers     int  `flag:"workers" usage:"number of parallel render workers"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Origin  uint16 // load address of the image
	Workers int    // parallel render workers

	Execute        bool
	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		Workers: 1,
	}
}
