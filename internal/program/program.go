// Package program represents a disassembled 8086 image.
package program

import (
	"hash/crc32"

	"github.com/retroenv/disasm86/internal/instruction"
)

// Instruction is a decoded instruction with its assembly output.
type Instruction struct {
	Record  instruction.Record
	Label   string // name of label if identified as a branch destination
	Code    string // asm output of this instruction
	Comment string
}

// Register is the value of a register after executing the image.
type Register struct {
	Name  string
	Value uint16
}

// Program defines a disassembled image.
type Program struct {
	Name     string // name of the image, printed in the header comment
	Origin   uint16 // load address of the image, 0x100 for .com images
	Size     int    // image size in bytes
	Checksum uint32 // CRC32 of the image

	Instructions []Instruction
	Labels       []int      // offsets of all defined labels in ascending order
	Registers    []Register // register values after execution, empty if not executed
}

// New creates a new program for the given image.
func New(name string, image []byte) *Program {
	return &Program{
		Name:     name,
		Size:     len(image),
		Checksum: crc32.ChecksumIEEE(image),
	}
}
