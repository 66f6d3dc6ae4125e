// Package assembler defines the assemblers that the generated output targets.
package assembler

// Nasm is the netwide assembler, the output uses its flat binary syntax.
const Nasm = "nasm"
