// Package instruction contains the data model of decoded 8086 instructions.
package instruction

// Kind identifies the operation of an instruction.
type Kind uint8

// instruction kinds, Unknown marks an opcode that has no valid decoding.
const (
	Unknown Kind = iota
	Aaa
	Aad
	Aam
	Aas
	Adc
	Add
	And
	Call
	Cbw
	Clc
	Cld
	Cli
	Cmc
	Cmp
	Cmpsb
	Cmpsw
	Cwd
	Daa
	Das
	Dec
	Div
	Esc
	Hlt
	Idiv
	Imul
	In
	Inc
	Int
	Int3
	Into
	Iret
	Ja
	Jae
	Jb
	Jbe
	Jcxz
	Je
	Jg
	Jge
	Jl
	Jle
	Jmp
	Jne
	Jno
	Jns
	Jo
	Jp
	Jpo
	Js
	Lahf
	Lds
	Lea
	Les
	Lodsb
	Lodsw
	Loop
	Loopnz
	Loopz
	Mov
	Movsb
	Movsw
	Mul
	Neg
	Nop
	Not
	Or
	Out
	Pop
	Popf
	Push
	Pushf
	Rcl
	Rcr
	Ret
	Retf
	Rol
	Ror
	Sahf
	Sar
	Sbb
	Scasb
	Scasw
	Shl
	Shr
	Stc
	Std
	Sti
	Stosb
	Stosw
	Sub
	Test
	Wait
	Xchg
	Xlat
	Xor

	// prefixes, they are folded into the instruction that follows them.
	Lock
	Rep
	Repne
	SegmentOverride

	kindCount
)

var kindNames = [kindCount]string{
	Unknown: "unknown",
	Aaa:     "aaa",
	Aad:     "aad",
	Aam:     "aam",
	Aas:     "aas",
	Adc:     "adc",
	Add:     "add",
	And:     "and",
	Call:    "call",
	Cbw:     "cbw",
	Clc:     "clc",
	Cld:     "cld",
	Cli:     "cli",
	Cmc:     "cmc",
	Cmp:     "cmp",
	Cmpsb:   "cmpsb",
	Cmpsw:   "cmpsw",
	Cwd:     "cwd",
	Daa:     "daa",
	Das:     "das",
	Dec:     "dec",
	Div:     "div",
	Esc:     "esc",
	Hlt:     "hlt",
	Idiv:    "idiv",
	Imul:    "imul",
	In:      "in",
	Inc:     "inc",
	Int:     "int",
	Int3:    "int3",
	Into:    "into",
	Iret:    "iret",
	Ja:      "ja",
	Jae:     "jae",
	Jb:      "jb",
	Jbe:     "jbe",
	Jcxz:    "jcxz",
	Je:      "je",
	Jg:      "jg",
	Jge:     "jge",
	Jl:      "jl",
	Jle:     "jle",
	Jmp:     "jmp",
	Jne:     "jne",
	Jno:     "jno",
	Jns:     "jns",
	Jo:      "jo",
	Jp:      "jp",
	Jpo:     "jpo",
	Js:      "js",
	Lahf:    "lahf",
	Lds:     "lds",
	Lea:     "lea",
	Les:     "les",
	Lodsb:   "lodsb",
	Lodsw:   "lodsw",
	Loop:    "loop",
	Loopnz:  "loopnz",
	Loopz:   "loopz",
	Mov:     "mov",
	Movsb:   "movsb",
	Movsw:   "movsw",
	Mul:     "mul",
	Neg:     "neg",
	Nop:     "nop",
	Not:     "not",
	Or:      "or",
	Out:     "out",
	Pop:     "pop",
	Popf:    "popf",
	Push:    "push",
	Pushf:   "pushf",
	Rcl:     "rcl",
	Rcr:     "rcr",
	Ret:     "ret",
	Retf:    "retf",
	Rol:     "rol",
	Ror:     "ror",
	Sahf:    "sahf",
	Sar:     "sar",
	Sbb:     "sbb",
	Scasb:   "scasb",
	Scasw:   "scasw",
	Shl:     "shl",
	Shr:     "shr",
	Stc:     "stc",
	Std:     "std",
	Sti:     "sti",
	Stosb:   "stosb",
	Stosw:   "stosw",
	Sub:     "sub",
	Test:    "test",
	Wait:    "wait",
	Xchg:    "xchg",
	Xlat:    "xlat",
	Xor:     "xor",

	Lock:            "lock",
	Rep:             "rep",
	Repne:           "repne",
	SegmentOverride: "segment",
}

// String returns the lower case assembler mnemonic of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// IsPrefix returns whether the kind is a prefix that modifies the next instruction.
func (k Kind) IsPrefix() bool {
	return k >= Lock && k <= SegmentOverride
}
