package instruction

// Format defines the operand layout of an instruction encoding.
type Format uint8

// operand formats.
const (
	None     Format = iota // no operands
	RM                     // single r/m operand
	RMReg                  // r/m and register, swapped by the direction flag
	RMImm                  // r/m and immediate
	RMSR                   // r/m and segment register, swapped by the direction flag
	Shift                  // r/m and a shift count of 1 or cl
	Reg                    // 16 bit register encoded in the opcode
	RegImm                 // register encoded in the opcode and immediate
	SR                     // segment register encoded in the opcode
	AccImm                 // accumulator and immediate
	AccPort                // accumulator and 8 bit port number
	AccDX                  // accumulator and dx port register
	AccReg                 // accumulator and 16 bit register encoded in the opcode
	AccMem                 // accumulator and direct memory address
	Imm                    // single immediate
	Short                  // 8 bit relative branch
	Near                   // 16 bit relative branch
	Far                    // absolute segment:offset pointer
	EscRM                  // coprocessor escape with r/m operand
	Extended               // the modrm reg field selects the real encoding from a group
)

// HasModRM returns whether the encoding contains a modrm byte after the opcode.
func (f Format) HasModRM() bool {
	switch f {
	case RM, RMReg, RMImm, RMSR, Shift, EscRM, Extended:
		return true
	default:
		return false
	}
}

// IsBranch returns whether the format encodes a relative branch destination.
func (f Format) IsBranch() bool {
	return f == Short || f == Near
}

// Segment is a segment register.
type Segment uint8

// segment registers in encoding order.
const (
	ES Segment = iota
	CS
	SS
	DS
)

var segmentNames = [...]string{"es", "cs", "ss", "ds"}

func (s Segment) String() string {
	return segmentNames[s&3]
}
