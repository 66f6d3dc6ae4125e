package instruction

// Flags are the encoding bits that control operand interpretation.
type Flags struct {
	Wide        bool // operands are 16 bit
	Direction   bool // operand order is swapped
	SignExtend  bool // 8 bit immediate is sign extended to 16 bit
	ShiftByCL   bool // shift or rotate count is taken from cl
	MemoryOnly  bool // r/m operand has to address memory
	Label       bool // instruction is the destination of a branch
	TargetLabel bool // branch destination is a labeled instruction
}

// Prefixes contains the prefix state that applies to an instruction.
// SizeHint and Far are implied by the encoding, the others come from prefix bytes.
type Prefixes struct {
	Lock     bool
	Rep      bool
	RepNE    bool
	Override bool    // segment override is set
	Segment  Segment // segment of the override
	SizeHint bool    // memory operand needs a byte or word keyword
	Far      bool    // operand is a far pointer
	Count    int     // number of prefix bytes folded into the instruction
}

// Fields are the register and addressing fields extracted from an encoding.
type Fields struct {
	Mod byte    // addressing mode
	Reg byte    // register, or extended opcode selector
	RM  byte    // register or memory operand selector
	SR  Segment // segment register
	Esc byte    // 6 bit coprocessor opcode
}

// Record is a single decoded instruction.
type Record struct {
	Kind     Kind
	Format   Format
	Flags    Flags
	Prefixes Prefixes
	Fields   Fields

	Offset  int    // image offset of the opcode byte
	Size    int    // encoded size starting at Offset
	Disp    int16  // memory displacement or relative branch distance
	Data    uint16 // immediate, direct address, port or far pointer offset
	DataExt uint16 // far pointer segment
	Bytes   []byte // encoded bytes including folded prefixes
}

// Start returns the offset of the first byte of the instruction including prefixes.
func (r Record) Start() int {
	return r.Offset - r.Prefixes.Count
}

// Next returns the offset of the byte following the instruction.
func (r Record) Next() int {
	return r.Offset + r.Size
}

// Target returns the absolute destination of a relative branch.
func (r Record) Target() (int, bool) {
	if !r.Format.IsBranch() {
		return 0, false
	}
	return r.Next() + int(r.Disp), true
}

// IsMemory returns whether the r/m operand addresses memory.
func (r Record) IsMemory() bool {
	return r.Format.HasModRM() && r.Fields.Mod != 3
}

// IsDirectAddress returns whether the r/m operand is a 16 bit direct address.
func (r Record) IsDirectAddress() bool {
	return r.Fields.Mod == 0 && r.Fields.RM == 6
}
