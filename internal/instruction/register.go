package instruction

var registerNames = [2][8]string{
	{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"},
	{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"},
}

// RegisterName returns the name of a general register selected by a 3 bit
// register field, wide selects the 16 bit registers.
func RegisterName(reg byte, wide bool) string {
	if wide {
		return registerNames[1][reg&7]
	}
	return registerNames[0][reg&7]
}
