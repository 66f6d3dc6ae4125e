package opcode

import (
	. "github.com/retroenv/disasm86/internal/instruction"
)

var shifts = [8]Kind{Rol, Ror, Rcl, Rcr, Shl, Shr, Unknown, Sar}

func buildExtended() [GroupCount][8]Template {
	var groups [GroupCount][8]Template
	for i := range groups {
		for j := range groups[i] {
			groups[i][j] = unknown
		}
	}

	for sub, kind := range arithmetic {
		groups[0][sub] = newTemplate(kind, RMImm, 3).sizeHint()
		groups[1][sub] = newTemplate(kind, RMImm, 4).wide().sizeHint()

		// or, and, xor have no variant with an immediate that gets sign extended
		if kind == Or || kind == And || kind == Xor {
			continue
		}
		groups[2][sub] = newTemplate(kind, RMImm, 3).sizeHint()
		groups[3][sub] = newTemplate(kind, RMImm, 3).wide().signExtend().sizeHint()
	}

	for seg := ES; seg <= DS; seg++ {
		groups[4][seg] = newTemplate(Mov, RMSR, 2).wide().segment(seg)
		groups[5][seg] = newTemplate(Mov, RMSR, 2).wide().direction().segment(seg)
	}

	groups[6][0] = newTemplate(Pop, RM, 2).wide().sizeHint()
	groups[7][0] = newTemplate(Mov, RMImm, 3).sizeHint()
	groups[8][0] = newTemplate(Mov, RMImm, 4).wide().sizeHint()

	for sub, kind := range shifts {
		if kind == Unknown {
			continue
		}
		groups[9][sub] = newTemplate(kind, Shift, 2).sizeHint()
		groups[10][sub] = newTemplate(kind, Shift, 2).wide().sizeHint()
		groups[11][sub] = newTemplate(kind, Shift, 2).shiftByCL().sizeHint()
		groups[12][sub] = newTemplate(kind, Shift, 2).wide().shiftByCL().sizeHint()
	}

	groups[13][0] = newTemplate(Test, RMImm, 3).sizeHint()
	groups[14][0] = newTemplate(Test, RMImm, 4).wide().sizeHint()
	for sub, kind := range [8]Kind{Unknown, Unknown, Not, Neg, Mul, Imul, Div, Idiv} {
		if kind == Unknown {
			continue
		}
		groups[13][sub] = newTemplate(kind, RM, 2).sizeHint()
		groups[14][sub] = newTemplate(kind, RM, 2).wide().sizeHint()
	}

	groups[15][0] = newTemplate(Inc, RM, 2).sizeHint()
	groups[15][1] = newTemplate(Dec, RM, 2).sizeHint()

	groups[16][0] = newTemplate(Inc, RM, 2).wide().sizeHint()
	groups[16][1] = newTemplate(Dec, RM, 2).wide().sizeHint()
	groups[16][2] = newTemplate(Call, RM, 2).wide()
	groups[16][3] = newTemplate(Call, RM, 2).wide().memoryOnly().far()
	groups[16][4] = newTemplate(Jmp, RM, 2).wide()
	groups[16][5] = newTemplate(Jmp, RM, 2).wide().memoryOnly().far()
	groups[16][6] = newTemplate(Push, RM, 2).wide().sizeHint()

	return groups
}
