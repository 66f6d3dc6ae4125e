package opcode

import (
	. "github.com/retroenv/disasm86/internal/instruction"
)

// arithmetic kinds in the order of the opcode blocks 0x00-0x3F and of the
// reg field of the immediate groups.
var arithmetic = [8]Kind{Add, Or, Adc, Sbb, And, Sub, Xor, Cmp}

var conditionalJumps = [16]Kind{Jo, Jno, Jb, Jae, Je, Jne, Jbe, Ja, Js, Jns, Jp, Jpo, Jl, Jge, Jle, Jg}

func buildPrimary() [256]Template {
	var t [256]Template
	for i := range t {
		t[i] = unknown
	}

	for i, kind := range arithmetic {
		base := byte(i << 3)
		t[base] = newTemplate(kind, RMReg, 2)
		t[base+1] = newTemplate(kind, RMReg, 2).wide()
		t[base+2] = newTemplate(kind, RMReg, 2).direction()
		t[base+3] = newTemplate(kind, RMReg, 2).wide().direction()
		t[base+4] = newTemplate(kind, AccImm, 2)
		t[base+5] = newTemplate(kind, AccImm, 3).wide()
	}

	for seg := ES; seg <= DS; seg++ {
		base := byte(seg) << 3
		t[base+6] = newTemplate(Push, SR, 1).wide().segment(seg)
		if seg != CS {
			t[base+7] = newTemplate(Pop, SR, 1).wide().segment(seg)
		}
		t[0x26+base] = newTemplate(SegmentOverride, None, 1).segment(seg)
	}

	t[0x27] = newTemplate(Daa, None, 1)
	t[0x2F] = newTemplate(Das, None, 1)
	t[0x37] = newTemplate(Aaa, None, 1)
	t[0x3F] = newTemplate(Aas, None, 1)

	for reg := range byte(8) {
		t[0x40+reg] = newTemplate(Inc, Reg, 1).wide()
		t[0x48+reg] = newTemplate(Dec, Reg, 1).wide()
		t[0x50+reg] = newTemplate(Push, Reg, 1).wide()
		t[0x58+reg] = newTemplate(Pop, Reg, 1).wide()
		t[0xB0+reg] = newTemplate(Mov, RegImm, 2)
		t[0xB8+reg] = newTemplate(Mov, RegImm, 3).wide()
		t[0xD8+reg] = newTemplate(Esc, EscRM, 2)
	}

	for i, kind := range conditionalJumps {
		t[0x70+i] = newTemplate(kind, Short, 2)
	}

	for _, op := range groupOpcodes {
		t[op] = newTemplate(Unknown, Extended, 2)
	}

	t[0x84] = newTemplate(Test, RMReg, 2)
	t[0x85] = newTemplate(Test, RMReg, 2).wide()
	t[0x86] = newTemplate(Xchg, RMReg, 2)
	t[0x87] = newTemplate(Xchg, RMReg, 2).wide()
	t[0x88] = newTemplate(Mov, RMReg, 2)
	t[0x89] = newTemplate(Mov, RMReg, 2).wide()
	t[0x8A] = newTemplate(Mov, RMReg, 2).direction()
	t[0x8B] = newTemplate(Mov, RMReg, 2).wide().direction()
	t[0x8D] = newTemplate(Lea, RMReg, 2).wide().direction().memoryOnly()

	t[0x90] = newTemplate(Nop, None, 1)
	for reg := byte(1); reg < 8; reg++ {
		t[0x90+reg] = newTemplate(Xchg, AccReg, 1).wide()
	}
	t[0x98] = newTemplate(Cbw, None, 1)
	t[0x99] = newTemplate(Cwd, None, 1)
	t[0x9A] = newTemplate(Call, Far, 5)
	t[0x9B] = newTemplate(Wait, None, 1)
	t[0x9C] = newTemplate(Pushf, None, 1)
	t[0x9D] = newTemplate(Popf, None, 1)
	t[0x9E] = newTemplate(Sahf, None, 1)
	t[0x9F] = newTemplate(Lahf, None, 1)

	t[0xA0] = newTemplate(Mov, AccMem, 3)
	t[0xA1] = newTemplate(Mov, AccMem, 3).wide()
	t[0xA2] = newTemplate(Mov, AccMem, 3).direction()
	t[0xA3] = newTemplate(Mov, AccMem, 3).wide().direction()
	t[0xA4] = newTemplate(Movsb, None, 1)
	t[0xA5] = newTemplate(Movsw, None, 1).wide()
	t[0xA6] = newTemplate(Cmpsb, None, 1)
	t[0xA7] = newTemplate(Cmpsw, None, 1).wide()
	t[0xA8] = newTemplate(Test, AccImm, 2)
	t[0xA9] = newTemplate(Test, AccImm, 3).wide()
	t[0xAA] = newTemplate(Stosb, None, 1)
	t[0xAB] = newTemplate(Stosw, None, 1).wide()
	t[0xAC] = newTemplate(Lodsb, None, 1)
	t[0xAD] = newTemplate(Lodsw, None, 1).wide()
	t[0xAE] = newTemplate(Scasb, None, 1)
	t[0xAF] = newTemplate(Scasw, None, 1).wide()

	t[0xC2] = newTemplate(Ret, Imm, 3).wide()
	t[0xC3] = newTemplate(Ret, None, 1)
	t[0xC4] = newTemplate(Les, RMReg, 2).wide().direction().memoryOnly()
	t[0xC5] = newTemplate(Lds, RMReg, 2).wide().direction().memoryOnly()
	t[0xCA] = newTemplate(Retf, Imm, 3).wide()
	t[0xCB] = newTemplate(Retf, None, 1)
	t[0xCC] = newTemplate(Int3, None, 1)
	t[0xCD] = newTemplate(Int, Imm, 2)
	t[0xCE] = newTemplate(Into, None, 1)
	t[0xCF] = newTemplate(Iret, None, 1)

	// aam and aad carry the number base as second byte
	t[0xD4] = newTemplate(Aam, None, 2)
	t[0xD5] = newTemplate(Aad, None, 2)
	t[0xD7] = newTemplate(Xlat, None, 1)

	t[0xE0] = newTemplate(Loopnz, Short, 2)
	t[0xE1] = newTemplate(Loopz, Short, 2)
	t[0xE2] = newTemplate(Loop, Short, 2)
	t[0xE3] = newTemplate(Jcxz, Short, 2)
	t[0xE4] = newTemplate(In, AccPort, 2)
	t[0xE5] = newTemplate(In, AccPort, 2).wide()
	t[0xE6] = newTemplate(Out, AccPort, 2).direction()
	t[0xE7] = newTemplate(Out, AccPort, 2).wide().direction()
	t[0xE8] = newTemplate(Call, Near, 3)
	t[0xE9] = newTemplate(Jmp, Near, 3)
	t[0xEA] = newTemplate(Jmp, Far, 5)
	t[0xEB] = newTemplate(Jmp, Short, 2)
	t[0xEC] = newTemplate(In, AccDX, 1)
	t[0xED] = newTemplate(In, AccDX, 1).wide()
	t[0xEE] = newTemplate(Out, AccDX, 1).direction()
	t[0xEF] = newTemplate(Out, AccDX, 1).wide().direction()

	t[0xF0] = newTemplate(Lock, None, 1)
	t[0xF2] = newTemplate(Repne, None, 1)
	t[0xF3] = newTemplate(Rep, None, 1)
	t[0xF4] = newTemplate(Hlt, None, 1)
	t[0xF5] = newTemplate(Cmc, None, 1)
	t[0xF8] = newTemplate(Clc, None, 1)
	t[0xF9] = newTemplate(Stc, None, 1)
	t[0xFA] = newTemplate(Cli, None, 1)
	t[0xFB] = newTemplate(Sti, None, 1)
	t[0xFC] = newTemplate(Cld, None, 1)
	t[0xFD] = newTemplate(Std, None, 1)

	return t
}
