/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package jit

// Reg represents a hardware register index.
type Reg uint8

// AMD64 general purpose registers.
//
// SysV amd64 calling convention: integer/pointer args in RDI, RSI, RDX,
// RCX, R8, R9; return value in RAX; RBX, RBP, R12-R15 are callee-saved.
const (
	RegRAX Reg = 0
	RegRCX Reg = 1
	RegRDX Reg = 2
	RegRBX Reg = 3
	RegRSP Reg = 4
	RegRBP Reg = 5
	RegRSI Reg = 6
	RegRDI Reg = 7
	RegR8  Reg = 8
	RegR9  Reg = 9
	RegR10 Reg = 10
	RegR11 Reg = 11
	RegR12 Reg = 12
	RegR13 Reg = 13
	RegR14 Reg = 14
	RegR15 Reg = 15
)

// Condition code constants for EmitJcc.
const (
	CcC  byte = 0x02 // JC / JB  (CF=1, unsigned <)
	CcAE byte = 0x03 // JAE      (CF=0, unsigned >=)
	CcE  byte = 0x04 // JE / JZ  (ZF=1)
	CcNE byte = 0x05 // JNE / JNZ (ZF=0)
)

// EmitMovRegReg emits MOV dst, src (64-bit GPR to GPR).
func (w *Writer) EmitMovRegReg(dst, src Reg) {
	w.emitAluRegReg(0x89, dst, src)
}

// EmitMovRegImm64 emits MOV reg, imm64.
func (w *Writer) EmitMovRegImm64(dst Reg, imm uint64) {
	rex := byte(0x48)
	if dst >= 8 {
		rex |= 0x01 // REX.B
	}
	w.EmitBytes(rex, 0xB8|byte(dst&7))
	w.EmitU64(imm)
}

// EmitAddRegImm32 emits ADD r64, sign-extended imm32.
func (w *Writer) EmitAddRegImm32(dst Reg, imm int32) {
	w.emitAluRegImm32(0x00, dst, imm) // /0 = ADD
}

// EmitSubRegImm32 emits SUB r64, sign-extended imm32.
func (w *Writer) EmitSubRegImm32(dst Reg, imm int32) {
	w.emitAluRegImm32(0x05, dst, imm) // /5 = SUB
}

// EmitCmpRegReg emits CMP a, b (64-bit).
func (w *Writer) EmitCmpRegReg(a, b Reg) {
	w.emitAluRegReg(0x39, a, b)
}

// EmitTestRegReg emits TEST a, b (64-bit).
func (w *Writer) EmitTestRegReg(a, b Reg) {
	w.emitAluRegReg(0x85, a, b)
}

// EmitXorReg emits XOR r32, r32 (zeros the full 64-bit register).
func (w *Writer) EmitXorReg(r Reg) {
	if r >= 8 {
		w.EmitBytes(0x45, 0x31, 0xC0|(byte(r&7)<<3)|byte(r&7))
	} else {
		w.EmitBytes(0x31, 0xC0|(byte(r)<<3)|byte(r))
	}
}

// EmitAddByteMemImm8 emits ADD BYTE [base], imm8.
func (w *Writer) EmitAddByteMemImm8(base Reg, imm uint8) {
	w.emitByteMemImm8(0x00, base, imm) // /0 = ADD
}

// EmitSubByteMemImm8 emits SUB BYTE [base], imm8.
func (w *Writer) EmitSubByteMemImm8(base Reg, imm uint8) {
	w.emitByteMemImm8(0x05, base, imm) // /5 = SUB
}

// EmitCmpByteMemImm8 emits CMP BYTE [base], imm8.
func (w *Writer) EmitCmpByteMemImm8(base Reg, imm uint8) {
	w.emitByteMemImm8(0x07, base, imm) // /7 = CMP
}

// EmitJcc emits a conditional jump with a rel32 fixup.
func (w *Writer) EmitJcc(cc byte, label int) {
	w.EmitBytes(0x0F, 0x80|cc)
	w.AddFixup(label, 4)
	w.EmitU32(0) // placeholder
}

// EmitJmp emits an unconditional JMP rel32.
func (w *Writer) EmitJmp(label int) {
	w.EmitByte(0xE9)
	w.AddFixup(label, 4)
	w.EmitU32(0) // placeholder
}

// EmitCallReg emits CALL r64 (indirect near call).
func (w *Writer) EmitCallReg(r Reg) {
	if r >= 8 {
		w.EmitByte(0x41) // REX.B
	}
	w.EmitBytes(0xFF, 0xD0|byte(r&7)) // FF /2
}

// EmitPushReg emits PUSH r64.
func (w *Writer) EmitPushReg(r Reg) {
	if r >= 8 {
		w.EmitByte(0x41) // REX.B
	}
	w.EmitByte(0x50 | byte(r&7))
}

// EmitPopReg emits POP r64.
func (w *Writer) EmitPopReg(r Reg) {
	if r >= 8 {
		w.EmitByte(0x41) // REX.B
	}
	w.EmitByte(0x58 | byte(r&7))
}

// EmitSubRspImm8 emits SUB RSP, imm8 (stack adjustment).
func (w *Writer) EmitSubRspImm8(imm uint8) {
	w.EmitBytes(0x48, 0x83, 0xEC, imm)
}

// EmitAddRspImm8 emits ADD RSP, imm8 (stack adjustment).
func (w *Writer) EmitAddRspImm8(imm uint8) {
	w.EmitBytes(0x48, 0x83, 0xC4, imm)
}

// EmitRet emits RET.
func (w *Writer) EmitRet() {
	w.EmitByte(0xC3)
}

// emitAluRegReg emits a REX.W ALU op: <opcode> r/m64, r64
// opcode: 0x01=ADD, 0x29=SUB, 0x39=CMP, 0x85=TEST, 0x89=MOV
func (w *Writer) emitAluRegReg(opcode byte, dst, src Reg) {
	rex := byte(0x48)
	if src >= 8 {
		rex |= 0x04 // REX.R
	}
	if dst >= 8 {
		rex |= 0x01 // REX.B
	}
	modrm := byte(0xC0) | (byte(src&7) << 3) | byte(dst&7)
	w.EmitBytes(rex, opcode, modrm)
}

// emitAluRegImm32 emits the 81 /digit group: <op> r64, imm32.
func (w *Writer) emitAluRegImm32(digit byte, dst Reg, imm int32) {
	rex := byte(0x48)
	if dst >= 8 {
		rex |= 0x01 // REX.B
	}
	modrm := byte(0xC0) | (digit << 3) | byte(dst&7)
	w.EmitBytes(rex, 0x81, modrm)
	w.EmitU32(uint32(imm))
}

// emitByteMemImm8 emits the 80 /digit group on a byte memory operand:
// <op> BYTE [base], imm8. Handles the RSP/R12 SIB and RBP/R13 disp8
// encoding quirks.
func (w *Writer) emitByteMemImm8(digit byte, base Reg, imm uint8) {
	if base >= 8 {
		w.EmitByte(0x41) // REX.B
	}
	baseEnc := byte(base & 7)
	switch baseEnc {
	case 4: // RSP/R12 needs SIB
		w.EmitBytes(0x80, (digit<<3)|baseEnc, 0x24, imm)
	case 5: // RBP/R13 always needs a displacement
		w.EmitBytes(0x80, 0x40|(digit<<3)|baseEnc, 0x00, imm)
	default:
		w.EmitBytes(0x80, (digit<<3)|baseEnc, imm)
	}
}
