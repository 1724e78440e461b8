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

import "testing"

// encodings cross-checked against an external assembler
func TestAmd64Encodings(t *testing.T) {
	cases := []struct {
		name     string
		emit     func(w *Writer)
		expected []byte
	}{
		{"mov r12, rdi", func(w *Writer) { w.EmitMovRegReg(RegR12, RegRDI) }, []byte{0x49, 0x89, 0xFC}},
		{"mov rcx, rsi", func(w *Writer) { w.EmitMovRegReg(RegRCX, RegRSI) }, []byte{0x48, 0x89, 0xF1}},
		{"mov rdi, r12", func(w *Writer) { w.EmitMovRegReg(RegRDI, RegR12) }, []byte{0x4C, 0x89, 0xE7}},
		{"mov rax, imm64", func(w *Writer) { w.EmitMovRegImm64(RegRAX, 0x1122334455667788) },
			[]byte{0x48, 0xB8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
		{"mov r15, imm64", func(w *Writer) { w.EmitMovRegImm64(RegR15, 1) },
			[]byte{0x49, 0xBF, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"add rcx, 5", func(w *Writer) { w.EmitAddRegImm32(RegRCX, 5) },
			[]byte{0x48, 0x81, 0xC1, 0x05, 0x00, 0x00, 0x00}},
		{"sub rcx, 5", func(w *Writer) { w.EmitSubRegImm32(RegRCX, 5) },
			[]byte{0x48, 0x81, 0xE9, 0x05, 0x00, 0x00, 0x00}},
		{"cmp rcx, r14", func(w *Writer) { w.EmitCmpRegReg(RegRCX, RegR14) }, []byte{0x4C, 0x39, 0xF1}},
		{"cmp rcx, r13", func(w *Writer) { w.EmitCmpRegReg(RegRCX, RegR13) }, []byte{0x4C, 0x39, 0xE9}},
		{"test rax, rax", func(w *Writer) { w.EmitTestRegReg(RegRAX, RegRAX) }, []byte{0x48, 0x85, 0xC0}},
		{"xor eax, eax", func(w *Writer) { w.EmitXorReg(RegRAX) }, []byte{0x31, 0xC0}},
		{"xor r15d, r15d", func(w *Writer) { w.EmitXorReg(RegR15) }, []byte{0x45, 0x31, 0xFF}},
		{"add byte [rcx], 3", func(w *Writer) { w.EmitAddByteMemImm8(RegRCX, 3) }, []byte{0x80, 0x01, 0x03}},
		{"sub byte [rcx], 3", func(w *Writer) { w.EmitSubByteMemImm8(RegRCX, 3) }, []byte{0x80, 0x29, 0x03}},
		{"cmp byte [rcx], 0", func(w *Writer) { w.EmitCmpByteMemImm8(RegRCX, 0) }, []byte{0x80, 0x39, 0x00}},
		{"add byte [r13], 1", func(w *Writer) { w.EmitAddByteMemImm8(RegR13, 1) },
			[]byte{0x41, 0x80, 0x45, 0x00, 0x01}},
		{"add byte [r12], 1", func(w *Writer) { w.EmitAddByteMemImm8(RegR12, 1) },
			[]byte{0x41, 0x80, 0x04, 0x24, 0x01}},
		{"push r12", func(w *Writer) { w.EmitPushReg(RegR12) }, []byte{0x41, 0x54}},
		{"push rax", func(w *Writer) { w.EmitPushReg(RegRAX) }, []byte{0x50}},
		{"pop r12", func(w *Writer) { w.EmitPopReg(RegR12) }, []byte{0x41, 0x5C}},
		{"call rax", func(w *Writer) { w.EmitCallReg(RegRAX) }, []byte{0xFF, 0xD0}},
		{"sub rsp, 8", func(w *Writer) { w.EmitSubRspImm8(8) }, []byte{0x48, 0x83, 0xEC, 0x08}},
		{"add rsp, 8", func(w *Writer) { w.EmitAddRspImm8(8) }, []byte{0x48, 0x83, 0xC4, 0x08}},
		{"ret", func(w *Writer) { w.EmitRet() }, []byte{0xC3}},
	}
	for _, c := range cases {
		w := NewWriter()
		c.emit(w)
		assertCode(t, w, c.expected, c.name)
	}
}
