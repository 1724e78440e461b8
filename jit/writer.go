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

import "encoding/binary"

// Writer is the platform-independent code emitter scaffold.
// Architecture-specific emit methods are defined in <arch>.go files.
// Code is emitted into a plain byte buffer; relative fixups stay valid
// when the finished buffer is copied into executable memory.
type Writer struct {
	Code   []byte
	labels []int32
	fixups []Fixup
}

// Fixup records a forward reference to be patched by ResolveFixups.
type Fixup struct {
	CodePos int32 // position of the placeholder in Code
	Label   int   // target label
	Size    uint8 // placeholder width: 4 = rel32
}

func NewWriter() *Writer {
	return &Writer{Code: make([]byte, 0, 4096)}
}

// Pos returns the current write position.
func (w *Writer) Pos() int32 {
	return int32(len(w.Code))
}

// DefineLabel allocates a new label bound to the current write position.
func (w *Writer) DefineLabel() int {
	w.labels = append(w.labels, w.Pos())
	return len(w.labels) - 1
}

// ReserveLabel allocates a label ID for later placement via MarkLabel.
func (w *Writer) ReserveLabel() int {
	w.labels = append(w.labels, -1)
	return len(w.labels) - 1
}

// MarkLabel binds a previously reserved label to the current position.
func (w *Writer) MarkLabel(id int) {
	w.labels[id] = w.Pos()
}

// AddFixup records a forward reference at the current position. The
// caller emits the placeholder bytes immediately afterwards.
func (w *Writer) AddFixup(label int, size uint8) {
	w.fixups = append(w.fixups, Fixup{CodePos: w.Pos(), Label: label, Size: size})
}

// ResolveFixups patches all recorded references after code generation.
// Referencing a label that was never marked is a caller bug.
func (w *Writer) ResolveFixups() {
	for _, f := range w.fixups {
		target := w.labels[f.Label]
		if target < 0 {
			panic("jit: undefined label")
		}
		offset := target - (f.CodePos + int32(f.Size))
		binary.LittleEndian.PutUint32(w.Code[f.CodePos:], uint32(offset))
	}
	w.fixups = w.fixups[:0]
}

// EmitByte appends a single byte.
func (w *Writer) EmitByte(b byte) {
	w.Code = append(w.Code, b)
}

// EmitBytes appends raw bytes.
func (w *Writer) EmitBytes(bs ...byte) {
	w.Code = append(w.Code, bs...)
}

// EmitU32 appends a little-endian uint32.
func (w *Writer) EmitU32(v uint32) {
	w.Code = binary.LittleEndian.AppendUint32(w.Code, v)
}

// EmitU64 appends a little-endian uint64.
func (w *Writer) EmitU64(v uint64) {
	w.Code = binary.LittleEndian.AppendUint64(w.Code, v)
}
