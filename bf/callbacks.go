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
package bf

import (
	"io"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Host callbacks exposed to generated code. purego.NewCallback gives a
// C-ABI function pointer, so the emitted MOV imm64 + CALL reaches plain
// Go with (vm handle, cell address) in the SysV argument registers.
// Return contract: 0 = success, anything else = an owned error handle
// the generated code carries to its exit path unchanged.
var (
	getbyteCallback  = purego.NewCallback(getbyte)
	putbyteCallback  = purego.NewCallback(putbyte)
	overflowCallback = purego.NewCallback(overflow)
)

// getbyte reads exactly one byte from the VM input into the cell.
// End of input is not an error; the cell keeps its previous value.
func getbyte(vmHandle, cell uintptr) uintptr {
	vm := handleValue(vmHandle).(*VM)
	var buf [1]byte
	n, err := vm.input.Read(buf[:])
	if n == 1 {
		*(*byte)(unsafe.Pointer(cell)) = buf[0]
	}
	if err != nil && err != io.EOF {
		return newHandle(&RuntimeError{Kind: RuntimeIO, Cause: err})
	}
	return 0
}

// putbyte writes exactly one byte from the cell to the VM output.
func putbyte(vmHandle, cell uintptr) uintptr {
	vm := handleValue(vmHandle).(*VM)
	buf := [1]byte{*(*byte)(unsafe.Pointer(cell))}
	if _, err := vm.output.Write(buf[:]); err != nil {
		return newHandle(&RuntimeError{Kind: RuntimeIO, Cause: err})
	}
	return 0
}

// overflow materializes the pointer fault for the out-of-line trampoline.
func overflow(vmHandle uintptr) uintptr {
	return newHandle(&RuntimeError{Kind: RuntimePointerOverflow})
}
