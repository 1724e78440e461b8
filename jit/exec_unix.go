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

//go:build unix

package jit

import (
	"errors"
	"syscall"
	"unsafe"
)

// ExecBuf is a mmap'd region holding finalized machine code. The mapping
// is read+execute once sealed; it never becomes writable again.
type ExecBuf struct {
	mem  []byte
	size int // bytes of code, <= len(mem)
}

// NewExecBuf copies code into a fresh anonymous mapping and seals it
// read+execute. The returned buffer must be released with Close.
func NewExecBuf(code []byte) (*ExecBuf, error) {
	if len(code) == 0 {
		return nil, errors.New("jit: empty code buffer")
	}
	page := syscall.Getpagesize()
	n := (len(code) + page - 1) & ^(page - 1)
	mem, err := syscall.Mmap(-1, 0, n, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_PRIVATE|syscall.MAP_ANON)
	if err != nil {
		return nil, err
	}
	copy(mem, code)
	if err := syscall.Mprotect(mem, syscall.PROT_READ|syscall.PROT_EXEC); err != nil {
		syscall.Munmap(mem)
		return nil, err
	}
	return &ExecBuf{mem: mem, size: len(code)}, nil
}

// Addr returns the entry address of the code.
func (b *ExecBuf) Addr() uintptr {
	return uintptr(unsafe.Pointer(&b.mem[0]))
}

// Size returns the number of code bytes.
func (b *ExecBuf) Size() int {
	return b.size
}

// Close unmaps the executable region. The entry address is invalid
// afterwards.
func (b *ExecBuf) Close() error {
	if b.mem == nil {
		return nil
	}
	mem := b.mem
	b.mem = nil
	return syscall.Munmap(mem)
}
