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

//go:build !unix

package jit

import (
	"errors"
	"runtime"
)

// ExecBuf placeholder for platforms without mmap support.
type ExecBuf struct{}

func NewExecBuf(code []byte) (*ExecBuf, error) {
	return nil, errors.New("jit: executable memory not supported on " + runtime.GOOS)
}

func (b *ExecBuf) Addr() uintptr { return 0 }
func (b *ExecBuf) Size() int     { return 0 }
func (b *ExecBuf) Close() error  { return nil }
