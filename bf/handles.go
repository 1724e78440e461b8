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
	"sync"
	"sync/atomic"
)

// Generated code cannot hold Go pointers: VM instances and runtime error
// objects cross the native boundary as opaque nonzero integers from this
// registry. Whoever receives a handle back from native code owns it and
// must release it with deleteHandle.
var (
	handleNext atomic.Uintptr
	handles    sync.Map // uintptr -> any
)

func newHandle(v any) uintptr {
	h := handleNext.Add(1) // starts at 1, 0 stays "no error"
	handles.Store(h, v)
	return h
}

func handleValue(h uintptr) any {
	v, ok := handles.Load(h)
	if !ok {
		panic("bf: stale handle")
	}
	return v
}

func deleteHandle(h uintptr) {
	handles.Delete(h)
}
