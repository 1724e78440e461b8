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

//go:build !amd64

package bf

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/launix-de/bfjit/jit"
)

var ErrUnbalancedLoops = errors.New("bf: unbalanced loop instructions in IR")

// Generate is only implemented for amd64.
func Generate(code []Instr) (*jit.ExecBuf, error) {
	return nil, fmt.Errorf("bf: code generation not supported on %s", runtime.GOARCH)
}
