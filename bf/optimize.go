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

// Optimize folds maximal runs of identical arithmetic/movement
// instructions into single counted instructions, in place, and returns
// the truncated sequence. Counts sum with 8-bit wraparound, so a run
// whose length is a multiple of 256 folds to a count of 0 — the same
// no-op the unit operations would have produced one step at a time.
// I/O and loop instructions pass through untouched, which keeps the
// Jz/Jnz nesting intact. Idempotent.
func Optimize(code []Instr) []Instr {
	pc := 0
	for i := 0; i < len(code); {
		in := code[i]
		switch in.Op {
		case OpAddVal, OpSubVal, OpAddPtr, OpSubPtr:
			n := in.Arg
			j := i + 1
			for j < len(code) && code[j].Op == in.Op {
				n += code[j].Arg // wraps at 256
				j++
			}
			code[pc] = Instr{Op: in.Op, Arg: n}
			pc++
			i = j
		default:
			code[pc] = code[i]
			pc++
			i++
		}
	}
	return code[:pc]
}
