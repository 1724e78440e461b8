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

// bracket remembers where a still-open '[' was seen.
type bracket struct {
	line uint32
	col  uint32
}

// Compile translates source text into an IR sequence. Every character
// outside the eight operators is a comment and emits nothing. The
// bracket stack guarantees that the emitted Jz/Jnz pairs are well
// nested; compilation aborts on the first structural error.
func Compile(src string) ([]Instr, error) {
	code := make([]Instr, 0, len(src))
	var stk []bracket

	line := uint32(1)
	col := uint32(0)

	for _, ch := range src {
		col++
		switch ch {
		case '\n':
			line++
			col = 0
		case '+':
			code = append(code, AddVal(1))
		case '-':
			code = append(code, SubVal(1))
		case '>':
			code = append(code, AddPtr(1))
		case '<':
			code = append(code, SubPtr(1))
		case ',':
			code = append(code, GetByte())
		case '.':
			code = append(code, PutByte())
		case '[':
			stk = append(stk, bracket{line, col})
			code = append(code, Jz())
		case ']':
			if len(stk) == 0 {
				return nil, &CompileError{Line: line, Col: col, Kind: UnexpectedRightBracket}
			}
			stk = stk[:len(stk)-1]
			code = append(code, Jnz())
		}
	}

	// a non-empty stack means some '[' never closed; report the
	// innermost one (LIFO), not the first in the source
	if len(stk) > 0 {
		b := stk[len(stk)-1]
		return nil, &CompileError{Line: b.line, Col: b.col, Kind: UnclosedLeftBracket}
	}

	return code, nil
}
