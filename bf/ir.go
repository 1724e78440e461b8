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

import "fmt"

// Opcode enumerates the eight primitive operations of the language.
type Opcode uint8

const (
	OpAddVal  Opcode = iota // + (repeatable)
	OpSubVal                // - (repeatable)
	OpAddPtr                // > (repeatable)
	OpSubPtr                // < (repeatable)
	OpGetByte               // ,
	OpPutByte               // .
	OpJz                    // [
	OpJnz                   // ]
)

// Instr is one IR instruction. Arg is an 8-bit repetition count for the
// four arithmetic/movement opcodes ("repeat n times, wrapping at 256")
// and zero otherwise. A compiled sequence keeps its Jz/Jnz instructions
// well nested; the code generator re-validates this for IR that arrives
// from elsewhere.
type Instr struct {
	Op  Opcode
	Arg uint8
}

func AddVal(n uint8) Instr { return Instr{OpAddVal, n} }
func SubVal(n uint8) Instr { return Instr{OpSubVal, n} }
func AddPtr(n uint8) Instr { return Instr{OpAddPtr, n} }
func SubPtr(n uint8) Instr { return Instr{OpSubPtr, n} }
func GetByte() Instr       { return Instr{OpGetByte, 0} }
func PutByte() Instr       { return Instr{OpPutByte, 0} }
func Jz() Instr            { return Instr{OpJz, 0} }
func Jnz() Instr           { return Instr{OpJnz, 0} }

func (op Opcode) String() string {
	switch op {
	case OpAddVal:
		return "AddVal"
	case OpSubVal:
		return "SubVal"
	case OpAddPtr:
		return "AddPtr"
	case OpSubPtr:
		return "SubPtr"
	case OpGetByte:
		return "GetByte"
	case OpPutByte:
		return "PutByte"
	case OpJz:
		return "Jz"
	case OpJnz:
		return "Jnz"
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

func (in Instr) String() string {
	switch in.Op {
	case OpAddVal, OpSubVal, OpAddPtr, OpSubPtr:
		return fmt.Sprintf("%v(%d)", in.Op, in.Arg)
	}
	return in.Op.String()
}
