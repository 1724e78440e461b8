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
	"errors"

	"github.com/launix-de/bfjit/jit"
)

// Register plan for the whole generated function. No register allocator:
// the language has exactly one value live across instructions (the data
// pointer) plus three invariants loaded in the prologue. This stops
// being valid the moment a second live value is introduced.
//
//	R12  VM handle
//	R13  tape start (lower bound)
//	R14  tape end (upper bound, exclusive)
//	RCX  data pointer
//	R15  data pointer save slot around callback calls
const (
	regVM   = jit.RegR12
	regLo   = jit.RegR13
	regHi   = jit.RegR14
	regPtr  = jit.RegRCX
	regSave = jit.RegR15
)

// ErrUnbalancedLoops means the IR sequence violated the Jz/Jnz nesting
// invariant. Compile never produces such a sequence; this guards IR
// from other sources (images, tests).
var ErrUnbalancedLoops = errors.New("bf: unbalanced loop instructions in IR")

// Generate translates an IR sequence into executable machine code.
//
// The emitted function has the SysV amd64 signature
//
//	func(vm, tapeStart, tapeEnd uintptr) uintptr
//
// and returns 0 on success or an owned error handle. Pointer bounds are
// checked only on pointer movement; byte arithmetic relies on the bounds
// established by the most recent movement.
func Generate(code []Instr) (*jit.ExecBuf, error) {
	w := jit.NewWriter()
	overflowL := w.ReserveLabel()
	exitL := w.ReserveLabel()

	// prologue: save callee-saved registers, keep RSP 16-byte aligned
	// for the callback calls, then pin the arguments
	// (SysV: RDI = vm, RSI = tape start, RDX = tape end)
	w.EmitPushReg(jit.RegR12)
	w.EmitPushReg(jit.RegR13)
	w.EmitPushReg(jit.RegR14)
	w.EmitPushReg(jit.RegR15)
	w.EmitSubRspImm8(8)
	w.EmitMovRegReg(regVM, jit.RegRDI)
	w.EmitMovRegReg(regLo, jit.RegRSI)
	w.EmitMovRegReg(regHi, jit.RegRDX)
	w.EmitMovRegReg(regPtr, jit.RegRSI) // ptr = tape start

	type labelPair struct {
		entry int
		exit  int
	}
	var loops []labelPair

	for _, in := range code {
		switch in.Op {
		case OpAddPtr:
			w.EmitAddRegImm32(regPtr, int32(in.Arg)) // ptr += n
			w.EmitJcc(jit.CcC, overflowL)            // wrapped past 2^64
			w.EmitCmpRegReg(regPtr, regHi)
			w.EmitJcc(jit.CcAE, overflowL) // ptr >= tape end
		case OpSubPtr:
			w.EmitSubRegImm32(regPtr, int32(in.Arg)) // ptr -= n
			w.EmitJcc(jit.CcC, overflowL)            // wrapped below 0
			w.EmitCmpRegReg(regPtr, regLo)
			w.EmitJcc(jit.CcC, overflowL) // ptr < tape start
		case OpAddVal:
			w.EmitAddByteMemImm8(regPtr, in.Arg) // *ptr += n
		case OpSubVal:
			w.EmitSubByteMemImm8(regPtr, in.Arg) // *ptr -= n
		case OpGetByte:
			emitIOCall(w, getbyteCallback, exitL)
		case OpPutByte:
			emitIOCall(w, putbyteCallback, exitL)
		case OpJz:
			entry := w.ReserveLabel()
			exit := w.ReserveLabel()
			loops = append(loops, labelPair{entry, exit})
			w.EmitCmpByteMemImm8(regPtr, 0)
			w.EmitJcc(jit.CcE, exit) // *ptr == 0: skip the loop
			w.MarkLabel(entry)
		case OpJnz:
			if len(loops) == 0 {
				return nil, ErrUnbalancedLoops
			}
			lp := loops[len(loops)-1]
			loops = loops[:len(loops)-1]
			w.EmitCmpByteMemImm8(regPtr, 0)
			w.EmitJcc(jit.CcNE, lp.entry) // *ptr != 0: loop again
			w.MarkLabel(lp.exit)
		}
	}
	if len(loops) != 0 {
		return nil, ErrUnbalancedLoops
	}

	// fall-through: success
	w.EmitXorReg(jit.RegRAX)
	w.EmitJmp(exitL)

	// out-of-line overflow trampoline: fetch a PointerOverflow handle
	w.MarkLabel(overflowL)
	w.EmitMovRegReg(jit.RegRDI, regVM)
	w.EmitMovRegImm64(jit.RegRAX, uint64(overflowCallback))
	w.EmitCallReg(jit.RegRAX)

	// common exit: RAX holds 0 or the error handle
	w.MarkLabel(exitL)
	w.EmitAddRspImm8(8)
	w.EmitPopReg(jit.RegR15)
	w.EmitPopReg(jit.RegR14)
	w.EmitPopReg(jit.RegR13)
	w.EmitPopReg(jit.RegR12)
	w.EmitRet()

	w.ResolveFixups()
	buf, err := jit.NewExecBuf(w.Code)
	if err != nil {
		return nil, err
	}
	log.Debugf("generated %d code bytes for %d instructions", buf.Size(), len(code))
	return buf, nil
}

// emitIOCall emits a callback invocation for GetByte/PutByte. The data
// pointer is saved in R15 across the call; on a nonzero signal the error
// handle in RAX is carried straight to the exit path without restoring
// anything further.
func emitIOCall(w *jit.Writer, callback uintptr, exitL int) {
	w.EmitMovRegReg(regSave, regPtr)
	w.EmitMovRegReg(jit.RegRDI, regVM)
	w.EmitMovRegReg(jit.RegRSI, regPtr)
	w.EmitMovRegImm64(jit.RegRAX, uint64(callback))
	w.EmitCallReg(jit.RegRAX)
	w.EmitTestRegReg(jit.RegRAX, jit.RegRAX)
	w.EmitJcc(jit.CcNE, exitL)
	w.EmitMovRegReg(regPtr, regSave)
}
