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
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/tliron/commonlog"
	"github.com/ulikunitz/xz"

	"github.com/launix-de/bfjit/jit"
)

var log = commonlog.GetLogger("bf")

// DefaultTapeSize is the tape allocation used when no setting overrides it.
const DefaultTapeSize = 4 * 1024 * 1024

var (
	ErrClosed  = errors.New("bf: vm is closed")
	ErrRunning = errors.New("bf: vm is already running")
)

// VM owns one generated program: the sealed executable code, the tape
// and the I/O capabilities. The tape is written exclusively by the
// generated code during Run; the code region never changes after
// construction.
type VM struct {
	code    *jit.ExecBuf
	entry   uintptr
	tape    []byte
	input   io.Reader
	output  io.Writer
	handle  uintptr
	running atomic.Bool
}

// New reads a program from disk, compiles, optionally optimizes,
// generates native code and allocates a zeroed tape. Accepted inputs:
// plain source, .xz-compressed source, and precompiled .bfir images.
func New(path string, input io.Reader, output io.Writer, optimize bool) (*VM, error) {
	ir, err := LoadIR(path, optimize)
	if err != nil {
		return nil, err
	}
	return newVM(ir, input, output, TapeSize())
}

// LoadIR reads a program file into its (optionally optimized) IR form.
func LoadIR(path string, optimize bool) ([]Instr, error) {
	var ir []Instr
	var err error
	if strings.HasSuffix(path, imageSuffix) {
		ir, err = ReadImage(path)
	} else {
		var src string
		src, err = readSource(path)
		if err == nil {
			ir, err = Compile(src)
		}
	}
	if err != nil {
		return nil, wrapVM(err)
	}
	if optimize {
		before := len(ir)
		ir = Optimize(ir)
		log.Debugf("%s: optimizer folded %d instructions to %d", path, before, len(ir))
	}
	return ir, nil
}

// NewFromSource is New for in-memory source text (REPL, tests).
func NewFromSource(src string, input io.Reader, output io.Writer, optimize bool) (*VM, error) {
	ir, err := Compile(src)
	if err != nil {
		return nil, wrapVM(err)
	}
	if optimize {
		ir = Optimize(ir)
	}
	return newVM(ir, input, output, TapeSize())
}

func newVM(ir []Instr, input io.Reader, output io.Writer, tapeSize int) (*VM, error) {
	code, err := Generate(ir)
	if err != nil {
		return nil, wrapVM(err)
	}
	vm := &VM{
		code:   code,
		entry:  code.Addr(),
		tape:   make([]byte, tapeSize),
		input:  input,
		output: output,
	}
	vm.handle = newHandle(vm)
	return vm, nil
}

// Run invokes the generated entry point on the calling thread and blocks
// until the program halts or faults. The entry point takes (vm handle,
// tape start, tape end) and returns 0 or an owned error handle, which
// Run resolves, releases and surfaces as a VMError. Concurrent calls on
// the same VM are rejected; there is no cancellation — a blocking I/O
// capability blocks the run.
func (vm *VM) Run() error {
	if vm.code == nil {
		return ErrClosed
	}
	if !vm.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer vm.running.Store(false)

	start := uintptr(unsafe.Pointer(&vm.tape[0]))
	end := start + uintptr(len(vm.tape))
	ret, _, _ := purego.SyscallN(vm.entry, vm.handle, start, end)
	runtime.KeepAlive(vm)

	if ret == 0 {
		return nil
	}
	rerr := handleValue(ret).(*RuntimeError)
	deleteHandle(ret)
	return wrapVM(rerr)
}

// Reset zeroes the tape so the program can run again from a clean state.
func (vm *VM) Reset() {
	clear(vm.tape)
}

// Close releases the executable region and the VM handle. The VM cannot
// run afterwards.
func (vm *VM) Close() error {
	if vm.code == nil {
		return nil
	}
	deleteHandle(vm.handle)
	code := vm.code
	vm.code = nil
	return code.Close()
}

// readSource loads program text, transparently decompressing .xz files.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		r, err = xz.NewReader(f)
		if err != nil {
			return "", err
		}
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(src), nil
}
