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

// CompileErrorKind classifies bracket-structure failures.
type CompileErrorKind int

const (
	UnclosedLeftBracket CompileErrorKind = iota
	UnexpectedRightBracket
)

func (k CompileErrorKind) String() string {
	switch k {
	case UnclosedLeftBracket:
		return "unclosed left bracket"
	case UnexpectedRightBracket:
		return "unexpected right bracket"
	}
	return fmt.Sprintf("CompileErrorKind(%d)", int(k))
}

// CompileError is a positional syntax error. Line and Col are 1-based;
// for UnclosedLeftBracket they point at the innermost still-open bracket.
type CompileError struct {
	Line uint32
	Col  uint32
	Kind CompileErrorKind
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v at line %d:%d", e.Kind, e.Line, e.Col)
}

// RuntimeErrorKind classifies failures produced during execution of
// generated code.
type RuntimeErrorKind int

const (
	// RuntimeIO: a host I/O callback failed; Cause holds the underlying error.
	RuntimeIO RuntimeErrorKind = iota
	// RuntimePointerOverflow: the data pointer left the tape bounds.
	RuntimePointerOverflow
)

// RuntimeError is created by a host callback (I/O failures) or by the
// overflow trampoline of the generated code, and crosses the native
// boundary as an owned handle.
type RuntimeError struct {
	Kind  RuntimeErrorKind
	Cause error
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case RuntimeIO:
		return fmt.Sprintf("IO: %v", e.Cause)
	case RuntimePointerOverflow:
		return "pointer overflow"
	}
	return fmt.Sprintf("RuntimeErrorKind(%d)", int(e.Kind))
}

func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// VMError unifies file I/O, compile and runtime failures for reporting
// to the caller.
type VMError struct {
	Err error
}

func (e *VMError) Error() string {
	switch e.Err.(type) {
	case *CompileError:
		return fmt.Sprintf("compile: %v", e.Err)
	case *RuntimeError:
		return fmt.Sprintf("runtime: %v", e.Err)
	}
	return fmt.Sprintf("IO: %v", e.Err)
}

func (e *VMError) Unwrap() error {
	return e.Err
}

// wrapVM wraps any non-nil error into a VMError. Errors that already are
// VMErrors pass through unchanged.
func wrapVM(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*VMError); ok {
		return err
	}
	return &VMError{Err: err}
}
