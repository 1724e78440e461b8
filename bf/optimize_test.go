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
	"strings"
	"testing"
)

// optimizeSource compiles and optimizes in one step.
func optimizeSource(t *testing.T, src string) []Instr {
	t.Helper()
	code, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	return Optimize(code)
}

func TestOptimizeFoldsRuns(t *testing.T) {
	code := optimizeSource(t, "[+++++]")
	assertIR(t, code, []Instr{Jz(), AddVal(5), Jnz()}, "fold")

	code = optimizeSource(t, ">>><<++--")
	assertIR(t, code, []Instr{AddPtr(3), SubPtr(2), AddVal(2), SubVal(2)}, "mixed runs")
}

func TestOptimizeIOBreaksRuns(t *testing.T) {
	code := optimizeSource(t, "++.++,++")
	assertIR(t, code, []Instr{
		AddVal(2), PutByte(), AddVal(2), GetByte(), AddVal(2),
	}, "io breaks runs")
}

func TestOptimizeKeepsNesting(t *testing.T) {
	code := optimizeSource(t, "[[->>>+<<<]]")
	assertIR(t, code, []Instr{
		Jz(), Jz(), SubVal(1), AddPtr(3), AddVal(1), SubPtr(3), Jnz(), Jnz(),
	}, "nesting")
}

// A run of 256 identical unit operations sums to 0 with 8-bit wraparound.
// The folded no-op is kept: it reproduces the wraparound of the unit
// operation itself.
func TestOptimizeWraparound(t *testing.T) {
	code := optimizeSource(t, strings.Repeat("+", 256))
	assertIR(t, code, []Instr{AddVal(0)}, "256 wraps to 0")

	code = optimizeSource(t, strings.Repeat("+", 300))
	assertIR(t, code, []Instr{AddVal(44)}, "300 wraps to 44")

	code = optimizeSource(t, strings.Repeat(">", 512))
	assertIR(t, code, []Instr{AddPtr(0)}, "512 wraps to 0")
}

func TestOptimizeIdempotent(t *testing.T) {
	code := optimizeSource(t, "++[>>><<+++.---]")
	once := make([]Instr, len(code))
	copy(once, code)
	twice := Optimize(code)
	assertIR(t, twice, once, "idempotence")
}

func TestOptimizeNeverGrows(t *testing.T) {
	for _, src := range []string{"", "+", "+[,.]", "[[]]", "++++..>><<"} {
		code, err := Compile(src)
		if err != nil {
			t.Fatal(err)
		}
		before := len(code)
		after := len(Optimize(code))
		if after > before {
			t.Errorf("optimize(%q): grew from %d to %d instructions", src, before, after)
		}
	}
}
