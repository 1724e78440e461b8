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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImageRoundtrip(t *testing.T) {
	code, err := Compile("++[>+++<-]>.")
	if err != nil {
		t.Fatal(err)
	}
	code = Optimize(code)

	path := filepath.Join(t.TempDir(), "prog"+imageSuffix)
	if err := WriteImage(path, code); err != nil {
		t.Fatal(err)
	}
	loaded, err := ReadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	assertIR(t, loaded, code, "roundtrip")
}

func TestWriteImageReportsErrors(t *testing.T) {
	code, err := Compile("+.")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "missing", "prog"+imageSuffix)
	if err := WriteImage(path, code); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}

func TestImageRejectsCorruption(t *testing.T) {
	code, err := Compile("+.")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "prog"+imageSuffix)
	if err := WriteImage(path, code); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// flip a payload byte: the checksum must catch it
	corrupted := append([]byte(nil), raw...)
	corrupted[len(corrupted)-1] ^= 0xFF
	bad := filepath.Join(t.TempDir(), "bad"+imageSuffix)
	if err := os.WriteFile(bad, corrupted, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadImage(bad); err == nil {
		t.Error("expected a corruption error, got none")
	}

	// wrong magic
	notImage := filepath.Join(t.TempDir(), "not"+imageSuffix)
	if err := os.WriteFile(notImage, []byte("++[>+++<-]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadImage(notImage); err == nil || !strings.Contains(err.Error(), "not an IR image") {
		t.Errorf("expected a magic error, got %v", err)
	}
}
