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
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pierrec/lz4/v4"
)

// IR image file format: magic, version, CRC32 of the CBOR payload,
// then the LZ4-compressed CBOR-encoded instruction sequence. Images
// skip the compile step but still go through code generation, which
// re-validates loop nesting.
const imageSuffix = ".bfir"

var imageMagic = [4]byte{'B', 'F', 'I', 'R'}

const imageVersion uint32 = 1

// WriteImage serializes an IR sequence to path.
func WriteImage(path string, code []Instr) error {
	payload, err := cbor.Marshal(code)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(imageMagic[:]); err != nil {
		f.Close()
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, imageVersion); err != nil {
		f.Close()
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, crc32.ChecksumIEEE(payload)); err != nil {
		f.Close()
		return err
	}
	zw := lz4.NewWriter(f)
	if _, err := zw.Write(payload); err != nil {
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	// Close errors matter here: the compressor tail may still be buffered
	// and a truncated image would only fail at read time.
	return f.Close()
}

// ReadImage loads an IR sequence from path, verifying magic, version
// and checksum.
func ReadImage(path string) ([]Instr, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return nil, err
	}
	if magic != imageMagic {
		return nil, fmt.Errorf("bf: %s is not an IR image", path)
	}
	var version, sum uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != imageVersion {
		return nil, fmt.Errorf("bf: unsupported IR image version %d", version)
	}
	if err := binary.Read(f, binary.LittleEndian, &sum); err != nil {
		return nil, err
	}
	payload, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(payload) != sum {
		return nil, fmt.Errorf("bf: IR image %s is corrupted (checksum mismatch)", path)
	}
	var code []Instr
	if err := cbor.Unmarshal(payload, &code); err != nil {
		return nil, err
	}
	return code, nil
}
