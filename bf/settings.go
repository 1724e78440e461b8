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
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/dc0d/onexit"
	"github.com/docker/go-units"
)

type SettingsT struct {
	TapeSize    string // human readable, e.g. "4MiB"
	Optimize    bool
	HistoryFile string
	Verbose     int
}

var Settings SettingsT = SettingsT{"4MiB", false, ".bfjit-history.tmp", 0}

var tapeSize int = DefaultTapeSize

// LoadSettings overrides Settings from a TOML file.
func LoadSettings(path string) error {
	_, err := toml.DecodeFile(path, &Settings)
	return err
}

// call this after you filled Settings
func InitSettings() error {
	n, err := units.RAMInBytes(Settings.TapeSize)
	if err != nil {
		return fmt.Errorf("bf: bad tape size %q: %w", Settings.TapeSize, err)
	}
	if n <= 0 {
		return fmt.Errorf("bf: bad tape size %q", Settings.TapeSize)
	}
	tapeSize = int(n)
	onexit.Register(func() { // close the readline instance on exit
		if ReplInstance != nil {
			ReplInstance.Close()
		}
	})
	return nil
}

// TapeSize returns the configured tape allocation in bytes.
func TapeSize() int {
	return tapeSize
}
