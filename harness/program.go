// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package harness

import (
	"os"
	"path/filepath"

	"github.com/famicore/famicore/curated"
)

// Program is a flat binary image and the information required to run it.
type Program struct {
	Name string
	Data []uint8

	// address at which Data is loaded into memory
	Load uint16

	// initial value of the PC. if ResetVector is true then the PC is taken
	// from the reset vector in the image and Entry is ignored
	Entry       uint16
	ResetVector bool

	// the address that indicates the end of a successful run. only used if
	// HasSuccess is true
	Success    uint16
	HasSuccess bool
}

// LoadProgram reads a flat binary image from a file. The Entry, Success and
// ResetVector fields should be set by the caller as required.
func LoadProgram(filename string, load uint16) (Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Program{}, curated.Errorf("harness: %v", err)
	}
	return Program{
		Name:  filepath.Base(filename),
		Data:  data,
		Load:  load,
		Entry: load,
	}, nil
}
