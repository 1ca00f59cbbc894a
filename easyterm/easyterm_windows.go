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

//go:build windows

package easyterm

import (
	"fmt"
	"os"

	"github.com/famicore/famicore/curated"
)

// Terminal is a minimal implementation for windows. The terminal modes are
// not supported.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: terminal requires an output file")
	}
	pt.input = inputFile
	pt.output = outputFile
	return nil
}

// IsInteractive always returns false under windows.
func (pt *Terminal) IsInteractive() bool {
	return false
}

// CanonicalMode does nothing under windows.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// CBreakMode does nothing under windows.
func (pt *Terminal) CBreakMode() error {
	return nil
}

// Flush does nothing under windows.
func (pt *Terminal) Flush() error {
	return nil
}

// Width always returns 80 under windows.
func (pt *Terminal) Width() int {
	return 80
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// ReadKey waits for a single byte from the input file.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	n, err := pt.input.Read(b)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, curated.Errorf("easyterm: no key read")
	}
	return b[0], nil
}
