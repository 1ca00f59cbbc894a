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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/famicore/famicore/curated"
)

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	// input is a real terminal. if it is not then the termios functions are
	// not used
	interactive bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
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
	pt.interactive = term.IsTerminal(int(pt.input.Fd()))

	if !pt.interactive {
		return nil
	}

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// IsInteractive returns true if the input file is a terminal.
func (pt *Terminal) IsInteractive() bool {
	return pt.interactive
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !pt.interactive {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode. Keys are available to
// ReadKey() without waiting for the return key and are not echoed.
func (pt *Terminal) CBreakMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !pt.interactive {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	if !pt.interactive {
		return nil
	}
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// Width returns the number of columns in the output terminal. Returns a
// default of 80 if the output is not a terminal.
func (pt *Terminal) Width() int {
	w, _, err := term.GetSize(int(pt.output.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
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
