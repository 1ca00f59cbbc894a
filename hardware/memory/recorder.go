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

package memory

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Access is a single access on the bus.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("W %04x %02x", a.Address, a.Data)
	}
	return fmt.Sprintf("R %04x %02x", a.Address, a.Data)
}

// Recorder wraps an implementation of cpubus.Memory and records every access
// made through it.
type Recorder struct {
	mem      cpubus.Memory
	Accesses []Access
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(mem cpubus.Memory) *Recorder {
	return &Recorder{mem: mem}
}

// Read is an implementation of cpubus.Memory.
func (r *Recorder) Read(address uint16) uint8 {
	data := r.mem.Read(address)
	r.Accesses = append(r.Accesses, Access{Address: address, Data: data})
	return data
}

// Write is an implementation of cpubus.Memory.
func (r *Recorder) Write(address uint16, data uint8) {
	r.mem.Write(address, data)
	r.Accesses = append(r.Accesses, Access{Address: address, Data: data, Write: true})
}

// Peek passes through to the wrapped memory if it supports peeking. Peeking
// is not recorded.
func (r *Recorder) Peek(address uint16) uint8 {
	if p, ok := r.mem.(interface{ Peek(uint16) uint8 }); ok {
		return p.Peek(address)
	}
	return 0
}

// Reset forgets all recorded accesses.
func (r *Recorder) Reset() {
	r.Accesses = r.Accesses[:0]
}

// Writes returns only the recorded write accesses.
func (r *Recorder) Writes() []Access {
	var w []Access
	for _, a := range r.Accesses {
		if a.Write {
			w = append(w, a)
		}
	}
	return w
}

func (r *Recorder) String() string {
	s := strings.Builder{}
	for _, a := range r.Accesses {
		s.WriteString(a.String())
		s.WriteString("\n")
	}
	return s.String()
}
