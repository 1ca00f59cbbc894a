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

package registers

import "fmt"

// PowerOnSP is the value of the stack pointer after the reset sequence.
// The sequence decrements SP three times from zero without writing to the
// stack.
const PowerOnSP = uint8(0xfd)

// File is the complete register file of the CPU.
type File struct {
	PC     ProgramCounter
	A      Register
	X      Register
	Y      Register
	SP     StackPointer
	Status StatusRegister
}

// NewFile returns a register file in the power-on state.
func NewFile() File {
	f := File{
		A: NewRegister(0, "A"),
		X: NewRegister(0, "X"),
		Y: NewRegister(0, "Y"),
	}
	f.PowerOn()
	return f
}

// PowerOn puts the register file into the state found after the reset
// sequence at power on. The PC is not touched.
func (f *File) PowerOn() {
	f.A.Load(0)
	f.X.Load(0)
	f.Y.Load(0)
	f.SP.Load(PowerOnSP)
	f.Status.Reset()
}

func (f File) String() string {
	return fmt.Sprintf("%s=%s A=%s X=%s Y=%s P=%02x %s=%s [%s]",
		f.PC.Label(), f.PC, f.A, f.X, f.Y,
		f.Status.Value(), f.SP.Label(), f.SP, f.Status)
}
