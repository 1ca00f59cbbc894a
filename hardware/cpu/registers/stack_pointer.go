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

// StackPage is the fixed memory page addressed by the stack pointer.
const StackPage = uint16(0x0100)

// StackPointer is the 8 bit SP register. The value is always an offset into
// the stack page. Incrementing and decrementing wraps within 8 bits without
// affecting the page, which is how the hardware behaves: stack overflow is
// never detected.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the 8 bit offset.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full 16 bit address in the stack page.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment the stack pointer.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer.
func (sp *StackPointer) Decrement() {
	sp.value--
}
