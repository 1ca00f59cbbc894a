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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that are meant to be checked for by other
// packages should be stored as exported string constants. For example, the
// cpu package exports:
//
//	const IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"
//
// and a host can check for it with:
//
//	if curated.Is(err, cpu.IllegalOpcode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	e := curated.Errorf(cpu.IllegalOpcode, 0x02, 0xc000)
//	f := curated.Errorf("harness: %v", e)
//
//	curated.Has(f, cpu.IllegalOpcode) // true
//	curated.Is(f, cpu.IllegalOpcode)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	e := curated.Errorf("harness: %v", curated.Errorf("harness: trapped"))
//
// prints as "harness: trapped" and not "harness: harness: trapped". Chains
// are thought of as parts separated by the sub-string ": ", as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan).
package curated
