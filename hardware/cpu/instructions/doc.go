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

// Package instructions defines the instruction set of the 6502 as found in
// the NES (the 2A03). All 256 opcode values are defined. Opcodes that are not
// part of the documented instruction set are marked as Undocumented. Whether
// such an opcode can be executed is a decision for the CPU and not for this
// package.
//
// The table is built once, when the package is initialised, from a
// declarative list. The list is checked for duplicate and missing entries,
// and for entries where the byte count is inconsistent with the addressing
// mode. Any of these problems will cause a panic during initialisation.
//
// Use Lookup() to retrieve the definition for an opcode. Definitions should
// be treated as read-only.
package instructions
