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

// Package memory provides reference implementations of the cpubus.Memory
// interface.
//
// RAM is a flat 64KB address space with no mirroring and no I/O. It is
// suitable for running test programs, such as functional test ROMs, that
// expect nothing more than writable memory and the three interrupt vectors.
//
// Recorder wraps any implementation of cpubus.Memory and records every
// access made through it. This is useful for asserting the bus behaviour of
// an instruction, for example the dummy write of a read-modify-write
// instruction.
package memory
