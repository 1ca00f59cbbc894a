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

// Package logger is the central log for the emulation. Log entries are
// tagged with the originating component and a detail string. Consecutive
// identical entries are collapsed into one entry with a repeat count.
//
// The package level functions operate on a single central logger:
//
//	logger.Logf(logger.Allow, "cpu", "tolerating undocumented opcode %#02x", opcode)
//
// The Permission interface allows the caller to decide whether a log entry
// should be made at all. Use logger.Allow when the entry should always be
// made.
//
// Loggers are safe to use from more than one goroutine.
package logger
