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

// Package thomharte runs the NES variant of the single-step tests created and
// maintained by Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the repository. Add the
// opcode files you want to test from the nes6502/v1 directory on Github to
// the nes6502/v1 directory in this package. The test is skipped if the
// directory does not exist.
//
// Only the final state and the write cycles of each test are compared.
// Instruction execution is not cycle stepped so the reads on the bus, which
// include dummy reads, are not checked.
package thomharte
