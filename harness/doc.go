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

// Package harness runs flat binary test programs on the CPU with a
// reference 64KB memory.
//
// A program ends when the PC reaches the program's success address. Most
// 6502 test programs (the Klaus Dormann functional tests among them) signal
// the end of the test, successful or otherwise, by jumping to the
// instruction itself. The harness treats a PC that does not change after an
// instruction as a trap. A trap at the success address is a pass and a trap
// anywhere else is reported with the Trapped error. Programs without a
// success address pass on the first trap.
//
// Run() checks the context it is given every few instructions so a program
// that never ends can be stopped from outside.
//
// RunBatch() runs several programs concurrently. Each program has its own
// CPU and memory.
package harness
