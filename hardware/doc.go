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

// Package hardware is the base package for the emulation of the NES CPU. The
// sub-packages contain the processor (the 2A03 core without decimal mode) and
// the memory it is attached to.
//
// The cpu package executes one instruction at a time against anything that
// satisfies the cpubus.Memory interface. The memory package provides a flat
// 64KB RAM and a recorder for watching bus activity.
package hardware
