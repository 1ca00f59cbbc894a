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

// Package memorymap describes the address space seen by the CPU in the NES.
// The 64KB space is divided into areas. Some areas are mirrored and
// MapAddress() will normalise an address to the primary mirror of the area
// it falls within.
//
// The CPU itself sees only a flat address space. This package exists so that
// tools and tracing can name the areas that addresses belong to.
package memorymap
