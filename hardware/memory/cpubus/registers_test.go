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

package cpubus_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/test"
)

func TestSymbol(t *testing.T) {
	r, ok := cpubus.Symbol(0x2002)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, cpubus.PPUSTATUS)

	// mirror of PPUSTATUS
	r, ok = cpubus.Symbol(0x3ffa)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, cpubus.PPUSTATUS)

	r, ok = cpubus.Symbol(0x4016)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, cpubus.JOY1)

	// RAM and cartridge space have no symbols
	_, ok = cpubus.Symbol(0x0002)
	test.ExpectFailure(t, ok)
	_, ok = cpubus.Symbol(0xc000)
	test.ExpectFailure(t, ok)

	// unused APU address
	_, ok = cpubus.Symbol(0x4009)
	test.ExpectFailure(t, ok)
}
