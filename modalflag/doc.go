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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each
// mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(), which
// takes no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TEST", "STEP")
//	_, _ = md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, in the same way as the build and test modes of the go
// command. The first sub-mode in the list is the default and is selected if
// the first argument is not a sub-mode. Sub-mode comparisons are case
// insensitive.
//
// After the mode has been selected, NewMode() prepares the Modes struct for
// the flags of that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		entry := md.AddAddress("entry", 0xc000, "entry address")
//		_, _ = md.Parse()
//		...
//	}
//
// Addresses are accepted in hexadecimal, with or without a "0x" or "$"
// prefix.
package modalflag
