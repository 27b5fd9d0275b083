// This file is part of Gomos6502.
//
// Gomos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gomos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gomos6502.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview provides a local HTTP server reporting Go runtime
// statistics. It exists for watching heap and goroutine behaviour during
// long emulation runs, for example a full pass of the functional conformance
// program, and is reached through the -statsview flag of the RUN mode.
//
// The package is only built in full when the statsview build constraint is
// given. Without the constraint it compiles to a stub and Available()
// returns false, so the emulator binary does not carry the chart assets by
// default.
//
// With the constraint, graphical statistics are served at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof endpoints at:
//
//	localhost:12600/debug/pprof/
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
package statsview
