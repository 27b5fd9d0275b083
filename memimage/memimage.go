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

// Package memimage assembles the initial memory image from a list of files.
//
// The list format is:
//
//	path[:load_addr],path[:load_addr],...
//
// where load_addr is an unadorned 16 bit hex number (0000-ffff). Load
// addresses must increase and the loaded files must not overlap. Gaps
// between files are filled with zero, as is the remainder of the address
// space after the last file.
package memimage

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hexworth/gomos6502/hardware/memory"
	"github.com/hexworth/gomos6502/logger"
)

// Read assembles a full sized memory image from the supplied file list.
func Read(fileList string) ([]byte, error) {
	image := make([]byte, 0, memory.MaxMemorySize)

	for _, entry := range strings.Split(fileList, ",") {
		path, loadAddr, hasAddr := strings.Cut(entry, ":")
		if path == "" {
			return nil, fmt.Errorf("memimage: unexpected format of the memory file list")
		}

		chunk, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("memimage: %w", err)
		}
		logger.Logf("memimage", "read %#04x bytes from %s", len(chunk), path)

		if hasAddr {
			addr, err := strconv.ParseUint(loadAddr, 16, 16)
			if err != nil {
				return nil, fmt.Errorf("memimage: load address %s isn't an unadorned 16-bit hex number (0000-ffff)", loadAddr)
			}
			if len(image) > int(addr) {
				return nil, fmt.Errorf("memimage: load addresses must increase")
			}

			// fill the gap
			image = append(image, make([]byte, int(addr)-len(image))...)
		}

		logger.Logf("memimage", "loading %s at %#04x", path, len(image))
		image = append(image, chunk...)
	}

	if len(image) > memory.MaxMemorySize {
		return nil, fmt.Errorf("memimage: loaded %#04x bytes, maximum memory size is %#04x bytes",
			len(image), memory.MaxMemorySize)
	}

	// fill the remainder of the address space
	image = append(image, make([]byte, memory.MaxMemorySize-len(image))...)

	return image, nil
}
