// This file is part of Texttool.
//
// Texttool is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Texttool is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Texttool.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended before being shown to the user.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// help prints the collected flag information with a banner naming the mode,
// followed by the sub-modes and any additional help.
func (hw *helpWriter) help(output io.Writer, path string, argsUsage string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	// the first line written by the flag package is the "Usage:" banner. the
	// remaining lines describe the flags
	lines := strings.SplitN(hw.buffer.String(), "\n", 2)
	var flags string
	if len(lines) > 1 {
		flags = lines[1]
	}

	if flags == "" && len(subModes) == 0 && argsUsage == "" {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s mode\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	banner := "Usage"
	if path != "" {
		banner = fmt.Sprintf("Usage of %s mode", path)
	}
	if argsUsage != "" {
		banner = fmt.Sprintf("%s: [flags] %s", banner, argsUsage)
	} else {
		banner = fmt.Sprintf("%s:", banner)
	}
	fmt.Fprintln(output, banner)

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
