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

//go:build !windows

package prompt

import (
	"github.com/pkg/term"
)

// readKey reads a single key press from the controlling terminal.
func readKey() (byte, error) {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return 0, err
	}
	defer t.Close()

	err = t.SetCbreak()
	if err != nil {
		return 0, err
	}
	defer t.Restore()

	b := make([]byte, 1)
	_, err = t.Read(b)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}
