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

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/jeopardynes/texttool/errors"
)

// isYes returns true if the key is an affirmative answer.
func isYes(k byte) bool {
	return unicode.ToLower(rune(k)) == 'y'
}

// Confirm writes the question to output and waits for a single key press on
// the terminal. The answer is true only for the 'y' key.
func Confirm(output io.Writer, question string) (bool, error) {
	fmt.Fprintf(output, "%s [y/N] ", question)

	k, err := readKey()
	if err != nil {
		fmt.Fprintln(output)
		return false, errors.New(errors.IOError, err)
	}

	if unicode.IsPrint(rune(k)) {
		fmt.Fprintf(output, "%c\n", k)
	} else {
		fmt.Fprintln(output)
	}

	return isYes(k), nil
}

// ConfirmReader is like Confirm but the answer is read from the input
// reader. The first non-space character of the first line is the answer.
func ConfirmReader(input io.Reader, output io.Writer, question string) (bool, error) {
	fmt.Fprintf(output, "%s [y/N] ", question)

	r := bufio.NewReader(input)
	for {
		k, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, errors.New(errors.IOError, err)
		}
		if k == '\n' {
			return false, nil
		}
		if !unicode.IsSpace(rune(k)) {
			return isYes(k), nil
		}
	}
}
