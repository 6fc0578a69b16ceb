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

package rom

import (
	"github.com/jeopardynes/texttool/errors"
)

// BitCursor steps through a byte slice one bit at a time, most-significant
// bit first.
type BitCursor struct {
	data []byte
	pos  int
}

// NewBitCursor is the preferred method of initialisation for the BitCursor
// type.
func NewBitCursor(data []byte) *BitCursor {
	return &BitCursor{data: data}
}

// Bit returns the next bit in the stream. The TruncatedInput error is
// returned if there are no more bits.
func (bc *BitCursor) Bit() (bool, error) {
	if bc.pos >= len(bc.data)*8 {
		return false, errors.New(errors.TruncatedInput, "bit stream exhausted")
	}
	b := bc.data[bc.pos>>3]&(0x80>>(bc.pos&7)) != 0
	bc.pos++
	return b, nil
}

// Consumed returns the number of bits taken from the stream so far.
func (bc *BitCursor) Consumed() int {
	return bc.pos
}

// Remaining returns the number of bits left in the stream.
func (bc *BitCursor) Remaining() int {
	return len(bc.data)*8 - bc.pos
}
