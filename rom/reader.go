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
	"encoding/binary"
	"fmt"

	"github.com/jeopardynes/texttool/errors"
)

// BitsWindow is the number of bytes made available to a BitCursor by
// ReadBitsBlock(). No text block in the image is larger than this.
const BitsWindow = 0x4000

// TextBankOffset is added to every word read by ReadWordsBlock(). Pointers
// in the image are relative to the text bank, which starts after the 16 byte
// file header.
const TextBankOffset = 0x10

// Reader provides random access to the loaded image data.
type Reader struct {
	data []byte
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the size of the image in bytes.
func (rd *Reader) Len() int {
	return len(rd.data)
}

func (rd *Reader) region(offset uint32, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.New(errors.IOError, fmt.Sprintf("negative region size (%d)", size))
	}
	end := uint64(offset) + uint64(size)
	if end > uint64(len(rd.data)) {
		return nil, errors.New(errors.IOError, fmt.Sprintf("region %#05x-%#05x is beyond end of image (%#05x)", offset, end, len(rd.data)))
	}
	return rd.data[offset:end], nil
}

// ReadWord reads a little-endian 16 bit value.
func (rd *Reader) ReadWord(offset uint32) (uint16, error) {
	b, err := rd.region(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadBytesBlock returns a copy of size bytes starting at offset.
func (rd *Reader) ReadBytesBlock(offset uint32, size int) ([]byte, error) {
	b, err := rd.region(offset, size)
	if err != nil {
		return nil, err
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c, nil
}

// ReadNybblesBlock reads sizeInNybbles/2 bytes and splits each byte into its
// high and low nybble, in that order.
func (rd *Reader) ReadNybblesBlock(offset uint32, sizeInNybbles int) ([]uint8, error) {
	b, err := rd.region(offset, sizeInNybbles/2)
	if err != nil {
		return nil, err
	}
	return UnpackNybbles(b), nil
}

// ReadBitsBlock returns a BitCursor over the BitsWindow bytes starting at
// offset. The window is shortened if it would extend beyond the end of the
// image.
func (rd *Reader) ReadBitsBlock(offset uint32) (*BitCursor, error) {
	size := BitsWindow
	if uint64(offset)+uint64(size) > uint64(len(rd.data)) {
		if uint64(offset) >= uint64(len(rd.data)) {
			return nil, errors.New(errors.IOError, fmt.Sprintf("bit block at %#05x is beyond end of image", offset))
		}
		size = len(rd.data) - int(offset)
	}
	b, err := rd.region(offset, size)
	if err != nil {
		return nil, err
	}
	return NewBitCursor(b), nil
}

// ReadWordsBlock reads count little-endian words starting at tableOffset. The
// TextBankOffset is added to every word.
func (rd *Reader) ReadWordsBlock(tableOffset uint32, count int) ([]uint16, error) {
	b, err := rd.region(tableOffset, count*2)
	if err != nil {
		return nil, err
	}
	w := make([]uint16, count)
	for i := range w {
		w[i] = binary.LittleEndian.Uint16(b[i*2:]) + TextBankOffset
	}
	return w, nil
}
