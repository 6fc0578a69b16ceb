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

import "encoding/binary"

// UnpackNybbles splits every byte into two values, high nybble first.
func UnpackNybbles(b []byte) []uint8 {
	n := make([]uint8, 0, len(b)*2)
	for _, v := range b {
		n = append(n, v>>4, v&0x0f)
	}
	return n
}

// PackNybbles is the inverse of UnpackNybbles. An odd number of nybbles is
// padded with a zero nybble. Only the low four bits of each value are used.
func PackNybbles(n []uint8) []byte {
	b := make([]byte, (len(n)+1)/2)
	for i, v := range n {
		if i&1 == 0 {
			b[i>>1] = (v & 0x0f) << 4
		} else {
			b[i>>1] |= v & 0x0f
		}
	}
	return b
}

// PackBits packs a list of bits into bytes, most-significant bit first. The
// final byte is padded with zero bits.
func PackBits(bits []bool) []byte {
	b := make([]byte, (len(bits)+7)/8)
	for i, v := range bits {
		if v {
			b[i>>3] |= 0x80 >> (i & 7)
		}
	}
	return b
}

// PackWords packs 16 bit values as little-endian byte pairs.
func PackWords(w ...uint16) []byte {
	b := make([]byte, len(w)*2)
	for i, v := range w {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return b
}
