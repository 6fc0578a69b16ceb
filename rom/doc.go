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

// Package rom reads from and writes to the fixed-layout binary image of the
// game. All addressing is by absolute byte offset into the image file.
//
// The image is loaded once with a Loader and then read through a Reader:
//
//	ld := rom.NewLoader("jeopardy.nes")
//	err := ld.Load()
//	if err != nil {
//		return err
//	}
//	rd := rom.NewReader(ld.Data)
//	ptr, err := rd.ReadWord(0x8012)
//
// Text is stored as a bit stream, most-significant bit first. ReadBitsBlock()
// returns a BitCursor over a fixed window of the image, from which bits are
// consumed one at a time.
//
// Writing is not incremental. Writes are collected in a WriteQueue, each one
// checked against its own target size as it is added. Flush() then checks every
// element against the length of the destination image before any byte is
// written. A failure in either check means the destination is left untouched.
// Flush() gives no guarantee if the process dies while writing. FlushAtomic()
// writes a shadow copy of the image and renames it over the destination.
package rom
