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

// Package huffman implements the prefix code used by the game to compress its
// script text. The tree layout and its serialised form must match the decoder
// in the game's machine code exactly.
//
// A tree is built from the text it will be used to encode:
//
//	tr, err := huffman.Build(text)
//
// Symbols are single bytes. The tree has no explicit root node: the two top
// level slots, low and high, are selected by the first bit of a code. Decoding
// walks from those slots one bit at a time (0 selects low, 1 selects high)
// until a leaf is reached.
//
// Building is deterministic. Symbols are ordered by frequency and equal
// frequencies are ordered by the position of the node in the tree's arena,
// which is the order in which symbols were first seen in the source text and
// then the order in which internal nodes were created. The same text always
// produces the same tree.
//
// # Serialised format
//
// The game stores a tree as a table of bytes. Each entry is either a leaf
// symbol (a value less than 0x80) or a reference to a pair of child entries
// elsewhere in the table (the high bit set, the low seven bits being the
// position of the low child shifted right by one). The high child always
// follows the low child, so pairs start at even positions.
//
// The table is scanned by the game from its end. The two top level slots are
// the last two entries of the table, and the breadth-first traversal of the
// tree is laid out in reverse from there. The size of the table is fixed by the
// game and so the serialised table is padded at the front with 0xff.
package huffman
