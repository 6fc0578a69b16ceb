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

package errors

var messages = map[Errno]string{
	// image and document files
	NotFound:    "not found: %v",
	IOError:     "i/o error: %v",
	OutOfBounds: "out of bounds: %v",

	// huffman codec
	InsufficientAlphabet:   "insufficient alphabet: %d distinct symbols, at least two required",
	TreeTooLarge:           "tree too large: %d nodes cannot fit in %d bytes",
	ReferenceOffsetInvalid: "reference offset invalid: child pair at odd position %d",
	OffsetOutOfRange:       "offset out of range: %v",
	SymbolOutOfRange:       "symbol out of range: %#02x cannot be stored as a tree leaf",
	TruncatedInput:         "truncated input: %v",
	UnknownSymbol:          "unknown symbol: %q is not in the tree alphabet",

	// text blocks
	ShapeMismatch:      "shape mismatch: %v",
	EmbeddedTerminator: "embedded terminator: %q",

	// configuration and interchange document
	ConfigInvalid:   "invalid configuration: %v",
	DocumentInvalid: "invalid document: %v",
}
