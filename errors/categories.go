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

// Errno identifies the category of an error.
type Errno int

// List of error numbers.
const (
	// image and document files
	NotFound Errno = iota
	IOError
	OutOfBounds

	// huffman codec
	InsufficientAlphabet
	TreeTooLarge
	ReferenceOffsetInvalid
	OffsetOutOfRange
	SymbolOutOfRange
	TruncatedInput
	UnknownSymbol

	// text blocks
	ShapeMismatch
	EmbeddedTerminator

	// configuration and interchange document
	ConfigInvalid
	DocumentInvalid
)

var names = map[Errno]string{
	NotFound:               "NotFound",
	IOError:                "IOError",
	OutOfBounds:            "OutOfBounds",
	InsufficientAlphabet:   "InsufficientAlphabet",
	TreeTooLarge:           "TreeTooLarge",
	ReferenceOffsetInvalid: "ReferenceOffsetInvalid",
	OffsetOutOfRange:       "OffsetOutOfRange",
	SymbolOutOfRange:       "SymbolOutOfRange",
	TruncatedInput:         "TruncatedInput",
	UnknownSymbol:          "UnknownSymbol",
	ShapeMismatch:          "ShapeMismatch",
	EmbeddedTerminator:     "EmbeddedTerminator",
	ConfigInvalid:          "ConfigInvalid",
	DocumentInvalid:        "DocumentInvalid",
}

func (errno Errno) String() string {
	if s, ok := names[errno]; ok {
		return s
	}
	return "UnknownErrno"
}
