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

package huffman

import (
	"strings"

	"github.com/jeopardynes/texttool/errors"
)

// BitSource is the source of bits for the decoding functions. rom.BitCursor
// satisfies this interface.
type BitSource interface {
	Bit() (bool, error)
}

// DecodeSymbol reads bits until a leaf is reached and returns the leaf's
// symbol.
func (t *Tree) DecodeSymbol(bits BitSource) (byte, error) {
	b, err := bits.Bit()
	if err != nil {
		return 0, errors.New(errors.TruncatedInput, err)
	}

	idx := t.low
	if b {
		idx = t.high
	}

	for !t.nodes[idx].leaf {
		b, err = bits.Bit()
		if err != nil {
			return 0, errors.New(errors.TruncatedInput, err)
		}
		if b {
			idx = t.nodes[idx].high
		} else {
			idx = t.nodes[idx].low
		}
	}

	return t.nodes[idx].symbol, nil
}

// DecodeString decodes symbols until the Terminator is found. The returned
// string does not include the Terminator.
func (t *Tree) DecodeString(bits BitSource) (string, error) {
	var s strings.Builder
	for {
		c, err := t.DecodeSymbol(bits)
		if err != nil {
			return s.String(), err
		}
		if c == Terminator {
			return s.String(), nil
		}
		s.WriteByte(c)
	}
}

// EncodeSymbol returns the bit path for the symbol. The UnknownSymbol error
// is returned if the symbol was not in the text the tree was built from.
func (t *Tree) EncodeSymbol(symbol byte) ([]bool, error) {
	p, ok := t.paths[symbol]
	if !ok {
		return nil, errors.New(errors.UnknownSymbol, string(symbol))
	}
	return p, nil
}

// EncodeString returns the concatenated bit paths of every symbol in the
// string. A Terminator is not added.
func (t *Tree) EncodeString(s string) ([]bool, error) {
	var bits []bool
	for i := 0; i < len(s); i++ {
		p, err := t.EncodeSymbol(s[i])
		if err != nil {
			return nil, err
		}
		bits = append(bits, p...)
	}
	return bits, nil
}
