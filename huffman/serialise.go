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
	"fmt"

	"github.com/jeopardynes/texttool/errors"
)

// Padding fills unused entries at the start of a serialised table.
const Padding = 0xff

// the high bit of a table entry indicates a reference to a pair of entries.
// values without the high bit are leaf symbols
const (
	referenceFlag = 0x80
	maxReference  = 0x7f
)

// Serialise the tree into a table of exactly targetSize bytes. The layout is
// the reverse of a breadth-first traversal (high child queued before low child)
// with unused entries at the start of the table set to Padding.
func (t *Tree) Serialise(targetSize int) ([]byte, error) {
	// breadth-first traversal, high before low
	order := make([]int, 0, len(t.nodes))
	q := []int{t.high, t.low}
	for len(q) > 0 {
		idx := q[0]
		q = q[1:]
		order = append(order, idx)
		if n := t.nodes[idx]; !n.leaf {
			q = append(q, n.high, n.low)
		}
	}

	if len(order) > targetSize {
		return nil, errors.New(errors.TreeTooLarge, len(order), targetSize)
	}

	// table position of every node. the first node in the traversal is in
	// the last entry of the table
	pos := make([]int, len(t.nodes))
	for k, idx := range order {
		pos[idx] = targetSize - 1 - k
	}

	table := make([]byte, targetSize)
	for i := range table {
		table[i] = Padding
	}

	for _, idx := range order {
		n := t.nodes[idx]
		if n.leaf {
			if n.symbol&referenceFlag != 0 {
				return nil, errors.New(errors.SymbolOutOfRange, n.symbol)
			}
			table[pos[idx]] = n.symbol
			continue
		}

		low := pos[n.low]
		if low&1 != 0 {
			return nil, errors.New(errors.ReferenceOffsetInvalid, low)
		}
		if low>>1 > maxReference {
			return nil, errors.New(errors.OffsetOutOfRange, fmt.Sprintf("child pair at %#02x cannot be referenced", low))
		}
		table[pos[idx]] = byte(low>>1) | referenceFlag
	}

	return table, nil
}

// Deserialise a table created by Serialise() or read from the game. The top
// level slots are the entries at rootOffset and rootOffset+1. For a table
// read from the game rootOffset is the table size minus two.
func Deserialise(table []byte, rootOffset int) (*Tree, error) {
	t := &Tree{}

	var expand func(i int, depth int) (int, error)
	expand = func(i int, depth int) (int, error) {
		if i < 0 || i >= len(table) {
			return 0, errors.New(errors.OffsetOutOfRange, fmt.Sprintf("entry %#02x is outside of table (size %#02x)", i, len(table)))
		}

		// a well formed table cannot be deeper than it is long or hold more
		// nodes than it has entries
		if depth > len(table) || len(t.nodes) >= len(table) {
			return 0, errors.New(errors.OffsetOutOfRange, fmt.Sprintf("entry %#02x is part of a cyclic reference", i))
		}

		v := table[i]
		if v&referenceFlag == 0 {
			t.nodes = append(t.nodes, node{leaf: true, symbol: v})
			return len(t.nodes) - 1, nil
		}

		ref := int(v&maxReference) << 1
		low, err := expand(ref, depth+1)
		if err != nil {
			return 0, err
		}
		high, err := expand(ref+1, depth+1)
		if err != nil {
			return 0, err
		}
		t.nodes = append(t.nodes, node{low: low, high: high})
		return len(t.nodes) - 1, nil
	}

	var err error
	t.low, err = expand(rootOffset, 0)
	if err != nil {
		return nil, err
	}
	t.high, err = expand(rootOffset+1, 0)
	if err != nil {
		return nil, err
	}

	t.derivePaths()

	return t, nil
}
