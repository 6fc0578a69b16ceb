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
	"container/heap"

	"github.com/jeopardynes/texttool/errors"
)

// Terminator ends every string in the game's script.
const Terminator = '\r'

// node is an entry in the tree's arena. internal nodes refer to their
// children by arena index.
type node struct {
	leaf   bool
	symbol byte
	low    int
	high   int
}

// Tree is a prefix code tree over single byte symbols.
type Tree struct {
	nodes []node

	// the two top level slots of the implicit root
	low  int
	high int

	// bit path for every symbol. true is a 1 bit (high child)
	paths map[byte][]bool
}

// weighted is an entry in the priority queue used when building a tree.
type weighted struct {
	freq int
	idx  int
}

type queue []weighted

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].idx < q[j].idx
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) {
	*q = append(*q, x.(weighted))
}
func (q *queue) Pop() interface{} {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// Build creates a tree from the symbol frequencies in the source text. The
// InsufficientAlphabet error is returned if the text contains fewer than two
// distinct symbols.
func Build(source string) (*Tree, error) {
	var freq [256]int
	t := &Tree{}

	for i := 0; i < len(source); i++ {
		s := source[i]
		if freq[s] == 0 {
			t.nodes = append(t.nodes, node{leaf: true, symbol: s})
		}
		freq[s]++
	}

	if len(t.nodes) < 2 {
		return nil, errors.New(errors.InsufficientAlphabet, len(t.nodes))
	}

	q := make(queue, 0, len(t.nodes))
	for i, n := range t.nodes {
		q = append(q, weighted{freq: freq[n.symbol], idx: i})
	}
	heap.Init(&q)

	for q.Len() > 1 {
		low := heap.Pop(&q).(weighted)
		high := heap.Pop(&q).(weighted)
		t.nodes = append(t.nodes, node{low: low.idx, high: high.idx})
		heap.Push(&q, weighted{freq: low.freq + high.freq, idx: len(t.nodes) - 1})
	}

	// the final node is the root. the tree has no explicit root so the root's
	// children become the top level slots and the root is dropped from the
	// arena. the root is always the last node created so no other node refers
	// to it
	root := t.nodes[len(t.nodes)-1]
	t.nodes = t.nodes[:len(t.nodes)-1]
	t.low = root.low
	t.high = root.high

	t.derivePaths()

	return t, nil
}

// derivePaths walks the tree depth-first and records the path to every leaf.
func (t *Tree) derivePaths() {
	t.paths = make(map[byte][]bool)

	var walk func(idx int, path []bool)
	walk = func(idx int, path []bool) {
		n := t.nodes[idx]
		if n.leaf {
			// a deserialised table may hold a symbol more than once. keep the
			// shortest path
			if p, ok := t.paths[n.symbol]; !ok || len(path) < len(p) {
				c := make([]bool, len(path))
				copy(c, path)
				t.paths[n.symbol] = c
			}
			return
		}
		walk(n.low, append(path, false))
		walk(n.high, append(path, true))
	}

	walk(t.low, []bool{false})
	walk(t.high, []bool{true})
}

// NodeCount returns the number of nodes in the tree, not counting the implicit
// root. This is the number of entries needed to serialise the tree.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// Paths returns a copy of the path table.
func (t *Tree) Paths() map[byte][]bool {
	c := make(map[byte][]bool, len(t.paths))
	for s, p := range t.paths {
		c[s] = append([]bool(nil), p...)
	}
	return c
}

// Symbols returns every symbol in the tree in breadth-first order, which is
// also the order of ascending code length.
func (t *Tree) Symbols() []byte {
	var symbols []byte
	q := []int{t.low, t.high}
	for len(q) > 0 {
		n := t.nodes[q[0]]
		q = q[1:]
		if n.leaf {
			symbols = append(symbols, n.symbol)
		} else {
			q = append(q, n.low, n.high)
		}
	}
	return symbols
}
