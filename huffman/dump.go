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
	"io"
	"strconv"

	"github.com/bradleyjkemp/memviz"
)

// Table writes every symbol and its code to w, in breadth-first order.
func (t *Tree) Table(w io.Writer) {
	for _, s := range t.Symbols() {
		code := make([]byte, len(t.paths[s]))
		for i, b := range t.paths[s] {
			if b {
				code[i] = '1'
			} else {
				code[i] = '0'
			}
		}
		io.WriteString(w, fmt.Sprintf("%-6s %s\n", strconv.Quote(string(s)), code))
	}
}

// graphNode is a pointer based copy of the tree. memviz follows pointers to
// draw edges so the arena indices are not suitable.
type graphNode struct {
	Symbol string
	Low    *graphNode
	High   *graphNode
}

func (t *Tree) graph(idx int) *graphNode {
	n := t.nodes[idx]
	if n.leaf {
		return &graphNode{Symbol: strconv.Quote(string(n.symbol))}
	}
	return &graphNode{
		Low:  t.graph(n.low),
		High: t.graph(n.high),
	}
}

// Graph writes a graphviz description of the tree to w.
func (t *Tree) Graph(w io.Writer) {
	root := &graphNode{
		Symbol: "root",
		Low:    t.graph(t.low),
		High:   t.graph(t.high),
	}
	memviz.Map(w, root)
}
