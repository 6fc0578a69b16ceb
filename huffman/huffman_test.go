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

package huffman_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/huffman"
	"github.com/jeopardynes/texttool/rom"
	"github.com/jeopardynes/texttool/test"
)

// the tree for this text is small enough to work out by hand:
//
//	a: 0
//	b: 10
//	c: 110
//	\r: 111
const handText = "aaaabbc\r"

func bitsString(bits []bool) string {
	s := strings.Builder{}
	for _, b := range bits {
		if b {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

func TestBuild(t *testing.T) {
	tr, err := huffman.Build(handText)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.NodeCount(), 6)

	expected := map[byte]string{'a': "0", 'b': "10", 'c': "110", '\r': "111"}
	paths := tr.Paths()
	test.ExpectEquality(t, len(paths), len(expected))
	for s, code := range expected {
		test.ExpectEquality(t, bitsString(paths[s]), code, string(s))
	}

	test.ExpectEquality(t, string(tr.Symbols()), "abc\r")
}

func TestInsufficientAlphabet(t *testing.T) {
	_, err := huffman.Build("")
	test.ExpectSuccess(t, errors.Is(err, errors.InsufficientAlphabet))
	_, err = huffman.Build("aaaa")
	test.ExpectSuccess(t, errors.Is(err, errors.InsufficientAlphabet))
	_, err = huffman.Build("ab")
	test.ExpectSuccess(t, err)
}

func TestDeterministicBuild(t *testing.T) {
	// most symbols in the pangram share a frequency so the shape of the tree
	// depends heavily on tie-breaking
	text := "the quick brown fox jumps over the lazy dog\r"
	a, err := huffman.Build(text)
	test.DemandSuccess(t, err)
	for i := 0; i < 10; i++ {
		b, err := huffman.Build(text)
		test.DemandSuccess(t, err)
		sa, err := a.Serialise(0x62)
		test.DemandSuccess(t, err)
		sb, err := b.Serialise(0x62)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(sa, sb), i)
	}
}

func TestEncodeDecode(t *testing.T) {
	tr, err := huffman.Build(handText)
	test.DemandSuccess(t, err)

	bits, err := tr.EncodeString("abc\r")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bitsString(bits), "010110111")

	packed := rom.PackBits(bits)
	test.ExpectSuccess(t, bytes.Equal(packed, []byte{0x5b, 0x80}))

	s, err := tr.DecodeString(rom.NewBitCursor(packed))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "abc")

	_, err = tr.EncodeString("abd")
	test.ExpectSuccess(t, errors.Is(err, errors.UnknownSymbol))
}

func TestTruncatedInput(t *testing.T) {
	tr, err := huffman.Build(handText)
	test.DemandSuccess(t, err)

	// a single byte of 'a' symbols never reaches a terminator
	_, err = tr.DecodeString(rom.NewBitCursor([]byte{0x00}))
	test.ExpectSuccess(t, errors.Is(err, errors.TruncatedInput))

	// exhausted mid-symbol
	bc := rom.NewBitCursor([]byte{0xff})
	for i := 0; i < 2; i++ {
		_, err = tr.DecodeSymbol(bc)
		test.ExpectSuccess(t, err)
	}
	_, err = tr.DecodeSymbol(bc)
	test.ExpectSuccess(t, errors.Is(err, errors.TruncatedInput))
}

func TestSerialise(t *testing.T) {
	tr, err := huffman.Build(handText)
	test.DemandSuccess(t, err)

	s, err := tr.Serialise(6)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(s, []byte{'c', '\r', 'b', 0x80, 'a', 0x81}))

	// content is right aligned and padded
	s, err = tr.Serialise(8)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(s, []byte{0xff, 0xff, 'c', '\r', 'b', 0x81, 'a', 0x82}))

	_, err = tr.Serialise(5)
	test.ExpectSuccess(t, errors.Is(err, errors.TreeTooLarge))

	// an odd target size puts child pairs at odd positions
	_, err = tr.Serialise(7)
	test.ExpectSuccess(t, errors.Is(err, errors.ReferenceOffsetInvalid))
}

func TestSerialiseOffsetOutOfRange(t *testing.T) {
	b := make([]byte, 0x80)
	for i := range b {
		b[i] = byte(i)
	}
	tr, err := huffman.Build(string(b))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.NodeCount(), 0xfe)

	_, err = tr.Serialise(0x100)
	test.ExpectSuccess(t, err)

	_, err = tr.Serialise(300)
	test.ExpectSuccess(t, errors.Is(err, errors.OffsetOutOfRange))
}

func TestSerialiseSymbolOutOfRange(t *testing.T) {
	tr, err := huffman.Build("café\r")
	test.DemandSuccess(t, err)
	_, err = tr.Serialise(0x62)
	test.ExpectSuccess(t, errors.Is(err, errors.SymbolOutOfRange))
}

func TestDeserialise(t *testing.T) {
	tr, err := huffman.Deserialise([]byte{0xff, 0xff, 'c', '\r', 'b', 0x81, 'a', 0x82}, 6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.NodeCount(), 6)
	test.ExpectEquality(t, string(tr.Symbols()), "abc\r")

	s, err := tr.DecodeString(rom.NewBitCursor([]byte{0x5b, 0x80}))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "abc")
}

func TestDeserialiseMalformed(t *testing.T) {
	// reference to itself
	_, err := huffman.Deserialise([]byte{0x80, 0x80}, 0)
	test.ExpectSuccess(t, errors.Is(err, errors.OffsetOutOfRange))

	// root pair extends beyond table
	_, err = huffman.Deserialise([]byte{'a'}, 0)
	test.ExpectSuccess(t, errors.Is(err, errors.OffsetOutOfRange))

	// reference beyond table
	_, err = huffman.Deserialise([]byte{'a', 0x90}, 0)
	test.ExpectSuccess(t, errors.Is(err, errors.OffsetOutOfRange))
}

func randomText(rnd *rand.Rand) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ .,?'-0123456789"
	n := 2 + rnd.Intn(200)
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[rnd.Intn(1+rnd.Intn(len(alphabet)))]
	}
	return string(s)
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2600))

	for i := 0; i < 200; i++ {
		text := randomText(rnd)
		tr, err := huffman.Build(text + string(huffman.Terminator))
		test.DemandSuccess(t, err, i)

		// encode and decode
		bits, err := tr.EncodeString(text + string(huffman.Terminator))
		test.DemandSuccess(t, err, i)
		s, err := tr.DecodeString(rom.NewBitCursor(rom.PackBits(bits)))
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, s, text, i)

		// serialise and deserialise
		size := tr.NodeCount() + tr.NodeCount()&1 + 2*rnd.Intn(8)
		table, err := tr.Serialise(size)
		test.DemandSuccess(t, err, i)
		test.DemandEquality(t, len(table), size, i)

		dtr, err := huffman.Deserialise(table, size-2)
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, dtr.NodeCount(), tr.NodeCount(), i)
		if diff := pretty.Diff(dtr.Paths(), tr.Paths()); len(diff) > 0 {
			t.Errorf("%d: path tables differ: %v", i, diff)
		}
	}
}

func TestTable(t *testing.T) {
	tr, err := huffman.Build(handText)
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	tr.Table(tw)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "\"a\"    0\n\"b\"    10\n"))
}

func TestGraph(t *testing.T) {
	tr, err := huffman.Build(handText)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	tr.Graph(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
