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

package pipeline

import (
	"fmt"
	"strings"

	"github.com/jeopardynes/texttool/huffman"
	"github.com/jeopardynes/texttool/logger"
	"github.com/jeopardynes/texttool/rom"
	"github.com/jeopardynes/texttool/textblock"
)

// Location and size of the serialised huffman trees in the image. The sizes
// are fixed by the game's decoding routine.
const (
	QuestionsTreeOffset = 0x9d6a
	QuestionsTreeSize   = 0x62
	AnswersTreeOffset   = 0x9dcc
	AnswersTreeSize     = 0x94
)

// Trees are the two huffman trees used by the text blocks. Topics and
// questions share the Questions tree.
type Trees struct {
	Questions *huffman.Tree
	Answers   *huffman.Tree
}

func readTree(rd *rom.Reader, offset uint32, size int) (*huffman.Tree, error) {
	table, err := rd.ReadBytesBlock(offset, size)
	if err != nil {
		return nil, err
	}
	return huffman.Deserialise(table, size-2)
}

// ReadTrees reads both trees from the image.
func ReadTrees(rd *rom.Reader) (Trees, error) {
	var trs Trees
	var err error

	trs.Questions, err = readTree(rd, QuestionsTreeOffset, QuestionsTreeSize)
	if err != nil {
		return Trees{}, fmt.Errorf("questions tree: %w", err)
	}
	trs.Answers, err = readTree(rd, AnswersTreeOffset, AnswersTreeSize)
	if err != nil {
		return Trees{}, fmt.Errorf("answers tree: %w", err)
	}

	return trs, nil
}

// terminated joins the strings, ending each with the terminator.
func terminated(b *strings.Builder, s []string) {
	for _, v := range s {
		b.WriteString(v)
		b.WriteByte(huffman.Terminator)
	}
}

// BuildTrees builds both trees from the text of the plain blocks. The
// questions tree is built from the questions of every block followed by the
// topics of every block. The answers tree is built from the answers.
func BuildTrees(plains []*textblock.Plain) (Trees, error) {
	var questions strings.Builder
	var answers strings.Builder

	for _, p := range plains {
		terminated(&questions, p.Questions)
		terminated(&answers, p.Answers)
	}
	for _, p := range plains {
		terminated(&questions, p.Topics)
	}

	var trs Trees
	var err error

	trs.Questions, err = huffman.Build(questions.String())
	if err != nil {
		return Trees{}, fmt.Errorf("questions tree: %w", err)
	}
	trs.Answers, err = huffman.Build(answers.String())
	if err != nil {
		return Trees{}, fmt.Errorf("answers tree: %w", err)
	}

	logger.Logf(logger.Allow, "huffman", "questions tree rebuilt (%d nodes)", trs.Questions.NodeCount())
	logger.Logf(logger.Allow, "huffman", "answers tree rebuilt (%d nodes)", trs.Answers.NodeCount())

	return trs, nil
}
