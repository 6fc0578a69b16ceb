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

package textblock

import (
	"fmt"
	"strings"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/huffman"
	"github.com/jeopardynes/texttool/rom"
)

// The shape of every block in the image.
const (
	RegularTopics     = 12
	QuestionsPerTopic = 5

	// 12 regular topics and the final topic
	TopicsCount = RegularTopics + 1

	// 12 topics of 5 questions and the final question
	QuestionsCount = RegularTopics*QuestionsPerTopic + 1

	// one pronoun per question. rounded up to an even number so that the
	// pronoun nybbles fill whole bytes
	PronounsCount = QuestionsCount + QuestionsCount&1
)

// Plain is a block of text in the same shape as it is stored in the image.
// Strings do not include the huffman.Terminator.
type Plain struct {
	Topics    []string
	Questions []string
	Answers   []string
	Pronouns  []uint8

	// set by Encode()
	TopicsEncoded    []byte
	QuestionsEncoded []byte
	AnswersEncoded   []byte
	PronounsEncoded  []byte

	// set by LayoutPointers()
	TopicsPointer    uint16
	QuestionsPointer uint16
	AnswersPointer   uint16
	PronounsPointer  uint16
}

// CheckShape returns the ShapeMismatch error if the lengths of the lists are
// not those of a block in the image.
func (p *Plain) CheckShape() error {
	if len(p.Topics) != TopicsCount {
		return errors.New(errors.ShapeMismatch, fmt.Sprintf("%d topics, expected %d", len(p.Topics), TopicsCount))
	}
	if len(p.Questions) != QuestionsCount {
		return errors.New(errors.ShapeMismatch, fmt.Sprintf("%d questions, expected %d", len(p.Questions), QuestionsCount))
	}
	if len(p.Answers) != QuestionsCount {
		return errors.New(errors.ShapeMismatch, fmt.Sprintf("%d answers, expected %d", len(p.Answers), QuestionsCount))
	}
	if len(p.Pronouns) != PronounsCount {
		return errors.New(errors.ShapeMismatch, fmt.Sprintf("%d pronouns, expected %d", len(p.Pronouns), PronounsCount))
	}
	return nil
}

// encodeStrings encodes every string followed by a terminator into one
// continuous bit stream.
func encodeStrings(tr *huffman.Tree, s []string) ([]byte, error) {
	var bits []bool
	for _, v := range s {
		if strings.IndexByte(v, huffman.Terminator) != -1 {
			return nil, errors.New(errors.EmbeddedTerminator, v)
		}
		b, err := tr.EncodeString(v + string(huffman.Terminator))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", v, err)
		}
		bits = append(bits, b...)
	}
	return rom.PackBits(bits), nil
}

// Encode the block. Topics and questions are encoded with the questions tree
// and answers with the answers tree. Pronouns are packed two to a byte.
func (p *Plain) Encode(questionsTree *huffman.Tree, answersTree *huffman.Tree) error {
	err := p.CheckShape()
	if err != nil {
		return err
	}

	p.TopicsEncoded, err = encodeStrings(questionsTree, p.Topics)
	if err != nil {
		return fmt.Errorf("topics: %w", err)
	}
	p.QuestionsEncoded, err = encodeStrings(questionsTree, p.Questions)
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	p.AnswersEncoded, err = encodeStrings(answersTree, p.Answers)
	if err != nil {
		return fmt.Errorf("answers: %w", err)
	}
	p.PronounsEncoded = rom.PackNybbles(p.Pronouns)

	return nil
}

// LayoutPointers sets the four block pointers. The encoded lists follow one
// another from the base pointer in the order topics, questions, answers,
// pronouns. Encode() must have been called first.
func (p *Plain) LayoutPointers(base uint16) {
	p.TopicsPointer = base
	p.QuestionsPointer = p.TopicsPointer + uint16(len(p.TopicsEncoded))
	p.AnswersPointer = p.QuestionsPointer + uint16(len(p.QuestionsEncoded))
	p.PronounsPointer = p.AnswersPointer + uint16(len(p.AnswersEncoded))
}

// EncodedBlock returns the encoded lists concatenated in pointer order.
func (p *Plain) EncodedBlock() []byte {
	b := make([]byte, 0, len(p.TopicsEncoded)+len(p.QuestionsEncoded)+len(p.AnswersEncoded)+len(p.PronounsEncoded))
	b = append(b, p.TopicsEncoded...)
	b = append(b, p.QuestionsEncoded...)
	b = append(b, p.AnswersEncoded...)
	b = append(b, p.PronounsEncoded...)
	return b
}
