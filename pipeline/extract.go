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

	"github.com/jeopardynes/texttool/config"
	"github.com/jeopardynes/texttool/huffman"
	"github.com/jeopardynes/texttool/logger"
	"github.com/jeopardynes/texttool/rom"
	"github.com/jeopardynes/texttool/textblock"
)

// blockOffsets are the image locations of the four lists of a block.
type blockOffsets struct {
	topics    uint32
	questions uint32
	answers   uint32
	pronouns  uint32
}

func (o blockOffsets) String() string {
	return fmt.Sprintf("topics %#05x, questions %#05x, answers %#05x, pronouns %#05x",
		o.topics, o.questions, o.answers, o.pronouns)
}

// resolve reads the four pointer cells of a block and adds the group's base.
func resolve(rd *rom.Reader, g config.Group, p config.Pointer) (blockOffsets, error) {
	var o blockOffsets

	cells := []struct {
		cell config.Hex
		dest *uint32
	}{
		{cell: p.TopicsOffset, dest: &o.topics},
		{cell: p.QuestionsOffset, dest: &o.questions},
		{cell: p.AnswersOffset, dest: &o.answers},
		{cell: p.PronounsOffset, dest: &o.pronouns},
	}

	for _, c := range cells {
		w, err := rd.ReadWord(uint32(c.cell))
		if err != nil {
			return blockOffsets{}, fmt.Errorf("pointer cell %v: %w", c.cell, err)
		}
		*c.dest = uint32(w) + uint32(g.PointersBaseOffset)
	}

	return o, nil
}

// decodeStrings decodes count strings from the bit block at offset.
func decodeStrings(rd *rom.Reader, tr *huffman.Tree, offset uint32, count int) ([]string, error) {
	bits, err := rd.ReadBitsBlock(offset)
	if err != nil {
		return nil, err
	}
	s := make([]string, count)
	for i := range s {
		s[i], err = tr.DecodeString(bits)
		if err != nil {
			return nil, fmt.Errorf("string %d at %#05x: %w", i, offset, err)
		}
	}
	return s, nil
}

// ExtractPlain reads a single block from the image.
func ExtractPlain(rd *rom.Reader, trs Trees, g config.Group, p config.Pointer) (*textblock.Plain, error) {
	o, err := resolve(rd, g, p)
	if err != nil {
		return nil, err
	}

	plain := &textblock.Plain{}

	plain.Topics, err = decodeStrings(rd, trs.Questions, o.topics, textblock.TopicsCount)
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}
	plain.Questions, err = decodeStrings(rd, trs.Questions, o.questions, textblock.QuestionsCount)
	if err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}
	plain.Answers, err = decodeStrings(rd, trs.Answers, o.answers, textblock.QuestionsCount)
	if err != nil {
		return nil, fmt.Errorf("answers: %w", err)
	}
	plain.Pronouns, err = rd.ReadNybblesBlock(o.pronouns, textblock.PronounsCount)
	if err != nil {
		return nil, fmt.Errorf("pronouns: %w", err)
	}

	logger.Logf(logger.Allow, "extract", "block decoded (%v)", o)

	return plain, nil
}

// Extract every block named by the configuration, in group order and then
// pointer order.
func Extract(rd *rom.Reader, cfg *config.Config) ([]textblock.Structured, error) {
	trs, err := ReadTrees(rd)
	if err != nil {
		return nil, err
	}

	blocks := make([]textblock.Structured, 0, cfg.TotalPointers())

	for gi, g := range cfg.Groups {
		for pi, p := range g.Pointers {
			plain, err := ExtractPlain(rd, trs, g, p)
			if err != nil {
				return nil, fmt.Errorf("group %d, block %d: %w", gi, pi, err)
			}
			s, err := textblock.ToStructured(plain)
			if err != nil {
				return nil, fmt.Errorf("group %d, block %d: %w", gi, pi, err)
			}
			blocks = append(blocks, *s)
		}
	}

	logger.Logf(logger.Allow, "extract", "%d blocks extracted", len(blocks))

	return blocks, nil
}
