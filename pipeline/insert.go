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
	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/huffman"
	"github.com/jeopardynes/texttool/logger"
	"github.com/jeopardynes/texttool/rom"
	"github.com/jeopardynes/texttool/textblock"
)

// fill byte for every write. unused space in the trees and the group
// regions is left as 0xff.
const fillByte = 0xff

// maxPointer is the largest value that can be stored in a pointer cell.
const maxPointer = 0xffff

func enqueueTree(q *rom.WriteQueue, tr *huffman.Tree, offset uint32, size int) error {
	table, err := tr.Serialise(size)
	if err != nil {
		return err
	}
	return q.Add(rom.WriteQueueElement{
		Offset:     offset,
		Data:       table,
		TargetSize: uint32(size),
		FillByte:   fillByte,
	})
}

func enqueuePointer(q *rom.WriteQueue, cell config.Hex, value uint16) error {
	return q.Add(rom.WriteQueueElement{
		Offset:     uint32(cell),
		Data:       rom.PackWords(value),
		TargetSize: 2,
		FillByte:   fillByte,
	})
}

// Plan encodes the blocks and returns the queue of writes that will insert
// them into an image. The number of blocks must equal the number of pointer
// records in the configuration.
func Plan(blocks []textblock.Structured, cfg *config.Config) (*rom.WriteQueue, error) {
	if len(blocks) != cfg.TotalPointers() {
		return nil, errors.New(errors.ShapeMismatch, fmt.Sprintf("%d blocks in document, %d pointers in configuration", len(blocks), cfg.TotalPointers()))
	}

	plains := make([]*textblock.Plain, len(blocks))
	for i := range blocks {
		var err error
		plains[i], err = textblock.ToPlain(&blocks[i])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}

	trs, err := BuildTrees(plains)
	if err != nil {
		return nil, err
	}

	q := &rom.WriteQueue{}

	err = enqueueTree(q, trs.Questions, QuestionsTreeOffset, QuestionsTreeSize)
	if err != nil {
		return nil, fmt.Errorf("questions tree: %w", err)
	}
	err = enqueueTree(q, trs.Answers, AnswersTreeOffset, AnswersTreeSize)
	if err != nil {
		return nil, fmt.Errorf("answers tree: %w", err)
	}

	next := 0
	for gi, g := range cfg.Groups {
		start := uint32(g.InsertRange.StartOffset)
		if start < uint32(g.PointersBaseOffset) {
			return nil, errors.New(errors.OutOfBounds, fmt.Sprintf("group %d: insert range %v is before pointer base %v", gi, g.InsertRange.StartOffset, g.PointersBaseOffset))
		}

		var buffer []byte

		for pi, p := range g.Pointers {
			plain := plains[next]
			next++

			err = plain.Encode(trs.Questions, trs.Answers)
			if err != nil {
				return nil, fmt.Errorf("group %d, block %d: %w", gi, pi, err)
			}

			// position of the block relative to the pointer base
			rel := start + uint32(len(buffer)) - uint32(g.PointersBaseOffset)
			block := plain.EncodedBlock()
			if rel+uint32(len(block)) > maxPointer {
				return nil, errors.New(errors.OutOfBounds, fmt.Sprintf("group %d, block %d: cannot be addressed from pointer base %v", gi, pi, g.PointersBaseOffset))
			}
			plain.LayoutPointers(uint16(rel))

			for _, w := range []struct {
				cell  config.Hex
				value uint16
			}{
				{cell: p.QuestionsOffset, value: plain.QuestionsPointer},
				{cell: p.AnswersOffset, value: plain.AnswersPointer},
				{cell: p.PronounsOffset, value: plain.PronounsPointer},
				{cell: p.TopicsOffset, value: plain.TopicsPointer},
			} {
				err = enqueuePointer(q, w.cell, w.value)
				if err != nil {
					return nil, fmt.Errorf("group %d, block %d: %w", gi, pi, err)
				}
			}

			buffer = append(buffer, block...)
		}

		err = q.Add(rom.WriteQueueElement{
			Offset:     start,
			Data:       buffer,
			TargetSize: uint32(g.InsertRange.Size),
			FillByte:   fillByte,
		})
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", gi, err)
		}

		logger.Logf(logger.Allow, "insert", "group %d: %d blocks, %d of %d bytes used", gi, len(g.Pointers), len(buffer), uint32(g.InsertRange.Size))
	}

	return q, nil
}

// Insert the blocks into the destination image. The destination must exist.
// If atomic is true the destination is replaced by a patched copy rather than
// being patched in place.
func Insert(blocks []textblock.Structured, cfg *config.Config, destination string, atomic bool) error {
	q, err := Plan(blocks, cfg)
	if err != nil {
		return err
	}

	if atomic {
		return q.FlushAtomic(destination)
	}
	return q.Flush(destination)
}
