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

package script

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/huffman"
	"github.com/jeopardynes/texttool/logger"
	"github.com/jeopardynes/texttool/textblock"
)

// Load the interchange document. Returns the NotFound error if the file does
// not exist and the DocumentInvalid error if the document is malformed or if
// any block is of the wrong shape.
func Load(filename string) ([]textblock.Structured, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.NotFound, filename)
		}
		return nil, errors.New(errors.IOError, err)
	}

	var blocks []textblock.Structured
	err = json.Unmarshal(b, &blocks)
	if err != nil {
		return nil, errors.New(errors.DocumentInvalid, fmt.Errorf("%s: %w", filename, err))
	}

	if len(blocks) == 0 {
		return nil, errors.New(errors.DocumentInvalid, fmt.Sprintf("%s: no blocks", filename))
	}

	for i := range blocks {
		err = blocks[i].CheckShape()
		if err != nil {
			return nil, errors.New(errors.DocumentInvalid, fmt.Errorf("block %d: %w", i, err))
		}
		stripTerminators(&blocks[i])
	}

	logger.Logf(logger.Allow, "script", "%d blocks loaded from %s", len(blocks), filename)

	return blocks, nil
}

// Save the interchange document.
func Save(filename string, blocks []textblock.Structured) error {
	b := &bytes.Buffer{}

	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(blocks)
	if err != nil {
		return errors.New(errors.DocumentInvalid, err)
	}

	err = os.WriteFile(filename, b.Bytes(), 0644)
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	logger.Logf(logger.Allow, "script", "%d blocks saved to %s", len(blocks), filename)

	return nil
}

func strip(s *string) {
	*s = strings.TrimSuffix(*s, string(huffman.Terminator))
}

func stripQuestion(q *textblock.Question) {
	strip(&q.Text)
	strip(&q.Answer)
}

// stripTerminators removes the trailing terminator from every string in the
// block.
func stripTerminators(s *textblock.Structured) {
	for i := range s.Topics {
		strip(&s.Topics[i].Name)
		for j := range s.Topics[i].Questions {
			stripQuestion(&s.Topics[i].Questions[j])
		}
	}
	strip(&s.FinalTopic.Name)
	stripQuestion(&s.FinalTopic.Question)
}
