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

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/logger"
)

// the largest insert range that can be addressed by the 16 bit pointer cells.
const maxInsertRange = 0xffff

// InsertRange is the region of the image a group is written to on insertion.
type InsertRange struct {
	StartOffset Hex `json:"startOffset"`
	Size        Hex `json:"size"`
}

// Pointer is the location of the four pointer cells of a single block.
type Pointer struct {
	QuestionsOffset Hex `json:"questionsPointerOffset"`
	AnswersOffset   Hex `json:"answersPointerOffset"`
	PronounsOffset  Hex `json:"proformsPointerOffset"`
	TopicsOffset    Hex `json:"topicsPointerOffset"`
}

// Group is a contiguous region of the image and the pointer cells of the
// blocks in that region. PointersBaseOffset is added to the value of every
// pointer cell to give the location of the data in the image.
type Group struct {
	InsertRange        InsertRange `json:"insertRange"`
	PointersBaseOffset Hex         `json:"pointersBaseOffset"`
	Pointers           []Pointer   `json:"pointers"`
}

// Config is the offset configuration of an image.
type Config struct {
	DestinationImagePath string  `json:"destinationImagePath"`
	Groups               []Group `json:"groups"`
}

// Load the configuration document. Returns the NotFound error if the file
// does not exist and the ConfigInvalid error if the document is malformed.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.NotFound, filename)
		}
		return nil, errors.New(errors.IOError, err)
	}

	cfg := &Config{}
	err = json.Unmarshal(b, cfg)
	if err != nil {
		return nil, errors.New(errors.ConfigInvalid, fmt.Errorf("%s: %w", filename, err))
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "config", "%d groups, %d pointers from %s", len(cfg.Groups), cfg.TotalPointers(), filename)

	return cfg, nil
}

// Save the configuration document.
func (cfg *Config) Save(filename string) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.New(errors.ConfigInvalid, err)
	}

	err = os.WriteFile(filename, append(b, '\n'), 0644)
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	return nil
}

// Validate returns the ConfigInvalid error if the configuration cannot be
// used to extract or insert blocks.
func (cfg *Config) Validate() error {
	if len(cfg.Groups) == 0 {
		return errors.New(errors.ConfigInvalid, "no groups")
	}
	for i, g := range cfg.Groups {
		if len(g.Pointers) == 0 {
			return errors.New(errors.ConfigInvalid, fmt.Sprintf("group %d has no pointers", i))
		}
		if g.InsertRange.Size > maxInsertRange {
			return errors.New(errors.ConfigInvalid, fmt.Sprintf("group %d insert range is too large (%v)", i, g.InsertRange.Size))
		}
	}
	return nil
}

// TotalPointers returns the number of pointer records in all groups. This is
// the number of blocks in the image.
func (cfg *Config) TotalPointers() int {
	var n int
	for _, g := range cfg.Groups {
		n += len(g.Pointers)
	}
	return n
}

func (cfg *Config) String() string {
	s := &bytes.Buffer{}
	for i, g := range cfg.Groups {
		s.WriteString(fmt.Sprintf("group %d: %d pointers, insert at %v (%v bytes), base %v\n",
			i, len(g.Pointers), g.InsertRange.StartOffset, g.InsertRange.Size, g.PointersBaseOffset))
	}
	return s.String()
}
