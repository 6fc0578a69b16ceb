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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeopardynes/texttool/config"
	"github.com/jeopardynes/texttool/pipeline"
	"github.com/jeopardynes/texttool/script"
	"github.com/jeopardynes/texttool/test"
	"github.com/jeopardynes/texttool/textblock"
)

func sampleBlock(n int) textblock.Structured {
	s := textblock.Structured{}
	for i := 0; i < textblock.RegularTopics; i++ {
		t := textblock.Topic{Name: fmt.Sprintf("TOPIC %d OF %d", i, n)}
		for j := 0; j < textblock.QuestionsPerTopic; j++ {
			t.Questions = append(t.Questions, textblock.Question{
				Text:         fmt.Sprintf("CLUE %d %d %d", n, i, j),
				PronounIndex: uint8(j),
				Answer:       fmt.Sprintf("REPLY %d", i*j),
			})
		}
		s.Topics = append(s.Topics, t)
	}
	s.FinalTopic = textblock.FinalTopic{
		Name:     "LAST WORDS",
		Question: textblock.Question{Text: "THE END", PronounIndex: 4, Answer: "FIN"},
	}
	return s
}

// prepare writes an offset configuration, a document and a source image
// containing the blocks of the document.
func prepare(t *testing.T) (dir string, cfgFile string, docFile string, imgFile string) {
	t.Helper()

	dir = t.TempDir()
	cfgFile = filepath.Join(dir, "config.json")
	docFile = filepath.Join(dir, "script.json")
	imgFile = filepath.Join(dir, "source.nes")

	cfg := &config.Config{
		DestinationImagePath: filepath.Join(dir, "missing.nes"),
		Groups: []config.Group{
			{
				InsertRange:        config.InsertRange{StartOffset: 0x2010, Size: 0x2000},
				PointersBaseOffset: 0x0010,
				Pointers: []config.Pointer{
					{QuestionsOffset: 0x300, AnswersOffset: 0x302, PronounsOffset: 0x304, TopicsOffset: 0x306},
					{QuestionsOffset: 0x308, AnswersOffset: 0x30a, PronounsOffset: 0x30c, TopicsOffset: 0x30e},
				},
			},
		},
	}
	require.NoError(t, cfg.Save(cfgFile))

	blocks := []textblock.Structured{sampleBlock(0), sampleBlock(1)}
	require.NoError(t, script.Save(docFile, blocks))

	q, err := pipeline.Plan(blocks, cfg)
	require.NoError(t, err)
	img := make([]byte, 0x10000)
	require.NoError(t, q.Apply(img))
	require.NoError(t, os.WriteFile(imgFile, img, 0644))

	return dir, cfgFile, docFile, imgFile
}

func TestNoArguments(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{}, w), exitMode)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in EXTRACT mode: <source image> required"), w.String())
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: EXTRACT, INSERT, SHOW, TREE, SETDEST, VERSION"), w.String())
}

func TestErrorKind(t *testing.T) {
	w := &test.CompareWriter{}
	missing := filepath.Join(t.TempDir(), "missing.json")
	test.ExpectEquality(t, launch([]string{"SHOW", missing}, w), exitMode)
	test.ExpectSuccess(t, w.Compare(fmt.Sprintf("* error in SHOW mode: not found: %s (NotFound)\n", missing)), w.String())
}

func TestExtractInsert(t *testing.T) {
	dir, cfgFile, _, imgFile := prepare(t)

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"-config", cfgFile, imgFile}, w), exitOK, w.String())

	// the default output is next to the source image
	extracted := filepath.Join(dir, defaultScriptFile)
	blocks, err := script.Load(extracted)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.Equal(t, "TOPIC 3 OF 1", blocks[1].Topics[3].Name)
	require.Equal(t, "FIN", blocks[0].FinalTopic.Question.Answer)

	source, err := os.ReadFile(imgFile)
	require.NoError(t, err)

	dest := filepath.Join(dir, "dest.nes")
	require.NoError(t, os.WriteFile(dest, make([]byte, len(source)), 0644))

	w.Clear()
	test.DemandEquality(t, launch([]string{"INSERT", "-config", cfgFile, "-dest", dest, "-yes", extracted}, w), exitOK, w.String())

	patched, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.True(t, bytes.Equal(source, patched))
}

func TestInsertWithoutDestination(t *testing.T) {
	_, cfgFile, docFile, _ := prepare(t)

	// the destination in the configuration does not exist
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"INSERT", "-config", cfgFile, "-yes", docFile}, w), exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "(NotFound)"), w.String())
}

func TestShow(t *testing.T) {
	_, _, docFile, _ := prepare(t)

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"SHOW", docFile}, w), exitOK, w.String())

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "block 1\n  TOPIC 0 OF 0\n    1. CLUE 0 0 0\n       WHO IS REPLY 0\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "block 2\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  final: LAST WORDS\n    1. THE END\n       WHAT IS FIN\n"))
}

func TestTree(t *testing.T) {
	_, _, _, imgFile := prepare(t)

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"TREE", imgFile}, w), exitOK, w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), `"\r"`), w.String())

	w.Clear()
	test.DemandEquality(t, launch([]string{"TREE", "-answers", "-dot", imgFile}, w), exitOK, w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestSetDest(t *testing.T) {
	_, cfgFile, _, _ := prepare(t)

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"SETDEST", "-config", cfgFile, "patched.nes"}, w), exitOK, w.String())

	cfg, err := config.Load(cfgFile)
	require.NoError(t, err)
	require.Equal(t, "patched.nes", cfg.DestinationImagePath)
	require.Equal(t, 2, cfg.TotalPointers())
}

func TestVersion(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "texttool "), w.String())
}
