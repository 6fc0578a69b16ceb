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

package script_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/script"
	"github.com/jeopardynes/texttool/textblock"
)

func sampleBlock(n int) textblock.Structured {
	s := textblock.Structured{}
	for i := 0; i < textblock.RegularTopics; i++ {
		t := textblock.Topic{Name: fmt.Sprintf("BLOCK %d TOPIC %d", n, i)}
		for j := 0; j < textblock.QuestionsPerTopic; j++ {
			t.Questions = append(t.Questions, textblock.Question{
				Text:         fmt.Sprintf("IT IS <%d,%d> & MORE", i, j),
				PronounIndex: uint8((i + j) % 16),
				Answer:       fmt.Sprintf("ANSWER %d", j),
			})
		}
		s.Topics = append(s.Topics, t)
	}
	s.FinalTopic = textblock.FinalTopic{
		Name: "FINAL",
		Question: textblock.Question{
			Text:         "THE LAST ONE",
			PronounIndex: 15,
			Answer:       "DONE",
		},
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script.json")
	blocks := []textblock.Structured{sampleBlock(0), sampleBlock(1)}

	require.NoError(t, script.Save(fn, blocks))

	loaded, err := script.Load(fn)
	require.NoError(t, err)
	if diff := pretty.Diff(loaded, blocks); len(diff) > 0 {
		t.Errorf("blocks differ after save and load: %v", diff)
	}
}

func TestDocumentFormat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, script.Save(fn, []textblock.Structured{sampleBlock(0)}))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	doc := string(b)

	// html characters are not escaped
	require.Contains(t, doc, "IT IS <0,0> & MORE")

	// the field order of a question is fixed
	text := strings.Index(doc, `"Presenter text"`)
	pronoun := strings.Index(doc, `"Pronoun index"`)
	answer := strings.Index(doc, `"Player reply"`)
	require.True(t, text >= 0 && text < pronoun && pronoun < answer)

	require.Contains(t, doc, `"Topic name"`)
	require.Contains(t, doc, `"Final topic"`)
	require.Contains(t, doc, `"Final topic name"`)
}

func TestTerminatorsStripped(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script.json")

	s := sampleBlock(0)
	s.Topics[0].Name += "\r"
	s.Topics[2].Questions[3].Text += "\r"
	s.Topics[2].Questions[3].Answer += "\r"
	s.FinalTopic.Name += "\r"
	s.FinalTopic.Question.Answer += "\r"
	require.NoError(t, script.Save(fn, []textblock.Structured{s}))

	loaded, err := script.Load(fn)
	require.NoError(t, err)
	if diff := pretty.Diff(loaded, []textblock.Structured{sampleBlock(0)}); len(diff) > 0 {
		t.Errorf("terminators were not stripped: %v", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := script.Load(filepath.Join(dir, "missing.json"))
	require.True(t, errors.Is(err, errors.NotFound))

	fn := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(fn, []byte(`{"Topics": []}`), 0644))
	_, err = script.Load(fn)
	require.True(t, errors.Is(err, errors.DocumentInvalid))

	require.NoError(t, os.WriteFile(fn, []byte(`[]`), 0644))
	_, err = script.Load(fn)
	require.True(t, errors.Is(err, errors.DocumentInvalid))

	s := sampleBlock(0)
	s.Topics = s.Topics[:11]
	require.NoError(t, script.Save(fn, []textblock.Structured{s}))
	_, err = script.Load(fn)
	require.True(t, errors.Is(err, errors.DocumentInvalid))
	require.True(t, errors.Is(err, errors.ShapeMismatch))
}
