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

	"github.com/jeopardynes/texttool/errors"
)

// Question is a single clue, the pronoun that prefixes the reply, and the
// reply itself. The field order is the order used in the interchange
// document.
type Question struct {
	Text         string `json:"Presenter text"`
	PronounIndex uint8  `json:"Pronoun index"`
	Answer       string `json:"Player reply"`
}

// Topic is one of the regular topics of a block.
type Topic struct {
	Name      string     `json:"Topic name"`
	Questions []Question `json:"Questions"`
}

// FinalTopic is the last topic of a block. It has a single question.
type FinalTopic struct {
	Name     string   `json:"Final topic name"`
	Question Question `json:"Question"`
}

// Structured is the nested, editable form of a block.
type Structured struct {
	Topics     []Topic    `json:"Topics"`
	FinalTopic FinalTopic `json:"Final topic"`
}

// CheckShape returns the ShapeMismatch error if the block does not have the
// expected number of topics and questions, or if a pronoun index does not fit
// in a nybble.
func (s *Structured) CheckShape() error {
	if len(s.Topics) != RegularTopics {
		return errors.New(errors.ShapeMismatch, fmt.Sprintf("%d topics, expected %d", len(s.Topics), RegularTopics))
	}
	for i, t := range s.Topics {
		if len(t.Questions) != QuestionsPerTopic {
			return errors.New(errors.ShapeMismatch, fmt.Sprintf("topic %d has %d questions, expected %d", i+1, len(t.Questions), QuestionsPerTopic))
		}
		for j, q := range t.Questions {
			if q.PronounIndex >= uint8(len(PronounNames)) {
				return errors.New(errors.ShapeMismatch, fmt.Sprintf("topic %d question %d: pronoun index %d is out of range", i+1, j+1, q.PronounIndex))
			}
		}
	}
	if s.FinalTopic.Question.PronounIndex >= uint8(len(PronounNames)) {
		return errors.New(errors.ShapeMismatch, fmt.Sprintf("final question: pronoun index %d is out of range", s.FinalTopic.Question.PronounIndex))
	}
	return nil
}

// ToStructured partitions a Plain block into twelve topics of five questions
// and the final topic. The unused final pronoun nybble is dropped.
func ToStructured(p *Plain) (*Structured, error) {
	err := p.CheckShape()
	if err != nil {
		return nil, err
	}

	s := &Structured{
		Topics: make([]Topic, RegularTopics),
	}

	for i := range s.Topics {
		s.Topics[i] = Topic{
			Name:      p.Topics[i],
			Questions: make([]Question, QuestionsPerTopic),
		}
		for j := range s.Topics[i].Questions {
			k := i*QuestionsPerTopic + j
			s.Topics[i].Questions[j] = Question{
				Text:         p.Questions[k],
				PronounIndex: p.Pronouns[k],
				Answer:       p.Answers[k],
			}
		}
	}

	k := RegularTopics * QuestionsPerTopic
	s.FinalTopic = FinalTopic{
		Name: p.Topics[RegularTopics],
		Question: Question{
			Text:         p.Questions[k],
			PronounIndex: p.Pronouns[k],
			Answer:       p.Answers[k],
		},
	}

	return s, nil
}

// ToPlain flattens a Structured block. Regular topics come first, in order,
// followed by the final topic. The pronoun list is padded with a zero nybble.
func ToPlain(s *Structured) (*Plain, error) {
	err := s.CheckShape()
	if err != nil {
		return nil, err
	}

	p := &Plain{
		Topics:    make([]string, 0, TopicsCount),
		Questions: make([]string, 0, QuestionsCount),
		Answers:   make([]string, 0, QuestionsCount),
		Pronouns:  make([]uint8, 0, PronounsCount),
	}

	for _, t := range s.Topics {
		p.Topics = append(p.Topics, t.Name)
		for _, q := range t.Questions {
			p.Questions = append(p.Questions, q.Text)
			p.Answers = append(p.Answers, q.Answer)
			p.Pronouns = append(p.Pronouns, q.PronounIndex)
		}
	}

	p.Topics = append(p.Topics, s.FinalTopic.Name)
	p.Questions = append(p.Questions, s.FinalTopic.Question.Text)
	p.Answers = append(p.Answers, s.FinalTopic.Question.Answer)
	p.Pronouns = append(p.Pronouns, s.FinalTopic.Question.PronounIndex)

	for len(p.Pronouns) < PronounsCount {
		p.Pronouns = append(p.Pronouns, 0)
	}

	return p, nil
}
