package entity

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

type QuestionWidth string

const (
	QuestionWidthFull  QuestionWidth = "full"
	QuestionWidthHalf  QuestionWidth = "half"
	QuestionWidthThird QuestionWidth = "third"
)

// Answer holds a recorded answer. Checkbox questions carry a list of values,
// every other kind carries a single value.
type Answer struct {
	multi  bool
	value  string
	values []string
}

// NewAnswer builds the answer shape that matches kind.
func NewAnswer(kind FieldType, values ...string) Answer {
	if kind.MultiValue() {
		return Answer{multi: true, values: slices.Clone(values)}
	}
	if len(values) == 0 {
		return Answer{}
	}
	return Answer{value: values[0]}
}

func (a Answer) IsMulti() bool {
	return a.multi
}

// Value returns the single value, or the first value of a list answer.
func (a Answer) Value() string {
	if a.multi {
		if len(a.values) == 0 {
			return ""
		}
		return a.values[0]
	}
	return a.value
}

func (a Answer) Values() []string {
	if a.multi {
		return slices.Clone(a.values)
	}
	if a.value == "" {
		return nil
	}
	return []string{a.value}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	}
	return json.Marshal(a.value)
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Answer{value: s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings: %w", err)
	}
	*a = Answer{multi: true, values: ss}
	return nil
}

type Question struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Type        FieldType     `json:"type"`
	Required    bool          `json:"required"`
	Options     []string      `json:"options,omitempty"`
	Answer      Answer        `json:"answer"`
	Width       QuestionWidth `json:"width,omitempty"`
}

type Incident struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	StatusIndex  int          `json:"statusIndex"`
	Priority     Severity     `json:"priority"`
	Assignee     string       `json:"assignee"`
	Created      time.Time    `json:"created"`
	Type         string       `json:"type"`
	Description  string       `json:"description"`
	QuestionRows [][]Question `json:"questionRows,omitempty"`
}

// Clone returns a copy that shares no slices with i.
func (i Incident) Clone() Incident {
	c := i
	c.QuestionRows = cloneQuestionRows(i.QuestionRows)
	return c
}

// IncidentWithStatus is an incident joined with its stage name for display.
type IncidentWithStatus struct {
	Incident
	StatusName string `json:"statusName"`
}

func cloneQuestionRows(rows [][]Question) [][]Question {
	if rows == nil {
		return nil
	}
	c := make([][]Question, len(rows))
	for i, row := range rows {
		r := make([]Question, len(row))
		for j, q := range row {
			q.Options = slices.Clone(q.Options)
			q.Answer.values = slices.Clone(q.Answer.values)
			r[j] = q
		}
		c[i] = r
	}
	return c
}
