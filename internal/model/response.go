package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerValue is either a list of selected option texts (categorize)
// or a free-text string (cloze, comprehension).
type AnswerValue struct {
	Selected []string
	Text     string
	IsList   bool
}

// SelectedAnswer builds a list-shaped answer
func SelectedAnswer(texts ...string) AnswerValue {
	if texts == nil {
		texts = []string{}
	}
	return AnswerValue{Selected: texts, IsList: true}
}

// TextAnswer builds a string-shaped answer
func TextAnswer(text string) AnswerValue {
	return AnswerValue{Text: text}
}

// IsEmpty reports whether nothing was answered
func (v AnswerValue) IsEmpty() bool {
	if v.IsList {
		return len(v.Selected) == 0
	}
	return v.Text == ""
}

func (v AnswerValue) String() string {
	if v.IsList {
		return fmt.Sprintf("%q", v.Selected)
	}
	return v.Text
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsList {
		if v.Selected == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Selected)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(data, []byte("[")):
		var selected []string
		if err := json.Unmarshal(data, &selected); err != nil {
			return fmt.Errorf("answer list: %w", err)
		}
		*v = SelectedAnswer(selected...)
	case bytes.Equal(data, []byte("null")):
		*v = AnswerValue{}
	default:
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("answer must be a string or a list of strings: %w", err)
		}
		*v = TextAnswer(text)
	}
	return nil
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if v.IsList {
		selected := v.Selected
		if selected == nil {
			selected = []string{}
		}
		return bson.MarshalValue(selected)
	}
	return bson.MarshalValue(v.Text)
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Array:
		var selected []string
		if err := raw.Unmarshal(&selected); err != nil {
			return err
		}
		*v = SelectedAnswer(selected...)
	case bsontype.String:
		*v = TextAnswer(raw.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*v = AnswerValue{}
	default:
		return fmt.Errorf("unexpected bson type %s for answer", t)
	}
	return nil
}

// Answer is one question's answer inside a response
type Answer struct {
	QuestionClientID string      `json:"questionClientId" bson:"questionClientId" validate:"required"`
	Answer           AnswerValue `json:"answer" bson:"answer"`
}

// Response is a submitted answer set for a form
type Response struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	FormID      string    `json:"formId" bson:"formId"`
	Answers     []Answer  `json:"answers" bson:"answers"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}
