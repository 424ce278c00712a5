package model

import "time"

// QuestionType defines which fields and which fill-out widget apply to a question
type QuestionType string

const (
	QuestionTypeCategorize    QuestionType = "categorize"    // Checkbox list over options
	QuestionTypeCloze         QuestionType = "cloze"         // Text with ___ blanks, free-text answer
	QuestionTypeComprehension QuestionType = "comprehension" // Passage plus free-text answer
)

// Valid reports whether t is one of the known question types
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeCategorize, QuestionTypeCloze, QuestionTypeComprehension:
		return true
	}
	return false
}

// QuestionTypes lists the supported types in display order
var QuestionTypes = []QuestionType{
	QuestionTypeCategorize,
	QuestionTypeCloze,
	QuestionTypeComprehension,
}

// Option is a selectable choice of a categorize question
type Option struct {
	Text string `json:"text" bson:"text" yaml:"text"`
}

// Question is one block of a form
type Question struct {
	ClientID string       `json:"clientId" bson:"clientId" validate:"required"` // Assigned by the editor, reused as answer key
	Type     QuestionType `json:"type" bson:"type" validate:"required,question_type"`
	Title    string       `json:"title" bson:"title"`
	Image    string       `json:"image" bson:"image"` // Upload URL or empty
	// Categorize only
	Options []Option `json:"options" bson:"options"`
	// Cloze only
	ClozeText string `json:"clozeText,omitempty" bson:"clozeText,omitempty"`
	// Comprehension only
	ComprehensionPassage string `json:"comprehensionPassage,omitempty" bson:"comprehensionPassage,omitempty"`
}

// Form is a saved questionnaire
type Form struct {
	ID          string     `json:"_id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	HeaderImage string     `json:"headerImage" bson:"headerImage"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// QuestionByClientID returns the question with the given client id
func (f *Form) QuestionByClientID(clientID string) (*Question, bool) {
	for i := range f.Questions {
		if f.Questions[i].ClientID == clientID {
			return &f.Questions[i], true
		}
	}
	return nil, false
}
