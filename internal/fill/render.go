package fill

import "formcraft/internal/model"

// InputKind says which widget collects the answer of a question
type InputKind string

const (
	InputCheckboxes InputKind = "checkboxes"
	InputText       InputKind = "text"
	InputNone       InputKind = "none"
)

// View is a renderable form
type View struct {
	Title          string
	HeaderImageURL string
	Questions      []QuestionView
}

// QuestionView is one rendered question
type QuestionView struct {
	ClientID    string
	Type        model.QuestionType
	Title       string
	ImageURL    string
	Input       InputKind
	Options     []string // categorize
	Passage     string   // comprehension
	Placeholder string
}

// Render lays out the loaded form, one view per question. Image URLs are
// made absolute against the API base URL.
func (s *Session) Render() (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFilling {
		return nil, ErrNotFilling
	}

	v := &View{
		Title:          s.form.Title,
		HeaderImageURL: s.api.ResolveURL(s.form.HeaderImage),
		Questions:      make([]QuestionView, 0, len(s.form.Questions)),
	}
	for _, q := range s.form.Questions {
		qv := QuestionView{
			ClientID: q.ClientID,
			Type:     q.Type,
			Title:    q.Title,
			ImageURL: s.api.ResolveURL(q.Image),
			Input:    InputNone,
		}
		switch q.Type {
		case model.QuestionTypeCategorize:
			qv.Input = InputCheckboxes
			qv.Options = make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				qv.Options = append(qv.Options, o.Text)
			}
		case model.QuestionTypeCloze:
			qv.Input = InputText
			qv.Passage = q.ClozeText
			qv.Placeholder = "Write your answer here..."
		case model.QuestionTypeComprehension:
			qv.Input = InputText
			qv.Passage = q.ComprehensionPassage
			qv.Placeholder = "Your answer to the comprehension..."
		}
		v.Questions = append(v.Questions, qv)
	}
	return v, nil
}
