// Package fill runs one respondent's pass over a saved form:
// load it, collect answers keyed by question client id, submit once.
package fill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"formcraft/internal/client"
	"formcraft/internal/logging"
	"formcraft/internal/model"
)

var (
	ErrAlreadySubmitted = errors.New("form already submitted")
	ErrNotFilling       = errors.New("form is not open for answers")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrWrongAnswerKind  = errors.New("answer kind does not match question type")
	ErrSubmitRejected   = errors.New("submission rejected")
)

// State is the lifecycle position of a Session
type State int

const (
	StateLoading State = iota
	StateNotFound
	StateFilling
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateNotFound:
		return "not_found"
	case StateFilling:
		return "filling"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// API is the part of the HTTP client a Session needs
type API interface {
	GetForm(ctx context.Context, id string) (*model.FormEnvelope, error)
	SubmitResponse(ctx context.Context, formID string, req *model.SubmitResponseRequest) (*model.ResponseEnvelope, error)
	ResolveURL(u string) string
}

// Session holds the form being filled and the answers given so far
type Session struct {
	api      API
	formID   string
	notifier client.Notifier
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	form    *model.Form
	answers map[string]model.AnswerValue
	order   []string // client ids in first-answered order
}

// Option configures a Session
type Option func(*Session)

// WithNotifier sets where submit failures are reported
func WithNotifier(n client.Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New creates a session for formID in the loading state
func New(api API, formID string, opts ...Option) *Session {
	s := &Session{
		api:      api,
		formID:   formID,
		notifier: client.NotifierFunc(func(string) {}),
		log:      logging.Discard(),
		state:    StateLoading,
		answers:  make(map[string]model.AnswerValue),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("formId", formID)
	return s
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form returns the loaded form, nil unless loaded
func (s *Session) Form() *model.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Load fetches the form. Any failure ends in StateNotFound. Calling Load
// after the first time does nothing.
func (s *Session) Load(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return s.state
	}

	env, err := s.api.GetForm(ctx, s.formID)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "error fetching form", "error", err)
		s.state = StateNotFound
	case env == nil || !env.Success || env.Form == nil:
		s.state = StateNotFound
	default:
		s.form = env.Form
		s.state = StateFilling
	}
	return s.state
}

// Toggle checks or unchecks option text of a categorize question.
// Checked options are kept in the order they were checked.
func (s *Session) Toggle(clientID, option string, checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect(clientID, model.QuestionTypeCategorize); err != nil {
		return err
	}

	prev := s.answers[clientID].Selected
	next := make([]string, 0, len(prev)+1)
	for _, text := range prev {
		if text != option {
			next = append(next, text)
		}
	}
	if checked {
		next = append(next, option)
	}
	s.record(clientID, model.SelectedAnswer(next...))
	return nil
}

// SetText sets the free-text answer of a cloze or comprehension question
func (s *Session) SetText(clientID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect(clientID, model.QuestionTypeCloze, model.QuestionTypeComprehension); err != nil {
		return err
	}
	s.record(clientID, model.TextAnswer(text))
	return nil
}

// Selected returns the checked options of a question, in checking order
func (s *Session) Selected(clientID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.answers[clientID].Selected...)
}

// Answers returns the answer set in first-answered order
func (s *Session) Answers() []model.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answerList()
}

// Submit posts the answers. It succeeds at most once; failures are
// reported through the notifier and leave the session open.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateSubmitted:
		return ErrAlreadySubmitted
	case StateFilling:
	default:
		return ErrNotFilling
	}

	env, err := s.api.SubmitResponse(ctx, s.formID, &model.SubmitResponseRequest{Answers: s.answerList()})
	if err != nil {
		var serr *client.StatusError
		if errors.As(err, &serr) {
			s.notifier.Notify("Error submitting form")
		} else {
			s.notifier.Notify("Network or server error: " + err.Error())
		}
		s.log.WarnContext(ctx, "submit failed", "error", err)
		return err
	}
	if env == nil || !env.Success {
		s.notifier.Notify("Error submitting form")
		return ErrSubmitRejected
	}

	s.state = StateSubmitted
	s.log.InfoContext(ctx, "form submitted", "answers", len(s.order))
	return nil
}

// expect checks the session is open and clientID names a question of one of types
func (s *Session) expect(clientID string, types ...model.QuestionType) error {
	if s.state != StateFilling {
		if s.state == StateSubmitted {
			return ErrAlreadySubmitted
		}
		return ErrNotFilling
	}
	q, ok := s.form.QuestionByClientID(clientID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, clientID)
	}
	for _, t := range types {
		if q.Type == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is %s", ErrWrongAnswerKind, clientID, q.Type)
}

func (s *Session) record(clientID string, v model.AnswerValue) {
	if _, seen := s.answers[clientID]; !seen {
		s.order = append(s.order, clientID)
	}
	s.answers[clientID] = v
}

func (s *Session) answerList() []model.Answer {
	out := make([]model.Answer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, model.Answer{QuestionClientID: id, Answer: s.answers[id]})
	}
	return out
}
