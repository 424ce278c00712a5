// Package editor holds the in-memory form being composed and saves it
// through the API: images first, then the form document.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"formcraft/internal/client"
	"formcraft/internal/logging"
	"formcraft/internal/model"
)

var (
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrNoFormID            = errors.New("server returned no form id")
)

// DefaultOptionText is the label of a freshly added option
const DefaultOptionText = "Option"

// API is the part of the HTTP client the editor needs
type API interface {
	Upload(ctx context.Context, f *client.File) (model.UploadResult, error)
	CreateForm(ctx context.Context, req *model.CreateFormRequest) (*model.FormEnvelope, error)
}

// Navigator moves the user to another page after a successful save
type Navigator interface {
	Navigate(path string)
}

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}

// Block is a question being edited plus its pending image attachment
type Block struct {
	model.Question
	ImageFile *client.File
}

// QuestionPatch is a partial update; nil fields are left unchanged.
// ClearImageFile drops the pending attachment.
type QuestionPatch struct {
	Title                *string
	Image                *string
	Options              *[]model.Option
	ClozeText            *string
	ComprehensionPassage *string
	ImageFile            *client.File
	ClearImageFile       bool
}

// Editor is the form under construction
type Editor struct {
	api       API
	notifier  client.Notifier
	navigator Navigator
	newID     func() string
	log       *slog.Logger

	title      string
	headerFile *client.File
	blocks     []Block
}

// Option configures an Editor
type Option func(*Editor)

// WithNotifier sets where save results are reported
func WithNotifier(n client.Notifier) Option {
	return func(e *Editor) { e.notifier = n }
}

// WithNavigator sets what happens after a form is created
func WithNavigator(n Navigator) Option {
	return func(e *Editor) { e.navigator = n }
}

// WithIDGenerator replaces the uuid client id generator
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) { e.newID = fn }
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// New creates an empty editor saving through api
func New(api API, opts ...Option) *Editor {
	e := &Editor{
		api:       api,
		notifier:  client.NotifierFunc(func(string) {}),
		navigator: nopNavigator{},
		newID:     func() string { return uuid.New().String() },
		log:       logging.Discard(),
		blocks:    []Block{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Title returns the form title
func (e *Editor) Title() string { return e.title }

// SetTitle sets the form title
func (e *Editor) SetTitle(title string) { e.title = title }

// AttachHeaderImage picks the header image; nil clears it
func (e *Editor) AttachHeaderImage(f *client.File) { e.headerFile = f }

// HeaderImage returns the pending header attachment
func (e *Editor) HeaderImage() *client.File { return e.headerFile }

// Len returns the number of questions
func (e *Editor) Len() int { return len(e.blocks) }

// Questions returns a copy of the question blocks
func (e *Editor) Questions() []Block {
	out := make([]Block, len(e.blocks))
	for i, b := range e.blocks {
		out[i] = cloneBlock(b)
	}
	return out
}

// AddQuestion appends an empty block of type t and returns its index
func (e *Editor) AddQuestion(t model.QuestionType) (int, error) {
	if !t.Valid() {
		return -1, fmt.Errorf("%w: %q", ErrUnknownQuestionType, t)
	}
	next := make([]Block, len(e.blocks), len(e.blocks)+1)
	copy(next, e.blocks)
	next = append(next, Block{Question: model.Question{
		ClientID: e.newID(),
		Type:     t,
		Options:  []model.Option{},
	}})
	e.blocks = next
	return len(next) - 1, nil
}

// UpdateQuestion merges patch into the block at index. The block list is
// replaced, never modified in place; clientId and type cannot change.
func (e *Editor) UpdateQuestion(index int, patch QuestionPatch) error {
	if index < 0 || index >= len(e.blocks) {
		return fmt.Errorf("%w: question %d", ErrIndexOutOfRange, index)
	}
	next := make([]Block, len(e.blocks))
	for i, b := range e.blocks {
		if i == index {
			next[i] = applyPatch(b, patch)
		} else {
			next[i] = b
		}
	}
	e.blocks = next
	return nil
}

// RemoveQuestion drops the block at index, keeping the order of the rest
func (e *Editor) RemoveQuestion(index int) error {
	if index < 0 || index >= len(e.blocks) {
		return fmt.Errorf("%w: question %d", ErrIndexOutOfRange, index)
	}
	next := make([]Block, 0, len(e.blocks)-1)
	for i, b := range e.blocks {
		if i != index {
			next = append(next, b)
		}
	}
	e.blocks = next
	return nil
}

// SetQuestionTitle is a shorthand for a title-only patch
func (e *Editor) SetQuestionTitle(index int, title string) error {
	return e.UpdateQuestion(index, QuestionPatch{Title: &title})
}

// SetClozeText is a shorthand for a cloze-text patch
func (e *Editor) SetClozeText(index int, text string) error {
	return e.UpdateQuestion(index, QuestionPatch{ClozeText: &text})
}

// SetPassage is a shorthand for a comprehension-passage patch
func (e *Editor) SetPassage(index int, passage string) error {
	return e.UpdateQuestion(index, QuestionPatch{ComprehensionPassage: &passage})
}

// AttachQuestionImage picks an image for the question at index; nil clears it
func (e *Editor) AttachQuestionImage(index int, f *client.File) error {
	if f == nil {
		return e.UpdateQuestion(index, QuestionPatch{ClearImageFile: true})
	}
	return e.UpdateQuestion(index, QuestionPatch{ImageFile: f})
}

// AddOption appends a default option to the question at index
func (e *Editor) AddOption(index int) error {
	if index < 0 || index >= len(e.blocks) {
		return fmt.Errorf("%w: question %d", ErrIndexOutOfRange, index)
	}
	opts := cloneOptions(e.blocks[index].Options)
	opts = append(opts, model.Option{Text: DefaultOptionText})
	return e.UpdateQuestion(index, QuestionPatch{Options: &opts})
}

// UpdateOption sets the text of option o of question q
func (e *Editor) UpdateOption(q, o int, text string) error {
	opts, err := e.optionsAt(q, o)
	if err != nil {
		return err
	}
	opts[o] = model.Option{Text: text}
	return e.UpdateQuestion(q, QuestionPatch{Options: &opts})
}

// RemoveOption drops option o of question q
func (e *Editor) RemoveOption(q, o int) error {
	opts, err := e.optionsAt(q, o)
	if err != nil {
		return err
	}
	opts = append(opts[:o], opts[o+1:]...)
	return e.UpdateQuestion(q, QuestionPatch{Options: &opts})
}

// optionsAt returns a copy of the options of question q after checking o
func (e *Editor) optionsAt(q, o int) ([]model.Option, error) {
	if q < 0 || q >= len(e.blocks) {
		return nil, fmt.Errorf("%w: question %d", ErrIndexOutOfRange, q)
	}
	opts := e.blocks[q].Options
	if o < 0 || o >= len(opts) {
		return nil, fmt.Errorf("%w: option %d of question %d", ErrIndexOutOfRange, o, q)
	}
	return cloneOptions(opts), nil
}

func applyPatch(b Block, p QuestionPatch) Block {
	out := cloneBlock(b)
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.Options != nil {
		out.Options = cloneOptions(*p.Options)
	}
	if p.ClozeText != nil {
		out.ClozeText = *p.ClozeText
	}
	if p.ComprehensionPassage != nil {
		out.ComprehensionPassage = *p.ComprehensionPassage
	}
	if p.ClearImageFile {
		out.ImageFile = nil
	} else if p.ImageFile != nil {
		out.ImageFile = p.ImageFile
	}
	return out
}

func cloneBlock(b Block) Block {
	b.Options = cloneOptions(b.Options)
	return b
}

func cloneOptions(opts []model.Option) []model.Option {
	out := make([]model.Option, len(opts))
	copy(out, opts)
	return out
}
