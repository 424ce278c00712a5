package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"formcraft/internal/client"
	"formcraft/internal/model"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Upload(ctx context.Context, f *client.File) (model.UploadResult, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.UploadResult), args.Error(1)
}

func (m *MockAPI) CreateForm(ctx context.Context, req *model.CreateFormRequest) (*model.FormEnvelope, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormEnvelope), args.Error(1)
}

type recorder struct {
	messages []string
	paths    []string
}

func (r *recorder) Notify(msg string)    { r.messages = append(r.messages, msg) }
func (r *recorder) Navigate(path string) { r.paths = append(r.paths, path) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("q%d", n)
	}
}

func newTestEditor(api API) (*Editor, *recorder) {
	rec := &recorder{}
	return New(api, WithNotifier(rec), WithNavigator(rec), WithIDGenerator(sequentialIDs())), rec
}

func TestAddQuestion(t *testing.T) {
	e, _ := newTestEditor(nil)

	i, err := e.AddQuestion(model.QuestionTypeCloze)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	q := e.Questions()[0]
	assert.Equal(t, "q1", q.ClientID)
	assert.Equal(t, model.QuestionTypeCloze, q.Type)
	assert.Empty(t, q.Title)
	assert.Empty(t, q.Image)
	assert.NotNil(t, q.Options)

	_, err = e.AddQuestion("matrix")
	assert.ErrorIs(t, err, ErrUnknownQuestionType)
	assert.Equal(t, 1, e.Len())
}

func TestAddQuestion_UUIDByDefault(t *testing.T) {
	e := New(nil)
	_, err := e.AddQuestion(model.QuestionTypeCategorize)
	require.NoError(t, err)
	_, err = e.AddQuestion(model.QuestionTypeCategorize)
	require.NoError(t, err)

	qs := e.Questions()
	assert.Len(t, qs[0].ClientID, 36)
	assert.NotEqual(t, qs[0].ClientID, qs[1].ClientID)
}

func TestRemoveQuestion_KeepsOrder(t *testing.T) {
	for remove := 0; remove < 4; remove++ {
		e, _ := newTestEditor(nil)
		for i := 0; i < 4; i++ {
			_, err := e.AddQuestion(model.QuestionTypeCloze)
			require.NoError(t, err)
		}

		require.NoError(t, e.RemoveQuestion(remove))

		var got []string
		for _, q := range e.Questions() {
			got = append(got, q.ClientID)
		}
		var want []string
		for i := 1; i <= 4; i++ {
			if i-1 != remove {
				want = append(want, fmt.Sprintf("q%d", i))
			}
		}
		assert.Equal(t, want, got, "remove %d", remove)
	}
}

func TestOutOfRange(t *testing.T) {
	e, _ := newTestEditor(nil)
	_, err := e.AddQuestion(model.QuestionTypeCategorize)
	require.NoError(t, err)

	assert.ErrorIs(t, e.RemoveQuestion(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.RemoveQuestion(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.SetQuestionTitle(3, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.AddOption(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.UpdateOption(0, 0, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.RemoveOption(0, 0), ErrIndexOutOfRange)
}

func TestUpdateQuestion_DoesNotMutatePreviousState(t *testing.T) {
	e, _ := newTestEditor(nil)
	_, err := e.AddQuestion(model.QuestionTypeCategorize)
	require.NoError(t, err)
	require.NoError(t, e.AddOption(0))

	before := e.blocks
	require.NoError(t, e.SetQuestionTitle(0, "Fruits"))
	require.NoError(t, e.UpdateOption(0, 0, "Apple"))

	assert.Empty(t, before[0].Title)
	assert.Equal(t, DefaultOptionText, before[0].Options[0].Text)

	q := e.Questions()[0]
	assert.Equal(t, "Fruits", q.Title)
	assert.Equal(t, "q1", q.ClientID)
	assert.Equal(t, []model.Option{{Text: "Apple"}}, q.Options)
}

func TestOptions(t *testing.T) {
	e, _ := newTestEditor(nil)
	_, err := e.AddQuestion(model.QuestionTypeCategorize)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, e.AddOption(0))
	}
	require.NoError(t, e.UpdateOption(0, 0, "A"))
	require.NoError(t, e.UpdateOption(0, 1, "B"))
	require.NoError(t, e.UpdateOption(0, 2, "C"))
	require.NoError(t, e.RemoveOption(0, 1))

	assert.Equal(t, []model.Option{{Text: "A"}, {Text: "C"}}, e.Questions()[0].Options)
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	e, _ := newTestEditor(nil)
	_, err := e.AddQuestion(model.QuestionTypeCategorize)
	require.NoError(t, err)
	require.NoError(t, e.AddOption(0))

	qs := e.Questions()
	qs[0].Options[0].Text = "changed"

	assert.Equal(t, DefaultOptionText, e.Questions()[0].Options[0].Text)
}

func TestSave_Success(t *testing.T) {
	api := new(MockAPI)
	e, rec := newTestEditor(api)
	e.SetTitle("Pets")
	header := &client.File{Name: "h.png", Data: []byte("h")}
	e.AttachHeaderImage(header)
	_, _ = e.AddQuestion(model.QuestionTypeCategorize)
	_, _ = e.AddQuestion(model.QuestionTypeCloze)
	qimg := &client.File{Name: "q.png", Data: []byte("q")}
	require.NoError(t, e.AttachQuestionImage(1, qimg))

	api.On("Upload", mock.Anything, header).Return(model.UploadResult{URL: "/u/h.png"}, nil).Once()
	api.On("Upload", mock.Anything, qimg).Return(model.UploadResult{URL: "/u/q.png"}, nil).Once()
	api.On("CreateForm", mock.Anything, mock.MatchedBy(func(req *model.CreateFormRequest) bool {
		return req.Title == "Pets" &&
			req.HeaderImage == "/u/h.png" &&
			len(req.Questions) == 2 &&
			req.Questions[0].Image == "" &&
			req.Questions[1].Image == "/u/q.png" &&
			req.Questions[1].ClientID == "q2"
	})).Return(&model.FormEnvelope{Success: true, Form: &model.Form{ID: "abc123"}}, nil).Once()

	form, err := e.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", form.ID)
	assert.Equal(t, []string{"Form created with id abc123"}, rec.messages)
	assert.Equal(t, []string{"/forms/abc123"}, rec.paths)
	assert.Empty(t, e.Questions()[1].Image)
	api.AssertExpectations(t)
}

func TestSave_UploadsInOrder(t *testing.T) {
	api := new(MockAPI)
	e, _ := newTestEditor(api)
	e.AttachHeaderImage(&client.File{Name: "header.png"})
	for i := 0; i < 3; i++ {
		_, _ = e.AddQuestion(model.QuestionTypeCloze)
	}
	require.NoError(t, e.AttachQuestionImage(2, &client.File{Name: "q3.png"}))
	require.NoError(t, e.AttachQuestionImage(0, &client.File{Name: "q1.png"}))

	var uploaded []string
	api.On("Upload", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded = append(uploaded, args.Get(1).(*client.File).Name)
		}).
		Return(model.UploadResult{}, nil)
	api.On("CreateForm", mock.Anything, mock.Anything).
		Return(&model.FormEnvelope{Success: true, Form: &model.Form{ID: "f1"}}, nil).Once()

	_, err := e.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"header.png", "q1.png", "q3.png"}, uploaded)
}

func TestAttachQuestionImage_NilClears(t *testing.T) {
	e, _ := newTestEditor(nil)
	_, _ = e.AddQuestion(model.QuestionTypeCloze)
	require.NoError(t, e.AttachQuestionImage(0, &client.File{Name: "q.png"}))
	require.NoError(t, e.SetQuestionTitle(0, "kept"))
	require.NotNil(t, e.Questions()[0].ImageFile)

	require.NoError(t, e.AttachQuestionImage(0, nil))

	assert.Nil(t, e.Questions()[0].ImageFile)
	assert.Equal(t, "kept", e.Questions()[0].Title)
}

func TestSave_UploadFailureDropsImage(t *testing.T) {
	api := new(MockAPI)
	e, _ := newTestEditor(api)
	_, _ = e.AddQuestion(model.QuestionTypeComprehension)
	require.NoError(t, e.UpdateQuestion(0, QuestionPatch{
		Image:     strPtr("/uploads/old.png"),
		ImageFile: &client.File{Name: "q.png"},
	}))

	api.On("Upload", mock.Anything, mock.Anything).Return(model.UploadResult{}, errors.New("boom")).Once()
	api.On("CreateForm", mock.Anything, mock.MatchedBy(func(req *model.CreateFormRequest) bool {
		return req.HeaderImage == "" && req.Questions[0].Image == "/uploads/old.png"
	})).Return(&model.FormEnvelope{Success: true, Form: &model.Form{ID: "f1"}}, nil).Once()

	_, err := e.Save(context.Background())

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestSave_MissingID(t *testing.T) {
	api := new(MockAPI)
	e, rec := newTestEditor(api)
	api.On("CreateForm", mock.Anything, mock.Anything).Return(&model.FormEnvelope{Success: true}, nil).Once()

	_, err := e.Save(context.Background())

	assert.ErrorIs(t, err, ErrNoFormID)
	assert.Equal(t, []string{"Error creating form"}, rec.messages)
	assert.Empty(t, rec.paths)
	api.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestSave_NetworkError(t *testing.T) {
	api := new(MockAPI)
	e, rec := newTestEditor(api)
	e.SetTitle("Keep me")
	api.On("CreateForm", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := e.Save(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"Network or server error: connection refused"}, rec.messages)
	assert.Equal(t, "Keep me", e.Title())
}

// End to end through the HTTP client: the uploaded header URL ends up in the POST body.
func TestSave_HeaderImageInRequestBody(t *testing.T) {
	var posted map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload/single":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"url":"/u/x.png"}`))
		case "/api/forms":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"form":{"_id":"f9"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	e, rec := newTestEditor(client.New(srv.URL + "/"))
	e.AttachHeaderImage(&client.File{Name: "x.png", Data: []byte("x")})

	_, err := e.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/u/x.png", posted["headerImage"])
	assert.Equal(t, []any{}, posted["questions"])
	assert.Equal(t, []string{"/forms/f9"}, rec.paths)
}

func strPtr(s string) *string { return &s }
