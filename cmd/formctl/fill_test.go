package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcraft/internal/fill"
	"formcraft/internal/model"
)

type stubAPI struct {
	form      *model.Form
	submitted []model.Answer
}

func (s *stubAPI) GetForm(context.Context, string) (*model.FormEnvelope, error) {
	return &model.FormEnvelope{Success: true, Form: s.form}, nil
}

func (s *stubAPI) SubmitResponse(_ context.Context, _ string, req *model.SubmitResponseRequest) (*model.ResponseEnvelope, error) {
	s.submitted = req.Answers
	return &model.ResponseEnvelope{Success: true}, nil
}

func (s *stubAPI) ResolveURL(u string) string { return u }

func TestParsePicks(t *testing.T) {
	assert.Equal(t, []int{2, 0}, parsePicks("3,1", 3))
	assert.Equal(t, []int{1}, parsePicks(" 2 , 9, x, 2", 3))
	assert.Nil(t, parsePicks("", 3))
}

func TestFillInteractive(t *testing.T) {
	api := &stubAPI{form: &model.Form{
		ID:    "f1",
		Title: "Quiz",
		Questions: []model.Question{
			{ClientID: "a", Type: model.QuestionTypeCategorize, Title: "Pick", Options: []model.Option{{Text: "A"}, {Text: "B"}, {Text: "C"}}},
			{ClientID: "b", Type: model.QuestionTypeCloze, Title: "Blank", ClozeText: "x ___"},
		},
	}}
	session := fill.New(api, "f1")
	require.Equal(t, fill.StateFilling, session.Load(context.Background()))

	var out bytes.Buffer
	err := fillInteractive(context.Background(), session, strings.NewReader("3,2\nfox\ny\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, fill.StateSubmitted, session.State())
	require.Len(t, api.submitted, 2)
	assert.Equal(t, []string{"C", "B"}, api.submitted[0].Answer.Selected)
	assert.Equal(t, "fox", api.submitted[1].Answer.Text)
	assert.Contains(t, out.String(), "Form Submitted Successfully!")
}

func TestAnswerText(t *testing.T) {
	assert.Equal(t, "(no answer)", answerText(model.SelectedAnswer()))
	assert.Equal(t, "(no answer)", answerText(model.TextAnswer("")))
	assert.Equal(t, `["C" "B"]`, answerText(model.SelectedAnswer("C", "B")))
	assert.Equal(t, "fox", answerText(model.TextAnswer("fox")))
}
