package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"formcraft/internal/logging"
	"formcraft/internal/model"
)

func newTestFormService() (*FormService, *MockFormRepo, *MockFormCache) {
	repo := new(MockFormRepo)
	c := new(MockFormCache)
	return NewFormService(repo, c, logging.Discard()), repo, c
}

func TestFormService_Create(t *testing.T) {
	svc, repo, c := newTestFormService()
	ctx := context.Background()

	req := &model.CreateFormRequest{
		Title:       "Science",
		HeaderImage: "/u/x.png",
		Questions: []model.Question{
			{ClientID: "1", Type: model.QuestionTypeCategorize, Title: "Pick", Options: []model.Option{{Text: "A"}}, ClozeText: "stray"},
			{ClientID: "2", Type: model.QuestionTypeCloze, ClozeText: "The ___ fox"},
		},
	}

	repo.On("Create", ctx, mock.AnythingOfType("*model.Form")).Return("65f000000000000000000001", nil)
	c.On("Set", ctx, mock.AnythingOfType("*model.Form")).Return(nil)

	form, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "65f000000000000000000001", form.ID)
	assert.Equal(t, "/u/x.png", form.HeaderImage)
	require.Len(t, form.Questions, 2)
	assert.Empty(t, form.Questions[0].ClozeText)
	assert.Equal(t, []model.Option{{Text: "A"}}, form.Questions[0].Options)
	assert.Equal(t, "The ___ fox", form.Questions[1].ClozeText)
	assert.NotNil(t, form.Questions[1].Options)
	repo.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestFormService_Create_CacheFailureIsNotFatal(t *testing.T) {
	svc, repo, c := newTestFormService()
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return("id1", nil)
	c.On("Set", ctx, mock.Anything).Return(errors.New("redis down"))

	form, err := svc.Create(ctx, &model.CreateFormRequest{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, "id1", form.ID)
}

func TestFormService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		questions []model.Question
		field     string
	}{
		{
			name:      "unknown type",
			questions: []model.Question{{ClientID: "1", Type: "essay"}},
			field:     "questions[0].type",
		},
		{
			name:      "missing client id",
			questions: []model.Question{{Type: model.QuestionTypeCloze}},
			field:     "questions[0].clientId",
		},
		{
			name: "duplicate client id",
			questions: []model.Question{
				{ClientID: "same", Type: model.QuestionTypeCloze},
				{ClientID: "same", Type: model.QuestionTypeComprehension},
			},
			field: "questions[1].clientId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestFormService()

			_, err := svc.Create(context.Background(), &model.CreateFormRequest{Questions: tt.questions})

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestFormService_GetByID_CacheHit(t *testing.T) {
	svc, repo, c := newTestFormService()
	ctx := context.Background()
	cached := &model.Form{ID: "f1", Title: "cached"}

	c.On("Get", ctx, "f1").Return(cached, nil)

	form, err := svc.GetByID(ctx, "f1")

	require.NoError(t, err)
	assert.Same(t, cached, form)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFormService_GetByID_MissFillsCache(t *testing.T) {
	svc, repo, c := newTestFormService()
	ctx := context.Background()
	stored := &model.Form{ID: "f1", Title: "stored"}

	c.On("Get", ctx, "f1").Return(nil, nil)
	repo.On("GetByID", ctx, "f1").Return(stored, nil)
	c.On("Set", ctx, stored).Return(nil)

	form, err := svc.GetByID(ctx, "f1")

	require.NoError(t, err)
	assert.Equal(t, "stored", form.Title)
	c.AssertExpectations(t)
}

func TestFormService_GetByID_NotFound(t *testing.T) {
	svc, repo, c := newTestFormService()
	ctx := context.Background()

	c.On("Get", ctx, "missing").Return(nil, errors.New("redis down"))
	repo.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := svc.GetByID(ctx, "missing")

	assert.True(t, IsNotFound(err))
}

func TestFormService_GetByID_RepoError(t *testing.T) {
	svc, repo, c := newTestFormService()
	ctx := context.Background()

	c.On("Get", ctx, "f1").Return(nil, nil)
	repo.On("GetByID", ctx, "f1").Return(nil, errors.New("connection reset"))

	_, err := svc.GetByID(ctx, "f1")

	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNewFormService_NilCache(t *testing.T) {
	repo := new(MockFormRepo)
	svc := NewFormService(repo, nil, logging.Discard())
	ctx := context.Background()

	repo.On("GetByID", ctx, "f1").Return(&model.Form{ID: "f1"}, nil)

	form, err := svc.GetByID(ctx, "f1")

	require.NoError(t, err)
	assert.Equal(t, "f1", form.ID)
}
