package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"formcraft/internal/model"
)

func TestResponseRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewResponseRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		resp := &model.Response{
			FormID: "f1",
			Answers: []model.Answer{
				{QuestionClientID: "q1", Answer: model.SelectedAnswer("B", "C")},
				{QuestionClientID: "q2", Answer: model.TextAnswer("fox")},
			},
		}
		err := repo.Create(context.Background(), resp)

		require.NoError(mt, err)
		assert.Len(mt, resp.ID, 24)
		assert.False(mt, resp.SubmittedAt.IsZero())
	})

	mt.Run("get by form id decodes both answer shapes", func(mt *mtest.T) {
		repo := NewResponseRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.responses", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "formId", Value: "f1"},
			{Key: "answers", Value: bson.A{
				bson.D{{Key: "questionClientId", Value: "q1"}, {Key: "answer", Value: bson.A{"B", "C"}}},
				bson.D{{Key: "questionClientId", Value: "q2"}, {Key: "answer", Value: "fox"}},
			}},
		}))

		responses, err := repo.GetByFormID(context.Background(), "f1")

		require.NoError(mt, err)
		require.Len(mt, responses, 1)
		answers := responses[0].Answers
		require.Len(mt, answers, 2)
		assert.Equal(mt, model.SelectedAnswer("B", "C"), answers[0].Answer)
		assert.Equal(mt, model.TextAnswer("fox"), answers[1].Answer)
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := NewResponseRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.responses", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.CountByFormID(context.Background(), "f1")

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})
}
