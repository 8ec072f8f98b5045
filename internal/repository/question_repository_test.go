package repository

import (
	"context"
	"testing"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestQuestionRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	repo := NewQuestionRepository(tdb.Database)
	ctx := context.Background()

	q := &models.Question{Name: "Carlos", Email: "carlos@example.com", Subject: "Baptism", Message: "When?"}
	require.NoError(t, repo.Create(ctx, q))
	assert.Equal(t, models.QuestionOpen, q.Status)

	answerer := primitive.NewObjectID()
	answered, err := repo.Answer(ctx, q.ID, "First Sunday of March", answerer)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionAnswered, answered.Status)
	assert.Equal(t, "First Sunday of March", answered.Answer)
	require.NotNil(t, answered.AnsweredBy)
	assert.Equal(t, answerer, *answered.AnsweredBy)

	_, err = repo.Answer(ctx, primitive.NewObjectID(), "x", answerer)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)

	require.NoError(t, repo.Delete(ctx, q.ID))
	_, err = repo.FindByID(ctx, q.ID)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}
