package repository

import (
	"context"
	"testing"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCommentRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "comments")

	comment := &models.Comment{
		PostTitle: "Generics in practice",
		Comment:   "great write-up",
		UserEmail: "user@example.com",
	}

	err := repo.Create(ctx, comment)

	require.NoError(t, err)
	assert.False(t, comment.ID.IsZero())
}

func TestCommentRepository_FindByPostTitle(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCommentRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns comments for the title only", func(t *testing.T) {
		tdb.ClearCollection(t, "comments")

		require.NoError(t, repo.Create(ctx, &models.Comment{PostTitle: "Post A", Comment: "first", UserEmail: "a@example.com"}))
		require.NoError(t, repo.Create(ctx, &models.Comment{PostTitle: "Post A", Comment: "second", UserEmail: "b@example.com"}))
		require.NoError(t, repo.Create(ctx, &models.Comment{PostTitle: "Post B", Comment: "other thread", UserEmail: "c@example.com"}))

		comments, err := repo.FindByPostTitle(ctx, "Post A")

		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("unknown title returns empty slice", func(t *testing.T) {
		tdb.ClearCollection(t, "comments")

		comments, err := repo.FindByPostTitle(ctx, "No Such Post")

		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}

func TestCommentRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCommentRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes existing comment", func(t *testing.T) {
		tdb.ClearCollection(t, "comments")

		comment := &models.Comment{PostTitle: "Post A", Comment: "doomed", UserEmail: "a@example.com"}
		require.NoError(t, repo.Create(ctx, comment))

		err := repo.Delete(ctx, comment.ID)

		require.NoError(t, err)
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("returns ErrCommentNotFound for unknown id", func(t *testing.T) {
		tdb.ClearCollection(t, "comments")

		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrCommentNotFound, err)
	})
}
