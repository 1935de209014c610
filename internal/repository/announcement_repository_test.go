package repository

import (
	"context"
	"testing"

	"forum-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAnnouncementRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "announcements")

	announcement := &models.Announcement{
		AuthorName:  "Jane Admin",
		Title:       "Scheduled maintenance",
		Description: "The forum will be read-only on Saturday.",
	}

	err := repo.Create(ctx, announcement)

	require.NoError(t, err)
	assert.False(t, announcement.ID.IsZero())
}

func TestAnnouncementRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAnnouncementRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns empty slice when collection is empty", func(t *testing.T) {
		tdb.ClearCollection(t, "announcements")

		announcements, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, announcements)
		assert.Empty(t, announcements)
	})

	t.Run("returns all announcements", func(t *testing.T) {
		tdb.ClearCollection(t, "announcements")

		require.NoError(t, repo.Create(ctx, &models.Announcement{AuthorName: "Jane Admin", Title: "One", Description: "first"}))
		require.NoError(t, repo.Create(ctx, &models.Announcement{AuthorName: "Jane Admin", Title: "Two", Description: "second"}))

		announcements, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, announcements, 2)
	})
}

func TestAnnouncementRepository_Count(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAnnouncementRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "announcements")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, &models.Announcement{AuthorName: "Jane Admin", Title: "One", Description: "first"}))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
