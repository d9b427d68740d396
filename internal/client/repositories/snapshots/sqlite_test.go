package snapshots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/client/storage"
	"github.com/okuleshov/supportlist/internal/common"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), "file:snaprepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func sample() *models.List {
	return &models.List{
		Title:       "Moving day",
		Items:       []models.Item{{ID: "a", Title: "Pack boxes", Status: models.StatusPending}},
		OwnerPubkey: "o",
		GuestPubkey: "g",
		CreatedAt:   1,
		UpdatedAt:   2,
	}
}

func TestSaveGet_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "lst", sample()))

	got, err := repo.Get(ctx, "lst")
	require.NoError(t, err)
	require.Equal(t, sample(), got)
}

func TestSave_ReplacesExisting(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "lst", sample()))

	updated := sample()
	updated.Title = "Moving day, again"
	updated.UpdatedAt = 9
	require.NoError(t, repo.Save(ctx, "lst", updated))

	got, err := repo.Get(ctx, "lst")
	require.NoError(t, err)
	require.Equal(t, "Moving day, again", got.Title)
	require.EqualValues(t, 9, got.UpdatedAt)
}

func TestGet_MissingReportsNotFound(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrListNotFound)
}

func TestDelete_MissingIsNoError(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "nope"))

	require.NoError(t, repo.Save(ctx, "lst", sample()))
	require.NoError(t, repo.Delete(ctx, "lst"))
	_, err := repo.Get(ctx, "lst")
	require.ErrorIs(t, err, common.ErrListNotFound)
}
