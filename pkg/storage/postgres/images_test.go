package postgres_test

import (
	"context"
	"maike/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Images(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()
	owner := createUser(t, pg, "owner", "owner@example.com")
	other := createUser(t, pg, "other", "other@example.com")
	list, err := pg.StoreList(ctx, domain.List{UserID: owner.ID, Attributes: testAttributes()})
	require.NoError(t, err)

	prompt := testAttributes().Prompt()
	stored, err := pg.StoreImages(ctx,
		domain.Image{UserID: owner.ID, ListID: list.ID, URL: "https://img.example.com/a.png", Prompt: prompt},
		domain.Image{UserID: owner.ID, ListID: list.ID, URL: "https://img.example.com/b.png", Prompt: prompt},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, img := range stored {
		require.NotEqual(t, domain.ImageID{}, img.ID)
		require.False(t, img.Saved)
		require.Equal(t, prompt, img.Prompt)
	}

	t.Run("list images", func(t *testing.T) {
		images, err := pg.ListImages(ctx, list.ID)
		require.NoError(t, err)
		require.Len(t, images, 2)

		images, err = pg.ListImages(ctx, domain.ListID{})
		require.NoError(t, err)
		require.Empty(t, images)
	})

	t.Run("save and unsave", func(t *testing.T) {
		saved, err := pg.SetImageSaved(ctx, stored[0].ID, true)
		require.NoError(t, err)
		require.True(t, saved.Saved)

		collection, err := pg.UserSavedImages(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, collection, 1)
		require.Equal(t, stored[0].ID, collection[0].ID)

		unsaved, err := pg.SetImageSaved(ctx, stored[0].ID, false)
		require.NoError(t, err)
		require.False(t, unsaved.Saved)

		collection, err = pg.UserSavedImages(ctx, owner.ID)
		require.NoError(t, err)
		require.Empty(t, collection)

		missing, err := pg.SetImageSaved(ctx, domain.ImageID{}, true)
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("by id", func(t *testing.T) {
		img, err := pg.ImageByID(ctx, stored[1].ID)
		require.NoError(t, err)
		require.Equal(t, "https://img.example.com/b.png", img.URL)

		missing, err := pg.ImageByID(ctx, domain.ImageID{})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pg.DeleteImage(ctx, other.ID, stored[1].ID)
		require.NoError(t, err)
		require.Nil(t, deleted)

		deleted, err = pg.DeleteImage(ctx, owner.ID, stored[1].ID)
		require.NoError(t, err)
		require.Equal(t, stored[1].ID, deleted.ID)

		img, err := pg.ImageByID(ctx, stored[1].ID)
		require.NoError(t, err)
		require.Nil(t, img)
	})
}
