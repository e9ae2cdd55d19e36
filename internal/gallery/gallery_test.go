package gallery_test

import (
	"context"
	"testing"

	"maike/internal/gallery"
	"maike/pkg/domain"
	"maike/pkg/serrors"
	"maike/pkg/storage"
	mockstorage "maike/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGallery(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, gallery.Gallery) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, gallery.New(st)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage),
) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testList(owner domain.UserID) *domain.List {
	return &domain.List{
		ID:     domain.ListID(uuid.New()),
		UserID: owner,
		Attributes: domain.Attributes{
			ClothingAccessory: "Tuxedo",
			HairColor:         "Black",
			Gender:            "boy",
			Background:        "City",
			ArtStyle:          "Anime Key Visuals",
			WebsiteStyle:      "Twitter",
		},
	}
}

func TestGallery_UserCollection(t *testing.T) {
	_, st, g := newGallery(t)
	owner := domain.UserID(uuid.New())

	_, err := g.UserCollection(context.Background(), domain.UserID(uuid.New()), owner)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	want := []domain.Image{{ID: domain.ImageID(uuid.New()), UserID: owner, Saved: true}}
	st.EXPECT().UserSavedImages(gomock.Any(), owner).Return(want, nil)

	got, err := g.UserCollection(context.Background(), owner, owner)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestGallery_Save(t *testing.T) {
	owner := domain.UserID(uuid.New())

	t.Run("new image", func(t *testing.T) {
		ctrl, st, g := newGallery(t)
		list := testList(owner)

		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
			tx.EXPECT().ListImages(gomock.Any(), list.ID).Return(nil, nil)
			tx.EXPECT().StoreImages(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, images ...domain.Image) ([]domain.Image, error) {
					require.Len(t, images, 1)
					require.Equal(t, "https://img.example.com/a.png", images[0].URL)
					require.Equal(t, list.Attributes.Prompt(), images[0].Prompt)
					require.True(t, images[0].Saved)
					require.Equal(t, owner, images[0].UserID)
					images[0].ID = domain.ImageID(uuid.New())

					return images, nil
				},
			)
		})

		img, err := g.Save(context.Background(), owner, list.ID, "HTTPS://IMG.example.com/a.png#x")
		require.NoError(t, err)
		require.True(t, img.Saved)
	})

	t.Run("generated image is marked saved", func(t *testing.T) {
		ctrl, st, g := newGallery(t)
		list := testList(owner)
		existing := domain.Image{ID: domain.ImageID(uuid.New()), ListID: list.ID, URL: "https://img.example.com/a.png"}

		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
			tx.EXPECT().ListImages(gomock.Any(), list.ID).Return([]domain.Image{existing}, nil)
			tx.EXPECT().SetImageSaved(gomock.Any(), existing.ID, true).DoAndReturn(
				func(_ context.Context, _ domain.ImageID, saved bool) (*domain.Image, error) {
					out := existing
					out.Saved = saved

					return &out, nil
				},
			)
		})

		img, err := g.Save(context.Background(), owner, list.ID, existing.URL)
		require.NoError(t, err)
		require.Equal(t, existing.ID, img.ID)
		require.True(t, img.Saved)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, _, g := newGallery(t)

		_, err := g.Save(context.Background(), owner, domain.ListID(uuid.New()), "javascript:alert(1)")
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Contains(t, se.Fields(), "url")
	})

	t.Run("list of another user", func(t *testing.T) {
		ctrl, st, g := newGallery(t)
		list := testList(domain.UserID(uuid.New()))

		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		})

		_, err := g.Save(context.Background(), owner, list.ID, "https://img.example.com/a.png")
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("missing list", func(t *testing.T) {
		ctrl, st, g := newGallery(t)
		id := domain.ListID(uuid.New())

		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), id).Return(nil, nil)
		})

		_, err := g.Save(context.Background(), owner, id, "https://img.example.com/a.png")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestGallery_SetSaved(t *testing.T) {
	owner := domain.UserID(uuid.New())
	img := &domain.Image{ID: domain.ImageID(uuid.New()), UserID: owner, Saved: true}

	_, st, g := newGallery(t)
	st.EXPECT().ImageByID(gomock.Any(), img.ID).Return(img, nil)
	st.EXPECT().SetImageSaved(gomock.Any(), img.ID, false).Return(&domain.Image{ID: img.ID, UserID: owner}, nil)

	got, err := g.SetSaved(context.Background(), owner, img.ID, false)
	require.NoError(t, err)
	require.False(t, got.Saved)

	st.EXPECT().ImageByID(gomock.Any(), img.ID).Return(img, nil)
	_, err = g.SetSaved(context.Background(), domain.UserID(uuid.New()), img.ID, false)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestGallery_Delete(t *testing.T) {
	owner := domain.UserID(uuid.New())
	img := &domain.Image{ID: domain.ImageID(uuid.New()), UserID: owner}

	_, st, g := newGallery(t)
	st.EXPECT().ImageByID(gomock.Any(), img.ID).Return(img, nil)
	st.EXPECT().DeleteImage(gomock.Any(), owner, img.ID).Return(img, nil)
	require.NoError(t, g.Delete(context.Background(), owner, img.ID))

	st.EXPECT().ImageByID(gomock.Any(), img.ID).Return(nil, nil)
	require.ErrorIs(t, g.Delete(context.Background(), owner, img.ID), serrors.ErrNotFound)
}
