package lists_test

import (
	"context"
	"errors"
	"testing"

	"maike/internal/lists"
	"maike/pkg/domain"
	"maike/pkg/imagegen"
	mockimagegen "maike/pkg/imagegen/mock"
	"maike/pkg/serrors"
	"maike/pkg/storage"
	mockstorage "maike/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl     *gomock.Controller
	st       *mockstorage.MockStorage
	provider *mockimagegen.MockClient
	lists    lists.Lists
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	provider := mockimagegen.NewMockClient(ctrl)

	return &fixture{
		ctrl:     ctrl,
		st:       st,
		provider: provider,
		lists:    lists.New(st, provider, nil, lists.Options{MaxAttempts: 3, ImagesPerList: 2}),
	}
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func (f *fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func attrs() domain.Attributes {
	return domain.Attributes{
		ClothingAccessory: "Hoodie",
		HairColor:         "Silver",
		Gender:            "girl",
		Background:        "Night",
		ArtStyle:          "Digital Art",
		WebsiteStyle:      "Pixiv",
	}
}

func newList(owner domain.UserID, status domain.GenerationStatus) *domain.List {
	return &domain.List{
		ID:               domain.ListID(uuid.New()),
		UserID:           owner,
		Attributes:       attrs(),
		GenerationStatus: status,
	}
}

func newUserID() domain.UserID { return domain.UserID(uuid.New()) }

func TestLists_Create(t *testing.T) {
	t.Run("stores a valid list", func(t *testing.T) {
		f := newFixture(t)
		owner := newUserID()

		f.st.EXPECT().StoreList(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l domain.List) (*domain.List, error) {
				require.Equal(t, owner, l.UserID)
				require.Equal(t, domain.GenerationStatusNone, l.GenerationStatus)
				l.ID = domain.ListID(uuid.New())

				return &l, nil
			},
		)

		list, err := f.lists.Create(context.Background(), owner, attrs())
		require.NoError(t, err)
		require.Equal(t, attrs(), list.Attributes)
	})

	t.Run("rejects values outside the catalog", func(t *testing.T) {
		f := newFixture(t)
		a := attrs()
		a.HairColor = "Purple"
		a.Gender = ""

		_, err := f.lists.Create(context.Background(), newUserID(), a)
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Contains(t, se.Fields(), "hairColor")
		require.Contains(t, se.Fields(), "gender")
	})
}

func TestLists_UserLists(t *testing.T) {
	f := newFixture(t)
	owner := newUserID()

	_, err := f.lists.UserLists(context.Background(), newUserID(), owner)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	want := []domain.List{*newList(owner, domain.GenerationStatusNone)}
	f.st.EXPECT().UserLists(gomock.Any(), owner).Return(want, nil)

	got, err := f.lists.UserLists(context.Background(), owner, owner)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLists_Get(t *testing.T) {
	owner := newUserID()
	list := newList(owner, domain.GenerationStatusNone)

	tests := []struct {
		name   string
		caller domain.UserID
		stored *domain.List
		err    error
		want   error
	}{
		{name: "owner", caller: owner, stored: list},
		{name: "other user", caller: newUserID(), stored: list, want: serrors.ErrForbidden},
		{name: "missing", caller: owner, want: serrors.ErrNotFound},
		{name: "storage error", caller: owner, err: errors.New("boom"), want: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(tt.stored, tt.err)

			got, err := f.lists.Get(context.Background(), tt.caller, list.ID)
			switch {
			case tt.want == nil:
				require.NoError(t, err)
				require.Equal(t, list, got)
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
			default:
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLists_Update(t *testing.T) {
	t.Run("merges the patch", func(t *testing.T) {
		f := newFixture(t)
		owner := newUserID()
		list := newList(owner, domain.GenerationStatusCompleted)

		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
			tx.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
					require.NotNil(t, u.Attributes)
					require.Equal(t, "Blue", u.Attributes.HairColor)
					require.Equal(t, "Hoodie", u.Attributes.ClothingAccessory)
					require.Empty(t, u.Status)

					out := *list
					out.Attributes = *u.Attributes

					return &out, nil
				},
			)
		})

		got, err := f.lists.Update(context.Background(), owner, list.ID, lists.Patch{HairColor: "Blue"})
		require.NoError(t, err)
		require.Equal(t, "Blue", got.Attributes.HairColor)
	})

	t.Run("validates the merged attributes", func(t *testing.T) {
		f := newFixture(t)
		owner := newUserID()
		list := newList(owner, domain.GenerationStatusNone)

		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		})

		_, err := f.lists.Update(context.Background(), owner, list.ID, lists.Patch{ArtStyle: "Cubism"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("forbidden for other users", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusNone)

		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		})

		_, err := f.lists.Update(context.Background(), newUserID(), list.ID, lists.Patch{HairColor: "Blue"})
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestLists_Delete(t *testing.T) {
	f := newFixture(t)
	owner := newUserID()
	list := newList(owner, domain.GenerationStatusNone)

	f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
	f.st.EXPECT().DeleteList(gomock.Any(), owner, list.ID).Return(list, nil)
	require.NoError(t, f.lists.Delete(context.Background(), owner, list.ID))

	f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(nil, nil)
	require.ErrorIs(t, f.lists.Delete(context.Background(), owner, list.ID), serrors.ErrNotFound)
}

func TestLists_Generate(t *testing.T) {
	t.Run("job added", func(t *testing.T) {
		f := newFixture(t)
		owner := newUserID()
		list := newList(owner, domain.GenerationStatusFailed)

		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					job, ok := args.(lists.JobArgs)
					require.True(t, ok)
					require.Equal(t, list.ID, job.ListID)
					require.Equal(t, "GenerateImagesJob", job.Kind())
					require.Equal(t, 3, job.InsertOpts().MaxAttempts)
					require.True(t, job.InsertOpts().UniqueOpts.ByArgs)

					return true, nil
				},
			)
			tx.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
					require.Equal(t, domain.GenerationStatusPending, u.Status)
					require.NotNil(t, u.LastError)
					require.Empty(t, *u.LastError)

					out := *list
					out.GenerationStatus = u.Status

					return &out, nil
				},
			)
		})

		got, err := f.lists.Generate(context.Background(), owner, list.ID)
		require.NoError(t, err)
		require.Equal(t, domain.GenerationStatusPending, got.GenerationStatus)
	})

	t.Run("job already in flight", func(t *testing.T) {
		f := newFixture(t)
		owner := newUserID()
		list := newList(owner, domain.GenerationStatusPending)

		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		})

		got, err := f.lists.Generate(context.Background(), owner, list.ID)
		require.NoError(t, err)
		require.Equal(t, list, got)
	})

	t.Run("add job fails", func(t *testing.T) {
		f := newFixture(t)
		owner := newUserID()
		list := newList(owner, domain.GenerationStatusNone)

		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))
		})

		_, err := f.lists.Generate(context.Background(), owner, list.ID)
		require.ErrorContains(t, err, "queue down")
	})
}

func TestLists_Images(t *testing.T) {
	f := newFixture(t)
	owner := newUserID()
	list := newList(owner, domain.GenerationStatusCompleted)
	images := []domain.Image{{ID: domain.ImageID(uuid.New()), ListID: list.ID, URL: "https://img/1"}}

	f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
	f.st.EXPECT().ListImages(gomock.Any(), list.ID).Return(images, nil)

	got, err := f.lists.Images(context.Background(), owner, list.ID)
	require.NoError(t, err)
	require.Equal(t, images, got)
}

func TestLists_GenerateImages(t *testing.T) {
	rl := imagegen.RateLimitStatus{Limit: 5, Remaining: 4}

	t.Run("stores images and completes the list", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, storage.ListUpdates{IncrementAttempts: true}).Return(list, nil)
		f.provider.EXPECT().Generate(gomock.Any(), imagegen.Request{Prompt: list.Attributes.Prompt(), N: 2}).
			Return([]imagegen.Image{{URL: "https://img/1"}, {URL: "https://img/2", RevisedPrompt: "revised"}}, rl, nil)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreImages(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, images ...domain.Image) ([]domain.Image, error) {
					require.Len(t, images, 2)
					require.Equal(t, list.UserID, images[0].UserID)
					require.Equal(t, list.ID, images[0].ListID)
					require.Equal(t, list.Attributes.Prompt(), images[0].Prompt)
					require.Equal(t, "revised", images[1].Prompt)
					require.False(t, images[0].Saved)

					return images, nil
				},
			)
			tx.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
					require.Equal(t, domain.GenerationStatusCompleted, u.Status)

					return list, nil
				},
			)
		})

		got, err := f.lists.GenerateImages(context.Background(), list.ID, false)
		require.NoError(t, err)
		require.Equal(t, rl, got)
	})

	t.Run("deleted list", func(t *testing.T) {
		f := newFixture(t)
		id := domain.ListID(uuid.New())
		f.st.EXPECT().ListByID(gomock.Any(), id).Return(nil, nil)

		_, err := f.lists.GenerateImages(context.Background(), id, false)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("list not pending", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusCompleted)
		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)

		_, err := f.lists.GenerateImages(context.Background(), list.ID, false)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("rate limited leaves the list pending", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, storage.ListUpdates{IncrementAttempts: true}).Return(list, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(nil, rl, serrors.KindOnly(serrors.ErrRateLimited))

		got, err := f.lists.GenerateImages(context.Background(), list.ID, true)
		require.ErrorIs(t, err, serrors.ErrRateLimited)
		require.Equal(t, rl, got)
	})

	t.Run("rejected prompt fails the list", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, storage.ListUpdates{IncrementAttempts: true}).Return(list, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(nil, rl, serrors.With(serrors.ErrBadRequest, "content policy"))
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
				require.Equal(t, domain.GenerationStatusFailed, u.Status)
				require.Equal(t, "content policy", *u.LastError)

				return list, nil
			},
		)

		_, err := f.lists.GenerateImages(context.Background(), list.ID, false)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("transient error retries", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, storage.ListUpdates{IncrementAttempts: true}).Return(list, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, rl, errors.New("502"))

		_, err := f.lists.GenerateImages(context.Background(), list.ID, false)
		require.ErrorContains(t, err, "502")
		require.NotErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("last attempt fails the list", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, storage.ListUpdates{IncrementAttempts: true}).Return(list, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, rl, errors.New("502"))
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
				require.Equal(t, domain.GenerationStatusFailed, u.Status)
				require.Equal(t, "502", *u.LastError)

				return list, nil
			},
		)

		_, err := f.lists.GenerateImages(context.Background(), list.ID, true)
		require.ErrorContains(t, err, "502")
	})

	t.Run("last attempt cut by the job timeout still fails the list", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, storage.ListUpdates{IncrementAttempts: true}).Return(list, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ imagegen.Request) ([]imagegen.Image, imagegen.RateLimitStatus, error) {
				cancel()

				return nil, imagegen.RateLimitStatus{}, ctx.Err()
			},
		)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
				require.NoError(t, ctx.Err())
				require.Equal(t, domain.GenerationStatusFailed, u.Status)

				return list, nil
			},
		)

		_, err := f.lists.GenerateImages(ctx, list.ID, true)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLists_MarkFailed(t *testing.T) {
	cause := errors.New("could not reserve rate limit: context deadline exceeded")

	t.Run("pending list", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ domain.ListID, u storage.ListUpdates) (*domain.List, error) {
				require.NoError(t, ctx.Err())
				require.Equal(t, domain.GenerationStatusFailed, u.Status)
				require.Equal(t, cause.Error(), *u.LastError)

				return list, nil
			},
		)

		require.NoError(t, f.lists.MarkFailed(ctx, list.ID, cause))
	})

	t.Run("finished list is left alone", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusCompleted)
		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)

		require.NoError(t, f.lists.MarkFailed(context.Background(), list.ID, cause))
	})

	t.Run("deleted list", func(t *testing.T) {
		f := newFixture(t)
		id := domain.ListID(uuid.New())
		f.st.EXPECT().ListByID(gomock.Any(), id).Return(nil, nil)

		require.NoError(t, f.lists.MarkFailed(context.Background(), id, cause))
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture(t)
		list := newList(newUserID(), domain.GenerationStatusPending)
		f.st.EXPECT().ListByID(gomock.Any(), list.ID).Return(list, nil)
		f.st.EXPECT().UpdateList(gomock.Any(), list.ID, gomock.Any()).Return(nil, errors.New("pg down"))

		require.ErrorContains(t, f.lists.MarkFailed(context.Background(), list.ID, cause), "pg down")
	})
}
