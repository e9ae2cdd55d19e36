package accounts_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"maike/internal/accounts"
	"maike/pkg/domain"
	"maike/pkg/serrors"
	"maike/pkg/storage"
	mockstorage "maike/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pngHeader is enough of a PNG file for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newAccounts(t *testing.T, maxUpload int64) (*gomock.Controller, *mockstorage.MockStorage, accounts.Accounts) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, accounts.New(st, nil, accounts.Options{MaxUploadBytes: maxUpload})
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

func ptr[T any](v T) *T { return &v }

func TestAccounts_User(t *testing.T) {
	_, st, a := newAccounts(t, 0)
	id := domain.UserID(uuid.New())

	st.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id, Username: "maike"}, nil)
	u, err := a.User(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "maike", u.Username)

	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)
	_, err = a.User(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAccounts_Update(t *testing.T) {
	id := domain.UserID(uuid.New())

	t.Run("updates normalized fields", func(t *testing.T) {
		_, st, a := newAccounts(t, 0)

		st.EXPECT().UsersByEmailOrUsername(gomock.Any(), "new@example.com", "newname").
			Return([]domain.User{{ID: id, Email: "old@example.com"}}, nil)
		st.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{
			Username: ptr("newname"),
			Email:    ptr("new@example.com"),
		}).Return(&domain.User{ID: id, Username: "newname", Email: "new@example.com"}, nil)

		u, err := a.Update(context.Background(), id, accounts.Changes{
			Username: ptr(" newname "),
			Email:    ptr("New@Example.com"),
		})
		require.NoError(t, err)
		require.Equal(t, "new@example.com", u.Email)
	})

	t.Run("no changes returns the user", func(t *testing.T) {
		_, st, a := newAccounts(t, 0)
		st.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id}, nil)

		_, err := a.Update(context.Background(), id, accounts.Changes{})
		require.NoError(t, err)
	})

	t.Run("taken by another user", func(t *testing.T) {
		_, st, a := newAccounts(t, 0)
		st.EXPECT().UsersByEmailOrUsername(gomock.Any(), "taken@example.com", "").
			Return([]domain.User{{ID: domain.UserID(uuid.New()), Email: "taken@example.com"}}, nil)

		_, err := a.Update(context.Background(), id, accounts.Changes{Email: ptr("taken@example.com")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Equal(t, map[string]string{"email": "A user has already registered with this email"}, se.Fields())
	})

	t.Run("username too short once trimmed", func(t *testing.T) {
		_, _, a := newAccounts(t, 0)

		for _, username := range []string{"   ", " a "} {
			_, err := a.Update(context.Background(), id, accounts.Changes{Username: ptr(username)})
			require.ErrorIs(t, err, serrors.ErrBadRequest)

			var se *serrors.Error
			require.ErrorAs(t, err, &se)
			require.Equal(t, map[string]string{"username": "Username must be between 2 and 30 characters"}, se.Fields())
		}
	})

	t.Run("unique violation race", func(t *testing.T) {
		_, st, a := newAccounts(t, 0)
		st.EXPECT().UsersByEmailOrUsername(gomock.Any(), "", "racer").Return(nil, nil)
		st.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).
			Return(nil, &storage.UniqueViolationError{Field: "username"})

		_, err := a.Update(context.Background(), id, accounts.Changes{Username: ptr("racer")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Contains(t, se.Fields(), "username")
	})
}

func TestAccounts_UploadProfileImage(t *testing.T) {
	id := domain.UserID(uuid.New())
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{7}, 5000)...)

	t.Run("replaces the previous image", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, int64(len(content)))
		oldBlob := domain.BlobID(uuid.New())
		newBlob := domain.BlobID(uuid.New())

		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id, ProfileImage: &oldBlob}, nil)
			tx.EXPECT().StoreBlob(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, f domain.BlobFile, r io.Reader) (*domain.BlobFile, error) {
					require.Equal(t, "me.png", f.Filename)
					require.Equal(t, "image/png", f.ContentType)
					require.Equal(t, domain.DefaultChunkSize, f.ChunkSize)

					got, err := io.ReadAll(r)
					require.NoError(t, err)
					require.Equal(t, content, got)

					f.ID = newBlob
					f.Length = int64(len(got))

					return &f, nil
				},
			)
			tx.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{ProfileImage: &newBlob}).
				Return(&domain.User{ID: id, ProfileImage: &newBlob}, nil)
			tx.EXPECT().DeleteBlob(gomock.Any(), oldBlob).Return(true, nil)
		})

		u, err := a.UploadProfileImage(context.Background(), id, "me.png", bytes.NewReader(content))
		require.NoError(t, err)
		require.Equal(t, newBlob, *u.ProfileImage)
	})

	t.Run("too large", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, int64(len(content)-1))

		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id}, nil)
			tx.EXPECT().StoreBlob(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.BlobFile, r io.Reader) (*domain.BlobFile, error) {
					_, err := io.ReadAll(r)

					return nil, err
				},
			)
		})

		_, err := a.UploadProfileImage(context.Background(), id, "me.png", bytes.NewReader(content))
		require.ErrorIs(t, err, serrors.ErrTooLarge)
	})

	t.Run("not an image", func(t *testing.T) {
		_, _, a := newAccounts(t, 0)

		_, err := a.UploadProfileImage(context.Background(), id, "notes.txt", strings.NewReader("just some text"))
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Contains(t, se.Fields(), "profileImage")
	})

	t.Run("empty", func(t *testing.T) {
		_, _, a := newAccounts(t, 0)

		_, err := a.UploadProfileImage(context.Background(), id, "empty.png", bytes.NewReader(nil))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, 0)
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)
		})

		_, err := a.UploadProfileImage(context.Background(), id, "me.png", bytes.NewReader(content))
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, 0)
		boom := errors.New("disk full")
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id}, nil)
			tx.EXPECT().StoreBlob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
		})

		_, err := a.UploadProfileImage(context.Background(), id, "me.png", bytes.NewReader(content))
		require.ErrorIs(t, err, boom)
	})
}

func TestAccounts_StreamProfileImage(t *testing.T) {
	id := domain.BlobID(uuid.New())

	t.Run("reads metadata and chunks in one transaction", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, 0)
		file := &domain.BlobFile{ID: id, ContentType: "image/png", Length: int64(len(pngHeader))}

		var buf bytes.Buffer
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			gomock.InOrder(
				tx.EXPECT().BlobByID(gomock.Any(), id).Return(file, nil),
				tx.EXPECT().ReadBlob(gomock.Any(), id, &buf).DoAndReturn(
					func(_ context.Context, _ domain.BlobID, w io.Writer) (int64, error) {
						n, err := w.Write(pngHeader)

						return int64(n), err
					},
				),
			)
		})

		var got *domain.BlobFile
		n, err := a.StreamProfileImage(context.Background(), id, func(f *domain.BlobFile) io.Writer {
			got = f

			return &buf
		})
		require.NoError(t, err)
		require.Equal(t, file, got)
		require.Equal(t, int64(len(pngHeader)), n)
		require.Equal(t, pngHeader, buf.Bytes())
	})

	t.Run("missing file never starts the response", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, 0)
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BlobByID(gomock.Any(), id).Return(nil, nil)
		})

		_, err := a.StreamProfileImage(context.Background(), id, func(*domain.BlobFile) io.Writer {
			t.Fatal("begin called for a missing file")

			return nil
		})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("chunk read failure", func(t *testing.T) {
		ctrl, st, a := newAccounts(t, 0)
		boom := errors.New("conn closed")
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().BlobByID(gomock.Any(), id).Return(&domain.BlobFile{ID: id}, nil)
			tx.EXPECT().ReadBlob(gomock.Any(), id, gomock.Any()).Return(int64(3), boom)
		})

		n, err := a.StreamProfileImage(context.Background(), id, func(*domain.BlobFile) io.Writer { return io.Discard })
		require.ErrorIs(t, err, boom)
		require.Equal(t, int64(3), n)
	})
}
