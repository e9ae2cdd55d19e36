package postgres_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maike/pkg/domain"
	"maike/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct {
	data []byte
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, errors.New("connection reset")
	}
	n := copy(p, f.data)
	f.data = f.data[n:]

	return n, nil
}

func TestPgSQL_Blobs(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	// 2.5 chunks of binary data, including bytes that are not valid UTF-8
	content := make([]byte, 2*1024+512)
	for i := range content {
		content[i] = byte(i % 256)
	}

	file, err := pg.StoreBlob(ctx, domain.BlobFile{
		Filename:    "avatar.png",
		ContentType: "image/png",
		ChunkSize:   1024,
	}, bytes.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, int64(len(content)), file.Length)
	require.Equal(t, 1024, file.ChunkSize)
	require.Equal(t, 3, file.ChunkCount())
	require.False(t, file.UploadedAt.IsZero())

	t.Run("read back", func(t *testing.T) {
		meta, err := pg.BlobByID(ctx, file.ID)
		require.NoError(t, err)
		require.Equal(t, "avatar.png", meta.Filename)
		require.Equal(t, "image/png", meta.ContentType)

		var buf bytes.Buffer
		n, err := pg.ReadBlob(ctx, file.ID, &buf)
		require.NoError(t, err)
		require.Equal(t, int64(len(content)), n)
		require.Equal(t, content, buf.Bytes())
	})

	t.Run("default chunk size", func(t *testing.T) {
		small, err := pg.StoreBlob(ctx, domain.BlobFile{Filename: "s.gif", ContentType: "image/gif"}, bytes.NewReader([]byte("GIF89a")))
		require.NoError(t, err)
		require.Equal(t, domain.DefaultChunkSize, small.ChunkSize)
		require.Equal(t, int64(6), small.Length)
	})

	t.Run("empty", func(t *testing.T) {
		empty, err := pg.StoreBlob(ctx, domain.BlobFile{Filename: "e", ContentType: "image/png"}, bytes.NewReader(nil))
		require.NoError(t, err)
		require.Zero(t, empty.Length)

		n, err := pg.ReadBlob(ctx, empty.ID, io.Discard)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("failed upload leaves nothing", func(t *testing.T) {
		_, err := pg.StoreBlob(ctx, domain.BlobFile{Filename: "broken", ContentType: "image/png", ChunkSize: 4},
			&failingReader{data: []byte("0123456789")})
		require.Error(t, err)

		var count int
		require.NoError(t, pg.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM blob_files WHERE filename = 'broken'`).Scan(&count))
		require.Zero(t, count)
	})

	t.Run("profile image reference", func(t *testing.T) {
		user := createUser(t, pg, "pic", "pic@example.com")
		updated, err := pg.UpdateUser(ctx, user.ID, storage.UserUpdates{ProfileImage: &file.ID})
		require.NoError(t, err)
		require.Equal(t, file.ID, *updated.ProfileImage)

		deleted, err := pg.DeleteBlob(ctx, file.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		meta, err := pg.BlobByID(ctx, file.ID)
		require.NoError(t, err)
		require.Nil(t, meta)

		var buf bytes.Buffer
		n, err := pg.ReadBlob(ctx, file.ID, &buf)
		require.NoError(t, err)
		require.Zero(t, n)

		// the reference is cleared by the foreign key
		reloaded, err := pg.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Nil(t, reloaded.ProfileImage)

		deleted, err = pg.DeleteBlob(ctx, file.ID)
		require.NoError(t, err)
		require.False(t, deleted)
	})
}
