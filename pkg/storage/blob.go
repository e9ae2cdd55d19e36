package storage

import (
	"context"
	"io"
	"maike/pkg/domain"
)

// BlobStorage stores binary objects as ordered chunks keyed by a generated ID.
// A file and all of its chunks become visible atomically when the surrounding
// transaction commits.
type BlobStorage interface {
	// StoreBlob reads r to EOF, splitting it into chunks of file.ChunkSize bytes
	// (domain.DefaultChunkSize when zero). Filename and ContentType are taken
	// from file; ID, Length and UploadedAt are filled in by the store.
	StoreBlob(ctx context.Context, file domain.BlobFile, r io.Reader) (*domain.BlobFile, error)
	// BlobByID returns the file metadata, or nil when not found.
	BlobByID(ctx context.Context, ID domain.BlobID) (*domain.BlobFile, error)
	// ReadBlob writes the chunks of the file to w in order and returns the
	// number of bytes written.
	ReadBlob(ctx context.Context, ID domain.BlobID, w io.Writer) (int64, error)
	// DeleteBlob removes the file and its chunks. It reports whether a file existed.
	DeleteBlob(ctx context.Context, ID domain.BlobID) (bool, error)
}
