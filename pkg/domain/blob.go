package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultChunkSize is the size of a single stored blob chunk.
const DefaultChunkSize = 1024 * 1024

// BlobID uniquely identifies a stored binary object.
type BlobID uuid.UUID

// String returns the canonical textual representation of the ID.
func (id BlobID) String() string { return uuid.UUID(id).String() }

// MarshalText lets blob IDs appear as plain strings in JSON payloads.
func (id BlobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *BlobID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseBlobID parses a textual blob ID.
func ParseBlobID(s string) (BlobID, error) {
	id, err := uuid.Parse(s)

	return BlobID(id), err //nolint: wrapcheck
}

// BlobFile describes a binary object stored as an ordered sequence of chunks.
type BlobFile struct {
	// ID is generated by the store when the upload finishes.
	ID BlobID
	// Filename is the original name supplied by the client.
	Filename string
	// ContentType is the sniffed MIME type of the content.
	ContentType string
	// Length is the total size in bytes.
	Length int64
	// ChunkSize is the maximum size of each chunk; the last one may be shorter.
	ChunkSize int
	// UploadedAt is when the upload completed.
	UploadedAt time.Time
}

// ChunkCount returns how many chunks a file of the given length occupies.
func (b BlobFile) ChunkCount() int {
	if b.Length == 0 || b.ChunkSize <= 0 {
		return 0
	}

	return int((b.Length + int64(b.ChunkSize) - 1) / int64(b.ChunkSize))
}
