package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maike/pkg/domain"
	"maike/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	blobFilesTable  = "blob_files"
	blobChunksTable = "blob_chunks"
)

// StoreBlob writes the file row first (chunks reference it), then the chunks,
// then the final length. Outside a transaction it opens one so that a failed
// upload leaves nothing behind.
func (p *PgSQL) StoreBlob(ctx context.Context, file domain.BlobFile, r io.Reader) (*domain.BlobFile, error) {
	if !p.inTx() {
		var out *domain.BlobFile
		err := p.WithTx(ctx, func(tx storage.AllStorage) error {
			var err error
			out, err = tx.StoreBlob(ctx, file, r)

			return err
		})

		return out, err
	}

	chunkSize := file.ChunkSize
	if chunkSize <= 0 {
		chunkSize = domain.DefaultChunkSize
	}
	id := uuid.New()

	if _, err := p.Builder.Insert(blobFilesTable).Rows(goqu.Record{
		"id":           id,
		"filename":     file.Filename,
		"content_type": file.ContentType,
		"chunk_size":   chunkSize,
	}).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store blob file into pg: %w", err)
	}

	buf := make([]byte, chunkSize)
	var total int64
	for n := 0; ; n++ {
		read, readErr := io.ReadFull(r, buf)
		if read > 0 {
			if _, err := p.Builder.Insert(blobChunksTable).Rows(PgBlobChunk{
				FileID: id,
				N:      n,
				Data:   buf[:read],
			}).Prepared(true).Executor().ExecContext(ctx); err != nil {
				return nil, fmt.Errorf("could not store blob chunk %d into pg: %w", n, err)
			}
			total += int64(read)
		}
		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("could not read blob content: %w", readErr)
		}
	}

	var row PgBlobFile
	if _, err := p.Builder.Update(blobFilesTable).
		Set(goqu.Record{"length": total}).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgBlobFile{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not finalize blob file in pg: %w", err)
	}

	return row.ToDomain(), nil
}

// BlobByID fetches the file metadata. Inside a transaction the row is share
// locked until the transaction ends, so the file and its chunks cannot be
// deleted while they are read.
func (p *PgSQL) BlobByID(ctx context.Context, id domain.BlobID) (*domain.BlobFile, error) {
	ds := p.Builder.From(blobFilesTable).Where(goqu.I("id").Eq(uuid.UUID(id)))
	if p.inTx() {
		ds = ds.ForShare(goqu.Wait)
	}

	var row PgBlobFile
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch blob file by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ReadBlob streams chunks one row at a time so only a single chunk is held in
// memory.
func (p *PgSQL) ReadBlob(ctx context.Context, id domain.BlobID, w io.Writer) (int64, error) {
	scanner, err := p.Builder.From(blobChunksTable).
		Select("data").
		Where(goqu.I("file_id").Eq(uuid.UUID(id))).
		Order(goqu.I("n").Asc()).
		Executor().ScannerContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not query blob chunks: %w", err)
	}
	defer func() {
		_ = scanner.Close()
	}()

	var written int64
	for scanner.Next() {
		var data []byte
		if err := scanner.ScanVal(&data); err != nil {
			return written, fmt.Errorf("could not scan blob chunk: %w", err)
		}
		n, err := w.Write(data)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("could not write blob chunk: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return written, fmt.Errorf("could not iterate blob chunks: %w", err)
	}

	return written, nil
}

func (p *PgSQL) DeleteBlob(ctx context.Context, id domain.BlobID) (bool, error) {
	res, err := p.Builder.Delete(blobFilesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete blob file in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
