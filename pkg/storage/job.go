package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same backend as the data they act
// on, so that a job and the rows that triggered it commit together.
//
// Example:
//
//	added, err := tx.AddJob(ctx, lists.GenerateJobArgs{ListID: id}, nil)
type JobStorage interface {
	// AddJob enqueues a new job. It reports false when a unique job with the
	// same arguments already exists and the insert was skipped.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
