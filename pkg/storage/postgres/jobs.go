package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
)

// AddJob enqueues a River job through the storage's insert-only client.
//
// Inside a transaction the job is inserted with InsertTx, so it only becomes
// visible to workers once the surrounding transaction commits together with the
// rows that triggered it. Outside a transaction it is inserted immediately.
//
// The returned bool is false when River skipped the insert because a unique job
// with the same arguments already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, fmt.Errorf("could not insert job: river client is not configured")
	}

	if tx, ok := p.DB.(*sql.Tx); ok {
		job, err := p.jobs.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

		return !job.UniqueSkippedAsDuplicate, nil
	}

	job, err := p.jobs.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
