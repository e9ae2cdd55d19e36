// Package worker runs the background image generation jobs.
package worker

import (
	"context"
	"fmt"
	"maike/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Start registers the generator and starts a River client processing up to
// maxWorkers jobs at once. The caller stops it with Stop.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	generator *GeneratorWorker,
	maxWorkers int,
) (*river.Client[pgx.Tx], error) {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, generator)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
