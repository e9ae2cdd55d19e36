package postgres_test

import (
	"context"
	"database/sql"
	"maike/internal/lists"
	"maike/pkg/domain"
	"maike/pkg/storage"
	"maike/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

const countGenerationJobs = `SELECT COUNT(*) FROM river_job WHERE kind = 'GenerateImagesJob'`

func TestPgSQL_AddJob_FollowsTransaction(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()
	listID := domain.ListID(uuid.New())

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	added, err := tx.AddJob(ctx, lists.JobArgs{ListID: listID}, nil)
	require.NoError(t, err)
	require.True(t, added)

	job := rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
		tx.(*postgres.PgSQL).DB.(*sql.Tx), &lists.JobArgs{}, nil)
	require.Equal(t, listID, job.Args.ListID)

	// workers never see a job whose list update was rolled back
	require.NoError(t, tx.Rollback())
	require.Zero(t, countRows(t, pg, countGenerationJobs))

	require.NoError(t, pg.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.AddJob(ctx, lists.JobArgs{ListID: listID}, nil)

		return err
	}))
	job = rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)), &lists.JobArgs{}, nil)
	require.Equal(t, listID, job.Args.ListID)
}

func TestPgSQL_AddJob_UniquePerList(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()
	first, second := domain.ListID(uuid.New()), domain.ListID(uuid.New())

	added, err := pg.AddJob(ctx, lists.JobArgs{ListID: first}, nil)
	require.NoError(t, err)
	require.True(t, added)

	// a second generation of the same list joins the one in flight
	added, err = pg.AddJob(ctx, lists.JobArgs{ListID: first}, nil)
	require.NoError(t, err)
	require.False(t, added)

	added, err = pg.AddJob(ctx, lists.JobArgs{ListID: second}, nil)
	require.NoError(t, err)
	require.True(t, added)

	rivertest.RequireManyInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		[]rivertest.ExpectedJob{{Args: &lists.JobArgs{}}, {Args: &lists.JobArgs{}}})
	require.Equal(t, 2, countRows(t, pg, `SELECT COUNT(DISTINCT args->>'listId') FROM river_job`))

	// finished jobs no longer block a new generation
	_, err = pg.Pool.Exec(ctx, `UPDATE river_job SET state = 'completed', finalized_at = now() WHERE args->>'listId' = $1`,
		first.String())
	require.NoError(t, err)

	added, err = pg.AddJob(ctx, lists.JobArgs{ListID: first}, nil)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 3, countRows(t, pg, countGenerationJobs))
}
