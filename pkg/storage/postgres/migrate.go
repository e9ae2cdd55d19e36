package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"maike/pkg/storage"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationReport lists the versions applied by Migrate. Both are empty when
// the database was already up to date.
type MigrationReport struct {
	Schema []int64
	River  []int
}

// Migrate applies the goose SQL migrations found at the root of fsys and then
// the River job tables. It is idempotent.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS) (*MigrationReport, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("could not create schema migrator: %w", err)
	}
	applied, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not apply schema migrations: %w", err)
	}

	report := &MigrationReport{}
	for _, res := range applied {
		report.Schema = append(report.Schema, res.Source.Version)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{})
	if err != nil {
		return nil, fmt.Errorf("could not apply river migrations: %w", err)
	}
	for _, v := range res.Versions {
		report.River = append(report.River, v.Version)
	}

	return report, nil
}
