package main

import (
	"io/fs"
	root "maike"
	"maike/internal/config"
	"maike/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand brings the schema and the River job tables up to date.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies pending schema and job queue migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				return err //nolint: wrapcheck
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := strg.Migrate(ctx, migrations)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if len(report.Schema) == 0 && len(report.River) == 0 {
				logger.Info(ctx, "database is up to date")

				return nil
			}
			logger.Info(ctx, "database migrated",
				zap.Int64s("schema", report.Schema),
				zap.Ints("river", report.River))

			return nil
		},
	}
}
