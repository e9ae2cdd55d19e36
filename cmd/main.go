// Package main provides the CLI entrypoint for the MAIke service.
// It wires subcommands (serve, migrate, jwt, keygen), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"maike/internal/config"
	"maike/pkg/logger"
	"maike/pkg/session/redisdeny"
	"maike/pkg/storage/postgres"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getDenylist connects to the Redis token denylist.
func getDenylist(ctx context.Context, cfg *config.Config) (*redisdeny.Denylist, func()) {
	deny, err := redisdeny.New(ctx, redisdeny.Options{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return deny, func() {
		logger.Info(ctx, "closing redis client...")
		if err := deny.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// loadConfig reads the YAML file at path, or only the environment when the
// file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.LoadEnv() //nolint: wrapcheck
	}

	return config.Load(path) //nolint: wrapcheck
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "maike",
		Short: "MAIke avatar service",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet("maike", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("c", "config.yml", "The config file path")
	// subcommand flags are left for cobra
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	if err := logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
		keygenCommand(),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args.
func configArgs(args []string) []string {
	for i, a := range args {
		switch {
		case (a == "-c" || a == "--config") && i+1 < len(args):
			return []string{"-c", args[i+1]}
		case len(a) > 3 && a[:3] == "-c=":
			return []string{"-c", a[3:]}
		case len(a) > 9 && a[:9] == "--config=":
			return []string{"-c", a[9:]}
		}
	}

	return nil
}
