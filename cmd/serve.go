package main

import (
	"context"
	"errors"
	"maike/internal/accounts"
	"maike/internal/api"
	"maike/internal/api/handler/v1handler"
	"maike/internal/auth"
	"maike/internal/config"
	"maike/internal/gallery"
	"maike/internal/lists"
	"maike/internal/worker"
	"maike/pkg/imagegen/openai"
	"maike/pkg/logger"
	"maike/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps v1handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupMetrics exports OpenTelemetry instruments through the default
// Prometheus registry.
func setupMetrics(ctx context.Context) (*metrics.Instruments, func(ctx context.Context)) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	instruments, err := metrics.New(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create instruments", zap.Error(err))
	}

	return instruments, func(ctx context.Context) {
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deny, closeDeny := getDenylist(ctx, cfg)
			defer closeDeny()

			instruments, stopMetrics := setupMetrics(ctx)

			authn, err := auth.New(strg, deny, instruments, auth.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create authenticator", zap.Error(err))
			}

			provider := openai.New(&http.Client{Timeout: cfg.ImageGen.Timeout}, openai.Options{
				BaseURL:         cfg.ImageGen.BaseURL,
				APIKey:          cfg.ImageGen.APIKey,
				Model:           cfg.ImageGen.Model,
				Size:            cfg.ImageGen.Size,
				BreakerFailures: cfg.ImageGen.BreakerFailures,
				BreakerTimeout:  cfg.ImageGen.BreakerTimeout,
			})
			listsSvc := lists.New(strg, provider, instruments, lists.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool,
				worker.NewGeneratorWorker(listsSvc, instruments, cfg.ImageGen.Timeout),
				cfg.ImageGen.Workers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, v1handler.Deps{
				Auth:     authn,
				Accounts: accounts.New(strg, instruments, accounts.NewOptions(cfg)),
				Lists:    listsSvc,
				Gallery:  gallery.New(strg),
				Health:   strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			stopMetrics(shutdownCtx)
		},
	}

	return cmd
}
