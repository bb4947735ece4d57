package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"taxtoken/internal/api"
	"taxtoken/internal/api/handler/v1handler"
	"taxtoken/internal/config"
	"taxtoken/internal/token"
	"taxtoken/internal/worker"
	"taxtoken/pkg/auditsink/webhook"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/metrics"
	"taxtoken/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	tkn token.Token,
	mp metric.MeterProvider) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Token: tkn},
		MeterProvider: mp,
	}, api.NewOptions(cfg))
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

// setupWorker starts the audit publisher when publishing is enabled. The
// returned function stops it.
func setupWorker(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) func(ctx context.Context) {
	if !cfg.Worker.PublishEvents {
		return func(context.Context) {}
	}

	sink := webhook.New(&http.Client{Timeout: cfg.Worker.Timeout}, cfg.Worker.WebhookURL, cfg.Worker.WebhookSecret)
	riverClient, err := worker.Start(ctx, pgsql.ConnPool, pgsql, sink, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start worker", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(nil)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			options := token.NewOptions(cfg)
			options.Meter = metrics.Meter(mp)
			tkn := getToken(ctx, cfg, pgsql, options)

			stopWorker := setupWorker(ctx, cfg, pgsql)
			stopWebserver := setupServer(ctx, cfg, tkn, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
