// Package worker runs the background jobs of the service on River. The only
// job kind forwards committed token events to the audit sink.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"taxtoken/internal/config"
	"taxtoken/pkg/auditsink"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs worked concurrently.
	MaxWorkers int
	// Timeout bounds a single publish attempt. Zero uses River's default.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		Timeout:    cfg.Worker.Timeout,
	}
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	events storage.EventStorage,
	sink auditsink.Client,
	opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	publisher := NewPublishEventsWorker(events, sink)
	publisher.timeout = opts.Timeout
	river.AddWorker(workers, publisher)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
