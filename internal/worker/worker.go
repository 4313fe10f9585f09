// Package worker runs the background retention job: soft-deleted
// organizations and agencies past their retention window are permanently
// purged on a fixed schedule through the river job queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"orgdash/internal/config"
	"orgdash/pkg/logger"
	"orgdash/pkg/repository"
)

// Options configure the retention schedule.
type Options struct {
	// PurgeAfter is how long a soft-deleted row is kept before permanent removal.
	PurgeAfter time.Duration
	// Interval is how often the purge job runs.
	Interval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PurgeAfter: cfg.Retention.PurgeAfter,
		Interval:   cfg.Retention.Interval,
	}
}

// Start wires the retention worker into a river client, registers the
// periodic purge job and starts processing. The returned client must be
// stopped on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	purger repository.Purger,
	opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRetentionWorker(purger))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 1},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.Interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return RetentionArgs{PurgeAfter: opts.PurgeAfter}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
