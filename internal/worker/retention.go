package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"orgdash/pkg/logger"
	"orgdash/pkg/repository"
)

// RetentionArgs are the job arguments for one purge run.
type RetentionArgs struct {
	// PurgeAfter is how long a soft-deleted row is kept before permanent removal.
	PurgeAfter time.Duration `json:"purgeAfter"`
}

// Kind identifies the retention job in the river queue.
func (RetentionArgs) Kind() string { return "retention.purge" }

// RetentionWorker permanently removes rows whose soft-delete mark is older
// than the retention window.
type RetentionWorker struct {
	river.WorkerDefaults[RetentionArgs]

	// purger performs the actual removal against the storage backend.
	purger repository.Purger
}

// NewRetentionWorker constructs a RetentionWorker using the provided purger.
func NewRetentionWorker(purger repository.Purger) *RetentionWorker {
	return &RetentionWorker{purger: purger}
}

// Work executes a single purge run.
func (w *RetentionWorker) Work(ctx context.Context, job *river.Job[RetentionArgs]) error {
	cutoff := time.Now().UTC().Add(-job.Args.PurgeAfter)
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Time("cutoff", cutoff))

	purged, err := w.purger.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		logger.Error(ctx, "error purging soft-deleted rows", zap.Error(err))

		return fmt.Errorf("could not purge soft-deleted rows: %w", err)
	}

	if purged > 0 {
		logger.Info(ctx, "purged soft-deleted rows", zap.Int64("purged", purged))
	}

	return nil
}
