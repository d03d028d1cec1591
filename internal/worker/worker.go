// Package worker runs the background jobs of the marketplace on River.
package worker

import (
	"context"
	"fmt"
	"marketplace/internal/catalog"
	"marketplace/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the job processing of one instance.
type Options struct {
	// MaxWorkers is the number of jobs processed at once. Defaults to 10.
	MaxWorkers int
}

// Start registers the workers, builds a River client bound to dbPool and
// starts working jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	c catalog.Catalog,
	opts Options) (*river.Client[pgx.Tx], error) {
	recategorize, err := NewRecategorizeWorker(c)
	if err != nil {
		return nil, err
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, recategorize)

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

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
