package worker

import (
	"context"
	"fmt"
	"marketplace/internal/catalog"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"marketplace/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// RecategorizeWorker reclassifies the catalog one page per job. After a page
// is written it enqueues the job for the next page, so a pass over the whole
// catalog is a chain of small jobs that can be retried independently.
type RecategorizeWorker struct {
	river.WorkerDefaults[catalog.RecategorizeJobArgs]

	catalog  catalog.Catalog
	duration metric.Float64Histogram
}

// NewRecategorizeWorker constructs a RecategorizeWorker using the provided catalog.
func NewRecategorizeWorker(c catalog.Catalog) (*RecategorizeWorker, error) {
	duration, err := otel.Meter("marketplace/internal/worker").Float64Histogram(
		"marketplace.recategorize.page.duration",
		metric.WithDescription("Time spent recategorizing one page of products"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &RecategorizeWorker{
		catalog:  c,
		duration: duration,
	}, nil
}

// Work recategorizes the page after job.Args.After and schedules the next one.
// Jobs started for another taxonomy version than the running one are canceled.
func (w *RecategorizeWorker) Work(ctx context.Context, job *river.Job[catalog.RecategorizeJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("after", job.Args.After.String()),
		zap.String("taxonomyVersion", job.Args.TaxonomyVersion))

	if version := w.catalog.TaxonomyVersion(); job.Args.TaxonomyVersion != version {
		logger.Warn(ctx, "canceling recategorization started with another taxonomy",
			zap.String("runningVersion", version))

		return river.JobCancel(fmt.Errorf("taxonomy version %q is not running", job.Args.TaxonomyVersion)) //nolint: wrapcheck
	}

	start := time.Now()
	res, err := w.catalog.RecategorizePage(ctx, domain.ProductID(job.Args.After))
	w.duration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Bool("success", err == nil)))
	if err != nil {
		if serrors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in recategorizing products", zap.Error(err))

		return fmt.Errorf("could not recategorize products: %w", err)
	}

	logger.Info(ctx, "products recategorized",
		zap.Int("scanned", res.Scanned),
		zap.Int("changed", res.Changed),
		zap.Bool("done", res.Done))

	if res.Done {
		return nil
	}

	if _, err := w.catalog.EnqueueRecategorize(ctx, res.Next); err != nil {
		return fmt.Errorf("could not enqueue next page: %w", err)
	}

	return nil
}
