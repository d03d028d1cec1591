// Package catalog implements the seller product catalog: listing products
// under a canonical category, browsing, payouts, and batch recategorization
// when the taxonomy changes.
package catalog

import (
	"context"
	"fmt"
	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/fees"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
	"marketplace/pkg/taxonomy"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit is the page size used when the caller does not ask for one.
	DefaultLimit = 20
	// MaxLimit caps the page size of product listings.
	MaxLimit = 100
	// MaxTitleLength is the longest accepted product title, in characters.
	MaxTitleLength = 300

	defaultBatchSize = 500

	instrumentationName = "marketplace/internal/catalog"
)

// Options configure fees and the recategorization batch job.
type Options struct {
	// FeeBasisPoints is the marketplace fee charged on every sale.
	FeeBasisPoints int
	// BatchSize is the number of products handled by one recategorization job.
	BatchSize uint
	// Concurrency bounds the category writes running at once within a batch.
	Concurrency int
	// MaxAttempts is the retry budget of a recategorization job.
	MaxAttempts int
	// UniqueJobPeriod is the window in which an identical job is not enqueued again.
	UniqueJobPeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FeeBasisPoints:  cfg.Catalog.FeeBasisPoints,
		BatchSize:       cfg.Catalog.RecategorizeBatchSize,
		Concurrency:     cfg.Catalog.RecategorizeConcurrency,
		MaxAttempts:     cfg.Catalog.MaxAttempts,
		UniqueJobPeriod: cfg.Catalog.UniqueJobPeriod,
	}
}

type catalog struct {
	options  Options
	storage  storage.Storage
	taxonomy *taxonomy.Taxonomy

	tracer          trace.Tracer
	classifications metric.Int64Counter
	recategorized   metric.Int64Counter
}

// New creates a Catalog backed by storage that files products with tx.
func New(storage storage.Storage, tx *taxonomy.Taxonomy, options Options) (Catalog, error) {
	if options.BatchSize == 0 {
		options.BatchSize = defaultBatchSize
	}
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}
	if _, err := fees.Split(0, options.FeeBasisPoints); err != nil {
		return nil, fmt.Errorf("invalid fee: %w", err)
	}

	meter := otel.Meter(instrumentationName)
	classifications, err := meter.Int64Counter("marketplace.catalog.classifications",
		metric.WithDescription("Products classified, by resulting category and reason"))
	if err != nil {
		return nil, fmt.Errorf("could not create classifications counter: %w", err)
	}
	recategorized, err := meter.Int64Counter("marketplace.catalog.recategorized",
		metric.WithDescription("Products whose stored category was rewritten"))
	if err != nil {
		return nil, fmt.Errorf("could not create recategorized counter: %w", err)
	}

	return &catalog{
		options:         options,
		storage:         storage,
		taxonomy:        tx,
		tracer:          otel.Tracer(instrumentationName),
		classifications: classifications,
		recategorized:   recategorized,
	}, nil
}

func (c *catalog) classify(ctx context.Context, title, legacyCategory string) taxonomy.Match {
	m := c.taxonomy.ClassifyProduct(title, legacyCategory)
	c.classifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", m.Category),
		attribute.String("reason", string(m.Reason)),
	))

	return m
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Create validates the product, files it under the category derived from its
// title and legacy category, and stores it.
func (c *catalog) Create(ctx context.Context, sellerID domain.SellerID, product NewProduct) (_ *domain.Product, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.Create")
	defer func() { endSpan(span, err) }()

	title := strings.TrimSpace(product.Title)
	if title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, serrors.With(serrors.ErrBadRequest, "title must be at most %d characters", MaxTitleLength)
	}
	if _, err := fees.Split(product.PriceCents, c.options.FeeBasisPoints); err != nil {
		return nil, err //nolint: wrapcheck
	}

	match := c.classify(ctx, title, product.LegacyCategory)
	span.SetAttributes(attribute.String("category", match.Category))

	res, err := c.storage.StoreProducts(ctx, domain.Product{
		SellerID:       sellerID,
		Title:          title,
		Category:       match.Category,
		LegacyCategory: strings.TrimSpace(product.LegacyCategory),
		PriceCents:     product.PriceCents,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store product: %w", err)
	}

	return &res[0], nil
}

// SellerProducts returns a page of the seller's products, newest first. The
// cursor is the RFC3339 timestamp returned with the previous page.
func (c *catalog) SellerProducts(ctx context.Context,
	sellerID domain.SellerID,
	category string,
	cursor string,
	limit uint) ([]domain.Product, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	if category != "" {
		canonical, ok := c.taxonomy.Canonical(category)
		if !ok {
			return nil, "", serrors.With(serrors.ErrBadRequest, "unknown category %q", category)
		}
		category = canonical
	}

	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	page, err := c.storage.SellerProducts(ctx, sellerID, category, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get seller products: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Products, next, nil
}

// Product fetches a single product of the seller.
func (c *catalog) Product(ctx context.Context,
	sellerID domain.SellerID,
	productID domain.ProductID) (*domain.Product, error) {
	res, err := c.storage.ProductByID(ctx, sellerID, productID)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return res, nil
}

// Delete soft-deletes a product of the seller.
func (c *catalog) Delete(ctx context.Context, sellerID domain.SellerID, productID domain.ProductID) error {
	res, err := c.storage.DeleteProduct(ctx, sellerID, productID)
	if err != nil {
		return fmt.Errorf("could not delete product: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "product not found")
	}

	return nil
}

// Payout splits the product price into the marketplace fee and the seller payout.
func (c *catalog) Payout(ctx context.Context,
	sellerID domain.SellerID,
	productID domain.ProductID) (fees.Breakdown, error) {
	product, err := c.Product(ctx, sellerID, productID)
	if err != nil {
		return fees.Breakdown{}, err
	}

	return fees.Split(product.PriceCents, c.options.FeeBasisPoints) //nolint: wrapcheck
}

// CategoryCounts lists every category of the taxonomy in taxonomy order with
// the number of live products filed under it. Rows stored under a name the
// current taxonomy does not know are counted where the classifier would put
// them.
func (c *catalog) CategoryCounts(ctx context.Context) (_ []domain.CategoryCount, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.CategoryCounts")
	defer func() { endSpan(span, err) }()

	stored, err := c.storage.CategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count products per category: %w", err)
	}

	byCategory := make(map[string]int64, len(stored))
	for _, s := range stored {
		byCategory[c.taxonomy.Classify(s.Category)] += s.Count
	}

	categories := c.taxonomy.Categories()
	out := make([]domain.CategoryCount, 0, len(categories))
	for _, name := range categories {
		out = append(out, domain.CategoryCount{Category: name, Count: byCategory[name]})
	}

	return out, nil
}

func (c *catalog) Classify(ctx context.Context, title string, legacyCategory string) taxonomy.Match {
	return c.classify(ctx, title, legacyCategory)
}

func (c *catalog) TaxonomyVersion() string {
	return c.taxonomy.Version()
}

// EnqueueRecategorize schedules the recategorization of the products after
// the given ID. It reports false when the same page was already scheduled for
// the current taxonomy version within the unique period.
func (c *catalog) EnqueueRecategorize(ctx context.Context, after domain.ProductID) (bool, error) {
	added, err := c.storage.AddJob(ctx, RecategorizeJobArgs{
		After:           uuid.UUID(after),
		TaxonomyVersion: c.taxonomy.Version(),
		maxAttempts:     c.options.MaxAttempts,
		uniqueJobPeriod: c.options.UniqueJobPeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add recategorize job: %w", err)
	}

	return added, nil
}

// RecategorizePage reclassifies one page of products and writes back the
// rows whose category changed. Rows are independent, so each changed row is
// written on its own with at most Options.Concurrency writes in flight.
func (c *catalog) RecategorizePage(ctx context.Context, after domain.ProductID) (_ RecategorizeResult, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.RecategorizePage",
		trace.WithAttributes(attribute.String("after", uuid.UUID(after).String())))
	defer func() { endSpan(span, err) }()

	products, err := c.storage.ProductsAfter(ctx, after, c.options.BatchSize)
	if err != nil {
		return RecategorizeResult{}, fmt.Errorf("could not read products: %w", err)
	}

	res := RecategorizeResult{
		Scanned: len(products),
		Done:    uint(len(products)) < c.options.BatchSize,
	}
	if len(products) > 0 {
		res.Next = products[len(products)-1].ID
	}

	var changed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.Concurrency)
	for _, p := range products {
		category := c.classify(ctx, p.Title, p.LegacyCategory).Category
		if category == p.Category {
			continue
		}

		g.Go(func() error {
			ok, err := c.storage.UpdateProductCategory(gctx, p.ID, category)
			if err != nil {
				return fmt.Errorf("could not update category of product %s: %w", uuid.UUID(p.ID), err)
			}
			if ok {
				changed.Add(1)
			}

			return nil
		})
	}
	err = g.Wait()
	res.Changed = int(changed.Load())
	c.recategorized.Add(ctx, changed.Load())
	span.SetAttributes(attribute.Int("scanned", res.Scanned), attribute.Int("changed", res.Changed))
	if err != nil {
		return res, err //nolint: wrapcheck
	}

	return res, nil
}
