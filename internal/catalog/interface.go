package catalog

import (
	"context"
	"marketplace/pkg/domain"
	"marketplace/pkg/fees"
	"marketplace/pkg/taxonomy"
)

// NewProduct is the seller supplied part of a product.
type NewProduct struct {
	Title          string
	LegacyCategory string
	PriceCents     int64
}

// RecategorizeResult summarises one page of a recategorization pass.
type RecategorizeResult struct {
	// Scanned is the number of products read.
	Scanned int
	// Changed is the number of products whose category was rewritten.
	Changed int
	// Next is the ID to continue after. Zero when nothing was read.
	Next domain.ProductID
	// Done reports that the page was the last one.
	Done bool
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	Create(ctx context.Context, sellerID domain.SellerID, product NewProduct) (*domain.Product, error)
	SellerProducts(ctx context.Context,
		sellerID domain.SellerID,
		category string,
		cursor string,
		limit uint) ([]domain.Product, string, error)
	Product(ctx context.Context, sellerID domain.SellerID, productID domain.ProductID) (*domain.Product, error)
	Delete(ctx context.Context, sellerID domain.SellerID, productID domain.ProductID) error
	Payout(ctx context.Context, sellerID domain.SellerID, productID domain.ProductID) (fees.Breakdown, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	Classify(ctx context.Context, title string, legacyCategory string) taxonomy.Match
	TaxonomyVersion() string
	EnqueueRecategorize(ctx context.Context, after domain.ProductID) (bool, error)
	RecategorizePage(ctx context.Context, after domain.ProductID) (RecategorizeResult, error)
}
