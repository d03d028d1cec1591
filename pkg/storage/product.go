package storage

import (
	"context"
	"marketplace/pkg/domain"
	"time"
)

// SellerProducts groups a page of products returned for a seller together
// with an optional NextCursor used for pagination.
type SellerProducts struct {
	// Products contains the current page of product records.
	Products []domain.Product
	// NextCursor is the created_at of the last product on the page. It is nil
	// when there is no next page.
	NextCursor *time.Time
}

// ProductStorage defines CRUD and query operations related to catalog products.
// Every read ignores soft-deleted rows.
type ProductStorage interface {
	// StoreProducts inserts one or more products and returns the stored rows
	// including generated fields.
	StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error)
	// ProductByID fetches a product of the given seller. Returns nil when not found.
	ProductByID(ctx context.Context, sellerID domain.SellerID, ID domain.ProductID) (*domain.Product, error)
	// SellerProducts returns a page of the seller's products created before the
	// optional cursor, newest first. A non-empty category filters the page.
	SellerProducts(ctx context.Context,
		sellerID domain.SellerID,
		category string,
		cursor time.Time,
		limit uint) (SellerProducts, error)
	// DeleteProduct soft-deletes a product of the given seller and returns it,
	// or nil if it was not found.
	DeleteProduct(ctx context.Context, sellerID domain.SellerID, ID domain.ProductID) (*domain.Product, error)
	// ProductsAfter returns up to limit live products of all sellers ordered by
	// ID, starting after the given ID. A zero ID starts from the beginning.
	ProductsAfter(ctx context.Context, after domain.ProductID, limit uint) ([]domain.Product, error)
	// UpdateProductCategory sets the category of a single product. It reports
	// false when the product does not exist or already has that category.
	UpdateProductCategory(ctx context.Context, ID domain.ProductID, category string) (bool, error)
	// CategoryCounts returns the number of live products per stored category.
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
}
