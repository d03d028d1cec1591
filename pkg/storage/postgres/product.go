package postgres

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	productsTable = "products"
)

func (p *PgSQL) StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	var result []PgProduct
	if err := p.Builder.Insert(productsTable).
		Rows(domainProductsToPg(products)).
		Returning(&PgProduct{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store products into pg: %w", err)
	}

	return pgProductsToDomain(result), nil
}

// ProductByID returns a product by its ID, excluding soft-deleted rows.
func (p *PgSQL) ProductByID(ctx context.Context,
	sellerID domain.SellerID,
	id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("seller_id").Eq(uuid.UUID(sellerID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	product := row.ToDomain()

	return &product, nil
}

// SellerProducts returns the seller's products ordered by created_at DESC, id DESC.
func (p *PgSQL) SellerProducts(ctx context.Context,
	sellerID domain.SellerID,
	category string,
	cursor time.Time,
	limit uint) (storage.SellerProducts, error) {
	w := []goqu.Expression{
		goqu.I("seller_id").Eq(uuid.UUID(sellerID)),
		goqu.I("deleted_at").IsNull(),
	}
	if category != "" {
		w = append(w, goqu.I("category").Eq(category))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SellerProducts{}, fmt.Errorf("could not fetch seller products from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.SellerProducts{
		Products:   pgProductsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DeleteProduct performs a soft delete by setting the deleted_at timestamp.
func (p *PgSQL) DeleteProduct(ctx context.Context,
	sellerID domain.SellerID,
	id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("seller_id").Eq(uuid.UUID(sellerID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	product := row.ToDomain()

	return &product, nil
}

func (p *PgSQL) ProductsAfter(ctx context.Context, after domain.ProductID, limit uint) ([]domain.Product, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if after != (domain.ProductID{}) {
		w = append(w, goqu.I("id").Gt(uuid.UUID(after)))
	}

	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch products page from pg: %w", err)
	}

	return pgProductsToDomain(rows), nil
}

// UpdateProductCategory only touches the row when the category actually
// changes, so updated_at stays put for products that are already correct.
func (p *PgSQL) UpdateProductCategory(ctx context.Context, id domain.ProductID, category string) (bool, error) {
	res, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"category":   category,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("category").Neq(category),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update product category in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	var rows []PgCategoryCount
	if err := p.Builder.From(productsTable).
		Select(goqu.I("category"), goqu.COUNT("*").As("count")).
		Where(goqu.I("deleted_at").IsNull()).
		GroupBy(goqu.I("category")).
		Order(goqu.I("category").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count products per category: %w", err)
	}

	out := make([]domain.CategoryCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CategoryCount{Category: r.Category, Count: r.Count})
	}

	return out, nil
}
