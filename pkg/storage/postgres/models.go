package postgres

import (
	"database/sql"
	"marketplace/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgProduct is the row layout of the products table.
type PgProduct struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	SellerID uuid.UUID `db:"seller_id"`

	Title          string         `db:"title"`
	Category       string         `db:"category"`
	LegacyCategory sql.NullString `db:"legacy_category"`
	PriceCents     int64          `db:"price_cents"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// PgCategoryCount is one row of the per-category aggregate.
type PgCategoryCount struct {
	Category string `db:"category"`
	Count    int64  `db:"count"`
}

func (p *PgProduct) ToDomain() domain.Product {
	return domain.Product{
		ID:             domain.ProductID(p.ID),
		SellerID:       domain.SellerID(p.SellerID),
		Title:          p.Title,
		Category:       p.Category,
		LegacyCategory: p.LegacyCategory.String,
		PriceCents:     p.PriceCents,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
		DeletedAt:      p.DeletedAt.Time,
	}
}

func (p *PgProduct) FromDomain(product domain.Product) {
	*p = PgProduct{
		ID:       uuid.UUID(product.ID),
		SellerID: uuid.UUID(product.SellerID),
		Title:    product.Title,
		Category: product.Category,
		LegacyCategory: sql.NullString{
			String: product.LegacyCategory,
			Valid:  product.LegacyCategory != "",
		},
		PriceCents: product.PriceCents,
		CreatedAt:  product.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  product.UpdatedAt,
			Valid: !product.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  product.DeletedAt,
			Valid: !product.DeletedAt.IsZero(),
		},
	}
}

func domainProductsToPg(products []domain.Product) []PgProduct {
	out := make([]PgProduct, len(products))
	for i := range out {
		out[i].FromDomain(products[i])
	}

	return out
}

func pgProductsToDomain(products []PgProduct) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.ToDomain())
	}

	return out
}
