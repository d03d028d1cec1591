package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductID uniquely identifies a catalog product.
type ProductID uuid.UUID

// Product is a single listing in a seller's catalog.
type Product struct {
	// ID is the unique identifier of the product.
	ID ProductID `json:"id"`
	// SellerID is the identifier of the seller who owns the listing.
	SellerID SellerID `json:"sellerId"`

	// Title is the free-text title supplied by the seller or an import.
	Title string `json:"title"`
	// Category is the canonical category assigned by the classifier.
	Category string `json:"category"`
	// LegacyCategory keeps the category string the product was imported with,
	// possibly a breadcrumb such as "Apparel & Accessories > Shoes > Sneakers".
	LegacyCategory string `json:"legacyCategory,omitempty"`
	// PriceCents is the listing price in the smallest currency unit.
	PriceCents int64 `json:"priceCents"`

	// CreatedAt is the time when the product was listed.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last change, zero if never updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the product was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// CategoryCount is the number of live products filed under one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
