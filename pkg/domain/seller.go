package domain

import "github.com/google/uuid"

// SellerID uniquely identifies a seller within the marketplace.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type SellerID uuid.UUID
