// Package fees splits a sale into the marketplace fee and the seller payout.
package fees

import (
	"marketplace/pkg/serrors"
	"math"
)

// MaxBasisPoints is 100%.
const MaxBasisPoints = 10_000

// Breakdown is the result of splitting a gross amount. All amounts are in the
// smallest currency unit and Fee + Payout always equals Gross.
type Breakdown struct {
	Gross       int64 `json:"grossCents"`
	Fee         int64 `json:"feeCents"`
	Payout      int64 `json:"payoutCents"`
	BasisPoints int   `json:"feeBasisPoints"`
}

// Split charges basisPoints (1/100 of a percent) of priceCents as the
// marketplace fee, rounding half up, and returns the rest as the payout.
func Split(priceCents int64, basisPoints int) (Breakdown, error) {
	if priceCents < 0 {
		return Breakdown{}, serrors.With(serrors.ErrBadRequest, "price must not be negative")
	}
	if basisPoints < 0 || basisPoints > MaxBasisPoints {
		return Breakdown{}, serrors.With(serrors.ErrBadRequest,
			"fee must be between 0 and %d basis points, got %d", MaxBasisPoints, basisPoints)
	}
	if priceCents > (math.MaxInt64-MaxBasisPoints/2)/MaxBasisPoints {
		return Breakdown{}, serrors.With(serrors.ErrBadRequest, "price is too large")
	}

	fee := (priceCents*int64(basisPoints) + MaxBasisPoints/2) / MaxBasisPoints

	return Breakdown{
		Gross:       priceCents,
		Fee:         fee,
		Payout:      priceCents - fee,
		BasisPoints: basisPoints,
	}, nil
}
