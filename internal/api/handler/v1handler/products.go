package v1handler

import (
	"io"
	"marketplace/internal/catalog"
	"marketplace/pkg/domain"
	"marketplace/pkg/fees"
	"marketplace/pkg/serrors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// maxBodySize bounds request bodies of the JSON endpoints.
const maxBodySize = 64 << 10

// productRequest is the body of POST /v1/products and POST /v1/classify.
type productRequest struct {
	Title      string
	Category   string
	PriceCents int64
}

func (p *productRequest) decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "title":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "title")
			}
			p.Title = v
		case "category":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "category")
			}
			p.Category = v
		case "priceCents":
			v, err := d.Int64()
			if err != nil {
				return errors.Wrap(err, "priceCents")
			}
			p.PriceCents = v
		default:
			return d.Skip()
		}

		return nil
	})
}

func decodeProductRequest(w http.ResponseWriter, r *http.Request) (productRequest, error) {
	var req productRequest

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if err := req.decode(jx.DecodeBytes(body)); err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return req, nil
}

func productIDFromPath(r *http.Request) (domain.ProductID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.ProductID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product id")
	}

	return domain.ProductID(id), nil
}

func encodeProduct(e *jx.Encoder, p *domain.Product) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(p.ID).String()) })
		e.Field("title", func(e *jx.Encoder) { e.Str(p.Title) })
		e.Field("category", func(e *jx.Encoder) { e.Str(p.Category) })
		if p.LegacyCategory != "" {
			e.Field("legacyCategory", func(e *jx.Encoder) { e.Str(p.LegacyCategory) })
		}
		e.Field("priceCents", func(e *jx.Encoder) { e.Int64(p.PriceCents) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(p.CreatedAt.Format(time.RFC3339Nano)) })
		if !p.UpdatedAt.IsZero() {
			e.Field("updatedAt", func(e *jx.Encoder) { e.Str(p.UpdatedAt.Format(time.RFC3339Nano)) })
		}
	})
}

// CreateProduct handles POST /v1/products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeProductRequest(w, r)
	if err != nil {
		return err
	}

	product, err := h.deps.Catalog.Create(r.Context(), GetSellerIDFromContext(r.Context()), catalog.NewProduct{
		Title:          req.Title,
		LegacyCategory: req.Category,
		PriceCents:     req.PriceCents,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeProduct(e, product) })

	return nil
}

// ListProducts handles GET /v1/products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	var limit uint
	if v := query.Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit")
		}
		limit = uint(n)
	}

	products, next, err := h.deps.Catalog.SellerProducts(r.Context(),
		GetSellerIDFromContext(r.Context()),
		query.Get("category"),
		query.Get("cursor"),
		limit)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("products", func(e *jx.Encoder) {
				e.ArrStart()
				for i := range products {
					encodeProduct(e, &products[i])
				}
				e.ArrEnd()
			})
			if next != "" {
				e.Field("nextCursor", func(e *jx.Encoder) { e.Str(next) })
			}
		})
	})

	return nil
}

// GetProduct handles GET /v1/products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDFromPath(r)
	if err != nil {
		return err
	}

	product, err := h.deps.Catalog.Product(r.Context(), GetSellerIDFromContext(r.Context()), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeProduct(e, product) })

	return nil
}

// DeleteProduct handles DELETE /v1/products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDFromPath(r)
	if err != nil {
		return err
	}

	if err := h.deps.Catalog.Delete(r.Context(), GetSellerIDFromContext(r.Context()), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// GetPayout handles GET /v1/products/{id}/payout.
func (h *Handler) GetPayout(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDFromPath(r)
	if err != nil {
		return err
	}

	breakdown, err := h.deps.Catalog.Payout(r.Context(), GetSellerIDFromContext(r.Context()), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBreakdown(e, breakdown) })

	return nil
}

func encodeBreakdown(e *jx.Encoder, b fees.Breakdown) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("grossCents", func(e *jx.Encoder) { e.Int64(b.Gross) })
		e.Field("feeCents", func(e *jx.Encoder) { e.Int64(b.Fee) })
		e.Field("payoutCents", func(e *jx.Encoder) { e.Int64(b.Payout) })
		e.Field("feeBasisPoints", func(e *jx.Encoder) { e.Int(b.BasisPoints) })
	})
}
