package v1handler

import (
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"marketplace/pkg/taxonomy"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ListCategories handles GET /v1/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	counts, err := h.deps.Catalog.CategoryCounts(r.Context())
	if err != nil {
		return err
	}

	version := h.deps.Catalog.TaxonomyVersion()
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			if version != "" {
				e.Field("taxonomyVersion", func(e *jx.Encoder) { e.Str(version) })
			}
			e.Field("categories", func(e *jx.Encoder) {
				e.ArrStart()
				for _, c := range counts {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(c.Category) })
						e.Field("identifier", func(e *jx.Encoder) { e.Str(taxonomy.Identifier(c.Category)) })
						e.Field("count", func(e *jx.Encoder) { e.Int64(c.Count) })
					})
				}
				e.ArrEnd()
			})
		})
	})

	return nil
}

// Classify handles POST /v1/classify. It stores nothing.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeProductRequest(w, r)
	if err != nil {
		return err
	}

	m := h.deps.Catalog.Classify(r.Context(), req.Title, req.Category)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("category", func(e *jx.Encoder) { e.Str(m.Category) })
			e.Field("reason", func(e *jx.Encoder) { e.Str(string(m.Reason)) })
			if m.Keyword != "" {
				e.Field("keyword", func(e *jx.Encoder) { e.Str(m.Keyword) })
			}
		})
	})

	return nil
}

// Recategorize handles POST /v1/recategorize by enqueueing the first page of
// a recategorization pass for the current taxonomy version. Only operator
// tokens may call it.
func (h *Handler) Recategorize(w http.ResponseWriter, r *http.Request) error {
	if !IsOperator(r.Context()) {
		return serrors.With(serrors.ErrForbidden, "operator role required")
	}

	enqueued, err := h.deps.Catalog.EnqueueRecategorize(r.Context(), domain.ProductID{})
	if err != nil {
		return err
	}

	version := h.deps.Catalog.TaxonomyVersion()
	logger.Info(r.Context(), "recategorization requested",
		zap.Bool("enqueued", enqueued), zap.String("taxonomyVersion", version))

	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("enqueued", func(e *jx.Encoder) { e.Bool(enqueued) })
			e.Field("taxonomyVersion", func(e *jx.Encoder) { e.Str(version) })
		})
	})

	return nil
}
