// Package v1handler implements the v1 HTTP API of the marketplace.
package v1handler

import (
	"context"
	"errors"
	"marketplace/internal/catalog"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Catalog catalog.Catalog
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

func (e *ErrorStatusCode) encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("code", func(enc *jx.Encoder) { enc.Str(e.Response.Code) })
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(e.Response.Message) })
	})
}

// kindStatus maps semantic error kinds to HTTP statuses and default messages.
var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "timeout"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
}

// NewError converts err into the response sent to the client. Errors without a
// known semantic kind are logged and reported as internal errors without
// leaking their text.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)

	var message string
	var semantic *serrors.Error
	if errors.As(err, &semantic) {
		message = semantic.Message()
	}

	if mapped, ok := kindStatus[kind]; ok {
		if message == "" {
			message = mapped.message
		}

		return &ErrorStatusCode{
			StatusCode: mapped.status,
			Response:   ErrorResponse{Code: kind.Error(), Message: message},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func writeJSON(w http.ResponseWriter, status int, f func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	f(e)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.encode)
}

// handlerFunc is an http.HandlerFunc that reports failures as an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) wrap(fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	})
}

// Routes returns the v1 routes. Seller routes are wrapped with sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.Handle("GET /v1/categories", h.wrap(h.ListCategories))
	mux.Handle("POST /v1/classify", h.wrap(h.Classify))

	// seller
	seller := func(fn handlerFunc) http.Handler { return sec.Middleware(h.wrap(fn), h.writeError) }
	mux.Handle("POST /v1/products", seller(h.CreateProduct))
	mux.Handle("GET /v1/products", seller(h.ListProducts))
	mux.Handle("GET /v1/products/{id}", seller(h.GetProduct))
	mux.Handle("DELETE /v1/products/{id}", seller(h.DeleteProduct))
	mux.Handle("GET /v1/products/{id}/payout", seller(h.GetPayout))
	mux.Handle("POST /v1/recategorize", seller(h.Recategorize))

	return mux
}
