package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// SellerIDKey is the context key under which the authenticated seller is stored.
	SellerIDKey ctxKey = "sellerID"
	// OperatorKey marks requests whose token carries RoleOperator.
	OperatorKey ctxKey = "operator"
)

// RoleOperator is the "role" claim value allowed to run marketplace wide
// maintenance such as recategorization.
const RoleOperator = "operator"

// Claims are the registered claims plus an optional role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates sellers with RS256 signed JWTs whose subject is
// the seller ID.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the seller ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	sellerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, SellerIDKey, domain.SellerID(sellerID))
	ctx = context.WithValue(ctx, OperatorKey, claims.Role == RoleOperator)

	return logger.WithFields(ctx,
		zap.String(string(SellerIDKey), sellerID.String()),
		zap.Bool(string(OperatorKey), claims.Role == RoleOperator),
	), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header
// through onError and passes the others to next with the seller in context.
func (s *SecHandler) Middleware(next http.Handler,
	onError func(w http.ResponseWriter, r *http.Request, err error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			onError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			onError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSellerIDFromContext returns the authenticated seller. It is only
// meaningful behind Middleware.
func GetSellerIDFromContext(ctx context.Context) domain.SellerID {
	sellerID, _ := ctx.Value(SellerIDKey).(domain.SellerID)

	return sellerID
}

// IsOperator reports whether the authenticated token carries RoleOperator.
func IsOperator(ctx context.Context) bool {
	operator, _ := ctx.Value(OperatorKey).(bool)

	return operator
}
