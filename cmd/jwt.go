package main

import (
	"context"
	"fmt"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/config"
	"marketplace/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues a seller bearer
// token signed with the configured RS256 private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a bearer token for the given seller ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			seller, _ := cmd.Flags().GetString("seller")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			operator, _ := cmd.Flags().GetBool("operator")

			if seller == "" {
				seller = uuid.NewString()
				logger.Info(ctx, "no seller given, generated one", zap.String("seller", seller))
			}
			if _, err := uuid.Parse(seller); err != nil {
				logger.Fatal(ctx, "seller must be a UUID", zap.Error(err))
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   seller,
					ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
					IssuedAt:  jwt.NewNumericDate(now),
					NotBefore: jwt.NewNumericDate(now),
				},
			}
			if operator {
				claims.Role = v1handler.RoleOperator
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("seller", "", "Seller ID (UUID), generated when empty")
	cmd.Flags().Bool("operator", false, "Grant the operator role (allows recategorization)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}
