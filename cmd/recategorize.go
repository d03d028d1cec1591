package main

import (
	"context"
	"marketplace/internal/catalog"
	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// recategorizeCommand constructs the 'recategorize' subcommand that enqueues
// the first page of a recategorization pass. A running 'serve' works it off.
func recategorizeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recategorize",
		Short: "Enqueues a recategorization of all products for the current taxonomy",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, err := catalog.New(strg, getTaxonomy(ctx, cfg), catalog.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create catalog", zap.Error(err))
			}

			enqueued, err := c.EnqueueRecategorize(ctx, domain.ProductID{})
			if err != nil {
				logger.Fatal(ctx, "could not enqueue recategorization", zap.Error(err))
			}

			logger.Info(ctx, "recategorization requested",
				zap.Bool("enqueued", enqueued),
				zap.String("taxonomyVersion", c.TaxonomyVersion()))
		},
	}

	return cmd
}
