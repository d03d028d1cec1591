package main

import (
	"context"
	"errors"
	"marketplace/internal/api"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/catalog"
	"marketplace/internal/config"
	"marketplace/internal/worker"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"riverqueue.com/riverui"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context,
	cfg *config.Config,
	pool *pgxpool.Pool,
	c catalog.Catalog) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	riverClient, err := worker.Start(ctx, pool, c, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

// setupRiverUI returns the job dashboard handler, or nil when it is disabled.
func setupRiverUI(ctx context.Context, cfg *config.Config, client *river.Client[pgx.Tx]) http.Handler {
	if cfg.Worker.RiverUIPrefix == "" {
		return nil
	}

	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    cfg.Worker.RiverUIPrefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create river ui handler", zap.Error(err))
	}
	if err := handler.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start river ui handler", zap.Error(err))
	}

	return handler
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			meterProvider, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, err := catalog.New(strg, getTaxonomy(ctx, cfg), catalog.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create catalog", zap.Error(err))
			}

			riverClient, stopWorkers := setupWorkers(ctx, cfg, strg.Pool, c)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:    v1handler.Deps{Catalog: c},
				RiverUI: setupRiverUI(ctx, cfg, riverClient),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
