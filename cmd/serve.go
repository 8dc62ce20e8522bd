package main

import (
	"context"
	"errors"
	"fmt"
	"furl/internal/api"
	"furl/internal/config"
	"furl/internal/runner"
	"furl/pkg/logger"
	"furl/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, r runner.Runner) func(ctx context.Context) {
	var deps api.Deps
	deps.Runner = r
	server := api.NewServer(deps, api.NewOptions(cfg))

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

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewPrometheusProvider(prometheus.DefaultRegisterer)
			if err != nil {
				return err //nolint: wrapcheck
			}
			otel.SetMeterProvider(mp)

			rec, err := metrics.New(mp)
			if err != nil {
				return err //nolint: wrapcheck
			}

			opts, err := runner.NewOptions(a.cfg)
			if err != nil {
				return err //nolint: wrapcheck
			}

			stopWebserver := setupServer(ctx, a.cfg, runner.New(rec, opts))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("could not stop meter provider: %w", err)
			}

			return nil
		},
	}

	return cmd
}
