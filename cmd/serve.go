package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"orgdash/internal/api"
	"orgdash/internal/config"
	"orgdash/internal/directory"
	"orgdash/internal/worker"
	"orgdash/pkg/logger"
	"orgdash/pkg/metrics"
	"orgdash/pkg/repository"
)

func setupServer(ctx context.Context, cfg *config.Config, dir directory.Directory) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Directory: dir}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
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

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			repo, pgsql, closeRepo := getRepository(ctx, cfg)
			defer closeRepo()

			instruments, err := metrics.NewRepository(getMeterProvider(ctx))
			if err != nil {
				logger.Fatal(ctx, "could not create repository instruments", zap.Error(err))
			}
			repo = repository.WithMetrics(repo, instruments)

			stopWebserver := setupServer(ctx, cfg, directory.New(repo, nil))

			// the retention worker runs on the river queue, which lives in
			// postgres. The other backends have no queue to schedule on.
			var stopWorker func(ctx context.Context)
			if pgsql != nil {
				riverClient, err := worker.Start(ctx, pgsql.Pool, pgsql, worker.NewOptions(cfg))
				if err != nil {
					logger.Fatal(ctx, "could not start retention worker", zap.Error(err))
				}
				stopWorker = func(ctx context.Context) {
					logger.Info(ctx, "stopping retention worker...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop retention worker", zap.Error(err))
					}
				}
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			if stopWorker != nil {
				stopWorker(shutdownCtx)
			}
			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
