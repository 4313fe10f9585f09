// Package main provides the CLI entrypoint for the organization dashboard
// service. It wires subcommands (serve, context, migrate, jwt), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"orgdash/internal/config"
	"orgdash/pkg/logger"
	"orgdash/pkg/repository"
	"orgdash/pkg/repository/localfs"
	"orgdash/pkg/repository/postgres"
	"orgdash/pkg/repository/remote"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres repository", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRepository creates the storage backend selected by Repository.Mode and
// returns it along with a cleanup function. In postgres mode the concrete
// client is also returned so callers can reach the connection pool and the
// purge capability; it is nil for the other modes.
func getRepository(ctx context.Context, cfg *config.Config) (repository.Repository, *postgres.PgSQL, func()) {
	switch cfg.Repository.Mode {
	case config.RepositoryModePostgres:
		pgsql, closePg := getPostgres(ctx, cfg)

		return pgsql, pgsql, closePg
	case config.RepositoryModeRemote:
		client := remote.New(&http.Client{Timeout: cfg.Remote.Timeout}, remote.Options{
			BaseURL: cfg.Remote.BaseURL,
			Token:   cfg.Remote.Token,
		})

		return client, nil, func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "could not close remote client", zap.Error(err))
			}
		}
	case config.RepositoryModeLocal:
		store, err := localfs.New(localfs.Options{DataDir: cfg.Repository.DataDir})
		if err != nil {
			logger.Fatal(ctx, "could not create local repository", zap.Error(err))
		}

		return store, nil, func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "could not close local repository", zap.Error(err))
			}
		}
	default:
		logger.Fatal(ctx, "unknown repository mode", zap.String("mode", cfg.Repository.Mode))

		return nil, nil, nil
	}
}

// getMeterProvider creates the Prometheus-backed OpenTelemetry meter provider
// shared by the repository instrumentation and the metrics endpoint.
func getMeterProvider(ctx context.Context) metric.MeterProvider {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "orgdash",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		contextCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
