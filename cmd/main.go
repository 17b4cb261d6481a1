package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	_ "github.com/sbilibin2017/gw-todo-lists/docs"
	"github.com/sbilibin2017/gw-todo-lists/internal/config"
	"github.com/sbilibin2017/gw-todo-lists/internal/facades"
	"github.com/sbilibin2017/gw-todo-lists/internal/handlers"
	"github.com/sbilibin2017/gw-todo-lists/internal/jwt"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-lists/internal/migrations"
	"github.com/sbilibin2017/gw-todo-lists/internal/ratelimit"
	"github.com/sbilibin2017/gw-todo-lists/internal/routes"
	"github.com/sbilibin2017/gw-todo-lists/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// @title gw-todo-lists API
// @version 1.0.0
// @description Per-user todo lists with items, bearer token authentication
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Running it without a subcommand serves the API.
func newRootCmd() *cobra.Command {
	var configPath string

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if err := logger.Initialize(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		return cfg, nil
	}

	serve := func(cmd *cobra.Command, _ []string) error {
		printBuildInfo(cmd.OutOrStdout())
		cfg, err := load()
		if err != nil {
			return err
		}
		defer logger.Log.Sync()
		return run(cmd.Context(), cfg)
	}

	root := &cobra.Command{
		Use:          "gw-todo-lists",
		Short:        "Todo lists HTTP API",
		SilenceUsage: true,
		RunE:         serve,
		Version:      buildVersion,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Apply the schema and serve the HTTP API",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the tables and seed the default accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()
			return migrate(cmd.Context(), cfg)
		},
	})

	return root
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// openDB connects to PostgreSQL through the pgx driver.
func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	return db, nil
}

// migrate creates the schema and seeds the default accounts unless they already exist.
func migrate(ctx context.Context, cfg *config.Config) error {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}

	_, err = migrations.Seed(ctx, db, migrations.DefaultAccounts(cfg.SeedAdminPassword, cfg.SeedUserPassword))
	return err
}

// run connects the backing services, serves HTTP and shuts down gracefully
// on SIGINT, SIGTERM or SIGQUIT.
func run(ctx context.Context, cfg *config.Config) error {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}

	var limiter middlewares.Limiter
	if cfg.RateLimitRequests > 0 && cfg.RedisAddr() != "" {
		rdb, err := ratelimit.NewRedisClient(ctx, ratelimit.RedisOptions{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow)
	}

	var events services.EventPublisher
	if w := facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic); w != nil {
		publisher := facades.NewEventsKafkaFacade(w)
		defer publisher.Close()
		events = publisher
		logger.Log.Infow("publishing domain events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	router := routes.NewRouter(routes.Options{
		DB:                db,
		JWT:               jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp)),
		Version:           buildVersion,
		Events:            events,
		Limiter:           limiter,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		Pagination: handlers.Pagination{
			DefaultLimit: uint64(cfg.DefaultPageLimit),
			MaxLimit:     uint64(cfg.MaxPageLimit),
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
