package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-market/internal/config"
	"mini-market/internal/database"
	"mini-market/internal/handler"
	"mini-market/internal/pricing"
	"mini-market/internal/repository"
	"mini-market/internal/router"
	"mini-market/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present; deployed environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mini-market API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize rule catalog loader with S3 and local fallback
	fileLoader := pricing.NewFileLoader(logger)
	var catalogLoader pricing.Loader

	if cfg.S3.Enabled {
		// Create S3 loader
		s3Loader, err := pricing.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			catalogLoader = fileLoader
		} else {
			catalogLoader = pricing.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
		}
	} else {
		// S3 disabled, use local file system only
		catalogLoader = fileLoader
		logger.Info().Msg("using local file system for rule catalogs (S3 disabled)")
	}

	// Load the pricing rule catalog and build the till
	catalog, err := catalogLoader.Load(ctx, cfg.Pricing.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load rule catalog: %w", err)
	}

	rules, err := pricing.BuildRules(catalog.Rules)
	if err != nil {
		return fmt.Errorf("failed to build pricing rules: %w", err)
	}

	market, err := pricing.NewTill(rules, logger)
	if err != nil {
		return fmt.Errorf("failed to initialise till: %w", err)
	}

	logger.Info().
		Int("rule_count", len(rules)).
		Str("catalog_path", cfg.Pricing.CatalogPath).
		Msg("pricing rules loaded")

	// Initialize repositories
	receiptRepo := repository.NewReceiptRepository(pool, logger)

	// Initialize services
	checkoutService := service.NewCheckoutService(market, receiptRepo, cfg.Pricing.Currency, logger)
	ruleService := service.NewRuleService(catalog.Rules, logger)

	// Initialize HTTP handlers
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	ruleHandler := handler.NewRuleHandler(ruleService, logger)

	// Initialize router
	mux := router.New(checkoutHandler, ruleHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
