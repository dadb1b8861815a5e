// Screend is the message screening daemon for the Havenlabs chat pipeline.
//
// It serves the rule-based clinical screening API: anxiety context analysis,
// trigger tagging, cognitive distortion flags, and psychosis indicators.
//
// Usage:
//
//	# Start with defaults (~/.config/screend/config.yaml if present)
//	screend
//
//	# Explicit config file
//	screend -config /etc/screend/config.yaml
//
//	# Configure via environment
//	SERVER_PORT=9180 EVENTS_NATS_URL=nats://localhost:4222 screend
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/havenlabs/screend/internal/config"
	"github.com/havenlabs/screend/internal/events"
	httpapi "github.com/havenlabs/screend/internal/http"
	"github.com/havenlabs/screend/internal/logging"
	"github.com/havenlabs/screend/internal/screening"
	"github.com/havenlabs/screend/internal/telemetry"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/screend/config.yaml)")
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  screend           Start the screening daemon\n")
			fmt.Fprintf(os.Stderr, "  screend version   Show version information\n")
			os.Exit(1)
		}
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("screend by Havenlabs\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run starts the screend server and blocks until context is cancelled.
//
// Initialization order:
//  1. Load .env and configuration
//  2. Initialize logger and telemetry
//  3. Compile the screening catalogs
//  4. Connect the event publisher (optional)
//  5. Start HTTP server and config watcher
//  6. Graceful shutdown on context cancellation
func run(ctx context.Context, configPath string) error {
	// Local development keeps NATS/collector addresses in a .env file.
	_ = godotenv.Load()

	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logging.Sync(logger) }()

	tel, err := telemetry.New(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	screener, err := screening.New(&cfg.Screening)
	if err != nil {
		return fmt.Errorf("failed to compile screening catalogs: %w", err)
	}

	publisher, err := events.NewNATS(&cfg.Events, logger)
	if err != nil {
		return fmt.Errorf("failed to connect event publisher: %w", err)
	}
	defer publisher.Close()

	srv, err := httpapi.NewServer(screener, publisher, logger, &httpapi.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	httpMetrics := httpapi.NewHTTPMetrics(logger)
	srv.Echo().Use(httpMetrics.MetricsMiddleware())

	// Hot-reload tuned thresholds and pattern tables without a restart.
	// Best-effort: a missing config file just means nothing to watch.
	if watcher, err := config.NewWatcher(resolveConfigPath(configPath), logger, func(next *config.Config) {
		reloaded, err := screening.New(&next.Screening)
		if err != nil {
			logger.Warn("reloaded screening config is invalid, keeping previous catalogs", zap.Error(err))
			return
		}
		srv.SetScreener(reloaded)
		logger.Info("screening catalogs reloaded")
	}); err == nil {
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Warn("config watcher stopped", zap.Error(err))
			}
		}()
	} else {
		logger.Debug("config watcher disabled", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("screend started",
		zap.String("version", version),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("events", cfg.Events.Enabled()),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// resolveConfigPath mirrors the loader's default path logic for the watcher.
func resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/screend/config.yaml"
}
