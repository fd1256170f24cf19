// Package main is the entry point for the story server. It loads one compiled
// story, wires all dependencies using samber/do v2, serves acts over HTTP, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/game-narrative-script/internal/adapters/http"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/objectstore"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/storyfile"
	"github.com/jsamuelsen11/game-narrative-script/internal/app"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/config"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/health"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/telemetry"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled,
		cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer otelCancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, loading the story).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	story := do.MustInvoke[*app.StoryService](injector)
	defer func() {
		if err := story.Close(); err != nil {
			logger.Error("story close error", slog.Any("error", err))
		}
	}()

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(story)
	if cfg.ObjectStore.Enabled {
		registry.Register(do.MustInvoke[*objectstore.Store](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// openStory opens the configured artifact. Local blobs are read from disk;
// remote ones keep a seekable handle on the object store.
func openStory(ctx context.Context, i do.Injector, cfg *config.Config) (ports.StoryReader, error) {
	switch cfg.Story.Source {
	case config.SourceObjectStore:
		store, err := do.Invoke[*objectstore.Store](i)
		if err != nil {
			return nil, err
		}
		return store.OpenReader(ctx, cfg.Story.ObjectKey)
	default:
		return storyfile.Open(cfg.Story.TreePath)
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*objectstore.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return objectstore.New(&cfg.ObjectStore, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.StoryReader, error) {
		reader, err := openStory(ctx, i, cfg)
		if err != nil {
			return nil, fmt.Errorf("opening story: %w", err)
		}
		logger.Info("story loaded",
			slog.String("source", cfg.Story.Source),
			slog.Int("acts", len(reader.Acts())),
		)
		return reader, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.StoryService, error) {
		reader, err := do.Invoke[ports.StoryReader](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewStoryService(reader, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActHandler, error) {
		svc, err := do.Invoke[*app.StoryService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewActHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		actH, err := do.Invoke[*handlers.ActHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(actH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
