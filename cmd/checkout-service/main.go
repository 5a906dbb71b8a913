package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/draftea/checkout-system/checkout-service/config"
	"github.com/draftea/checkout-system/checkout-service/handlers"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.ReadConfig()
	if err != nil {
		slog.Error("Failed to load config", logging.Error(err))
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.ServiceName, cfg.Env, cfg.Version, cfg.LogLevel))
	slog.Info("Starting service", slog.String("port", cfg.Port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies
	deps, err := config.BuildDependencies(ctx, cfg)
	if err != nil {
		slog.Error("Failed to build dependencies", logging.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			slog.Error("Error closing dependencies", logging.Error(err))
		}
	}()

	ctx = telemetry.WithTelemetry(ctx, deps.Telemetry)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRouter(deps),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return deps.StepEvents.Run(ctx)
	})

	if cfg.Subscriber.Enabled {
		g.Go(func() error {
			return deps.EventSubscriber.Subscribe(ctx, events.ConsignmentsUpdatedTopic, deps.CheckoutEventHandlers)
		})
	}

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")

		// Graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Service stopped with error", logging.Error(err))
		return
	}
	slog.Info("Service stopped")
}

func setupRouter(deps *config.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(telemetry.Middleware(deps.Telemetry))

	r.Get("/health", handlers.Health)

	// Metrics endpoint for Prometheus
	r.Handle("/metrics", handlers.NewMetricsHandler())

	// Host connections outlive the request timeout
	deps.HostHandlers.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		deps.CheckoutHandlers.RegisterRoutes(r)
	})

	return r
}
