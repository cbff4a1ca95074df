// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bissquit/assessment-garden/internal/assessments"
	assessmentsmemory "github.com/bissquit/assessment-garden/internal/assessments/memory"
	"github.com/bissquit/assessment-garden/internal/config"
	"github.com/bissquit/assessment-garden/internal/dashboard"
	"github.com/bissquit/assessment-garden/internal/pkg/httputil"
	"github.com/bissquit/assessment-garden/internal/pkg/metrics"
	"github.com/bissquit/assessment-garden/internal/users"
	usersmemory "github.com/bissquit/assessment-garden/internal/users/memory"
	"github.com/bissquit/assessment-garden/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the application instance.
type App struct {
	config          *config.Config
	logger          *slog.Logger
	server          *http.Server
	metricsServer   *http.Server
	metricsCancel   context.CancelFunc
	assessmentsRepo *assessmentsmemory.Repository
	usersRepo       *usersmemory.Repository
}

// New creates a new application instance. Both collections are seeded
// from their fixtures; a restart resets all state.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)

	metricsCtx, metricsCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger,
		metricsCancel:   metricsCancel,
		assessmentsRepo: assessmentsmemory.NewRepository(),
		usersRepo:       usersmemory.NewRepository(),
	}

	go app.collectStoreMetrics(metricsCtx)

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	a.metricsCancel()

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

// ResetStores restores both collections to their seed state. Used by
// tests to isolate cases from each other.
func (a *App) ResetStores() {
	a.assessmentsRepo.Reset()
	a.usersRepo.Reset()
}

func (a *App) collectStoreMetrics(ctx context.Context) {
	record := func() {
		metrics.RecordCollectionSize("assessments", a.assessmentsRepo.Len())
		metrics.RecordCollectionSize("users", a.usersRepo.Len())
	}

	// Collect immediately on start
	record()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			record()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if a.config.RateLimit.Enabled {
		r.Use(httputil.RateLimitMiddleware(a.config.RateLimit.RPS, a.config.RateLimit.Burst))
	}

	r.Get("/healthz", a.healthzHandler)
	r.Get("/version", a.versionHandler)
	r.Get("/", a.rootHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		http.ServeFile(w, r, "api/openapi/openapi.yaml")
	})

	assessmentsHandler := assessments.NewHandler(assessments.NewService(a.assessmentsRepo))
	usersHandler := users.NewHandler(users.NewService(a.usersRepo))
	dashboardHandler := dashboard.NewHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", a.healthHandler)
		dashboardHandler.RegisterRoutes(r)
		assessmentsHandler.RegisterRoutes(r)
		usersHandler.RegisterRoutes(r)
	})

	return r
}

func (a *App) rootHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"message": "Mock API running. Try /api/health, /api/dashboard, /api/assessments, /api/users.",
	})
}

func (a *App) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) healthHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
