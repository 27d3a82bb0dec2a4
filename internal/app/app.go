package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"dealerpulse/internal/config"
	"dealerpulse/internal/dataprocessing"
	apierrors "dealerpulse/internal/errors"
	"dealerpulse/internal/infrastructure"
	customMiddleware "dealerpulse/internal/middleware"
	"dealerpulse/internal/services"
	transport "dealerpulse/internal/transport/http"
)

// Application holds all wired components of the dashboard service.
type Application struct {
	Config     *config.Config
	Logger     *slog.Logger
	OTel       *infrastructure.OTelProviders
	Dashboard  *services.DashboardService
	Health     *services.HealthService
	Router     chi.Router
	Server     *http.Server
	FrontendFS fs.FS
}

// NewApplication loads configuration, initializes logging and
// telemetry, reads both contract CSV files and builds the router.
// A load failure is fatal: the dashboard never serves partial data.
func NewApplication(frontendFS fs.FS) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	slog.SetDefault(logger)

	providers, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	app := &Application{
		Config:     cfg,
		Logger:     logger,
		OTel:       providers,
		FrontendFS: frontendFS,
	}

	if err := app.loadDataset(context.Background()); err != nil {
		return nil, err
	}
	app.setupRouter()
	app.createServer()

	return app, nil
}

// loadDataset reads both contract files and builds the service layer.
func (a *Application) loadDataset(ctx context.Context) error {
	files := a.Config.ContractFiles()
	loader := dataprocessing.NewLoader(a.Logger)

	dataset, err := loader.LoadCombined(ctx, files[0], files[1])
	if err != nil {
		a.Logger.Error("contract data load failed",
			slog.String("france_file", files[0]),
			slog.String("italy_file", files[1]),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to load contract data: %w", err)
	}

	a.Dashboard = services.NewDashboardService(dataset, config.TopVarianceRows, a.Logger)
	a.Health = services.NewHealthService(config.AppName, config.AppVersion, dataset.Len(), a.Logger)
	return nil
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	r.Group(func(r chi.Router) {
		if metrics, err := infrastructure.CreateHTTPMetrics(a.OTel.Meter); err != nil {
			a.Logger.Error("failed to create HTTP metrics", slog.String("error", err.Error()))
		} else {
			r.Use(customMiddleware.HTTPMetrics(metrics))
		}

		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.Logger))
		r.Use(customMiddleware.Timeout(30*time.Second, a.Logger))
		r.Use(customMiddleware.SecurityHeaders)
		r.Use(customMiddleware.CORS(customMiddleware.DefaultCORSConfig()))
		r.Use(customMiddleware.Compress(5))
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Server.RateLimitRPS,
			a.Config.Server.RateLimitBurst,
			a.Logger,
		).Handler)

		a.setupAPIRoutes(r)
		a.setupFrontend(r)
	})

	if a.OTel.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTel.PrometheusHTTP)
	}

	a.Router = r
}

func (a *Application) setupAPIRoutes(r chi.Router) {
	errorHandler := apierrors.NewErrorHandler(a.Logger, false)
	dashboardHandler := transport.NewDashboardHandler(a.Dashboard, a.Logger, errorHandler)
	healthHandler := transport.NewHealthHandler(a.Health, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Mount("/dashboard", dashboardHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.GetVersion)
	})
}

// setupFrontend serves the embedded single-page dashboard at the root.
func (a *Application) setupFrontend(r chi.Router) {
	if a.FrontendFS == nil {
		return
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		content, err := fs.ReadFile(a.FrontendFS, "index.html")
		if err != nil {
			a.Logger.Error("embedded frontend missing", slog.String("error", err.Error()))
			http.Error(w, "frontend not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start begins serving HTTP on the configured port.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "starting application",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.Int("port", a.Config.Server.Port),
		slog.Int("records", a.Dashboard.RecordCount()))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()
	return nil
}

// Stop shuts the server and telemetry down gracefully.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Logger.ErrorContext(ctx, "server shutdown error", slog.String("error", err.Error()))
		return err
	}
	if err := a.OTel.Shutdown(shutdownCtx); err != nil {
		a.Logger.ErrorContext(ctx, "telemetry shutdown error", slog.String("error", err.Error()))
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "shutdown complete")
	return nil
}

// Run starts the application and blocks until an interrupt arrives.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
