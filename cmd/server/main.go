package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/janisto/dictionary-api/internal/http/docs"
	"github.com/janisto/dictionary-api/internal/http/health"
	"github.com/janisto/dictionary-api/internal/http/v1/routes"
	"github.com/janisto/dictionary-api/internal/platform/config"
	applog "github.com/janisto/dictionary-api/internal/platform/logging"
	"github.com/janisto/dictionary-api/internal/platform/metrics"
	appmiddleware "github.com/janisto/dictionary-api/internal/platform/middleware"
	"github.com/janisto/dictionary-api/internal/platform/respond"
	dictsvc "github.com/janisto/dictionary-api/internal/service/dictionary"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiTitle       = "Dictionary API - Marvelly"
	apiVersion     = "1.0.0"
	apiDescription = "An API that provides details on words. A dictionary API as requested by Ideologist"
	openAPIPath    = "/openapi"
)

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}
	if err := run(); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	svc := dictsvc.NewClient(
		&http.Client{Timeout: cfg.Dictionary.Timeout},
		dictsvc.WithBaseURL(cfg.Dictionary.BaseURL),
		dictsvc.WithRecorder(m),
	)

	router, _ := newRouter(cfg, svc, m, registry)
	srv := newHTTPServer(cfg, router)

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("version", Version),
			zap.String("upstream", cfg.Dictionary.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		return err
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}

// newRouter builds the full HTTP surface: middleware, plain handlers, docs and the huma API.
func newRouter(
	cfg *config.Config,
	svc dictsvc.Service,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(docs.Path),
		appmiddleware.Vary("Accept"),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))
	router.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	docs.Register(router, apiTitle, openAPIPath+".json")

	humaCfg := huma.DefaultConfig(apiTitle, apiVersion)
	humaCfg.Info.Description = apiDescription
	humaCfg.OpenAPIPath = openAPIPath
	humaCfg.DocsPath = ""
	if cfg.ServerURL != "" {
		humaCfg.Servers = []*huma.Server{{URL: cfg.ServerURL}}
	}
	api := humachi.New(router, humaCfg)

	routes.Register(api, svc)
	return router, api
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// Leave room for a full upstream lookup before the write deadline.
		WriteTimeout:   cfg.Dictionary.Timeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 64 << 10, // 64 KB
	}
}
