package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/WishBot_Go/internal/handler"
	"github.com/osse101/WishBot_Go/internal/metrics"
	"github.com/osse101/WishBot_Go/internal/wish"
)

// BannerCatalog is what the HTTP layer needs from the banner catalog
type BannerCatalog interface {
	handler.BannerReloader
	handler.BannerCounter
}

// Options wires the server's collaborators
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Store          handler.Pinger
	Banners        BannerCatalog
	WishService    wish.Service
}

type Server struct {
	httpServer  *http.Server
	wishService wish.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
		},
		wishService: opts.WishService,
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options) http.Handler {
	handler.InitValidator()
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))
	r.Get("/version", handler.HandleVersion(opts.Banners))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	wishHandler := handler.NewWishHandler(opts.WishService)
	adminHandler := handler.NewAdminHandler(opts.WishService, opts.Banners)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/banners", wishHandler.HandleListBanners)

		r.Route("/wish", func(r chi.Router) {
			r.Post("/pull", wishHandler.HandlePull)
			r.Post("/target", wishHandler.HandleSetWishTarget)
			r.Get("/info", wishHandler.HandleGetInfo)
			r.Get("/history", wishHandler.HandleGetHistory)
			r.Post("/simulate", wishHandler.HandleSimulate)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/banners/reload", adminHandler.HandleReloadBanners)
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops accepting requests, then waits for in-flight pulls to be persisted
func (s *Server) Stop(ctx context.Context) error {
	httpErr := s.httpServer.Shutdown(ctx)
	svcErr := s.wishService.Shutdown(ctx)
	return errors.Join(httpErr, svcErr)
}
