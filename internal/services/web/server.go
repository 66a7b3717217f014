// Package web hosts the landing page HTTP surface and its static export.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/innovasmart/site/internal/platform/motion"
	"github.com/innovasmart/site/internal/platform/timeouts"
	"github.com/innovasmart/site/internal/services/web/content"
	"github.com/innovasmart/site/internal/services/web/platform/httpx"
	"github.com/innovasmart/site/internal/services/web/platform/observability"
	"github.com/innovasmart/site/internal/services/web/platform/pagerender"
	webstatic "github.com/innovasmart/site/internal/services/web/static"
	"github.com/innovasmart/site/internal/services/web/templates"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Route paths served by the handler.
const (
	RouteLanding   = "/"
	RouteHealth    = "/healthz"
	RouteStatic    = "/static/"
	RouteMotionCSS = RouteStatic + templates.MotionStylesheet
)

const pageTitle = "Innovasmart | Mentoría para importadores"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// AssetBaseURL overrides where the page loads its assets from.
	AssetBaseURL string
	// Site is the page content. A site without tiers uses content.Default.
	Site           content.Site
	Logger         zerolog.Logger
	TracerProvider trace.TracerProvider
	// Clock stamps render timelines. Nil uses the system clock.
	Clock motion.Clock
}

func (c Config) site() content.Site {
	if len(c.Site.Tiers()) == 0 {
		return content.Default()
	}
	return c.Site
}

// DocumentOptions returns the document head settings for site served from
// assetBase. The hero lead doubles as the meta description.
func DocumentOptions(site content.Site, assetBase string) templates.DocumentOptions {
	return templates.DocumentOptions{
		Title:       pageTitle,
		Description: site.Hero.Lead,
		AssetBase:   assetBase,
	}
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewHandler builds the root handler.
func NewHandler(cfg Config) http.Handler {
	site := cfg.site()
	logger := cfg.Logger
	page := templates.LandingPage(site, DocumentOptions(site, cfg.AssetBaseURL))
	motionCSS := templates.GeneratedCSS()

	r := chi.NewRouter()
	r.Use(
		httpx.RecoverPanic(logger),
		middleware.RealIP,
		httpx.RequestID(),
		observability.Trace(cfg.TracerProvider),
		observability.RequestLogger(logger),
		httpx.SecurityHeaders(),
		middleware.CleanPath,
		middleware.GetHead,
	)
	r.NotFound(http.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed(http.MethodGet + ", " + http.MethodHead))

	r.Get(RouteLanding, func(w http.ResponseWriter, r *http.Request) {
		err := pagerender.WritePage(w, r, pagerender.Page{Body: page, Clock: cfg.Clock})
		if err != nil {
			logger.Error().Err(err).Str("request_id", httpx.RequestIDOf(r)).Msg("render landing page")
		}
	})
	r.Get(RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get(RouteMotionCSS, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_ = httpx.WriteCSS(w, http.StatusOK, motionCSS)
	})
	r.Method(http.MethodGet, RouteStatic+"*", http.StripPrefix(RouteStatic, http.FileServer(http.FS(webstatic.FS))))
	return r
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if _, _, err := net.SplitHostPort(httpAddr); err != nil {
		return nil, fmt.Errorf("invalid http address %q: %w", httpAddr, err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   cfg.Logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpAddr).Msg("web server listening")
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		s.logger.Info().Msg("web server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
