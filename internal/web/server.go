// Package web serves the portfolio as an HTML page and exports it as static
// files. The theme follows the same rules as the terminal: a cookie holds
// the chosen mode, the browser's colour-scheme client hint is the fallback.
package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Josepavese/folio/internal/content"
	"github.com/Josepavese/folio/internal/themestore"
)

// Config holds server configuration.
type Config struct {
	Addr string
	// ThemeKey names the theme cookie.
	ThemeKey string
	// Anchors orders the page sections. Empty uses the default order.
	Anchors []string
	// AllowedOrigins enables CORS for the listed origins.
	AllowedOrigins []string
}

// Server renders the current profile on every request.
type Server struct {
	cfg        Config
	profile    atomic.Pointer[content.Profile]
	renderer   *Renderer
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for p.
func New(cfg Config, p *content.Profile, logger *zap.Logger) (*Server, error) {
	if cfg.ThemeKey == "" {
		cfg.ThemeKey = themestore.DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer, err := NewRenderer(cfg.Anchors)
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, renderer: renderer, logger: logger}
	s.profile.Store(p)
	s.router = s.buildRouter()
	return s, nil
}

// SetProfile swaps the profile served by subsequent requests.
func (s *Server) SetProfile(p *content.Profile) {
	s.profile.Store(p)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", ClientHintHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/", s.handlePage)
	r.Post("/theme", s.handleToggle)

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	// Critical-CH makes the browser retry the first navigation with the
	// hint, so the first page already follows the host preference.
	w.Header().Set("Accept-CH", ClientHintHeader)
	w.Header().Set("Critical-CH", ClientHintHeader)
	w.Header().Set("Vary", ClientHintHeader+", Cookie")

	store := s.requestStore(w, r, "")

	var buf bytes.Buffer
	err := s.renderer.Render(&buf, s.profile.Load(), store.Mode(), renderOptions{toggleAction: "/theme"})
	if err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// handleToggle flips the mode the page was rendered in, which sets the
// cookie, and sends the browser back to the page. Without a posted mode the
// request's own mode is flipped.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	store := s.requestStore(w, r, r.PostFormValue("mode"))
	mode := store.Toggle()
	s.logger.Debug("theme toggled", zap.String("mode", mode.String()),
		zap.String("request_id", middleware.GetReqID(r.Context())))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("folio server listening", zap.String("addr", s.cfg.Addr))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
