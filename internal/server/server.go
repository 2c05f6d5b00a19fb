// Package server exposes the HTTP API the location page talks to.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"locshare/internal/models"
	"locshare/internal/telemetry"
	"locshare/pkg/backend"
)

const (
	defaultLocationRateLimit = 30
	publishTimeout           = 5 * time.Second
	shutdownTimeout          = 5 * time.Second
)

// StringsProvider builds the translation table for a user.
type StringsProvider interface {
	Strings(ctx context.Context, userID string) models.StringTable
}

// LocationStore persists submitted locations.
type LocationStore interface {
	SaveLocation(ctx context.Context, loc models.SavedLocation) error
}

// EventPublisher announces saved locations on the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value any) error
}

// Server serves the i18n and location endpoints.
type Server struct {
	Addr string

	strings        StringsProvider
	store          LocationStore
	publisher      EventPublisher
	logger         *httplog.Logger
	allowedOrigins []string
	rateLimit      int
	now            func() time.Time
	newID          func() uuid.UUID
	srv            *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithPublisher enables publishing a LocationEvent after every save.
func WithPublisher(p EventPublisher) Option {
	return func(s *Server) { s.publisher = p }
}

// WithLogger sets the request logger and the logger used by the handlers.
func WithLogger(logger *httplog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithAllowedOrigins sets the origins allowed to call the API from a browser.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.allowedOrigins = origins }
}

// WithLocationRateLimit sets the per-IP submissions allowed per minute.
func WithLocationRateLimit(n int) Option {
	return func(s *Server) { s.rateLimit = n }
}

// WithClock replaces time.Now and uuid.New, for tests.
func WithClock(now func() time.Time, newID func() uuid.UUID) Option {
	return func(s *Server) {
		s.now = now
		s.newID = newID
	}
}

// NewServer creates a new API server.
func NewServer(addr string, strings StringsProvider, store LocationStore, opts ...Option) *Server {
	s := &Server{
		Addr:           addr,
		strings:        strings,
		store:          store,
		allowedOrigins: []string{"*"},
		rateLimit:      defaultLocationRateLimit,
		now:            time.Now,
		newID:          uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = httplog.NewLogger("locshare", httplog.Options{
			LogLevel: slog.LevelInfo,
			Concise:  true,
		})
	}
	return s
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get(backend.I18nPath, s.handleI18n)
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(s.rateLimit, time.Minute))
		r.Post(backend.LocationPath, s.handleLocation)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	telemetry.InitMetrics()
	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}()

	s.logger.Info("server listening", slog.String("addr", s.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
