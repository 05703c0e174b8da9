// Package web serves the date picker over HTTP: a server-rendered page, an
// HTML calendar fragment and a small JSON API around the calendar engine.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr        string
	Layout      string
	Placeholder string
	Bounds      calendar.Bounds
	Logger      *logger.Logger
	// PageSiblings is the sibling count of the month pager.
	PageSiblings int
	// AllowedOrigins enables CORS on the JSON API. Empty disables it.
	AllowedOrigins []string
	// Now supplies the current time; defaults to time.Now.
	Now func() time.Time
}

// Server hosts the picker routes.
type Server struct {
	opts   Options
	log    *logger.Logger
	router chi.Router
}

// NewServer builds the router for opts.
func NewServer(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Layout == "" {
		opts.Layout = calendar.DefaultLayout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{opts: opts, log: log.With("component", "web")}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/calendar", s.handleFragment)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		if len(opts.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.AllowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}
		r.Get("/calendar", s.handleCalendarJSON)
		r.Get("/select", s.handleSelect)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.With("addr", s.opts.Addr).Info("preview server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down preview server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		reqLog := s.log.With("request_id", chimw.GetReqID(r.Context()))

		next.ServeHTTP(ww, r.WithContext(logger.NewContext(r.Context(), reqLog)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		reqLog.Request(r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *Server) today() calendar.Date {
	return calendar.FromTime(s.opts.Now())
}
