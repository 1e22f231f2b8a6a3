// Package devserver is an in-memory implementation of the records REST
// API. It backs the client's integration tests and local runs; nothing it
// stores survives a restart.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/myrecords/internal/devserver/store"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

// Server holds the handlers' dependencies.
type Server struct {
	store    *store.Memory
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger
	limiter  *rate.Limiter
	now      func() time.Time
}

type Option func(*Server)

// WithRateLimit caps accepted requests per second. rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithTokenTTL(d time.Duration) Option {
	return func(s *Server) { s.tokenTTL = d }
}

// WithClock replaces time.Now for record status computation.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func New(st *store.Memory, secret []byte, log logging.Logger, opts ...Option) *Server {
	s := &Server{
		store:    st,
		secret:   secret,
		tokenTTL: 24 * time.Hour,
		log:      log,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler builds the chi router with the full endpoint table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID, s.logRequests, s.rateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.register)
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Put("/users", s.updateUser)
			r.Delete("/users", s.deleteUser)
			r.Put("/users/account", s.updatePassword)

			r.Route("/records", func(r chi.Router) {
				r.Get("/", s.listRecords)
				r.Post("/", s.createRecord)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.getRecord)
					r.Put("/", s.updateRecord)
					r.Delete("/", s.deleteRecord)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "devserver listening", "addr", addr)
		errCh <- srv.ListenAndServe()
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
		s.log.Info(ctx, "devserver shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
