// Package httpapi exposes the public JSON API: user registration, login,
// and photo-post CRUD. Each handler follows the same request state machine:
// parse/validate the payload, authenticate where required, authorize
// mutations against the existing post's owner, perform the store operation,
// and map outcomes to response codes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/daynu/herejpg/internal/logging"
	"github.com/daynu/herejpg/internal/server/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServer struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	posts        *services.PostService
	jwtSecret    []byte
	cookieSecure bool
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ps *services.PostService, secretKey string, cookieSecure bool) *HTTPServer {
	return &HTTPServer{
		address:      a,
		logger:       l.With("module", "http_server"),
		users:        us,
		posts:        ps,
		jwtSecret:    []byte(secretKey),
		cookieSecure: cookieSecure,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/currentuser", s.handleCurrentUser)

		r.Get("/photos", s.handleListPhotos)
		r.Post("/photos", s.handleCreatePhoto)
		r.Put("/photos", s.handleUpdatePhoto)
		r.Delete("/photos", s.handleDeletePhoto)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
