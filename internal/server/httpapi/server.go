// Package httpapi exposes the public JSON API: registration, login, and the
// token-gated profile endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/finweave/insight-server/internal/logging"
	"github.com/finweave/insight-server/internal/server/services"
)

type HTTPServer struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	profiles       *services.ProfileService
	jwtSecret      []byte
	allowedOrigins []string
}

func NewHTTPServer(addr string, l logging.Logger, us *services.UserService, ps *services.ProfileService, secretKey, corsOrigins string) *HTTPServer {
	return &HTTPServer{
		address:        addr,
		logger:         l.With("module", "httpapi"),
		users:          us,
		profiles:       ps,
		jwtSecret:      []byte(secretKey),
		allowedOrigins: splitOrigins(corsOrigins),
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
