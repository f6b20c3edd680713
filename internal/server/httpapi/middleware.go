package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/finweave/insight-server/internal/common"
	"github.com/finweave/insight-server/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the identity attached by requireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// requireAuth extracts the bearer token from the Authorization header,
// verifies it, and attaches the embedded user id to the request context.
// A missing credential and a bad one are reported distinctly.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				s.logger.Warn(r.Context(), "expired token rejected")
			}
			respondMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
