package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/kirana/pkg/auth"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

type userIDKey struct{}

// Auth is the single enforcement point for bearer-token access control.
// It extracts the token from the Authorization header, verifies it, and puts
// the resolved user id into the request context before the wrapped handler
// runs. On any failure it short-circuits with a uniform 401 — the wrapped
// handler never executes and must not re-check authorisation itself.
//
// Handlers read the caller's identity with middleware.UserID(r.Context()).
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			metrics.AuthRejections.WithLabelValues("missing").Inc()
			response.Unauthorized(w)
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			// Expired vs malformed is recorded for diagnostics but the
			// response body stays identical for both.
			reason := "invalid"
			if errors.Is(err, auth.ErrTokenExpired) {
				reason = "expired"
			}
			metrics.AuthRejections.WithLabelValues(reason).Inc()
			logger.WithCtx(r.Context()).Debug("token rejected", "reason", reason)
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id resolved by the Auth middleware.
// ok is false when the request did not pass through Auth.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey{}).(uint)
	return id, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
