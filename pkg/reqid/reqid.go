// Package reqid assigns every inbound request a short random id so log lines
// from one request can be correlated across middleware and handlers.
package reqid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

type ctxKey struct{}

// Header is the response header carrying the request id.
const Header = "X-Request-Id"

// Middleware injects a request id into the context and echoes it in the
// response headers. An id supplied by the client in X-Request-Id is reused.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(Header)
			if rid == "" {
				rid = newID()
			}

			w.Header().Set(Header, rid)
			next.ServeHTTP(w, r.WithContext(WithValue(r.Context(), rid)))
		})
	}
}

// WithValue stores a request id in ctx.
func WithValue(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, rid)
}

// FromCtx returns the request id stored in ctx, or "" when absent.
func FromCtx(ctx context.Context) string {
	rid, _ := ctx.Value(ctxKey{}).(string)
	return rid
}

func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b[:])
}
