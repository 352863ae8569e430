package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID between client and server.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that propagates an incoming request ID or
// mints a fresh one, storing it in the context and echoing it back in the
// response headers.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
