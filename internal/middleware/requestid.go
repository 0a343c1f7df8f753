package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID is chi's RequestID with UUIDs and a response header. An inbound
// X-Request-Id is reused; otherwise a random UUID is generated. The id is
// stored under chi's context key, so chimw.GetReqID sees it, and is set on
// the response before the next handler runs so 404 and 405 carry it too.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom returns the id stored by RequestID, or "" if there is none.
func RequestIDFrom(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
