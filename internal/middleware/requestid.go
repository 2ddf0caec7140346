package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns a request id to requests that arrive without one and
// echoes it back in the response, so error envelopes and log lines can be
// correlated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
