package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover catches panics from handlers, records them for operators, and
// answers with the generic internal-error envelope so no internals leak.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"path", r.URL.Path,
					"request_id", r.Header.Get("X-Request-ID"),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
