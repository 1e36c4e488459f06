package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"casetrack/internal/audit"
	"casetrack/pkg/httputil"
	"casetrack/pkg/requestcontext"
)

// Recovery converts handler panics into 500 responses. The stack stays in the
// audit log; callers only see a generic error.
func Recovery(logger *audit.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered", map[string]any{
						"error":      fmt.Sprint(rec),
						"path":       r.URL.Path,
						"request_id": requestcontext.RequestID(r.Context()),
						"stack":      string(debug.Stack()),
					})
					httputil.WriteJSON(w, http.StatusInternalServerError,
						map[string]string{"error": "Internal Server Error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
