package middleware

import (
	"fmt"
	"net/http"

	"casetrack/internal/audit"
	"casetrack/pkg/requestcontext"
)

// RequestLog emits one arrival audit event per inbound request before any
// other processing. Paths in skip (favicon, health, metrics scrapes) are
// noise and not recorded.
func RequestLog(logger *audit.Logger, skip map[string]struct{}) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skipped := skip[r.URL.Path]; !skipped {
				ctx := r.Context()
				logger.Info(fmt.Sprintf("Incoming Request: %s %s", r.Method, r.URL.Path), map[string]any{
					"ip":         requestcontext.ClientIP(ctx),
					"userAgent":  requestcontext.UserAgent(ctx),
					"request_id": requestcontext.RequestID(ctx),
				})
			}
			next.ServeHTTP(w, r)
		})
	}
}
