package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"casetrack/pkg/requestcontext"
)

// RequestID assigns each request a correlation ID, echoed in the response and
// attached to every audit event emitted while handling it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
