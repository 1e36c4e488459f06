package middleware

import (
	"net/http"
	"strings"

	"casetrack/internal/audit"
	"casetrack/internal/platform/metrics"
	"casetrack/internal/token"
	"casetrack/pkg/requestcontext"
)

// TokenVerifier is the slice of the token service the auth gate needs.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// RequireAdmin gates mutating routes behind a bearer token. A missing token is
// rejected with 401, a failed verification with 403; both leave the response
// body empty and are recorded at warn level. The token value itself is never
// logged.
func RequireAdmin(verifier TokenVerifier, logger *audit.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				logger.Warn("Auth Failed: No token provided", map[string]any{
					"ip":       requestcontext.ClientIP(ctx),
					"endpoint": r.URL.Path,
				})
				m.AuthFailures.Inc()
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				logger.Warn("Auth Failed: Invalid token", map[string]any{
					"ip":    requestcontext.ClientIP(ctx),
					"error": err.Error(),
				})
				m.AuthFailures.Inc()
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx = requestcontext.WithRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
