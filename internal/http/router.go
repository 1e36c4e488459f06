// Package httpapi assembles the request pipeline: every request is audited on
// arrival, mutating routes pass the auth gate, and handlers stay behind the
// shared middleware chain.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"casetrack/internal/audit"
	authhandler "casetrack/internal/auth/handler"
	"casetrack/internal/platform/metrics"
	"casetrack/internal/platform/middleware"
	recordshandler "casetrack/internal/records/handler"
	"casetrack/pkg/httputil"
)

// Deps carries everything the router wires together.
type Deps struct {
	Auth     *authhandler.Handler
	Records  *recordshandler.Handler
	Verifier middleware.TokenVerifier
	Logger   *audit.Logger
	Metrics  *metrics.Metrics
	// MetricsHandler serves the Prometheus scrape endpoint.
	MetricsHandler http.Handler
}

// noisePaths are excluded from arrival audit events.
var noisePaths = map[string]struct{}{
	"/favicon.ico": {},
	"/healthz":     {},
	"/metrics":     {},
}

// New builds the HTTP handler. Middleware order matters: recovery outermost,
// then correlation and client metadata so the arrival log can use them.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Instrument(deps.Metrics))
	r.Use(middleware.RequestLog(deps.Logger, noisePaths))

	// Public surface: login and the read routes.
	deps.Auth.Register(r)
	deps.Records.RegisterPublic(r)

	// Mutating routes sit behind the auth gate.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(deps.Verifier, deps.Logger, deps.Metrics))
		deps.Records.RegisterProtected(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	return r
}
