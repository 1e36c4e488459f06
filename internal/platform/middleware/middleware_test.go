package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casetrack/internal/audit"
	"casetrack/pkg/requestcontext"
)

func Test_RequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/cases", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
}

func Test_RequestID_HonorsInboundHeader(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "upstream-id", seen)
}

func Test_ClientMetadata_IPResolution(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*http.Request)
		want    string
	}{
		{
			name:    "remote addr only",
			prepare: func(r *http.Request) { r.RemoteAddr = "10.0.0.5:43210" },
			want:    "10.0.0.5",
		},
		{
			name:    "x-forwarded-for single",
			prepare: func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.9") },
			want:    "203.0.113.9",
		},
		{
			name: "x-forwarded-for chain picks first",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
			},
			want: "203.0.113.9",
		},
		{
			name:    "x-real-ip fallback",
			prepare: func(r *http.Request) { r.Header.Set("X-Real-IP", "198.51.100.4") },
			want:    "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIP, gotUA string
			h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotIP = requestcontext.ClientIP(r.Context())
				gotUA = requestcontext.UserAgent(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("User-Agent", "test-agent/1.0")
			tt.prepare(req)
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, gotIP)
			assert.Equal(t, "test-agent/1.0", gotUA)
		})
	}
}

func Test_RequestLog_SkipsConfiguredPaths(t *testing.T) {
	sink := audit.NewMemorySink()
	logger := audit.NewWithSinks("cases-system", sink)
	skip := map[string]struct{}{"/healthz": {}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := RequestLog(logger, skip)(next)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, sink.Events())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	event, ok := sink.LastWithLevel(audit.LevelInfo)
	require.True(t, ok)
	assert.Equal(t, "Incoming Request: GET /api/notes", event.Message)
}

func Test_Recovery_PanicBecomesGeneric500(t *testing.T) {
	sink := audit.NewMemorySink()
	logger := audit.NewWithSinks("cases-system", sink)

	h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/cases", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())

	event, ok := sink.LastWithLevel(audit.LevelError)
	require.True(t, ok)
	assert.Equal(t, "Panic recovered", event.Message)
	assert.Equal(t, "boom", event.Meta["error"])
	assert.NotEmpty(t, event.Meta["stack"])
}
