// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"net/http"

	"casetrack/pkg/domainerrors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded error into a JSON error envelope. The error
// message is exposed verbatim; callers decide what is safe to surface.
func WriteError(w http.ResponseWriter, err error) {
	status := domainerrors.ToHTTPStatus(domainerrors.CodeOf(err))
	WriteJSON(w, status, map[string]string{"error": err.Error()})
}
