// Package handler exposes the login endpoint.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"casetrack/pkg/domainerrors"
	"casetrack/pkg/httputil"
)

// Service is the login flow the handler delegates to.
type Service interface {
	Login(ctx context.Context, password string) (string, error)
}

type Handler struct {
	auth Service
}

func New(auth Service) *Handler {
	return &Handler{auth: auth}
}

// Register wires the login route. It is intentionally outside the auth gate.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/login", h.handleLogin)
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	token, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
