// Package handler is the thin HTTP layer over the records service. Handlers
// decode, delegate, and encode; sanitization and audit live in the service.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"casetrack/internal/records"
	"casetrack/pkg/domainerrors"
	"casetrack/pkg/httputil"
)

// Service is the record pipeline the handler delegates to.
type Service interface {
	ListCases(ctx context.Context) ([]records.Case, error)
	CreateCase(ctx context.Context, c records.Case) error
	UpdateCase(ctx context.Context, id int64, u records.CaseUpdate) error
	DeleteCase(ctx context.Context, id int64) error

	ListNotes(ctx context.Context) ([]records.Note, error)
	CreateNote(ctx context.Context, category, content string) (records.Note, error)
	UpdateNote(ctx context.Context, id int64, content string) error
	DeleteNote(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublic wires the unauthenticated read routes.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/api/cases", h.handleListCases)
	r.Get("/api/notes", h.handleListNotes)
}

// RegisterProtected wires the mutating routes; the caller mounts these behind
// the auth gate.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/api/cases", h.handleCreateCase)
	r.Put("/api/cases/{id}", h.handleUpdateCase)
	r.Delete("/api/cases/{id}", h.handleDeleteCase)

	r.Post("/api/notes", h.handleCreateNote)
	r.Put("/api/notes/{id}", h.handleUpdateNote)
	r.Delete("/api/notes/{id}", h.handleDeleteNote)
}

func (h *Handler) handleListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.service.ListCases(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if cases == nil {
		cases = []records.Case{}
	}
	httputil.WriteJSON(w, http.StatusOK, cases)
}

func (h *Handler) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	err := h.service.CreateCase(r.Context(), records.Case{
		ID:          req.ID,
		Title:       req.Title,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
		Resolution:  req.Resolution,
		CreatedAt:   req.CreatedAt,
		ResolvedAt:  req.ResolvedAt,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Success"})
}

func (h *Handler) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req updateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	err = h.service.UpdateCase(r.Context(), id, records.CaseUpdate{
		Title:       req.Title,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
		Resolution:  req.Resolution,
		ResolvedAt:  req.ResolvedAt,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Updated"})
}

func (h *Handler) handleDeleteCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteCase(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.ListNotes(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if notes == nil {
		notes = []records.Note{}
	}
	httputil.WriteJSON(w, http.StatusOK, notes)
}

func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	note, err := h.service.CreateNote(r.Context(), req.Category, req.Content)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, note)
}

func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.UpdateNote(r.Context(), id, req.Content); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Updated"})
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteNote(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, domainerrors.New(domainerrors.CodeBadRequest, "invalid id")
	}
	return id, nil
}
