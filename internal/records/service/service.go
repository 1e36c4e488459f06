// Package service wraps the record store with the request pipeline's
// obligations: sanitize free-text on the way in, emit one audit event per
// outcome, and translate store failures for the transport layer. Free-text
// never reaches the store unsanitized and never appears in error-level audit
// metadata.
package service

import (
	"context"

	"casetrack/internal/audit"
	"casetrack/internal/platform/metrics"
	"casetrack/internal/records"
	"casetrack/internal/sanitize"
	"casetrack/pkg/domainerrors"
	"casetrack/pkg/requestcontext"
)

type Service struct {
	store   records.Store
	logger  *audit.Logger
	metrics *metrics.Metrics
}

func New(store records.Store, logger *audit.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

// ListCases is public and unauthenticated; failures surface a generic message
// while the store's error stays in the audit log.
func (s *Service) ListCases(ctx context.Context) ([]records.Case, error) {
	cases, err := s.store.ListCases(ctx)
	if err != nil {
		s.logger.Error("Database Error (Get Cases)", map[string]any{
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return nil, domainerrors.New(domainerrors.CodeInternal, "Internal Server Error")
	}
	return cases, nil
}

func (s *Service) CreateCase(ctx context.Context, c records.Case) error {
	c.Description = sanitize.Clean(c.Description)
	c.Resolution = sanitize.Clean(c.Resolution)

	if err := s.store.CreateCase(ctx, c); err != nil {
		// Key identifying parameters only: id, title, category. Never the
		// free-text fields.
		s.logger.Error("Create Case Failed", map[string]any{
			"user":       requestcontext.Role(ctx),
			"caseId":     c.ID,
			"title":      c.Title,
			"category":   c.Category,
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return domainerrors.New(domainerrors.CodeInternal, err.Error())
	}

	s.logger.Info("Case Created", map[string]any{
		"user":   requestcontext.Role(ctx),
		"caseId": c.ID,
		"title":  c.Title,
	})
	s.metrics.RecordsWritten.WithLabelValues("case").Inc()
	return nil
}

func (s *Service) UpdateCase(ctx context.Context, id int64, u records.CaseUpdate) error {
	u.Description = sanitize.Clean(u.Description)
	u.Resolution = sanitize.Clean(u.Resolution)

	if err := s.store.UpdateCase(ctx, id, u); err != nil {
		s.logger.Error("Update Case Failed", map[string]any{
			"user":       requestcontext.Role(ctx),
			"caseId":     id,
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return domainerrors.New(domainerrors.CodeInternal, err.Error())
	}

	s.logger.Info("Case Updated", map[string]any{
		"user":   requestcontext.Role(ctx),
		"caseId": id,
	})
	s.metrics.RecordsWritten.WithLabelValues("case").Inc()
	return nil
}

// DeleteCase logs at warn level; destructive actions should draw attention in
// the audit trail.
func (s *Service) DeleteCase(ctx context.Context, id int64) error {
	if err := s.store.DeleteCase(ctx, id); err != nil {
		s.logger.Error("Delete Case Failed", map[string]any{
			"user":       requestcontext.Role(ctx),
			"caseId":     id,
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return domainerrors.New(domainerrors.CodeInternal, err.Error())
	}

	s.logger.Warn("Case Deleted", map[string]any{
		"user":   requestcontext.Role(ctx),
		"caseId": id,
	})
	s.metrics.RecordsDeleted.WithLabelValues("case").Inc()
	return nil
}

func (s *Service) ListNotes(ctx context.Context) ([]records.Note, error) {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		s.logger.Error("Database Error (Get Notes)", map[string]any{
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return nil, domainerrors.New(domainerrors.CodeInternal, "Internal Server Error")
	}
	return notes, nil
}

// CreateNote returns the stored note so the response reflects the sanitized
// content and the assigned id.
func (s *Service) CreateNote(ctx context.Context, category, content string) (records.Note, error) {
	clean := sanitize.Clean(content)

	id, err := s.store.CreateNote(ctx, category, clean)
	if err != nil {
		s.logger.Error("Create Note Failed", map[string]any{
			"user":       requestcontext.Role(ctx),
			"category":   category,
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return records.Note{}, domainerrors.New(domainerrors.CodeInternal, err.Error())
	}

	s.logger.Info("Note Created", map[string]any{
		"user":     requestcontext.Role(ctx),
		"category": category,
		"noteId":   id,
	})
	s.metrics.RecordsWritten.WithLabelValues("note").Inc()
	return records.Note{ID: id, Category: category, Content: clean}, nil
}

func (s *Service) UpdateNote(ctx context.Context, id int64, content string) error {
	clean := sanitize.Clean(content)

	if err := s.store.UpdateNote(ctx, id, clean); err != nil {
		s.logger.Error("Update Note Failed", map[string]any{
			"user":       requestcontext.Role(ctx),
			"noteId":     id,
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return domainerrors.New(domainerrors.CodeInternal, err.Error())
	}

	s.logger.Info("Note Updated", map[string]any{
		"user":   requestcontext.Role(ctx),
		"noteId": id,
	})
	s.metrics.RecordsWritten.WithLabelValues("note").Inc()
	return nil
}

func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	if err := s.store.DeleteNote(ctx, id); err != nil {
		s.logger.Error("Delete Note Failed", map[string]any{
			"user":       requestcontext.Role(ctx),
			"noteId":     id,
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return domainerrors.New(domainerrors.CodeInternal, err.Error())
	}

	s.logger.Warn("Note Deleted", map[string]any{
		"user":   requestcontext.Role(ctx),
		"noteId": id,
	})
	s.metrics.RecordsDeleted.WithLabelValues("note").Inc()
	return nil
}
