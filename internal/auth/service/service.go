// Package service implements the login flow: one shared admin credential, one
// attempt, no lockout and no retry.
package service

import (
	"context"

	"casetrack/internal/audit"
	"casetrack/pkg/domainerrors"
	"casetrack/pkg/requestcontext"
)

// TokenIssuer is the slice of the token service the login flow needs.
type TokenIssuer interface {
	Issue(role string) (string, error)
}

// Service authenticates the shared admin credential and mints bearer tokens.
type Service struct {
	adminPassword string
	tokens        TokenIssuer
	logger        *audit.Logger
}

func New(adminPassword string, tokens TokenIssuer, logger *audit.Logger) *Service {
	return &Service{adminPassword: adminPassword, tokens: tokens, logger: logger}
}

// Login compares the supplied credential against the configured admin secret
// and issues a token on success. The comparison is plain equality, not
// constant time; see DESIGN.md. Neither the supplied nor the configured
// credential ever reaches the audit log.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if password != s.adminPassword {
		s.logger.Warn("Login Failed: Wrong password", map[string]any{
			"ip": requestcontext.ClientIP(ctx),
		})
		return "", domainerrors.New(domainerrors.CodeUnauthorized, "Wrong password")
	}

	token, err := s.tokens.Issue("admin")
	if err != nil {
		s.logger.Error("Login Failed: token issuance", map[string]any{
			"error":      err.Error(),
			"request_id": requestcontext.RequestID(ctx),
		})
		return "", domainerrors.New(domainerrors.CodeInternal, "Internal Server Error")
	}

	s.logger.Info("Login Successful", map[string]any{
		"ip":   requestcontext.ClientIP(ctx),
		"role": "admin",
	})
	return token, nil
}
