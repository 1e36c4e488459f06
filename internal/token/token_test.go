package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casetrack/pkg/domainerrors"
)

func Test_NewService_EmptyKey(t *testing.T) {
	_, err := NewService("", DefaultTTL)
	require.Error(t, err)
}

func Test_IssueAndVerify(t *testing.T) {
	svc, err := NewService("test-signing-key", DefaultTTL)
	require.NoError(t, err)

	tok, err := svc.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, time.Minute)
}

func Test_Verify_Expired(t *testing.T) {
	svc, err := NewService("test-signing-key", DefaultTTL)
	require.NoError(t, err)
	svc.ttl = -time.Hour

	tok, err := svc.Issue("admin")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.CodeForbidden))
	// Expired and tampered tokens are indistinguishable to callers.
	assert.Equal(t, "invalid token", err.Error())
}

func Test_Verify_Malformed(t *testing.T) {
	svc, err := NewService("test-signing-key", DefaultTTL)
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	require.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func Test_Verify_WrongKey(t *testing.T) {
	issuer, err := NewService("key-one", DefaultTTL)
	require.NoError(t, err)
	verifier, err := NewService("key-two", DefaultTTL)
	require.NoError(t, err)

	tok, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}
