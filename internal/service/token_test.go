package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-please-do-not-reuse")

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	token, err := svc.Issue("asha@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", subject)
}

func TestTokenService_Issue_EmptySubject(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)
	_, err := svc.Issue("")
	assert.Error(t, err)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, 30*time.Minute)
	verifier := NewTokenService([]byte("another-secret-entirely"), 30*time.Minute)

	token, err := issuer.Issue("asha@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := NewTokenServiceWithClock(testSecret, 30*time.Minute, func() time.Time { return clock })

	token, err := svc.Issue("asha@example.com")
	require.NoError(t, err)

	clock = now.Add(31 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)
	_, err := svc.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
