package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-league/internal/usecase"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func newTestManager(t *testing.T, now time.Time) *Manager {
	t.Helper()

	m, err := NewManager("test-secret", "cricket-league", time.Minute, staticIDGenerator{id: "tok-1"})
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	return m
}

func TestManager_IssueThenVerify(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	token, err := m.IssueAccessToken(context.Background(), 42)
	require.NoError(t, err)

	principal, err := m.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, int64(42), principal.UserID)
	require.Equal(t, "tok-1", principal.TokenID)

	var claims jwt.RegisteredClaims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "cricket-league", claims.Issuer)
	require.True(t, claims.ExpiresAt.Time.Equal(now.Add(time.Minute)))
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	token, err := m.IssueAccessToken(context.Background(), 7)
	require.NoError(t, err)

	m.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = m.VerifyAccessToken(context.Background(), token)
	require.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, now)

	wrongSecret, err := NewManager("other-secret", "cricket-league", time.Minute, nil)
	require.NoError(t, err)
	forged, err := wrongSecret.IssueAccessToken(context.Background(), 1)
	require.NoError(t, err)

	wrongIssuer, err := NewManager("test-secret", "someone-else", time.Minute, nil)
	require.NoError(t, err)
	otherIssuer, err := wrongIssuer.IssueAccessToken(context.Background(), 1)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "cricket-league",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "cricket-league",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": forged,
		"wrong issuer": otherIssuer,
		"none alg":     noneAlg,
		"bad subject":  badSubject,
	} {
		_, err := m.VerifyAccessToken(context.Background(), token)
		require.ErrorIs(t, err, usecase.ErrUnauthorized, name)
	}
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager("  ", "iss", time.Minute, nil)
	require.Error(t, err)

	m, err := NewManager("s", "iss", 0, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultTTL, m.ttl)
}
