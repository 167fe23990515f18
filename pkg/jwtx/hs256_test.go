package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/staffroomhq/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "accounts-service"

var testSecret = []byte("test-secret-please-rotate")

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("account-123", role, testIssuer, ttl, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	return token
}

func TestHS256SignAndVerify(t *testing.T) {
	t.Parallel()

	token := signToken(t, "admin", 2*time.Minute)

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, "account-123", claims.Subject)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, testIssuer, claims.Issuer)
	require.WithinDuration(t, time.Now().Add(2*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	token := signToken(t, "user", -time.Minute)

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	_, err := verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsTampered(t *testing.T) {
	t.Parallel()

	token := signToken(t, "user", time.Hour)

	// Flip a byte in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[3] == 'A' {
		payload[3] = 'B'
	} else {
		payload[3] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	_, err := verifier.Verify(tampered)
	require.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token := signToken(t, "user", time.Hour)

	verifier := jwtx.NewVerifierHS256([]byte("a-different-secret"), testIssuer)
	_, err := verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	t.Parallel()

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "....."} {
		_, err := verifier.Verify(tok)
		require.Error(t, err, "token %q", tok)
	}
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	token := signToken(t, "user", time.Hour)

	verifier := jwtx.NewVerifierHS256(testSecret, "someone-else")
	_, err := verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestTokensDifferAcrossIssuance(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC()
	a, err := signer.Sign(jwtx.NewSessionClaims("acct-a", "user", testIssuer, time.Hour, now))
	require.NoError(t, err)
	b, err := signer.Sign(jwtx.NewSessionClaims("acct-b", "user", testIssuer, time.Hour, now))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestNewSignerRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerHS256(nil)
	require.Error(t, err)
}
