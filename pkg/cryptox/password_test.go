package cryptox_test

import (
	"strings"
	"testing"

	"github.com/staffroomhq/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("ValidPass123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("ValidPass123", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("WrongPass123", hash), cryptox.ErrMismatch)
}

func TestHashIsSaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifyPassword("same-password", a))
	require.NoError(t, cryptox.VerifyPassword("same-password", b))
}

func TestVerifyMalformedDigest(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=19456,t=2,p=1$only-four-parts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
	}

	for _, digest := range cases {
		require.ErrorIs(t, cryptox.VerifyPassword("anything", digest), cryptox.ErrMismatch, "digest %q", digest)
	}
}

func TestVerifyHonoursEmbeddedParams(t *testing.T) {
	t.Parallel()

	// A digest created under a lighter work factor must still verify.
	light := cryptox.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	hash, err := cryptox.HashPasswordWithParams("Migrated123", light)
	require.NoError(t, err)

	require.NoError(t, cryptox.VerifyPassword("Migrated123", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("Other123", hash), cryptox.ErrMismatch)
}
