package validate_test

import (
	"testing"

	"github.com/staffroomhq/accounts/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		email string
		want  bool
	}{
		{"test@example.com", true},
		{"user.name@domain.co.uk", true},
		{"first+tag@sub.domain.io", true},
		{"invalid.email", false},
		{"invalid@", false},
		{"@example.com", false},
		{"invalid @example.com", false},
		{"invalid@example", false},
		{"", false},
		{" ", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			require.Equal(t, tc.want, validate.Email(tc.email))
		})
	}
}

func TestPasswordValid(t *testing.T) {
	t.Parallel()

	result := validate.Password("ValidPass123")
	require.True(t, result.IsValid)
	require.Empty(t, result.Errors)
}

func TestPasswordSingleFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"too short", "Pass1", "Password must be at least 6 characters"},
		{"multibyte runes count once", "Päss1", "Password must be at least 6 characters"},
		{"no uppercase", "validpass123", "Password must contain at least one uppercase letter"},
		{"no lowercase", "VALIDPASS123", "Password must contain at least one lowercase letter"},
		{"no digit", "ValidPass", "Password must contain at least one number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := validate.Password(tc.password)
			require.False(t, result.IsValid)
			require.Contains(t, result.Errors, tc.wantErr)
		})
	}
}

func TestPasswordCollectsAllFailuresInOrder(t *testing.T) {
	t.Parallel()

	result := validate.Password("pass")
	require.False(t, result.IsValid)
	require.Equal(t, []string{
		"Password must be at least 6 characters",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
	}, result.Errors)
}
