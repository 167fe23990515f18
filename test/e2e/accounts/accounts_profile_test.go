package accounts_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestProfileReadAndUpdate(t *testing.T) {
	baseURL := setupServer(t)
	ctx := context.Background()

	session, acct := signupAccount(t, baseURL, "Jordan Blake", "jordan@example.com", "Sunrise99", "")

	t.Run("read own profile", func(t *testing.T) {
		resp, err := session.GetProfile(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, "Jordan Blake", resp.User.FullName)
	})

	t.Run("rename only", func(t *testing.T) {
		resp, err := session.UpdateProfile(ctx, acct.ID, accountsdk.UpdateProfileRequest{FullName: "Jordan B."})
		require.NoError(t, err)
		require.Equal(t, "Profile updated successfully", resp.Message)
		require.Equal(t, "Jordan B.", resp.User.FullName)
		require.Equal(t, "jordan@example.com", resp.User.Email)
	})

	t.Run("change email only", func(t *testing.T) {
		resp, err := session.UpdateProfile(ctx, acct.ID, accountsdk.UpdateProfileRequest{Email: "jb@example.com"})
		require.NoError(t, err)
		require.Equal(t, "Jordan B.", resp.User.FullName)
		require.Equal(t, "jb@example.com", resp.User.Email)
	})

	t.Run("email collision", func(t *testing.T) {
		signupAccount(t, baseURL, "Other", "taken@example.com", "Sunrise99", "")

		_, err := session.UpdateProfile(ctx, acct.ID, accountsdk.UpdateProfileRequest{Email: "taken@example.com"})

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Email already in use", apiErr.Message)
	})
}

func TestProfileAccessControl(t *testing.T) {
	baseURL := setupServer(t)
	ctx := context.Background()

	userSession, user := signupAccount(t, baseURL, "Jordan Blake", "jordan@example.com", "Sunrise99", "")
	otherSession, other := signupAccount(t, baseURL, "Riley Chen", "riley@example.com", "Sunrise99", "")
	adminSession, _ := setupAdmin(t, baseURL)

	t.Run("cross-account read denied", func(t *testing.T) {
		_, err := otherSession.GetProfile(ctx, user.ID)

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		require.Equal(t, "Not authorized", apiErr.Message)
	})

	t.Run("cross-account update denied", func(t *testing.T) {
		_, err := userSession.UpdateProfile(ctx, other.ID, accountsdk.UpdateProfileRequest{FullName: "Hijacked"})

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("admin reads and updates anyone", func(t *testing.T) {
		resp, err := adminSession.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.ID, resp.User.ID)

		updated, err := adminSession.UpdateProfile(ctx, user.ID, accountsdk.UpdateProfileRequest{FullName: "Managed Name"})
		require.NoError(t, err)
		require.Equal(t, "Managed Name", updated.User.FullName)
	})

	t.Run("missing profile is a 404 for admins", func(t *testing.T) {
		_, err := adminSession.GetProfile(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Equal(t, "User not found", apiErr.Message)
	})
}

func TestChangePasswordFlow(t *testing.T) {
	baseURL := setupServer(t)
	ctx := context.Background()

	session, acct := signupAccount(t, baseURL, "Jordan Blake", "jordan@example.com", "Sunrise99", "")

	t.Run("wrong current password", func(t *testing.T) {
		_, err := session.ChangePassword(ctx, acct.ID, accountsdk.ChangePasswordRequest{
			CurrentPassword: "Nope12345",
			NewPassword:     "Moonrise77",
			ConfirmPassword: "Moonrise77",
		})

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Current password is incorrect", apiErr.Message)
	})

	t.Run("successful rotation", func(t *testing.T) {
		resp, err := session.ChangePassword(ctx, acct.ID, accountsdk.ChangePasswordRequest{
			CurrentPassword: "Sunrise99",
			NewPassword:     "Moonrise77",
			ConfirmPassword: "Moonrise77",
		})
		require.NoError(t, err)
		require.Equal(t, "Password changed successfully", resp.Message)

		// Old password is dead, new one works.
		client := accountsdk.NewClient(baseURL)
		_, err = client.Login(ctx, "jordan@example.com", "Sunrise99")
		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

		_, err = client.Login(ctx, "jordan@example.com", "Moonrise77")
		require.NoError(t, err)
	})
}
