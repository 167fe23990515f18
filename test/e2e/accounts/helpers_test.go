package accounts_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/staffroomhq/accounts/internal/accounts/app"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for accounts service end-to-end tests. The service runs
 * in-process against a throwaway SQLite database, so the suite needs no
 * docker and finishes quickly.
 */

const (
	testJWTSecret = "e2e-test-secret"

	adminEmail    = "admin@example.com"
	adminPassword = "Admin123"
)

// TestMain raises the rate limits so rapid-fire test requests do not trip
// the production profiles.
func TestMain(m *testing.M) {
	httpx.StrictLimit.RequestsPerWindow = 1000
	httpx.StrictLimit.Burst = 1000
	httpx.ModerateLimit.RequestsPerWindow = 1000
	httpx.ModerateLimit.Burst = 1000
	httpx.LenientLimit.RequestsPerWindow = 1000
	httpx.LenientLimit.Burst = 1000

	os.Exit(m.Run())
}

// setupServer wires a full application against a fresh database and mounts
// it in an httptest server.
func setupServer(t *testing.T) string {
	t.Helper()

	application, err := app.New(app.Config{
		Issuer:              "accounts-service",
		JWTSecret:           testJWTSecret,
		StoreDriver:         "sqlite",
		DatabaseFile:        filepath.Join(t.TempDir(), "accounts.db"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: 0,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Router())
	t.Cleanup(srv.Close)

	return srv.URL
}

// signupAccount registers an account and returns an authenticated client
// plus the created account.
func signupAccount(t *testing.T, baseURL, fullName, email, password, role string) (*accountsdk.Client, accountsdk.Account) {
	t.Helper()

	client := accountsdk.NewClient(baseURL)
	resp, err := client.Signup(context.Background(), accountsdk.SignupRequest{
		FullName:        fullName,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Role:            role,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)

	return client.WithToken(resp.Token), *resp.User
}

// setupAdmin registers an admin account on the given server.
func setupAdmin(t *testing.T, baseURL string) (*accountsdk.Client, accountsdk.Account) {
	t.Helper()
	return signupAccount(t, baseURL, "Admin", adminEmail, adminPassword, "admin")
}
