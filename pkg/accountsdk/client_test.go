package accountsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":"abc"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("session-token")
	resp, err := client.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer session-token", gotAuth)
	require.Equal(t, "abc", resp.User.ID)
}

func TestWithTokenDoesNotMutateReceiver(t *testing.T) {
	base := NewClient("http://example.com")
	_ = base.WithToken("abc")
	require.Empty(t, base.token)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Password does not meet requirements","errors":["Password must be at least 6 characters"]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Signup(context.Background(), SignupRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Password does not meet requirements", apiErr.Message)
	require.Equal(t, []string{"Password must be at least 6 characters"}, apiErr.Errors)
	require.Contains(t, apiErr.Error(), "status 400")
}

func TestClientSurfacesUndecodableErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream said no"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Health(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Empty(t, apiErr.Message)
}
