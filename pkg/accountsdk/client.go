package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the accounts service. The zero value is not usable; create
// one with NewClient. A Client without a token can only reach the public
// endpoints; use WithToken after login or signup for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates with the given
// session token. The receiver is not modified.
func (c *Client) WithToken(token string) *Client {
	dup := *c
	dup.token = token
	return &dup
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var body *bytes.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Signup registers a new account and returns the issued session token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &out)
	return out, err
}

// Login authenticates an account and returns the issued session token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Me fetches the account behind the client's session token.
func (c *Client) Me(ctx context.Context) (AccountResponse, error) {
	var out AccountResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out, err
}

// Logout tells the server the session is finished. Because sessions are
// stateless JWTs the call only confirms; the client should also discard
// its token.
func (c *Client) Logout(ctx context.Context) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, &out)
	return out, err
}

// ListUsers fetches one page of regular accounts. Admin only. Zero values
// for page or limit use the server defaults.
func (c *Client) ListUsers(ctx context.Context, page, limit int) (ListResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/users"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ListResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// GetProfile fetches an account's profile. Accounts can read their own;
// admins can read anyone's.
func (c *Client) GetProfile(ctx context.Context, accountID string) (AccountResponse, error) {
	var out AccountResponse
	err := c.do(ctx, http.MethodGet, "/api/users/profile/"+accountID, nil, &out)
	return out, err
}

// UpdateProfile changes an account's full name and/or email.
func (c *Client) UpdateProfile(ctx context.Context, accountID string, req UpdateProfileRequest) (AccountResponse, error) {
	var out AccountResponse
	err := c.do(ctx, http.MethodPut, "/api/users/profile/"+accountID, req, &out)
	return out, err
}

// ChangePassword rotates an account's password.
func (c *Client) ChangePassword(ctx context.Context, accountID string, req ChangePasswordRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPut, "/api/users/change-password/"+accountID, req, &out)
	return out, err
}

// ActivateUser re-enables a deactivated account. Admin only.
func (c *Client) ActivateUser(ctx context.Context, accountID string) (AccountResponse, error) {
	var out AccountResponse
	err := c.do(ctx, http.MethodPut, "/api/users/activate/"+accountID, nil, &out)
	return out, err
}

// DeactivateUser disables an account. Admin only. Sessions already issued
// keep working until they expire; the block lands at the next login.
func (c *Client) DeactivateUser(ctx context.Context, accountID string) (AccountResponse, error) {
	var out AccountResponse
	err := c.do(ctx, http.MethodPut, "/api/users/deactivate/"+accountID, nil, &out)
	return out, err
}

// Health reports whether the service and its store are reachable.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/healthz", nil, &out)
	return out, err
}
