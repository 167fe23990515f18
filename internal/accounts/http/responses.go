package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
	"github.com/staffroomhq/accounts/pkg/slogx"
)

const maxBodyBytes = 1 << 20

// toAccount converts a domain account into its public API shape.
func toAccount(a domain.Account) *accountsdk.Account {
	return &accountsdk.Account{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		Role:      string(a.Role),
		Status:    string(a.Status),
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

// decodeBody reads a JSON request body into v. A malformed body is reported
// with the generic failure envelope; the caller should return immediately
// when false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeServiceError translates the service error taxonomy into HTTP
// responses. Anything unrecognised is a 500 with the given fallback
// message; the underlying detail only leaks outside production when
// env is "development".
func writeServiceError(w http.ResponseWriter, r *http.Request, env string, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
			Message: verr.Message,
			Errors:  verr.Errors,
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteFailure(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrWrongPassword):
		httpx.WriteFailure(w, http.StatusUnauthorized, "Current password is incorrect")
	case errors.Is(err, service.ErrAccountInactive):
		httpx.WriteFailure(w, http.StatusForbidden, "Your account has been deactivated")
	case errors.Is(err, service.ErrNotAuthorized):
		httpx.WriteFailure(w, http.StatusForbidden, "Not authorized")
	case errors.Is(err, service.ErrAccountNotFound):
		httpx.WriteFailure(w, http.StatusNotFound, "User not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)

		detail := "An error occurred"
		if env == "development" {
			detail = err.Error()
		}
		httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
			Message: fallback,
			Error:   detail,
		})
	}
}
