package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

type SignupHandler struct {
	AuthService *service.AuthService
	Env         string
}

// ServeHTTP registers a new account and returns a session token for it.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, acct, err := h.AuthService.Signup(r.Context(), service.SignupInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error registering user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    toAccount(acct),
	})
}
