package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Env         string
}

// ServeHTTP authenticates an account and returns a fresh session token.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, acct, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error logging in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    toAccount(acct),
	})
}
