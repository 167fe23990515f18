package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

type MeHandler struct {
	AuthService *service.AuthService
	Env         string
}

// ServeHTTP returns the account behind the caller's session token.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accountID := httpx.AccountIDFromCtx(r.Context())
	if accountID == "" {
		httpx.WriteFailure(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	acct, err := h.AuthService.CurrentAccount(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error fetching user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AccountResponse{
		Success: true,
		User:    toAccount(acct),
	})
}
