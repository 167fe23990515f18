package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

type ChangePasswordHandler struct {
	AccountService *service.AccountService
	Env            string
}

// ServeHTTP rotates an account's password after verifying the current one.
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.AccountService.ChangePassword(
		r.Context(),
		actorFromCtx(r),
		r.PathValue("id"),
		req.CurrentPassword,
		req.NewPassword,
		req.ConfirmPassword,
	)
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error changing password")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Success: true,
		Message: "Password changed successfully",
	})
}
