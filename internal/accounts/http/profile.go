package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

type ProfileHandler struct {
	AccountService *service.AccountService
	Env            string
}

func actorFromCtx(r *http.Request) service.Actor {
	return service.Actor{
		ID:   httpx.AccountIDFromCtx(r.Context()),
		Role: domain.Role(httpx.RoleFromCtx(r.Context())),
	}
}

// HandleGet returns a profile. Accounts can read their own; admins anyone's.
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	acct, err := h.AccountService.GetProfile(r.Context(), actorFromCtx(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error fetching user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AccountResponse{
		Success: true,
		User:    toAccount(acct),
	})
}

// HandleUpdate changes a profile's full name and/or email. Empty or omitted
// fields are left untouched.
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acct, err := h.AccountService.UpdateProfile(r.Context(), actorFromCtx(r), r.PathValue("id"), req.FullName, req.Email)
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error updating profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AccountResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    toAccount(acct),
	})
}
