package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

// StatusHandler flips accounts between active and inactive. Both routes sit
// behind the admin gate; deactivation bites at the next login, not on
// sessions already in flight.
type StatusHandler struct {
	AccountService *service.AccountService
	Env            string
}

func (h *StatusHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.StatusActive, "User activated successfully", "Error activating user")
}

func (h *StatusHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.StatusInactive, "User deactivated successfully", "Error deactivating user")
}

func (h *StatusHandler) setStatus(w http.ResponseWriter, r *http.Request, status domain.Status, message, fallback string) {
	acct, err := h.AccountService.SetStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		writeServiceError(w, r, h.Env, err, fallback)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AccountResponse{
		Success: true,
		Message: message,
		User:    toAccount(acct),
	})
}
