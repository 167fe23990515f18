package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

// LogoutHandler confirms the end of a session. Sessions are stateless JWTs,
// so there is nothing to revoke server-side; clients discard their token.
type LogoutHandler struct{}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
