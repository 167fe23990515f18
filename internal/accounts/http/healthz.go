package http

import (
	"net/http"

	"github.com/staffroomhq/accounts/internal/accounts/store"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

// HealthHandler reports service liveness and store reachability.
type HealthHandler struct {
	Store   store.Store
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, accountsdk.HealthResponse{
			Status:  "unavailable",
			Version: h.Version,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.HealthResponse{
		Status:  "ok",
		Version: h.Version,
	})
}
