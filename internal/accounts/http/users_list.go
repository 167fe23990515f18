package http

import (
	"net/http"
	"strconv"

	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/pkg/accountsdk"
	"github.com/staffroomhq/accounts/pkg/httpx"
)

type ListUsersHandler struct {
	AccountService *service.AccountService
	Env            string
}

// ServeHTTP returns one page of regular accounts for the admin dashboard.
// Non-numeric paging values fall back to the defaults.
func (h *ListUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	accts, pagination, err := h.AccountService.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, r, h.Env, err, "Error fetching users")
		return
	}

	users := make([]accountsdk.Account, 0, len(accts))
	for _, a := range accts {
		users = append(users, *toAccount(a))
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ListResponse{
		Success: true,
		Users:   users,
		Pagination: accountsdk.Pagination{
			Total:       pagination.Total,
			Pages:       pagination.Pages,
			CurrentPage: pagination.CurrentPage,
			Limit:       pagination.Limit,
		},
	})
}
