package httpx

import (
	"fmt"
	"net/http"
	"strings"
)

// RequireRole runs after AuthnMiddleware and rejects callers whose role
// claim differs from required. Role checks compose with the authn gate
// rather than living inside it so self-or-admin routes can skip this and
// authorize in the handler.
func RequireRole(required string) Middleware {
	message := fmt.Sprintf("Access denied. %s role required", capitalize(required))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromCtx(r.Context()) != required {
				WriteFailure(w, http.StatusForbidden, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
