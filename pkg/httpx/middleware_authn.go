package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/staffroomhq/accounts/pkg/jwtx"
	"github.com/staffroomhq/accounts/pkg/slogx"
)

// AuthnMiddleware is the access gate for protected routes: it extracts the
// bearer token, verifies it, and attaches {account id, role} to the request
// context. It trusts the token's role claim and never touches the account
// store, so a role or status change only takes effect on the next issuance.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteFailure(w, http.StatusUnauthorized, "No token provided")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteFailure(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAccountID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	return ctx
}
