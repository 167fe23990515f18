package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/internal/accounts/store"
	"github.com/staffroomhq/accounts/pkg/httpx"
	"github.com/staffroomhq/accounts/pkg/jwtx"
	"github.com/staffroomhq/accounts/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	env          string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	AccountService *service.AccountService
}

func NewRouter(
	verifier jwtx.Verifier,
	env, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		env:          env,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{AuthService: r.AuthService, Env: r.env}
	loginHandler := &LoginHandler{AuthService: r.AuthService, Env: r.env}
	meHandler := &MeHandler{AuthService: r.AuthService, Env: r.env}

	// POST /signup and /login - strict rate limit by IP (credential endpoints)
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /me - lenient rate limit by account
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)

	// POST /logout - confirmation only, sessions are stateless
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(&LogoutHandler{},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	listHandler := &ListUsersHandler{AccountService: r.AccountService, Env: r.env}
	profileHandler := &ProfileHandler{AccountService: r.AccountService, Env: r.env}
	passwordHandler := &ChangePasswordHandler{AccountService: r.AccountService, Env: r.env}
	statusHandler := &StatusHandler{AccountService: r.AccountService, Env: r.env}

	// GET /users - admin listing, moderate rate limit by account
	r.Mux.Handle("GET /api/users",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// Profile reads are frequent; writes sit behind the moderate limit.
	r.Mux.Handle("GET /api/users/profile/{id}",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /api/users/profile/{id}",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PUT /api/users/change-password/{id}",
		httpx.Chain(passwordHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// Activation toggles - admin only
	r.Mux.Handle("PUT /api/users/activate/{id}",
		httpx.Chain(http.HandlerFunc(statusHandler.HandleActivate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/users/deactivate/{id}",
		httpx.Chain(http.HandlerFunc(statusHandler.HandleDeactivate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /healthz", &HealthHandler{
		Store:   r.store,
		Version: r.buildVersion,
	})
}
