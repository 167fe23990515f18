package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/staffroomhq/accounts/internal/accounts/http"
	"github.com/staffroomhq/accounts/internal/accounts/service"
	"github.com/staffroomhq/accounts/internal/accounts/store"
	"github.com/staffroomhq/accounts/internal/accounts/store/drivers/mongo"
	"github.com/staffroomhq/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/staffroomhq/accounts/pkg/cryptox"
	"github.com/staffroomhq/accounts/pkg/jwtx"
	"github.com/staffroomhq/accounts/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	// devSecret keeps local development working without any configuration.
	// Production refuses to start without a real secret.
	devSecret = "dev-secret-change-me"
)

// Application encapsulates the accounts service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	authService    *service.AuthService
	accountService *service.AccountService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initTokens(); err != nil {
		return nil, err
	}
	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("accounts service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initTokens sets up the HS256 signer and verifier for session tokens.
func (app *Application) initTokens() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		if app.cfg.Env == "production" {
			return fmt.Errorf("ACCOUNTS_JWT_SECRET must be set in production")
		}
		app.logger.Warn("ACCOUNTS_JWT_SECRET not set, using development fallback")
		secret = devSecret
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256([]byte(secret), app.cfg.Issuer)
	return nil
}

// initStore initializes the configured backing store and applies migrations.
func (app *Application) initStore() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.StoreDriver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	case "mongo":
		if app.cfg.MongoURI == "" {
			return fmt.Errorf("ACCOUNTS_MONGO_URI must be set when ACCOUNTS_STORE_DRIVER is mongo")
		}
		db, err = mongo.NewStore(context.Background(), app.cfg.MongoURI, app.cfg.MongoDatabase)
	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply store migrations: %w", err)
	}

	app.logger.Info("store ready", "driver", app.cfg.StoreDriver)
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.TokenTTL,
	}
	app.accountService = &service.AccountService{Store: app.db}
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(app.verifier, app.cfg.Env, BuildVersion, app.db, app.logger)
	app.router.AuthService = app.authService
	app.router.AccountService = app.accountService
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}

// Router exposes the fully wired HTTP handler, mainly for tests that mount
// the application inside an httptest server.
func (app *Application) Router() http.Handler {
	return app.router
}
