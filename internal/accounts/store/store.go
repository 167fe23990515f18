package store

import (
	"context"
	"errors"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this. The accounts repo hangs off a method rather than being the
// interface itself so further collections can be added without touching
// callers.
type Store interface {
	Accounts() Accounts

	// ApplyMigrations brings the schema (or indexes, for document stores)
	// up to date. Called once at startup.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Accounts is the persistence contract the workflows require: lookups by
// email and id, create, and field-level updates. Email uniqueness is enforced
// here, at the store boundary.
type Accounts interface {
	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail is used during login and duplicate-email checks.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// Create inserts a new account (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is already taken.
	Create(ctx context.Context, a domain.Account) error

	// UpdateProfile sets full name and email and bumps updated_at.
	// Returns ErrAlreadyExists when the new email collides.
	UpdateProfile(ctx context.Context, id, fullName, email string) error

	// UpdatePasswordHash sets the password hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id, newHash string) error

	// UpdateStatus flips an account between active and inactive.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, id string) error

	// List returns accounts with the given role, newest first.
	List(ctx context.Context, role domain.Role, offset, limit int64) ([]domain.Account, error)

	// Count returns the number of accounts with the given role.
	Count(ctx context.Context, role domain.Role) (int64, error)
}
