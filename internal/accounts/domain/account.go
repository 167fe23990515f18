package domain

import "time"

// Role gates access to the admin surface. There are exactly two.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether r is one of the allowed enum values.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// Status marks whether an account may log in. Accounts are never hard-deleted;
// admins deactivate them instead.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Account is the identity record. PasswordHash is the argon2id digest and
// must never appear in any externally-observable representation.
type Account struct {
	ID           string
	FullName     string
	Email        string // unique, enforced at the store boundary
	PasswordHash string
	Role         Role
	Status       Status
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
