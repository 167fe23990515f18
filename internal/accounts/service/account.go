package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/store"
	"github.com/staffroomhq/accounts/pkg/cryptox"
	"github.com/staffroomhq/accounts/pkg/slogx"
	"github.com/staffroomhq/accounts/pkg/validate"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   string
	Role domain.Role
}

func (a Actor) isAdmin() bool { return a.Role == domain.RoleAdmin }

// canAccess reports whether the actor may operate on the given account.
// Accounts can operate on themselves; admins can operate on anyone.
func (a Actor) canAccess(accountID string) bool {
	return a.ID == accountID || a.isAdmin()
}

type AccountService struct {
	Store store.Store
}

// Pagination describes one page of an admin listing.
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int64 `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// GetProfile fetches an account on behalf of the actor. Existence is checked
// before authorization, so an admin probing a bad id sees a not-found rather
// than a denial.
func (s *AccountService) GetProfile(ctx context.Context, actor Actor, accountID string) (domain.Account, error) {
	acct, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	if !actor.canAccess(accountID) {
		return domain.Account{}, ErrNotAuthorized
	}

	return acct, nil
}

// UpdateProfile changes an account's full name and/or email. Empty fields are
// left untouched. A changed email must not collide with another account.
func (s *AccountService) UpdateProfile(ctx context.Context, actor Actor, accountID, fullName, email string) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if !actor.canAccess(accountID) {
		return domain.Account{}, ErrNotAuthorized
	}

	acct, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if email != "" && email != acct.Email {
		if _, err := s.Store.Accounts().GetByEmail(ctx, email); err == nil {
			return domain.Account{}, validationErr("Email already in use")
		} else if !errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, err
		}
	}

	if fullName != "" {
		acct.FullName = fullName
	}
	if email != "" {
		acct.Email = email
	}

	if err := s.Store.Accounts().UpdateProfile(ctx, accountID, acct.FullName, acct.Email); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, validationErr("Email already in use")
		}
		return domain.Account{}, err
	}

	l.Info("profile updated", slog.String("account_id", accountID))

	return acct, nil
}

// ChangePassword rotates an account's password after verifying the current
// one. The new password goes through the same strength policy as signup.
func (s *AccountService) ChangePassword(ctx context.Context, actor Actor, accountID, currentPassword, newPassword, confirmPassword string) error {
	l := slogx.FromContext(ctx)

	if !actor.canAccess(accountID) {
		return ErrNotAuthorized
	}

	if currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return validationErr("All fields are required")
	}

	acct, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, acct.PasswordHash); err != nil {
		return ErrWrongPassword
	}

	if result := validate.Password(newPassword); !result.IsValid {
		return validationErr("Password does not meet requirements", result.Errors...)
	}

	if newPassword != confirmPassword {
		return validationErr("Passwords do not match")
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Accounts().UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return err
	}

	l.Info("password changed", slog.String("account_id", accountID))

	return nil
}

// List returns one page of regular accounts, newest first. Admin accounts
// are excluded from the listing. Out-of-range or missing paging values fall
// back to the defaults.
func (s *AccountService) List(ctx context.Context, page, limit int) ([]domain.Account, Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	offset := (page - 1) * limit

	accts, err := s.Store.Accounts().List(ctx, domain.RoleUser, int64(offset), int64(limit))
	if err != nil {
		return nil, Pagination{}, err
	}

	total, err := s.Store.Accounts().Count(ctx, domain.RoleUser)
	if err != nil {
		return nil, Pagination{}, err
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return accts, Pagination{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

// SetStatus activates or deactivates an account and returns the updated
// record. Deactivation takes effect at the next login attempt; sessions
// already issued keep working until they expire.
func (s *AccountService) SetStatus(ctx context.Context, accountID string, status domain.Status) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if err := s.Store.Accounts().UpdateStatus(ctx, accountID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	acct, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}

	l.Info("account status changed",
		slog.String("account_id", accountID),
		slog.String("status", string(status)),
	)

	return acct, nil
}
