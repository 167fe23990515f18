package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/store"
	"github.com/staffroomhq/accounts/pkg/cryptox"
	"github.com/staffroomhq/accounts/pkg/idx"
	"github.com/staffroomhq/accounts/pkg/jwtx"
	"github.com/staffroomhq/accounts/pkg/slogx"
	"github.com/staffroomhq/accounts/pkg/validate"
)

type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

type SignupInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// Signup registers a new account and issues a session token for it.
//
// Preconditions are checked in a fixed order so each rejection reports a
// single, specific reason: required fields, email shape, duplicate email,
// password strength, then password confirmation.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, domain.Account, error) {
	l := slogx.FromContext(ctx)

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)

	if in.FullName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return "", domain.Account{}, validationErr("All fields are required")
	}

	if !validate.Email(in.Email) {
		return "", domain.Account{}, validationErr("Please provide a valid email")
	}

	// Unknown roles silently fall back to the default rather than erroring.
	role := domain.RoleUser
	if domain.ValidRole(domain.Role(in.Role)) {
		role = domain.Role(in.Role)
	}

	if _, err := s.Store.Accounts().GetByEmail(ctx, in.Email); err == nil {
		return "", domain.Account{}, validationErr("Email already in use")
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", domain.Account{}, err
	}

	if result := validate.Password(in.Password); !result.IsValid {
		return "", domain.Account{}, validationErr("Password does not meet requirements", result.Errors...)
	}

	if in.Password != in.ConfirmPassword {
		return "", domain.Account{}, validationErr("Passwords do not match")
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return "", domain.Account{}, err
	}

	now := time.Now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().Create(ctx, acct); err != nil {
		// A concurrent signup can win the race between the lookup above
		// and this insert; report it the same way as the lookup would.
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", domain.Account{}, validationErr("Email already in use")
		}
		return "", domain.Account{}, err
	}

	token, err := s.issueToken(acct)
	if err != nil {
		return "", domain.Account{}, err
	}

	l.Info("account registered",
		slog.String("account_id", acct.ID),
		slog.String("role", string(acct.Role)),
	)

	return token, acct, nil
}

// Login verifies credentials and issues a session token. Lookup misses and
// password mismatches both surface as ErrInvalidCredentials so a caller
// cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Account, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.Account{}, validationErr("Email and password are required")
	}

	acct, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Account{}, ErrInvalidCredentials
		}
		return "", domain.Account{}, err
	}

	if err := cryptox.VerifyPassword(password, acct.PasswordHash); err != nil {
		l.Info("login password verification failed", slog.String("account_id", acct.ID))
		return "", domain.Account{}, ErrInvalidCredentials
	}

	if acct.Status != domain.StatusActive {
		return "", domain.Account{}, ErrAccountInactive
	}

	if err := s.Store.Accounts().UpdateLastLogin(ctx, acct.ID); err != nil {
		return "", domain.Account{}, err
	}
	now := time.Now().UTC()
	acct.LastLogin = &now

	token, err := s.issueToken(acct)
	if err != nil {
		return "", domain.Account{}, err
	}

	l.Info("login successful", slog.String("account_id", acct.ID))

	return token, acct, nil
}

// CurrentAccount resolves the account behind an authenticated session.
func (s *AuthService) CurrentAccount(ctx context.Context, accountID string) (domain.Account, error) {
	acct, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return acct, nil
}

func (s *AuthService) issueToken(acct domain.Account) (string, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(acct.ID, string(acct.Role), s.Issuer, ttl, time.Now())
	return s.Signer.Sign(claims)
}
