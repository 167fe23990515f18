package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/store"
	"github.com/staffroomhq/accounts/pkg/cryptox"
	"github.com/staffroomhq/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, s store.Store, email string, role domain.Role) domain.Account {
	t.Helper()

	hash, err := cryptox.HashPassword("Sunrise99")
	require.NoError(t, err)

	now := time.Now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		FullName:     "Seeded Account",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Accounts().Create(context.Background(), acct))
	return acct
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	owner := seedAccount(t, st, "owner@example.com", domain.RoleUser)
	other := seedAccount(t, st, "other@example.com", domain.RoleUser)
	admin := seedAccount(t, st, "admin@example.com", domain.RoleAdmin)

	t.Run("self access", func(t *testing.T) {
		got, err := svc.GetProfile(ctx, Actor{ID: owner.ID, Role: owner.Role}, owner.ID)
		require.NoError(t, err)
		require.Equal(t, owner.Email, got.Email)
	})

	t.Run("admin access to any profile", func(t *testing.T) {
		got, err := svc.GetProfile(ctx, Actor{ID: admin.ID, Role: admin.Role}, other.ID)
		require.NoError(t, err)
		require.Equal(t, other.Email, got.Email)
	})

	t.Run("cross-account access denied", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, Actor{ID: owner.ID, Role: owner.Role}, other.ID)
		require.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("missing account reads as not found even for non-owners", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, Actor{ID: owner.ID, Role: owner.Role}, idx.New().String())
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("partial updates keep untouched fields", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)
		actor := Actor{ID: acct.ID, Role: acct.Role}

		got, err := svc.UpdateProfile(ctx, actor, acct.ID, "New Name", "")
		require.NoError(t, err)
		require.Equal(t, "New Name", got.FullName)
		require.Equal(t, "owner@example.com", got.Email)

		got, err = svc.UpdateProfile(ctx, actor, acct.ID, "", "new@example.com")
		require.NoError(t, err)
		require.Equal(t, "New Name", got.FullName)
		require.Equal(t, "new@example.com", got.Email)
	})

	t.Run("email collision rejected", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)
		seedAccount(t, st, "taken@example.com", domain.RoleUser)

		_, err := svc.UpdateProfile(ctx, Actor{ID: acct.ID, Role: acct.Role}, acct.ID, "", "taken@example.com")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Email already in use", verr.Message)
	})

	t.Run("resubmitting the current email is not a collision", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

		got, err := svc.UpdateProfile(ctx, Actor{ID: acct.ID, Role: acct.Role}, acct.ID, "", "owner@example.com")
		require.NoError(t, err)
		require.Equal(t, "owner@example.com", got.Email)
	})

	t.Run("authorization checked before existence", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

		_, err := svc.UpdateProfile(ctx, Actor{ID: acct.ID, Role: acct.Role}, idx.New().String(), "X", "")
		require.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("admin may update someone else", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)
		admin := seedAccount(t, st, "admin@example.com", domain.RoleAdmin)

		got, err := svc.UpdateProfile(ctx, Actor{ID: admin.ID, Role: admin.Role}, acct.ID, "Renamed By Admin", "")
		require.NoError(t, err)
		require.Equal(t, "Renamed By Admin", got.FullName)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the stored hash", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)
		actor := Actor{ID: acct.ID, Role: acct.Role}

		err := svc.ChangePassword(ctx, actor, acct.ID, "Sunrise99", "Moonrise77", "Moonrise77")
		require.NoError(t, err)

		updated, err := st.Accounts().GetByID(ctx, acct.ID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("Moonrise77", updated.PasswordHash))
		require.ErrorIs(t, cryptox.VerifyPassword("Sunrise99", updated.PasswordHash), cryptox.ErrMismatch)
	})

	t.Run("wrong current password", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

		err := svc.ChangePassword(ctx, Actor{ID: acct.ID, Role: acct.Role}, acct.ID, "Nope12345", "Moonrise77", "Moonrise77")
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("weak replacement rejected", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

		err := svc.ChangePassword(ctx, Actor{ID: acct.ID, Role: acct.Role}, acct.ID, "Sunrise99", "weak", "weak")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Password does not meet requirements", verr.Message)
		require.NotEmpty(t, verr.Errors)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

		err := svc.ChangePassword(ctx, Actor{ID: acct.ID, Role: acct.Role}, acct.ID, "Sunrise99", "Moonrise77", "Moonrise78")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Passwords do not match", verr.Message)
	})

	t.Run("missing fields checked before anything else", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

		err := svc.ChangePassword(ctx, Actor{ID: acct.ID, Role: acct.Role}, acct.ID, "", "Moonrise77", "Moonrise77")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "All fields are required", verr.Message)
	})

	t.Run("cross-account change denied", func(t *testing.T) {
		st := newTestStore(t)
		svc := &AccountService{Store: st}
		acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)
		other := seedAccount(t, st, "other@example.com", domain.RoleUser)

		err := svc.ChangePassword(ctx, Actor{ID: acct.ID, Role: acct.Role}, other.ID, "Sunrise99", "Moonrise77", "Moonrise77")
		require.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	// 12 regular accounts plus an admin that must never appear in listings.
	for i := 0; i < 12; i++ {
		seedAccount(t, st, fmt.Sprintf("user%02d@example.com", i), domain.RoleUser)
	}
	seedAccount(t, st, "admin@example.com", domain.RoleAdmin)

	t.Run("defaults to page 1 of 10", func(t *testing.T) {
		accts, p, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, accts, 10)
		require.Equal(t, Pagination{Total: 12, Pages: 2, CurrentPage: 1, Limit: 10}, p)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		accts, p, err := svc.List(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, accts, 2)
		require.Equal(t, 2, p.CurrentPage)
	})

	t.Run("admins are filtered out", func(t *testing.T) {
		accts, p, err := svc.List(ctx, 1, 100)
		require.NoError(t, err)
		require.Len(t, accts, 12)
		require.EqualValues(t, 12, p.Total)
		for _, a := range accts {
			require.Equal(t, domain.RoleUser, a.Role)
		}
	})

	t.Run("page beyond the end is empty but well formed", func(t *testing.T) {
		accts, p, err := svc.List(ctx, 5, 10)
		require.NoError(t, err)
		require.Empty(t, accts)
		require.Equal(t, 5, p.CurrentPage)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	acct := seedAccount(t, st, "owner@example.com", domain.RoleUser)

	got, err := svc.SetStatus(ctx, acct.ID, domain.StatusInactive)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInactive, got.Status)

	got, err = svc.SetStatus(ctx, acct.ID, domain.StatusActive)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, got.Status)

	_, err = svc.SetStatus(ctx, idx.New().String(), domain.StatusActive)
	require.ErrorIs(t, err, ErrAccountNotFound)
}
