package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/gkrp/dataportal/pkg/cryptox"
	"github.com/gkrp/dataportal/pkg/slogx"
)

var (
	ErrEmailRequired  = errors.New("email is required")
	ErrInvalidRole    = errors.New("invalid role")
	ErrInviteNotFound = errors.New("invite not found")
	ErrInviteExpired  = errors.New("invite has expired")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidRedeem  = errors.New("invalid invite redemption request")
)

// ComputeInviteExpiry returns the invite cutoff ttlHours from now, in UTC.
func ComputeInviteExpiry(now time.Time, ttlHours int) time.Time {
	return now.UTC().Add(time.Duration(ttlHours) * time.Hour)
}

// InviteExpired reports whether an invite expiry has passed. A missing expiry
// counts as expired so half-written rows can never be redeemed.
func InviteExpired(now time.Time, expiresAt *time.Time) bool {
	if expiresAt == nil {
		return true
	}
	return !now.UTC().Before(expiresAt.UTC())
}

// InviteService owns the invitation lifecycle: a user row moves from invited
// (token hash + expiry set, inactive) to active (credentials set, token
// burned), and can be re-invited from any state.
type InviteService struct {
	Store store.Store

	// Now is overridable for expiry tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateOrRefreshInvite mints a fresh invite token for email, creating the
// user row if it does not exist yet. An existing row has its role overwritten
// and is deactivated; only the latest token hash is stored, so any prior
// outstanding invite for that email stops working. Returns the raw token
// (shown once, never persisted) and the updated user row.
func (s *InviteService) CreateOrRefreshInvite(ctx context.Context, email, role string, ttlHours int) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.User{}, ErrEmailRequired
	}
	if !domain.ValidRole(role) {
		log.Warn("attempted to create invite with invalid role", slog.String("role", role))
		return "", domain.User{}, ErrInvalidRole
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return "", domain.User{}, err
	}
	fingerprint := cryptox.FingerprintToken(token)

	now := s.now().UTC()
	expiresAt := ComputeInviteExpiry(now, ttlHours)

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			if err := tx.Users().RefreshInvite(ctx, existing.ID, role, now, fingerprint, expiresAt); err != nil {
				return err
			}
			user, err = tx.Users().GetUserByID(ctx, existing.ID)
			return err
		case errors.Is(err, store.ErrNotFound):
			u := domain.User{
				Email:           &email,
				Role:            role,
				IsActive:        false,
				InvitedAt:       &now,
				InviteTokenHash: &fingerprint,
				InviteExpiresAt: &expiresAt,
			}
			id, err := tx.Users().CreateInvitedUser(ctx, u)
			if err != nil {
				return err
			}
			user, err = tx.Users().GetUserByID(ctx, id)
			return err
		default:
			return err
		}
	})
	if err != nil {
		log.Error("failed to upsert invite", slog.String("email", email), slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("invite minted",
		slog.Int64("user_id", user.ID),
		slog.String("role", role),
		slog.Time("expires_at", expiresAt),
	)

	return token, user, nil
}

// RedeemInvite activates the account behind rawToken, setting its username
// and password. The token is single-use: finalization is conditional on the
// stored hash still matching, so a concurrent redemption of the same token
// leaves exactly one winner.
func (s *InviteService) RedeemInvite(ctx context.Context, rawToken, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if rawToken == "" || strings.TrimSpace(username) == "" || password == "" {
		return domain.User{}, ErrInvalidRedeem
	}
	username = strings.TrimSpace(username)

	fingerprint := cryptox.FingerprintToken(rawToken)
	user, err := s.Store.Users().GetUserByInviteTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite redemption attempted with unknown token")
			return domain.User{}, ErrInviteNotFound
		}
		return domain.User{}, err
	}

	if InviteExpired(s.now(), user.InviteExpiresAt) {
		log.Warn("invite redemption attempted with expired token", slog.Int64("user_id", user.ID))
		return domain.User{}, ErrInviteExpired
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().FinalizeInvite(ctx, user.ID, fingerprint, username, passwordHash)
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		// The token was burned between lookup and finalize.
		log.Warn("invite token already redeemed", slog.Int64("user_id", user.ID))
		return domain.User{}, ErrInviteNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		log.Warn("invite redemption attempted with taken username",
			slog.String("username", username),
			slog.Int64("user_id", user.ID),
		)
		return domain.User{}, ErrUsernameTaken
	case err != nil:
		return domain.User{}, err
	}

	activated, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user activated via invite",
		slog.Int64("user_id", activated.ID),
		slog.String("username", username),
	)

	return activated, nil
}

// SetUserActive flips the active flag without touching invite fields, so a
// pending invite on a deactivated row stays redeemable once reactivated.
func (s *InviteService) SetUserActive(ctx context.Context, id int64, active bool) error {
	err := s.Store.Users().SetActive(ctx, id, active)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// ListUsers returns all users ordered by id, for the admin user table.
func (s *InviteService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
