package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/gkrp/dataportal/pkg/cryptox"
	"github.com/gkrp/dataportal/pkg/slogx"
)

// BootstrapService seeds the first admin account at startup. Every later
// account enters through the invite flow; this only exists because someone
// has to be able to mint the first invite.
type BootstrapService struct {
	Store store.Store
}

// SeedAdmin creates an active admin account with the given credentials when
// the user table is empty. On a populated database it is a no-op, so restarts
// with the same configuration are safe.
func (s *BootstrapService) SeedAdmin(ctx context.Context, username, password, email string) error {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidRedeem
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return nil
		}

		u := domain.User{
			Username:     &username,
			PasswordHash: &passwordHash,
			Role:         domain.RoleAdmin,
			IsActive:     true,
		}
		if email = strings.TrimSpace(email); email != "" {
			u.Email = &email
		}

		id, err := tx.Users().CreateUser(ctx, u)
		if err != nil {
			return err
		}

		log.Info("seeded initial admin account",
			slog.Int64("user_id", id),
			slog.String("username", username),
		)
		return nil
	})
}
