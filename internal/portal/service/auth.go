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
	"github.com/gkrp/dataportal/pkg/jwtx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// Scopes granted per role. Admins get the user scopes plus admin ones.
var roleScopes = map[string][]string{
	domain.RoleUser:  {"records:read", "records:write", "analytics:read"},
	domain.RoleAdmin: {"records:read", "records:write", "analytics:read", "admin:read", "admin:write"},
}

// ScopesForRole returns the scope list a role carries. Unknown roles get none.
func ScopesForRole(role string) []string {
	return roleScopes[role]
}

// AuthService handles credential login and session token issuance. The acting
// identity then rides the request context via the verified claims; there is
// no server-side session store.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer

	Issuer     string
	Audience   []string
	SessionTTL time.Duration

	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login verifies username+password and returns a signed session token plus
// the user row. Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown username", slog.String("username", username))
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if user.PasswordHash == nil {
		// Invited but never activated.
		return "", domain.User{}, ErrInvalidCredentials
	}
	if err := cryptox.VerifyPassword(password, *user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login failed", slog.Int64("user_id", user.ID))
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if !user.IsActive {
		log.Warn("login attempted on disabled account", slog.Int64("user_id", user.ID))
		return "", domain.User{}, ErrAccountDisabled
	}

	now := s.now().UTC()
	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", domain.User{}, err
	}
	user.LastLoginAt = &now

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		formatUserID(user.ID),
		ScopesForRole(user.Role),
		user.Role,
		username,
		ttl,
		s.Issuer,
		s.Audience,
		now,
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID), slog.String("role", user.Role))
	return token, user, nil
}
