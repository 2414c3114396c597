package service

import (
	"context"
	"testing"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestScopesForRole(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"records:read", "records:write", "analytics:read"},
		ScopesForRole(domain.RoleUser))
	require.Contains(t, ScopesForRole(domain.RoleAdmin), "admin:write")
	require.Empty(t, ScopesForRole("stranger"))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	signer := jwtx.NewHS256([]byte("test-secret"), "portal-test", []string{"portal-test"})
	auth := &AuthService{
		Store:      st,
		Signer:     signer,
		Issuer:     "portal-test",
		Audience:   []string{"portal-test"},
		SessionTTL: time.Hour,
	}
	invites := &InviteService{Store: st}

	// Activate one admin account through the invite flow.
	token, _, err := invites.CreateOrRefreshInvite(ctx, "admin@site.example", domain.RoleAdmin, 72)
	require.NoError(t, err)
	_, err = invites.RedeemInvite(ctx, token, "admin", "a strong password")
	require.NoError(t, err)

	t.Run("issues a session token on valid credentials", func(t *testing.T) {
		session, user, err := auth.Login(ctx, "admin", "a strong password")
		require.NoError(t, err)
		require.NotNil(t, user.LastLoginAt)

		claims, err := signer.Verify(session)
		require.NoError(t, err)
		require.Equal(t, formatUserID(user.ID), claims.Subject)
		require.Equal(t, domain.RoleAdmin, claims.Role)
		require.Equal(t, "admin", claims.Username)
		require.Contains(t, claims.Scopes, "admin:write")
	})

	t.Run("wrong password and unknown user look identical", func(t *testing.T) {
		_, _, errWrong := auth.Login(ctx, "admin", "not the password")
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)

		_, _, errUnknown := auth.Login(ctx, "nobody", "whatever")
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	})

	t.Run("blank input is rejected", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "", "pw")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.Login(ctx, "admin", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("pending invite cannot log in", func(t *testing.T) {
		_, _, err := invites.CreateOrRefreshInvite(ctx, "pending@site.example", domain.RoleUser, 72)
		require.NoError(t, err)

		// No username or password exists yet, so any guess fails.
		_, _, err = auth.Login(ctx, "pending", "a strong password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account is refused after password check", func(t *testing.T) {
		tok, u, err := invites.CreateOrRefreshInvite(ctx, "off@site.example", domain.RoleUser, 72)
		require.NoError(t, err)
		_, err = invites.RedeemInvite(ctx, tok, "off", "a strong password")
		require.NoError(t, err)

		require.NoError(t, invites.SetUserActive(ctx, u.ID, false))

		_, _, err = auth.Login(ctx, "off", "a strong password")
		require.ErrorIs(t, err, ErrAccountDisabled)

		// Wrong password on a disabled account still reads as bad credentials.
		_, _, err = auth.Login(ctx, "off", "not the password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
