package portal_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gkrp/dataportal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestInviteLifecycle(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	admin := adminSession(t, baseURL)
	client := portalsdk.NewSDKClient(baseURL)

	t.Run("full flow: mint, redeem, login", func(t *testing.T) {
		invite, err := admin.MintInvite(ctx, portalsdk.InviteMintRequest{
			Email: "alice@site.example",
			Role:  "user",
		})
		require.NoError(t, err)
		require.NotEmpty(t, invite.InviteToken)
		require.Contains(t, invite.InviteURL, "accept-invite?token=")
		require.True(t, invite.User.InvitePending)
		require.False(t, invite.User.IsActive)

		user, err := client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    invite.InviteToken,
			Username: "alice",
			Password: "Alice123!",
		})
		require.NoError(t, err)
		require.True(t, user.IsActive)
		require.False(t, user.InvitePending)

		session, err := client.Login(ctx, "alice", "Alice123!")
		require.NoError(t, err)
		require.Equal(t, "user", session.User().Role)
	})

	t.Run("invite token is single use", func(t *testing.T) {
		invite, err := admin.MintInvite(ctx, portalsdk.InviteMintRequest{
			Email: "bob@site.example",
			Role:  "user",
		})
		require.NoError(t, err)

		_, err = client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    invite.InviteToken,
			Username: "bob",
			Password: "Bob12345!",
		})
		require.NoError(t, err)

		_, err = client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    invite.InviteToken,
			Username: "bob2",
			Password: "Bob12345!",
		})
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, portalsdk.ErrorCodeInvalidInvite, apiErr.Code)
	})

	t.Run("re-inviting rotates the token", func(t *testing.T) {
		first, err := admin.MintInvite(ctx, portalsdk.InviteMintRequest{
			Email: "carol@site.example",
			Role:  "user",
		})
		require.NoError(t, err)

		second, err := admin.MintInvite(ctx, portalsdk.InviteMintRequest{
			Email: "carol@site.example",
			Role:  "admin",
		})
		require.NoError(t, err)
		require.Equal(t, first.User.ID, second.User.ID)
		require.Equal(t, "admin", second.User.Role)
		require.NotEqual(t, first.InviteToken, second.InviteToken)

		// The superseded token no longer works.
		_, err = client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    first.InviteToken,
			Username: "carol",
			Password: "Carol123!",
		})
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, portalsdk.ErrorCodeInvalidInvite, apiErr.Code)

		_, err = client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    second.InviteToken,
			Username: "carol",
			Password: "Carol123!",
		})
		require.NoError(t, err)
	})

	t.Run("taken username conflicts without burning the token", func(t *testing.T) {
		invite, err := admin.MintInvite(ctx, portalsdk.InviteMintRequest{
			Email: "dave@site.example",
			Role:  "user",
		})
		require.NoError(t, err)

		_, err = client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    invite.InviteToken,
			Username: "alice", // already taken above
			Password: "Dave1234!",
		})
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, portalsdk.ErrorCodeUsernameTaken, apiErr.Code)

		// The same token still works with a free username.
		_, err = client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    invite.InviteToken,
			Username: "dave",
			Password: "Dave1234!",
		})
		require.NoError(t, err)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		_, err := client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
			Token:    "definitely-not-a-token",
			Username: "eve",
			Password: "Eve12345!",
		})
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, portalsdk.ErrorCodeInvalidInvite, apiErr.Code)
	})
}

func TestUserAdministration(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	admin := adminSession(t, baseURL)
	client := portalsdk.NewSDKClient(baseURL)

	user := inviteAndActivate(t, baseURL, admin, "frank@site.example", "user", "frank", "Frank123!")

	t.Run("listing shows both accounts", func(t *testing.T) {
		users, err := admin.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		require.NoError(t, admin.SetUserActive(ctx, user.User().ID, false))

		_, err := client.Login(ctx, "frank", "Frank123!")
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, portalsdk.ErrorCodeAccountDisabled, apiErr.Code)

		require.NoError(t, admin.SetUserActive(ctx, user.User().ID, true))
		_, err = client.Login(ctx, "frank", "Frank123!")
		require.NoError(t, err)
	})

	t.Run("non-admin sessions are refused by the server", func(t *testing.T) {
		// Disable client-side scope checks so the server's own enforcement
		// is what gets exercised.
		rawClient := portalsdk.NewSDKClient(baseURL)
		rawClient.CheckScopes = false
		session, err := rawClient.Login(ctx, "frank", "Frank123!")
		require.NoError(t, err)

		_, err = session.ListUsers(ctx)
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		require.Equal(t, portalsdk.ErrorCodeInsufficientScope, apiErr.Code)

		_, err = session.MintInvite(ctx, portalsdk.InviteMintRequest{
			Email: "sneaky@site.example",
			Role:  "admin",
		})
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		require.Equal(t, portalsdk.ErrorCodeInsufficientScope, apiErr.Code)
	})

	t.Run("login with bad credentials is uniform", func(t *testing.T) {
		_, errWrongPass := client.Login(ctx, "frank", "not-the-password")
		_, errNoUser := client.Login(ctx, "nobody", "whatever")

		var e1, e2 *portalsdk.APIError
		require.True(t, errors.As(errWrongPass, &e1))
		require.True(t, errors.As(errNoUser, &e2))
		require.Equal(t, e1.Code, e2.Code)
		require.Equal(t, portalsdk.ErrorCodeInvalidCredentials, e1.Code)
	})
}
