/*
Package portalsdk provides a client SDK for the excavation data portal API.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: unauthenticated operations (health, invite redemption) and login
  - Session: authenticated operations carrying the bearer session token

Create an SDKClient to interact with public endpoints and log in:

	client := portalsdk.NewSDKClient("https://portal.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Redeem an invite to activate an account
	user, err := client.RedeemInvite(ctx, portalsdk.InviteRedeemRequest{
		Token:    inviteToken,
		Username: "alice",
		Password: "a strong password",
	})

	// Log in to create a session
	session, err := client.Login(ctx, "alice", "a strong password")

Use the Session for everything behind authentication:

	// Mint an invite (requires admin:write scope)
	invite, err := session.MintInvite(ctx, portalsdk.InviteMintRequest{
		Email: "bob@example.com",
		Role:  "user",
	})

	// Record CRUD (requires records:read / records:write scopes)
	layer, err := session.CreateLayer(ctx, portalsdk.Layer{Site: ptr("Провадия")})

	// Analytics (requires analytics:read scope)
	report, err := session.GetReport(ctx, "q1", portalsdk.AnalyticsParams{GroupBy: "f_piecetype"})

Session tokens are not refreshable; when the token expires the session methods
return an APIError with code "invalid_token" and the caller logs in again.

# Error Handling

API failures surface as *APIError carrying the HTTP status and the server's
error code and description:

	_, err := session.GetLayer(ctx, 42)
	var apiErr *portalsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// handle missing record
	}
*/
package portalsdk
