package portalsdk

import (
	"fmt"
	"time"
)

// Scopes each role carries, mirrored from the server for client-side
// pre-checks. Kept in sync with the portal's role definitions.
var roleScopes = map[string][]string{
	"user":  {"records:read", "records:write", "analytics:read"},
	"admin": {"records:read", "records:write", "analytics:read", "admin:read", "admin:write"},
}

// Session represents an authenticated portal session. The bearer token is not
// refreshable; once it expires the session methods fail with invalid_token
// and the caller logs in again.
type Session struct {
	client *SDKClient

	token     string
	expiresAt time.Time
	user      User
	scopes    map[string]bool
}

// newSession creates a session from a login response.
func newSession(client *SDKClient, loginResp *LoginResponse) *Session {
	scopes := make(map[string]bool)
	for _, scope := range roleScopes[loginResp.User.Role] {
		scopes[scope] = true
	}

	return &Session{
		client:    client,
		token:     loginResp.AccessToken,
		expiresAt: time.Now().Add(time.Duration(loginResp.ExpiresIn) * time.Second),
		user:      loginResp.User,
		scopes:    scopes,
	}
}

// User returns the account this session was created for, as of login time.
func (s *Session) User() User {
	return s.user
}

// Token exposes the raw bearer token, e.g. for handing to another client.
func (s *Session) Token() string {
	return s.token
}

// Expired reports whether the session token's lifetime has passed.
func (s *Session) Expired() bool {
	return !time.Now().Before(s.expiresAt)
}

// checkScopes validates that the session's role carries the required scopes.
// Skipped when the client was configured with CheckScopes disabled.
func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes {
		return nil
	}

	for _, scope := range required {
		if !s.scopes[scope] {
			return fmt.Errorf("session lacks required scope %q (role %q)", scope, s.user.Role)
		}
	}
	return nil
}
