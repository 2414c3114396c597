package portalsdk

import (
	"context"
	"fmt"
	"net/http"
)

// MintInvite creates or refreshes an invitation for an email address.
// Requires: admin:write scope
func (s *Session) MintInvite(ctx context.Context, req InviteMintRequest) (*InviteMintResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/mint", body, "admin:write")
	if err != nil {
		return nil, err
	}

	var invite InviteMintResponse
	if err := decodeJSON(resp, &invite, http.StatusOK); err != nil {
		return nil, err
	}

	return &invite, nil
}

// ListUsers returns every account, pending invites included.
// Requires: admin:read scope
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users", nil, "admin:read")
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}

	return users, nil
}

// SetUserActive enables or disables an account.
// Requires: admin:write scope
func (s *Session) SetUserActive(ctx context.Context, userID int64, active bool) error {
	body, err := jsonBody(SetActiveRequest{IsActive: active})
	if err != nil {
		return err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut,
		fmt.Sprintf("/v1/users/%d/active", userID), body, "admin:write")
	if err != nil {
		return err
	}

	var ack struct {
		ID       int64 `json:"id"`
		IsActive bool  `json:"is_active"`
	}
	return decodeJSON(resp, &ack, http.StatusOK)
}
