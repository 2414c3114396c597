package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

// DefaultInviteTTLHours matches the original portal's 72 hour invite window.
const DefaultInviteTTLHours = 72

type InviteMintHandler struct {
	InviteService *service.InviteService

	// BaseURL is the public portal address used to build invite links.
	BaseURL  string
	TTLHours int
}

// ServeHTTP godoc
//
//	@Summary		Invite Mint Endpoint
//	@Description	Create or refresh an invitation for an email address and role. Re-inviting rotates the token and deactivates any existing account. Admin only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InviteMintRequest	true	"Invite request"
//	@Success		200		{object}	InviteMintResponse	"invite_url, token, expires_at"
//	@Failure		400		{object}	ErrorResponse		"error, error_description"
//	@Failure		401		{object}	ErrorResponse		"error, error_description"
//	@Failure		500		{object}	ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/mint [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req InviteMintRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ttl := req.TTLHours
	if ttl <= 0 {
		ttl = h.TTLHours
	}
	if ttl <= 0 {
		ttl = DefaultInviteTTLHours
	}

	token, user, err := h.InviteService.CreateOrRefreshInvite(ctx, req.Email, req.Role, ttl)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "email is required")
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_request", "role must be admin or user")
		default:
			log.Error("failed to mint invite", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create invite")
		}
		return
	}

	resp := InviteMintResponse{
		InviteToken: token,
		InviteURL:   fmt.Sprintf("%s/accept-invite?token=%s", h.BaseURL, url.QueryEscape(token)),
		User:        userFromDomain(user),
	}
	if user.InviteExpiresAt != nil {
		resp.ExpiresAt = *user.InviteExpiresAt
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
