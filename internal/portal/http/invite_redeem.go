package http

import (
	"errors"
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Invite Redeem Endpoint
//	@Description	Activate an invited account by presenting the invite token together with the chosen username and password. Each token is single use.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InviteRedeemRequest	true	"Redeem request"
//	@Success		200		{object}	User				"activated account"
//	@Failure		400		{object}	ErrorResponse		"error, error_description"
//	@Failure		409		{object}	ErrorResponse		"error, error_description"
//	@Failure		500		{object}	ErrorResponse		"error, error_description"
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req InviteRedeemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.InviteService.RedeemInvite(ctx, req.Token, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRedeem):
			writeError(w, http.StatusBadRequest, "invalid_request", "token, username and password are required")
		case errors.Is(err, service.ErrInviteNotFound):
			writeError(w, http.StatusBadRequest, "invalid_invite", "Invite not found or already used")
		case errors.Is(err, service.ErrInviteExpired):
			writeError(w, http.StatusBadRequest, "invite_expired", "Invite has expired")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "username_taken", "Username already taken")
		default:
			log.Error("failed to redeem invite", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to redeem invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userFromDomain(user))
}
