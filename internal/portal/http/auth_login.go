package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	SessionTTL  time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange a username and password for a bearer session token. The token carries the scopes of the account's role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Failure		401		{object}	ErrorResponse	"error, error_description"
//	@Failure		403		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		case errors.Is(err, service.ErrAccountDisabled):
			writeError(w, http.StatusForbidden, "account_disabled", "Account is disabled")
		default:
			log.Error("login failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to log in")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.SessionTTL.Seconds()),
		User:        userFromDomain(user),
	})
}
