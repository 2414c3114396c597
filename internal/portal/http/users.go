package http

import (
	"errors"
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type UsersHandler struct {
	InviteService *service.InviteService
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	List every registered account with its invitation and activation state. Admin only.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		User			"accounts"
//	@Failure		401	{object}	ErrorResponse	"error, error_description"
//	@Failure		500	{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.InviteService.ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list users")
		return
	}

	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, userFromDomain(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetActive godoc
//
//	@Summary		User Activation Endpoint
//	@Description	Enable or disable an account. Disabled accounts keep their data but can no longer log in. Admin only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"User ID"
//	@Param			request	body		SetActiveRequest	true	"Activation request"
//	@Success		200		{object}	map[string]any	"id, is_active"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Failure		401		{object}	ErrorResponse	"error, error_description"
//	@Failure		404		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/active [put].
func (h *UsersHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req SetActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.InviteService.SetUserActive(ctx, id, req.IsActive); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "User not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to set user active flag", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to update user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "is_active": req.IsActive})
}
