package http

import (
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type FindsHandler struct {
	Records *service.RecordService
}

// HandleList godoc
//
//	@Summary		List Finds Endpoint
//	@Description	List special finds, optionally filtered by a free-text search over the descriptive columns.
//	@Tags			Finds
//	@Produce		json
//	@Param			q		query		string	false	"Free-text search"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{array}		Find			"finds"
//	@Failure		401		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/finds [get].
func (h *FindsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	finds, err := h.Records.ListFinds(ctx, r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list finds", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list finds")
		return
	}

	out := make([]Find, 0, len(finds))
	for _, f := range finds {
		out = append(out, findFromDomain(f))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Find Endpoint
//	@Tags		Finds
//	@Produce	json
//	@Param		id	path		int		true	"Find ID"
//	@Success	200	{object}	Find			"find"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/finds/{id} [get].
func (h *FindsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.Records.GetFind(r.Context(), id)
	if err != nil {
		writeRecordError(w, r, err, "Failed to fetch find")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, findFromDomain(f))
}

// HandleCreate godoc
//
//	@Summary		Create Find Endpoint
//	@Description	Create a special find. A find always belongs to a layer and may reference a fragment and an ornament.
//	@Tags			Finds
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Find	true	"Find record"
//	@Success		201		{object}	Find			"created find"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/finds [post].
func (h *FindsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req Find
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.LayerID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "layerid is required")
		return
	}
	stampEnteredBy(r, &req.RecordEnteredBy)

	f, err := h.Records.CreateFind(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to create find")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, findFromDomain(f))
}

// HandleUpdate godoc
//
//	@Summary	Update Find Endpoint
//	@Tags		Finds
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int		true	"Find ID"
//	@Param		request	body		Find	true	"Find record"
//	@Success	200		{object}	Find			"updated find"
//	@Failure	400		{object}	ErrorResponse	"error, error_description"
//	@Failure	404		{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/finds/{id} [put].
func (h *FindsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req Find
	if !decodeJSON(w, r, &req) {
		return
	}
	req.FindID = id

	f, err := h.Records.UpdateFind(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to update find")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, findFromDomain(f))
}

// HandleDelete godoc
//
//	@Summary	Delete Find Endpoint
//	@Tags		Finds
//	@Param		id	path	int	true	"Find ID"
//	@Success	204	"deleted"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/finds/{id} [delete].
func (h *FindsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Records.DeleteFind(r.Context(), id); err != nil {
		writeRecordError(w, r, err, "Failed to delete find")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
