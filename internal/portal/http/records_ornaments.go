package http

import (
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type OrnamentsHandler struct {
	Records *service.RecordService
}

// HandleList godoc
//
//	@Summary		List Ornaments Endpoint
//	@Description	List ornament records, optionally filtered by a free-text search over the descriptive columns.
//	@Tags			Ornaments
//	@Produce		json
//	@Param			q		query		string	false	"Free-text search"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{array}		Ornament		"ornaments"
//	@Failure		401		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/ornaments [get].
func (h *OrnamentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ornaments, err := h.Records.ListOrnaments(ctx, r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list ornaments", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list ornaments")
		return
	}

	out := make([]Ornament, 0, len(ornaments))
	for _, o := range ornaments {
		out = append(out, ornamentFromDomain(o))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Ornament Endpoint
//	@Tags		Ornaments
//	@Produce	json
//	@Param		id	path		int		true	"Ornament ID"
//	@Success	200	{object}	Ornament		"ornament"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/ornaments/{id} [get].
func (h *OrnamentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	o, err := h.Records.GetOrnament(r.Context(), id)
	if err != nil {
		writeRecordError(w, r, err, "Failed to fetch ornament")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ornamentFromDomain(o))
}

// HandleCreate godoc
//
//	@Summary		Create Ornament Endpoint
//	@Description	Create an ornament record. Each band is validated against its fixed value set.
//	@Tags			Ornaments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Ornament	true	"Ornament record"
//	@Success		201		{object}	Ornament		"created ornament"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/ornaments [post].
func (h *OrnamentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req Ornament
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.Records.CreateOrnament(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to create ornament")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, ornamentFromDomain(o))
}

// HandleUpdate godoc
//
//	@Summary	Update Ornament Endpoint
//	@Tags		Ornaments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"Ornament ID"
//	@Param		request	body		Ornament	true	"Ornament record"
//	@Success	200		{object}	Ornament		"updated ornament"
//	@Failure	400		{object}	ErrorResponse	"error, error_description"
//	@Failure	404		{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/ornaments/{id} [put].
func (h *OrnamentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req Ornament
	if !decodeJSON(w, r, &req) {
		return
	}
	req.OrnamentID = id

	o, err := h.Records.UpdateOrnament(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to update ornament")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ornamentFromDomain(o))
}

// HandleDelete godoc
//
//	@Summary	Delete Ornament Endpoint
//	@Tags		Ornaments
//	@Param		id	path	int	true	"Ornament ID"
//	@Success	204	"deleted"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/ornaments/{id} [delete].
func (h *OrnamentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Records.DeleteOrnament(r.Context(), id); err != nil {
		writeRecordError(w, r, err, "Failed to delete ornament")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
