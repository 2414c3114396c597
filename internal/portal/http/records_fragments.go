package http

import (
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type FragmentsHandler struct {
	Records *service.RecordService
}

// HandleList godoc
//
//	@Summary		List Fragments Endpoint
//	@Description	List ceramic fragments, optionally filtered by a free-text search over the descriptive columns.
//	@Tags			Fragments
//	@Produce		json
//	@Param			q		query		string	false	"Free-text search"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{array}		Fragment		"fragments"
//	@Failure		401		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/fragments [get].
func (h *FragmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fragments, err := h.Records.ListFragments(ctx, r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list fragments", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list fragments")
		return
	}

	out := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		out = append(out, fragmentFromDomain(f))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Fragment Endpoint
//	@Tags		Fragments
//	@Produce	json
//	@Param		id	path		int		true	"Fragment ID"
//	@Success	200	{object}	Fragment		"fragment"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/fragments/{id} [get].
func (h *FragmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.Records.GetFragment(r.Context(), id)
	if err != nil {
		writeRecordError(w, r, err, "Failed to fetch fragment")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fragmentFromDomain(f))
}

// HandleCreate godoc
//
//	@Summary		Create Fragment Endpoint
//	@Description	Create a fragment record. The piece type is mandatory and the count defaults to one.
//	@Tags			Fragments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Fragment	true	"Fragment record"
//	@Success		201		{object}	Fragment		"created fragment"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/fragments [post].
func (h *FragmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req Fragment
	if !decodeJSON(w, r, &req) {
		return
	}
	stampEnteredBy(r, &req.RecordEnteredBy)

	f, err := h.Records.CreateFragment(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to create fragment")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, fragmentFromDomain(f))
}

// HandleUpdate godoc
//
//	@Summary	Update Fragment Endpoint
//	@Tags		Fragments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"Fragment ID"
//	@Param		request	body		Fragment	true	"Fragment record"
//	@Success	200		{object}	Fragment		"updated fragment"
//	@Failure	400		{object}	ErrorResponse	"error, error_description"
//	@Failure	404		{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/fragments/{id} [put].
func (h *FragmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req Fragment
	if !decodeJSON(w, r, &req) {
		return
	}
	req.FragmentID = id

	f, err := h.Records.UpdateFragment(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to update fragment")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fragmentFromDomain(f))
}

// HandleDelete godoc
//
//	@Summary	Delete Fragment Endpoint
//	@Tags		Fragments
//	@Param		id	path	int	true	"Fragment ID"
//	@Success	204	"deleted"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/fragments/{id} [delete].
func (h *FragmentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Records.DeleteFragment(r.Context(), id); err != nil {
		writeRecordError(w, r, err, "Failed to delete fragment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
