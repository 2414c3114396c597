package http

import (
	"errors"
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type LayersHandler struct {
	Records *service.RecordService
}

// HandleList godoc
//
//	@Summary		List Layers Endpoint
//	@Description	List excavation layers, optionally filtered by a free-text search over the descriptive columns.
//	@Tags			Layers
//	@Produce		json
//	@Param			q		query		string	false	"Free-text search"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{array}		Layer			"layers"
//	@Failure		401		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/layers [get].
func (h *LayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layers, err := h.Records.ListLayers(ctx, r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list layers", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list layers")
		return
	}

	out := make([]Layer, 0, len(layers))
	for _, l := range layers {
		out = append(out, layerFromDomain(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Layer Endpoint
//	@Tags		Layers
//	@Produce	json
//	@Param		id	path		int		true	"Layer ID"
//	@Success	200	{object}	Layer			"layer"
//	@Failure	404	{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/layers/{id} [get].
func (h *LayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	l, err := h.Records.GetLayer(r.Context(), id)
	if err != nil {
		writeRecordError(w, r, err, "Failed to fetch layer")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, layerFromDomain(l))
}

// HandleCreate godoc
//
//	@Summary		Create Layer Endpoint
//	@Description	Create a layer record. The entry timestamp is stamped server-side.
//	@Tags			Layers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Layer	true	"Layer record"
//	@Success		201		{object}	Layer			"created layer"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/layers [post].
func (h *LayersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req Layer
	if !decodeJSON(w, r, &req) {
		return
	}
	stampEnteredBy(r, &req.RecordEnteredBy)

	l, err := h.Records.CreateLayer(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to create layer")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, layerFromDomain(l))
}

// HandleUpdate godoc
//
//	@Summary	Update Layer Endpoint
//	@Tags		Layers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int		true	"Layer ID"
//	@Param		request	body		Layer	true	"Layer record"
//	@Success	200		{object}	Layer			"updated layer"
//	@Failure	400		{object}	ErrorResponse	"error, error_description"
//	@Failure	404		{object}	ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/layers/{id} [put].
func (h *LayersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req Layer
	if !decodeJSON(w, r, &req) {
		return
	}
	req.LayerID = id

	l, err := h.Records.UpdateLayer(r.Context(), req.toDomain())
	if err != nil {
		writeRecordError(w, r, err, "Failed to update layer")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, layerFromDomain(l))
}

// HandleDelete godoc
//
//	@Summary		Delete Layer Endpoint
//	@Description	Delete a layer. Fragments that referenced it are kept and detached.
//	@Tags			Layers
//	@Param			id	path	int	true	"Layer ID"
//	@Success		204	"deleted"
//	@Failure		404	{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/layers/{id} [delete].
func (h *LayersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Records.DeleteLayer(r.Context(), id); err != nil {
		writeRecordError(w, r, err, "Failed to delete layer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeRecordError maps the record service errors shared by every entity
// handler onto HTTP responses.
func writeRecordError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Record not found")
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "invalid_value", verr.Error())
	default:
		slogx.FromContext(r.Context()).Error(fallback, "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}
