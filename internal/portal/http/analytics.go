package http

import (
	"errors"
	"net/http"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/slogx"
)

type AnalyticsHandler struct {
	Reports *service.ReportService
}

func queryID(w http.ResponseWriter, r *http.Request) (domain.QueryID, bool) {
	id := domain.QueryID(r.URL.Query().Get("query_id"))
	if !id.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_request", "query_id must be q1, q2 or finds")
		return "", false
	}
	return id, true
}

func (h *AnalyticsHandler) writeAnalyticsError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrUnknownQuery) {
		writeError(w, http.StatusBadRequest, "invalid_request", "Unknown query_id")
		return
	}
	slogx.FromContext(r.Context()).Error("analytics query failed", "err", err)
	writeError(w, http.StatusInternalServerError, "server_error", "Failed to run query")
}

// HandleData godoc
//
//	@Summary		Analytics Data Endpoint
//	@Description	Run one of the fixed join queries (q1, q2, finds) with the whitelisted filters and return a paginated table page.
//	@Tags			Analytics
//	@Produce		json
//	@Param			query_id	query		string	true	"Query shape: q1, q2 or finds"
//	@Param			site		query		string	false	"Substring match on layer site"
//	@Param			sector		query		string	false	"Substring match on layer sector"
//	@Param			square		query		string	false	"Substring match on layer square"
//	@Param			date_from	query		string	false	"Lower bound on entry date (RFC 3339 or YYYY-MM-DD)"
//	@Param			date_to		query		string	false	"Upper bound on entry date"
//	@Param			q			query		string	false	"Free text across the shape's text columns"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	AnalyticsResponse	"items, total, columns"
//	@Failure		400			{object}	ErrorResponse		"error, error_description"
//	@Failure		401			{object}	ErrorResponse		"error, error_description"
//	@Failure		500			{object}	ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/analytics/data [get].
func (h *AnalyticsHandler) HandleData(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	res, err := h.Reports.Query(r.Context(), id, filterFromQuery(r), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		h.writeAnalyticsError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AnalyticsResponse{
		Items:   res.Items,
		Total:   res.Total,
		Columns: res.Columns,
	})
}

// HandleReport godoc
//
//	@Summary		Analytics Report Endpoint
//	@Description	Run a query shape and return the table page together with the grouped histogram and any image links found in the rows.
//	@Tags			Analytics
//	@Produce		json
//	@Param			query_id	query		string	true	"Query shape: q1, q2 or finds"
//	@Param			group_by	query		string	false	"Column to group the histogram by"
//	@Param			top_n		query		int		false	"Number of histogram buckets to keep"
//	@Success		200			{object}	ReportResponse	"items, total, columns, chart_labels, chart_counts, image_urls"
//	@Failure		400			{object}	ErrorResponse	"error, error_description"
//	@Failure		401			{object}	ErrorResponse	"error, error_description"
//	@Failure		500			{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/analytics/report [get].
func (h *AnalyticsHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	report, err := h.Reports.Fetch(r.Context(), id, filterFromQuery(r),
		r.URL.Query().Get("group_by"), queryInt(r, "top_n"))
	if err != nil {
		h.writeAnalyticsError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ReportResponse{
		Items:       report.Items,
		Total:       report.Total,
		Columns:     report.Columns,
		ChartLabels: report.ChartLabels,
		ChartCounts: report.ChartCounts,
		ImageURLs:   report.ImageURLs,
	})
}

// HandleCSV godoc
//
//	@Summary		Analytics CSV Export Endpoint
//	@Description	Stream the filtered result set of a query shape as a CSV download.
//	@Tags			Analytics
//	@Produce		text/csv
//	@Param			query_id	query		string	true	"Query shape: q1, q2 or finds"
//	@Success		200			{string}	string			"CSV document"
//	@Failure		400			{object}	ErrorResponse	"error, error_description"
//	@Failure		401			{object}	ErrorResponse	"error, error_description"
//	@Failure		500			{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/analytics/data.csv [get].
func (h *AnalyticsHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	report, err := h.Reports.Fetch(r.Context(), id, filterFromQuery(r), "", 0)
	if err != nil {
		h.writeAnalyticsError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="analytics.csv"`)
	if err := service.WriteCSV(w, report.Columns, report.Items); err != nil {
		slogx.FromContext(r.Context()).Error("csv export failed", "err", err)
	}
}

// HandleChart godoc
//
//	@Summary		Analytics Chart Endpoint
//	@Description	Build the bar-chart figure document for a query shape grouped by the given column.
//	@Tags			Analytics
//	@Produce		json
//	@Param			query_id	query		string	true	"Query shape: q1, q2 or finds"
//	@Param			group_by	query		string	true	"Column to group the histogram by"
//	@Param			top_n		query		int		false	"Number of histogram buckets to keep"
//	@Success		200			{object}	service.ChartFigure	"data, layout"
//	@Failure		400			{object}	ErrorResponse	"error, error_description"
//	@Failure		401			{object}	ErrorResponse	"error, error_description"
//	@Failure		500			{object}	ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/analytics/chart.json [get].
func (h *AnalyticsHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	groupBy := r.URL.Query().Get("group_by")
	if groupBy == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "group_by is required")
		return
	}

	report, err := h.Reports.Fetch(r.Context(), id, filterFromQuery(r), groupBy, queryInt(r, "top_n"))
	if err != nil {
		h.writeAnalyticsError(w, r, err)
		return
	}

	figure := service.BarChartFigure(groupBy, report.ChartLabels, report.ChartCounts)
	httpx.WriteJSON(w, http.StatusOK, figure)
}
