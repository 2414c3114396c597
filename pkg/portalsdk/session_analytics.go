package portalsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// AnalyticsParams carries the whitelisted filters plus the table/chart knobs.
// Zero values are omitted from the request.
type AnalyticsParams struct {
	Site   string
	Sector string
	Square string

	DateFrom *time.Time
	DateTo   *time.Time

	// FreeText matches across the query shape's text columns.
	FreeText string

	GroupBy string
	TopN    int

	Limit  int
	Offset int
}

func (p AnalyticsParams) query(queryID string) string {
	q := url.Values{}
	q.Set("query_id", queryID)
	if p.Site != "" {
		q.Set("site", p.Site)
	}
	if p.Sector != "" {
		q.Set("sector", p.Sector)
	}
	if p.Square != "" {
		q.Set("square", p.Square)
	}
	if p.DateFrom != nil {
		q.Set("date_from", p.DateFrom.UTC().Format(time.RFC3339))
	}
	if p.DateTo != nil {
		q.Set("date_to", p.DateTo.UTC().Format(time.RFC3339))
	}
	if p.FreeText != "" {
		q.Set("q", p.FreeText)
	}
	if p.GroupBy != "" {
		q.Set("group_by", p.GroupBy)
	}
	if p.TopN > 0 {
		q.Set("top_n", strconv.Itoa(p.TopN))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return "?" + q.Encode()
}

// GetAnalyticsData fetches one paginated table page for a predefined query.
// Requires: analytics:read scope
func (s *Session) GetAnalyticsData(ctx context.Context, queryID string, params AnalyticsParams) (*AnalyticsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/analytics/data"+params.query(queryID), nil, "analytics:read")
	if err != nil {
		return nil, err
	}

	var data AnalyticsResponse
	if err := decodeJSON(resp, &data, http.StatusOK); err != nil {
		return nil, err
	}

	return &data, nil
}

// GetReport fetches the combined table + histogram + image-link report.
// Requires: analytics:read scope
func (s *Session) GetReport(ctx context.Context, queryID string, params AnalyticsParams) (*ReportResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/analytics/report"+params.query(queryID), nil, "analytics:read")
	if err != nil {
		return nil, err
	}

	var report ReportResponse
	if err := decodeJSON(resp, &report, http.StatusOK); err != nil {
		return nil, err
	}

	return &report, nil
}

// GetChart fetches the bar-chart figure document. GroupBy is required.
// Requires: analytics:read scope
func (s *Session) GetChart(ctx context.Context, queryID string, params AnalyticsParams) (*ChartFigure, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/analytics/chart.json"+params.query(queryID), nil, "analytics:read")
	if err != nil {
		return nil, err
	}

	var figure ChartFigure
	if err := decodeJSON(resp, &figure, http.StatusOK); err != nil {
		return nil, err
	}

	return &figure, nil
}

// DownloadCSV fetches the filtered result set as raw CSV bytes.
// Requires: analytics:read scope
func (s *Session) DownloadCSV(ctx context.Context, queryID string, params AnalyticsParams) ([]byte, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/analytics/data.csv"+params.query(queryID), nil, "analytics:read")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}

	return body, nil
}
