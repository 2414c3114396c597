package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/gkrp/dataportal/pkg/slogx"
)

const (
	// TableMaxLimit caps the on-screen table fetch.
	TableMaxLimit = 50000

	// ChartMaxFetch is the hard ceiling for the full-distribution chart
	// fetch on pathological filters.
	ChartMaxFetch = 250000

	// DefaultTopN is the histogram bucket count when the caller does not
	// choose one.
	DefaultTopN = 30
)

// hiddenColumns are excluded uniformly from the table, the chart group-by
// options, and the CSV export. The set mirrors what the portal UI hides:
// audit stamps, join keys and the rarely-filled layer and measurement fields.
var hiddenColumns = map[string]struct{}{
	"l_recordenteredon": {},
	"l_recordenteredby": {},
	"l_recordcreatedby": {},
	"l_level":           {},
	"l_structure":       {},
	"l_includes":        {},
	"l_color1":          {},
	"l_color2":          {},
	"l_description":     {},
	"l_akb_num":         {},
	"f_fragmentid":      {},
	"f_locationid":      {},
	"f_outline":         {},
	"f_speed":           {},
	"f_recordenteredby": {},
	"f_recordenteredon": {},
	"f_topsize":         {},
	"f_necksize":        {},
	"f_bodysize":        {},
	"f_bottomsize":      {},
	"f_dishheight":      {},
}

// VisibleColumns filters the deny-listed columns out, preserving order.
func VisibleColumns(cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if _, hidden := hiddenColumns[c]; !hidden {
			out = append(out, c)
		}
	}
	return out
}

// Report bundles everything one analytics view needs: the capped table page,
// the full-distribution histogram, and any image links found in the data.
type Report struct {
	Items   []domain.Row
	Total   int
	Columns []string

	ChartLabels []string
	ChartCounts []int

	ImageURLs []string
}

// ReportService reconciles the responsive-table fetch against the
// true-distribution chart fetch.
type ReportService struct {
	Analytics store.Analytics
}

// Query returns one page of analytics rows with the deny-list applied, for
// the paginated table endpoint.
func (s *ReportService) Query(ctx context.Context, id domain.QueryID, f domain.AnalyticsFilter, limit, offset int) (domain.AnalyticsResult, error) {
	if limit <= 0 || limit > TableMaxLimit {
		limit = TableMaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.Analytics.Query(ctx, id, f, limit, offset)
	if err != nil {
		return domain.AnalyticsResult{}, err
	}
	res.Columns = VisibleColumns(res.Columns)
	return res, nil
}

// Fetch builds the full report. The table slice is capped at TableMaxLimit;
// the histogram needs every matching row, so when the filtered total exceeds
// what the table fetch returned a second fetch sized min(total, ChartMaxFetch)
// is issued. Otherwise the table rows are reused and the store is hit exactly
// once. A zero total short-circuits to an explicit empty report.
func (s *ReportService) Fetch(ctx context.Context, id domain.QueryID, f domain.AnalyticsFilter, groupBy string, topN int) (Report, error) {
	log := slogx.FromContext(ctx)

	if topN <= 0 {
		topN = DefaultTopN
	}

	table, err := s.Analytics.Query(ctx, id, f, TableMaxLimit, 0)
	if err != nil {
		return Report{}, err
	}

	if table.Total == 0 {
		return Report{
			Items:       []domain.Row{},
			Total:       0,
			Columns:     VisibleColumns(table.Columns),
			ChartLabels: []string{},
			ChartCounts: []int{},
			ImageURLs:   []string{},
		}, nil
	}

	chartItems := table.Items
	if table.Total > len(table.Items) {
		fetch := min(table.Total, ChartMaxFetch)
		log.Debug("issuing full-distribution fetch",
			slog.Int("total", table.Total),
			slog.Int("fetch", fetch),
		)
		full, err := s.Analytics.Query(ctx, id, f, fetch, 0)
		if err != nil {
			return Report{}, err
		}
		chartItems = full.Items
	}

	labels, counts := Histogram(chartItems, groupBy, topN)

	return Report{
		Items:       table.Items,
		Total:       table.Total,
		Columns:     VisibleColumns(table.Columns),
		ChartLabels: labels,
		ChartCounts: counts,
		ImageURLs:   ExtractImageURLs(chartItems),
	}, nil
}

// ExtractImageURLs collects unique non-blank fragment and find image links in
// first-seen order.
func ExtractImageURLs(items []domain.Row) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		for _, key := range []string{"f_image_url", "fi_image_url"} {
			s, ok := item[key].(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// WriteCSV streams items as CSV with the visible columns as header. Values
// are stringified; nils become empty cells.
func WriteCSV(w io.Writer, columns []string, items []domain.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for _, item := range items {
		for i, c := range columns {
			record[i] = stringifyCell(item[c])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func stringifyCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ChartFigure is a minimal bar-chart figure document the browser plotting
// library consumes directly.
type ChartFigure struct {
	Data   []ChartTrace `json:"data"`
	Layout ChartLayout  `json:"layout"`
}

type ChartTrace struct {
	Type string   `json:"type"`
	X    []string `json:"x"`
	Y    []int    `json:"y"`
}

type ChartLayout struct {
	Title   string `json:"title"`
	XAxis   Axis   `json:"xaxis"`
	YAxis   Axis   `json:"yaxis"`
	BarMode string `json:"barmode"`
}

type Axis struct {
	Title string `json:"title"`
}

// BarChartFigure builds the figure document from histogram output.
func BarChartFigure(groupBy string, labels []string, counts []int) ChartFigure {
	return ChartFigure{
		Data: []ChartTrace{{Type: "bar", X: labels, Y: counts}},
		Layout: ChartLayout{
			Title:   fmt.Sprintf("Count by %s", groupBy),
			XAxis:   Axis{Title: groupBy},
			YAxis:   Axis{Title: "count"},
			BarMode: "group",
		},
	}
}
