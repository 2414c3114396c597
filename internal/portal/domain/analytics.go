package domain

import "time"

// QueryID selects one of the predefined analytics join shapes.
type QueryID string

const (
	// QueryLayersFragments is layers inner-joined to fragments.
	QueryLayersFragments QueryID = "q1"
	// QueryLayersFragmentsOrnaments is layers -> fragments -> ornaments.
	QueryLayersFragmentsOrnaments QueryID = "q2"
	// QueryFinds is finds joined to the owning layer, with optional
	// fragment/ornament left joins.
	QueryFinds QueryID = "finds"
)

// Valid reports whether q names a known query shape.
func (q QueryID) Valid() bool {
	switch q {
	case QueryLayersFragments, QueryLayersFragmentsOrnaments, QueryFinds:
		return true
	}
	return false
}

// AnalyticsFilter is the whitelisted filter set for the predefined queries.
// Zero values mean "no filter": blank strings and nil dates are omitted from
// the generated WHERE clause entirely rather than matching emptiness.
type AnalyticsFilter struct {
	Site   string
	Sector string
	Square string

	DateFrom *time.Time // inclusive lower bound on the layer's entry timestamp
	DateTo   *time.Time // inclusive upper bound

	// FreeText matches case-insensitively across a query-shape-specific set
	// of text columns (inventory/note/piecetype for q1/q2; description/
	// findtype/inventory for finds).
	FreeText string
}

// Row is one flattened analytics result row. Keys are source-prefixed column
// names (l_, f_, o_, fi_) so joined entities never collide.
type Row map[string]any

// AnalyticsResult is an ephemeral projection of one analytics query page.
//
// Total reflects the full filtered match count independent of the returned
// page. Columns is non-empty whenever Items is, and every item carries
// exactly the same key set.
type AnalyticsResult struct {
	Items   []Row
	Total   int
	Columns []string
}
