package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

// NullLabel is the display label for absent or blank grouping values.
const NullLabel = "(null)"

// normalizeLabel maps a grouping value to its display label. Nil and
// blank-after-trim strings collapse to NullLabel; everything else is
// stringified.
func normalizeLabel(v any) string {
	switch t := v.(type) {
	case nil:
		return NullLabel
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return NullLabel
		}
		return s
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Histogram frequency-counts items[groupBy] and returns the topN most common
// (label, count) pairs. Ordering is deterministic: count descending, then
// label ascending on ties. Empty input or a blank groupBy yields two empty
// slices, never an error.
func Histogram(items []domain.Row, groupBy string, topN int) ([]string, []int) {
	if len(items) == 0 || groupBy == "" || topN <= 0 {
		return []string{}, []int{}
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[normalizeLabel(item[groupBy])]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	if len(labels) > topN {
		labels = labels[:topN]
	}

	out := make([]int, len(labels))
	for i, label := range labels {
		out[i] = counts[label]
	}
	return labels, out
}
