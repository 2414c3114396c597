package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
)

type analyticsRepo struct {
	q dbtx
}

// Per-entity column lists for the flattened analytics projections. Each column
// is aliased with its entity prefix so joined tables never collide.
var (
	analyticsLayerCols = []string{
		"layerid", "layertype", "layername", "site", "sector", "square",
		"context", "layer", "stratum", "parentid", "level", "structure",
		"includes", "color1", "color2", "handfragments", "wheelfragment",
		"recordenteredby", "recordenteredon", "recordcreatedby",
		"recordcreatedon", "description", "akb_num",
	}
	analyticsFragmentCols = []string{
		"fragmentid", "locationid", "fragmenttype", "technology", "baking",
		"fract", "primarycolor", "secondarycolor", "covering", "includesconc",
		"includessize", "surface", "count", "onepot", "piecetype",
		"wallthickness", "handlesize", "handletype", "dishsize", "bottomtype",
		"outline", "category", "form", "type", "subtype", "variant", "speed",
		"includestype", "topsize", "necksize", "bodysize", "bottomsize",
		"dishheight", "decoration", "composition", "parallels", "note",
		"inventory", "image_url", "recordenteredby", "recordenteredon",
	}
	analyticsOrnamentCols = []string{
		"ornamentid", "fragmentid", "location", "relationship", "onornament",
		"color1", "color2", "encrustcolor1", "encrustcolor2", "primary_",
		"secondary", "tertiary", "quarternary", "recordenteredon",
	}
	analyticsFindCols = []string{
		"findid", "layerid", "fragmentid", "ornamentid", "findtype",
		"description", "inventory", "image_url", "recordenteredby",
		"recordenteredon",
	}
)

// selectList renders "alias.col AS prefix_col" pairs for one joined entity.
func selectList(alias, prefix string, cols []string) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, fmt.Sprintf("%s.%s AS %s_%s", alias, c, prefix, c))
	}
	return strings.Join(parts, ", ")
}

// queryShape is one predefined join shape. Free-text search columns are
// shape-specific since each shape exposes different text fields.
type queryShape struct {
	selects  string
	from     string
	orderBy  string
	textCols []string
}

func shapeFor(id domain.QueryID) (queryShape, bool) {
	switch id {
	case domain.QueryLayersFragments:
		return queryShape{
			selects: selectList("l", "l", analyticsLayerCols) + ", " +
				selectList("f", "f", analyticsFragmentCols),
			from: `tbllayers l
				INNER JOIN tblfragments f ON l.layerid = f.locationid`,
			orderBy:  "l.layerid DESC, f.fragmentid DESC",
			textCols: []string{"f.inventory", "f.note", "f.piecetype"},
		}, true
	case domain.QueryLayersFragmentsOrnaments:
		return queryShape{
			selects: selectList("l", "l", analyticsLayerCols) + ", " +
				selectList("f", "f", analyticsFragmentCols) + ", " +
				selectList("o", "o", analyticsOrnamentCols),
			from: `tbllayers l
				INNER JOIN tblfragments f ON l.layerid = f.locationid
				INNER JOIN tblornaments o ON f.fragmentid = o.fragmentid`,
			orderBy:  "l.layerid DESC, f.fragmentid DESC, o.ornamentid DESC",
			textCols: []string{"f.inventory", "f.note", "f.piecetype"},
		}, true
	case domain.QueryFinds:
		return queryShape{
			selects: selectList("fi", "fi", analyticsFindCols) + ", " +
				selectList("l", "l", analyticsLayerCols) + ", " +
				selectList("f", "f", analyticsFragmentCols) + ", " +
				selectList("o", "o", analyticsOrnamentCols),
			from: `tblfinds fi
				INNER JOIN tbllayers l ON l.layerid = fi.layerid
				LEFT JOIN tblfragments f ON f.fragmentid = fi.fragmentid
				LEFT JOIN tblornaments o ON o.ornamentid = fi.ornamentid`,
			orderBy:  "fi.findid DESC",
			textCols: []string{"fi.description", "fi.findtype", "fi.inventory"},
		}, true
	}
	return queryShape{}, false
}

// buildWhere renders the whitelisted filter predicates. Blank or nil filter
// values are omitted entirely so they never constrain the result.
func buildWhere(shape queryShape, f domain.AnalyticsFilter) (string, []any) {
	var (
		preds []string
		args  []any
	)
	textMatch := func(col, value string) {
		preds = append(preds, fmt.Sprintf("ulower(coalesce(%s,'')) LIKE ?", col))
		args = append(args, likePattern(value))
	}
	if f.Site != "" {
		textMatch("l.site", f.Site)
	}
	if f.Sector != "" {
		textMatch("l.sector", f.Sector)
	}
	if f.Square != "" {
		textMatch("l.square", f.Square)
	}
	if f.DateFrom != nil {
		preds = append(preds, "l.recordenteredon >= ?")
		args = append(args, *f.DateFrom)
	}
	if f.DateTo != nil {
		preds = append(preds, "l.recordenteredon <= ?")
		args = append(args, *f.DateTo)
	}
	if q := strings.TrimSpace(f.FreeText); q != "" {
		ors := make([]string, 0, len(shape.textCols))
		for _, col := range shape.textCols {
			ors = append(ors, fmt.Sprintf("ulower(coalesce(%s,'')) LIKE ?", col))
			args = append(args, likePattern(q))
		}
		preds = append(preds, "("+strings.Join(ors, " OR ")+")")
	}
	if len(preds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(preds, " AND "), args
}

func (r *analyticsRepo) Query(ctx context.Context, id domain.QueryID, f domain.AnalyticsFilter, limit, offset int) (domain.AnalyticsResult, error) {
	shape, ok := shapeFor(id)
	if !ok {
		return domain.AnalyticsResult{}, store.ErrUnknownQuery
	}

	where, args := buildWhere(shape, f)

	// The count runs over the same filtered join so Total stays accurate
	// regardless of the page requested.
	var total int
	countSQL := `SELECT COUNT(*) FROM ` + shape.from + where
	if err := r.q.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return domain.AnalyticsResult{}, err
	}

	pageSQL := `SELECT ` + shape.selects + ` FROM ` + shape.from + where +
		` ORDER BY ` + shape.orderBy + ` LIMIT ? OFFSET ?`
	pageArgs := append(append([]any{}, args...), limit, offset)

	rows, err := r.q.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return domain.AnalyticsResult{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return domain.AnalyticsResult{}, err
	}

	items := []domain.Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return domain.AnalyticsResult{}, err
		}
		row := make(domain.Row, len(cols))
		for i, c := range cols {
			row[c] = normalizeValue(values[i])
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return domain.AnalyticsResult{}, err
	}

	return domain.AnalyticsResult{Items: items, Total: total, Columns: cols}, nil
}

// normalizeValue converts driver-level scan values into plain Go types so
// rows are directly JSON- and CSV-friendly.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t
	default:
		return v
	}
}
