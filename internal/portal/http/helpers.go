package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/pkg/httpx"
)

func writeError(w http.ResponseWriter, code int, err, desc string) {
	httpx.WriteJSON(w, code, ErrorResponse{Error: err, ErrorDescription: desc})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid id")
		return 0, false
	}
	return id, true
}

// stampEnteredBy fills the entered-by column from the session username when
// the client left it blank.
func stampEnteredBy(r *http.Request, field **string) {
	if *field != nil {
		return
	}
	if c, ok := httpx.ClaimsFromCtx(r.Context()); ok && c.Username != "" {
		username := c.Username
		*field = &username
	}
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

// parseDate accepts the date formats the browser form produces. A malformed
// value drops the bound rather than failing the request.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func filterFromQuery(r *http.Request) domain.AnalyticsFilter {
	q := r.URL.Query()
	return domain.AnalyticsFilter{
		Site:     q.Get("site"),
		Sector:   q.Get("sector"),
		Square:   q.Get("square"),
		DateFrom: parseDate(q.Get("date_from")),
		DateTo:   parseDate(q.Get("date_to")),
		FreeText: q.Get("q"),
	}
}
