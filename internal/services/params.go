package services

import (
	"time"

	"guestadmin/internal/backend"
	"guestadmin/internal/listview"
)

// listParams translates the page's filter and sort into backend query
// parameters. The engine re-applies everything locally; these only
// narrow the payload.
func listParams(f listview.Filter, s listview.Sort) backend.ListParams {
	params := backend.ListParams{
		Search:   f.Query,
		Ordering: s.Ordering(),
		Facets:   f.Facets,
	}
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	if floor, ok := f.Range.LowerBound(now); ok {
		params.CreatedAfter = floor
	}
	return params
}
