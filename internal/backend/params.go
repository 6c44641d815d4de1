package backend

import (
	"net/url"
	"time"
)

// ListParams are the query parameters forwarded to list endpoints.
// Filtering and sorting are re-applied locally after the fetch, so
// these only narrow what the backend has to send.
type ListParams struct {
	Search       string
	Ordering     string
	CreatedAfter time.Time
	Facets       map[string]string
}

func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if !p.CreatedAfter.IsZero() {
		q.Set("created_at__gte", p.CreatedAfter.Format("2006-01-02"))
	}
	for name, value := range p.Facets {
		if value != "" && value != "all" {
			q.Set(name, value)
		}
	}
	return q
}
