package listview

import (
	"sort"
	"time"

	"guestadmin/internal/utils"
)

// PageSize is the fixed number of rows per list page.
const PageSize = 10

// Profile describes how the engine reads one entity type: which fields
// the search box scans, how facet selectors match, and how sort keys
// are extracted.
type Profile[T any] struct {
	Search  func(item T) []string
	Facet   func(item T, name, value string) bool
	Created func(item T) time.Time
	Key     func(item T, field string) SortValue
}

// Page is one rendered slice of a filtered collection.
type Page[T any] struct {
	Items         []T
	TotalFiltered int
	TotalPages    int
	Page          int
}

// Matching applies filter and sort without paginating. The input slice
// is never mutated. Exports use this to cover every filtered row.
func Matching[T any](items []T, p Profile[T], f Filter, s Sort) []T {
	matched := make([]T, 0, len(items))
	floor, bounded := f.Range.LowerBound(f.now())
	for _, item := range items {
		if f.Query != "" && !utils.ContainsFold(f.Query, p.Search(item)...) {
			continue
		}
		if !facetsMatch(item, p, f) {
			continue
		}
		if bounded && p.Created(item).Before(floor) {
			continue
		}
		matched = append(matched, item)
	}

	if s.Field != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := p.Key(matched[i], s.Field), p.Key(matched[j], s.Field)
			if s.Direction == Asc {
				return a.less(b)
			}
			return b.less(a)
		})
	}
	return matched
}

// Visible applies filter, sort and pagination in that order and returns
// the requested page. Out-of-range page numbers clamp into
// [1, TotalPages]; an empty match yields zero pages and page 1.
func Visible[T any](items []T, p Profile[T], f Filter, s Sort, page int) Page[T] {
	matched := Matching(items, p, f, s)

	total := len(matched)
	totalPages := (total + PageSize - 1) / PageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:         matched[start:end],
		TotalFiltered: total,
		TotalPages:    totalPages,
		Page:          page,
	}
}

func facetsMatch[T any](item T, p Profile[T], f Filter) bool {
	for name := range f.Facets {
		value := f.Facet(name)
		if value == FacetAll {
			continue
		}
		if p.Facet == nil || !p.Facet(item, name, value) {
			return false
		}
	}
	return true
}
