package listview

import "time"

// FacetAll is the selector sentinel meaning "no filtering on this facet".
const FacetAll = "all"

// DateRange is the created-at bucket selector shown on every list page.
type DateRange string

const (
	RangeAll         DateRange = "all"
	RangeToday       DateRange = "today"
	RangeWeek        DateRange = "week"
	RangeMonth       DateRange = "month"
	RangeThreeMonths DateRange = "3months"
)

// ParseDateRange falls back to RangeAll for unknown selectors.
func ParseDateRange(raw string) DateRange {
	switch DateRange(raw) {
	case RangeToday, RangeWeek, RangeMonth, RangeThreeMonths:
		return DateRange(raw)
	}
	return RangeAll
}

// LowerBound computes the inclusive created-at floor for the bucket.
// The second return is false when the bucket does not constrain.
func (r DateRange) LowerBound(now time.Time) (time.Time, bool) {
	switch r {
	case RangeToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case RangeWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case RangeThreeMonths:
		return time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// Filter is the full filter specification of one list page.
type Filter struct {
	Query  string
	Facets map[string]string
	Range  DateRange

	// Now anchors the date-range buckets; zero means time.Now().
	Now time.Time
}

func (f Filter) now() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}

// Facet returns the selector value for name, defaulting to FacetAll.
func (f Filter) Facet(name string) string {
	if f.Facets == nil {
		return FacetAll
	}
	v, ok := f.Facets[name]
	if !ok || v == "" {
		return FacetAll
	}
	return v
}

// Equal reports whether two filters select the same subset. Used by the
// page stores to reset pagination when any filter field changes.
func (f Filter) Equal(other Filter) bool {
	if f.Query != other.Query || f.Range != other.Range {
		return false
	}
	for name := range f.Facets {
		if f.Facet(name) != other.Facet(name) {
			return false
		}
	}
	for name := range other.Facets {
		if f.Facet(name) != other.Facet(name) {
			return false
		}
	}
	return true
}
