package listview

import (
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(raw string) Direction {
	if Direction(raw) == Asc {
		return Asc
	}
	return Desc
}

// Sort is the active sort field plus direction.
type Sort struct {
	Field     string
	Direction Direction
}

// Toggle applies the header-click rule: clicking the active field flips
// direction, clicking a new field selects it descending.
func (s Sort) Toggle(field string) Sort {
	if s.Field == field {
		if s.Direction == Asc {
			return Sort{Field: field, Direction: Desc}
		}
		return Sort{Field: field, Direction: Asc}
	}
	return Sort{Field: field, Direction: Desc}
}

// Ordering renders the sort as the backend's ordering query param
// ("field" ascending, "-field" descending).
func (s Sort) Ordering() string {
	if s.Field == "" {
		return ""
	}
	if s.Direction == Desc {
		return "-" + s.Field
	}
	return s.Field
}

type sortKind int

const (
	kindText sortKind = iota
	kindNumber
	kindTime
)

// SortValue is a single comparable key extracted from a row.
type SortValue struct {
	kind sortKind
	num  float64
	text string
	when time.Time
}

func Number(f float64) SortValue { return SortValue{kind: kindNumber, num: f} }

func Text(s string) SortValue { return SortValue{kind: kindText, text: strings.ToLower(s)} }

func Time(t time.Time) SortValue { return SortValue{kind: kindTime, when: t} }

// less compares two values of the same kind ascending.
func (v SortValue) less(other SortValue) bool {
	switch v.kind {
	case kindNumber:
		return v.num < other.num
	case kindTime:
		return v.when.Before(other.when)
	default:
		return v.text < other.text
	}
}
