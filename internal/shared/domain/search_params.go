package domain

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// SortDirection is the ordering direction of a search.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	// DefaultPage is used when the requested page is missing or invalid.
	DefaultPage = 1
	// DefaultPerPage is used when the requested page size is missing or invalid.
	DefaultPerPage = 15
)

// ParseSortDirection returns the direction named by s, defaulting to SortAsc.
func ParseSortDirection(s string) SortDirection {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortDesc:
		return SortDesc
	default:
		return SortAsc
	}
}

// SearchInput is the raw, unvalidated search request. Page and PerPage accept
// any integer or float kind, numeric strings, or nil.
type SearchInput[F any] struct {
	Page    any
	PerPage any
	Sort    string
	SortDir string
	Filter  *F
}

// SearchParams is a normalized search request. All paging fields are always
// valid after construction.
type SearchParams[F any] struct {
	page    int
	perPage int
	sort    string
	sortDir SortDirection
	filter  *F
}

// NewSearchParams normalizes raw input, replacing malformed values with
// defaults. Page and PerPage must be positive integers no larger than
// math.MaxInt32; anything else, including a larger valid integer, falls back
// to DefaultPage or DefaultPerPage. It never fails.
func NewSearchParams[F any](in SearchInput[F]) SearchParams[F] {
	p := SearchParams[F]{
		page:    positiveIntOr(in.Page, DefaultPage),
		perPage: positiveIntOr(in.PerPage, DefaultPerPage),
		sort:    strings.TrimSpace(in.Sort),
		sortDir: ParseSortDirection(in.SortDir),
	}
	if in.Filter != nil && !isZeroValue(*in.Filter) {
		f := *in.Filter
		p.filter = &f
	}
	return p
}

func isZeroValue(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.IsZero()
}

// DefaultSearchParams returns page 1 with the default page size and no sort or filter.
func DefaultSearchParams[F any]() SearchParams[F] {
	return NewSearchParams(SearchInput[F]{})
}

func (p SearchParams[F]) Page() int              { return p.page }
func (p SearchParams[F]) PerPage() int           { return p.perPage }
func (p SearchParams[F]) Sort() string           { return p.sort }
func (p SearchParams[F]) SortDir() SortDirection { return p.sortDir }

// Filter returns the filter value and whether one was supplied.
func (p SearchParams[F]) Filter() (F, bool) {
	if p.filter == nil {
		var zero F
		return zero, false
	}
	return *p.filter, true
}

// HasFilter reports whether a non-empty filter was supplied.
func (p SearchParams[F]) HasFilter() bool {
	return p.filter != nil
}

// Offset returns the index of the first item of the requested page.
func (p SearchParams[F]) Offset() int {
	return (p.page - 1) * p.perPage
}

// Ordering is a resolved sort field and direction.
type Ordering struct {
	Field     string
	Direction SortDirection
}

// Sortable declares the fields a backend can order by and its default ordering.
type Sortable struct {
	Fields  []string
	Default Ordering
}

// Allows reports whether field is declared sortable.
func (s Sortable) Allows(field string) bool {
	return field != "" && slices.Contains(s.Fields, field)
}

// Ordering resolves the effective ordering against a backend declaration:
// the requested sort when it is sortable, the backend default otherwise.
func (p SearchParams[F]) Ordering(s Sortable) Ordering {
	if !s.Allows(p.sort) {
		return s.Default
	}
	return Ordering{Field: p.sort, Direction: p.sortDir}
}

func positiveIntOr(v any, fallback int) int {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fallback
		}
		rv = rv.Elem()
	}

	var n int64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return fallback
		}
		n = int64(u)
	case reflect.Float32, reflect.Float64:
		f, ok := integralFloat(rv.Float())
		if !ok {
			return fallback
		}
		n = f
	case reflect.String:
		parsed, ok := parseIntString(rv.String())
		if !ok {
			return fallback
		}
		n = parsed
	default:
		return fallback
	}

	if n <= 0 || n > math.MaxInt32 {
		return fallback
	}
	return int(n)
}

func parseIntString(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return integralFloat(f)
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int64(f), true
}
