package inmemory

import (
	"context"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// FilterFunc reports whether entity matches filter.
type FilterFunc[E any, F any] func(entity E, filter F) bool

// FieldFunc returns the value of a sortable field of entity.
type FieldFunc[E any] func(entity E, field string) any

// SearchConfig configures a SearchableRepository.
type SearchConfig[E any, F any] struct {
	Kind     string
	Sortable domain.Sortable
	Filter   FilterFunc[E, F]
	Field    FieldFunc[E]
	Clone    CloneFunc[E]
}

// SearchableRepository adds filter, sort and paginate on top of Repository.
type SearchableRepository[E domain.Entity, F any] struct {
	*Repository[E]

	sortable domain.Sortable
	filter   FilterFunc[E, F]
	field    FieldFunc[E]
}

// NewSearchableRepository creates an empty searchable store.
func NewSearchableRepository[E domain.Entity, F any](cfg SearchConfig[E, F]) *SearchableRepository[E, F] {
	return &SearchableRepository[E, F]{
		Repository: NewRepository(cfg.Kind, cfg.Clone),
		sortable:   cfg.Sortable,
		filter:     cfg.Filter,
		field:      cfg.Field,
	}
}

// SortableFields returns the fields Search may order by.
func (r *SearchableRepository[E, F]) SortableFields() []string {
	return slices.Clone(r.sortable.Fields)
}

// Search filters, sorts and paginates the store under a read lock and
// returns copies of the page items.
// Total is the number of filtered entities, regardless of the page requested.
func (r *SearchableRepository[E, F]) Search(ctx context.Context, params domain.SearchParams[F]) (domain.SearchResult[E], error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchResult[E]{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := r.applyFilter(slices.Clone(r.entities), params)
	sorted := r.applySort(filtered, params.Ordering(r.sortable))
	page := paginate(sorted, params.Page(), params.PerPage())

	items := make([]E, len(page))
	for i, e := range page {
		items[i] = r.clone(e)
	}
	return domain.NewSearchResult(items, len(filtered), params.Page(), params.PerPage()), nil
}

func (r *SearchableRepository[E, F]) applyFilter(items []E, params domain.SearchParams[F]) []E {
	filter, ok := params.Filter()
	if !ok || r.filter == nil {
		return items
	}
	out := make([]E, 0, len(items))
	for _, item := range items {
		if r.filter(item, filter) {
			out = append(out, item)
		}
	}
	return out
}

func (r *SearchableRepository[E, F]) applySort(items []E, ordering domain.Ordering) []E {
	if ordering.Field == "" || r.field == nil {
		return items
	}
	slices.SortStableFunc(items, func(a, b E) int {
		c := Compare(r.field(a, ordering.Field), r.field(b, ordering.Field))
		if ordering.Direction == domain.SortDesc {
			return -c
		}
		return c
	})
	return items
}

func paginate[E any](items []E, page, perPage int) []E {
	start := (page - 1) * perPage
	if start >= len(items) {
		return []E{}
	}
	end := min(start+perPage, len(items))
	return items[start:end]
}

// Compare orders two field values natively. Strings compare byte-wise,
// numbers numerically, false before true, times chronologically. Nil
// pointers sort before any value. Values of different or unsupported kinds
// compare equal so the stable sort keeps their relative order.
func Compare(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := deref(reflect.ValueOf(a)), deref(reflect.ValueOf(b))
	switch {
	case !va.IsValid() && !vb.IsValid():
		return 0
	case !va.IsValid():
		return -1
	case !vb.IsValid():
		return 1
	}

	if ta, ok := va.Interface().(time.Time); ok {
		if tb, ok := vb.Interface().(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	switch {
	case isString(va) && isString(vb):
		return strings.Compare(va.String(), vb.String())
	case isInt(va) && isInt(vb):
		return cmpOrdered(va.Int(), vb.Int())
	case isUint(va) && isUint(vb):
		return cmpOrdered(va.Uint(), vb.Uint())
	case isNumber(va) && isNumber(vb):
		return cmpOrdered(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmpBool(va.Bool(), vb.Bool())
	}
	return 0
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isString(v reflect.Value) bool { return v.Kind() == reflect.String }

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
