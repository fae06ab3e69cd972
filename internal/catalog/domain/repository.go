package domain

import (
	"strings"

	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// Sortable fields of a category search.
const (
	SortName      = "name"
	SortCreatedAt = "created_at"
)

// Sortable declares how every category backend may order results:
// by name or creation time, newest first when no valid sort is requested.
var Sortable = sharedDomain.Sortable{
	Fields:  []string{SortName, SortCreatedAt},
	Default: sharedDomain.Ordering{Field: SortCreatedAt, Direction: sharedDomain.SortDesc},
}

// Filter is a case-insensitive substring matched against the name.
type Filter = string

// SearchParams is a normalized category search request.
type SearchParams = sharedDomain.SearchParams[Filter]

// SearchResult is one page of categories.
type SearchResult = sharedDomain.SearchResult[*Category]

// Repository persists categories.
type Repository interface {
	sharedDomain.SearchableRepository[*Category, Filter]
}

// MatchesFilter reports whether c matches filter.
func MatchesFilter(c *Category, filter Filter) bool {
	return strings.Contains(strings.ToLower(c.name), strings.ToLower(filter))
}

// SortValue returns the value of a sortable field of c, or nil.
func SortValue(c *Category, field string) any {
	switch field {
	case SortName:
		return c.name
	case SortCreatedAt:
		return c.CreatedAt()
	}
	return nil
}
