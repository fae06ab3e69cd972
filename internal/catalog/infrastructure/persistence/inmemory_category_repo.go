package persistence

import (
	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/inmemory"
)

// InMemoryCategoryRepository keeps categories in process memory.
type InMemoryCategoryRepository = inmemory.SearchableRepository[*domain.Category, domain.Filter]

// NewInMemoryCategoryRepository creates an empty in-memory category store.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return inmemory.NewSearchableRepository(inmemory.SearchConfig[*domain.Category, domain.Filter]{
		Kind:     domain.Kind,
		Sortable: domain.Sortable,
		Filter:   domain.MatchesFilter,
		Field:    domain.SortValue,
		Clone:    (*domain.Category).Clone,
	})
}

var _ domain.Repository = (*InMemoryCategoryRepository)(nil)
