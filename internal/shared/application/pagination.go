package application

import "github.com/felixgeelhaar/catalog/internal/shared/domain"

// PaginationOutput is the outward shape of a search result page.
type PaginationOutput[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
}

// ToPaginationOutput maps every item of result and keeps its paging fields.
func ToPaginationOutput[E, T any](result domain.SearchResult[E], mapper func(E) T) PaginationOutput[T] {
	mapped := domain.MapSearchResult(result, mapper)
	return PaginationOutput[T]{
		Items:       mapped.Items,
		Total:       mapped.Total,
		CurrentPage: mapped.CurrentPage,
		PerPage:     mapped.PerPage,
		LastPage:    mapped.LastPage,
	}
}
