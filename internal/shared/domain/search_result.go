package domain

// SearchResult is one page of a search plus the totals needed to page further.
type SearchResult[E any] struct {
	Items       []E `json:"items"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
}

// NewSearchResult builds a result and derives LastPage = ceil(total / perPage).
// total is the post-filter count and is never recomputed from items.
func NewSearchResult[E any](items []E, total, currentPage, perPage int) SearchResult[E] {
	if items == nil {
		items = []E{}
	}
	return SearchResult[E]{
		Items:       items,
		Total:       total,
		CurrentPage: currentPage,
		PerPage:     perPage,
		LastPage:    lastPage(total, perPage),
	}
}

// HasNextPage reports whether a page after CurrentPage contains items.
func (r SearchResult[E]) HasNextPage() bool {
	return r.CurrentPage < r.LastPage
}

// MapSearchResult converts the items of a result, keeping the paging fields.
func MapSearchResult[E, T any](r SearchResult[E], fn func(E) T) SearchResult[T] {
	items := make([]T, len(r.Items))
	for i, item := range r.Items {
		items[i] = fn(item)
	}
	return NewSearchResult(items, r.Total, r.CurrentPage, r.PerPage)
}

func lastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
