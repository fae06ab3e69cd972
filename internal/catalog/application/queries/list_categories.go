package queries

import (
	"context"

	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedApplication "github.com/felixgeelhaar/catalog/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// ListCategoriesQuery contains the raw search request. Page and PerPage
// accept anything NewSearchParams does; malformed values fall back to defaults.
type ListCategoriesQuery struct {
	Page    any
	PerPage any
	Sort    string // "name", "created_at"
	SortDir string // "asc", "desc"
	Filter  *string
}

func (ListCategoriesQuery) QueryName() string { return "catalog.list_categories" }

// ListCategoriesOutput is one page of categories.
type ListCategoriesOutput = sharedApplication.PaginationOutput[dto.CategoryOutput]

// ListCategoriesHandler handles the ListCategoriesQuery.
type ListCategoriesHandler struct {
	repo domain.Repository
}

var _ sharedApplication.QueryHandler[ListCategoriesQuery, ListCategoriesOutput] = (*ListCategoriesHandler)(nil)

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(repo domain.Repository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the ListCategoriesQuery.
func (h *ListCategoriesHandler) Handle(ctx context.Context, query ListCategoriesQuery) (ListCategoriesOutput, error) {
	params := sharedDomain.NewSearchParams(sharedDomain.SearchInput[domain.Filter]{
		Page:    query.Page,
		PerPage: query.PerPage,
		Sort:    query.Sort,
		SortDir: query.SortDir,
		Filter:  query.Filter,
	})

	result, err := h.repo.Search(ctx, params)
	if err != nil {
		return ListCategoriesOutput{}, err
	}
	return sharedApplication.ToPaginationOutput(result, dto.ToCategoryOutput), nil
}
