package queries

import (
	"context"

	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedApplication "github.com/felixgeelhaar/catalog/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// GetCategoryQuery fetches one category by identifier.
type GetCategoryQuery struct {
	ID string
}

func (GetCategoryQuery) QueryName() string { return "catalog.get_category" }

// GetCategoryHandler handles the GetCategoryQuery.
type GetCategoryHandler struct {
	repo domain.Repository
}

var _ sharedApplication.QueryHandler[GetCategoryQuery, dto.CategoryOutput] = (*GetCategoryHandler)(nil)

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(repo domain.Repository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the GetCategoryQuery.
func (h *GetCategoryHandler) Handle(ctx context.Context, query GetCategoryQuery) (dto.CategoryOutput, error) {
	id, err := sharedDomain.ParseIdentifier(query.ID)
	if err != nil {
		return dto.CategoryOutput{}, err
	}

	category, found, err := h.repo.Find(ctx, id)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	if !found {
		return dto.CategoryOutput{}, sharedDomain.NewNotFoundError(domain.Kind, id)
	}
	return dto.ToCategoryOutput(category), nil
}
