package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedApplication "github.com/felixgeelhaar/catalog/internal/shared/application"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/eventbus"
)

// CreateCategoryCommand contains the data needed to create a category.
type CreateCategoryCommand struct {
	Name        string
	Description *string
	IsActive    *bool
}

func (CreateCategoryCommand) CommandName() string { return "catalog.create_category" }

// CreateCategoryHandler handles the CreateCategoryCommand.
type CreateCategoryHandler struct {
	repo      domain.Repository
	uow       sharedApplication.UnitOfWork
	publisher eventbus.Publisher
	logger    *slog.Logger
}

var _ sharedApplication.CommandHandler[CreateCategoryCommand, dto.CategoryOutput] = (*CreateCategoryHandler)(nil)

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(repo domain.Repository, uow sharedApplication.UnitOfWork, publisher eventbus.Publisher, logger *slog.Logger) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		repo:      repo,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the CreateCategoryCommand.
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (dto.CategoryOutput, error) {
	category, err := domain.NewCategory(domain.CreateCategoryCommand{
		Name:        cmd.Name,
		Description: cmd.Description,
		IsActive:    cmd.IsActive,
	})
	if err != nil {
		return dto.CategoryOutput{}, err
	}

	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		return h.repo.Insert(txCtx, category)
	})
	if err != nil {
		return dto.CategoryOutput{}, err
	}

	sharedApplication.DispatchEvents(ctx, h.publisher, h.logger, category)
	return dto.ToCategoryOutput(category), nil
}
