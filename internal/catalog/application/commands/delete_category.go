package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedApplication "github.com/felixgeelhaar/catalog/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/eventbus"
)

// DeleteCategoryCommand removes a category.
type DeleteCategoryCommand struct {
	ID string
}

func (DeleteCategoryCommand) CommandName() string { return "catalog.delete_category" }

// DeleteCategoryHandler handles the DeleteCategoryCommand.
type DeleteCategoryHandler struct {
	repo      domain.Repository
	uow       sharedApplication.UnitOfWork
	publisher eventbus.Publisher
	logger    *slog.Logger
}

var _ sharedApplication.CommandHandler[DeleteCategoryCommand, struct{}] = (*DeleteCategoryHandler)(nil)

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(repo domain.Repository, uow sharedApplication.UnitOfWork, publisher eventbus.Publisher, logger *slog.Logger) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{
		repo:      repo,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the DeleteCategoryCommand.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) (struct{}, error) {
	id, err := sharedDomain.ParseIdentifier(cmd.ID)
	if err != nil {
		return struct{}{}, err
	}

	var category *domain.Category
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		found, ok, err := h.repo.Find(txCtx, id)
		if err != nil {
			return err
		}
		if !ok {
			return sharedDomain.NewNotFoundError(domain.Kind, id)
		}

		found.MarkDeleted()
		if err := h.repo.Delete(txCtx, id); err != nil {
			return err
		}

		category = found
		return nil
	})
	if err != nil {
		return struct{}{}, err
	}

	sharedApplication.DispatchEvents(ctx, h.publisher, h.logger, category)
	return struct{}{}, nil
}
