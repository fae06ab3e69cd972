package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/catalog/internal/catalog/application/dto"
	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedApplication "github.com/felixgeelhaar/catalog/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/eventbus"
)

// UpdateCategoryCommand changes the fields that are set. A nil field is left
// as it is; ClearDescription removes the description.
type UpdateCategoryCommand struct {
	ID               string
	Name             *string
	Description      *string
	ClearDescription bool
	IsActive         *bool
}

func (UpdateCategoryCommand) CommandName() string { return "catalog.update_category" }

// UpdateCategoryHandler handles the UpdateCategoryCommand.
type UpdateCategoryHandler struct {
	repo      domain.Repository
	uow       sharedApplication.UnitOfWork
	publisher eventbus.Publisher
	logger    *slog.Logger
}

var _ sharedApplication.CommandHandler[UpdateCategoryCommand, dto.CategoryOutput] = (*UpdateCategoryHandler)(nil)

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(repo domain.Repository, uow sharedApplication.UnitOfWork, publisher eventbus.Publisher, logger *slog.Logger) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{
		repo:      repo,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the UpdateCategoryCommand.
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (dto.CategoryOutput, error) {
	id, err := sharedDomain.ParseIdentifier(cmd.ID)
	if err != nil {
		return dto.CategoryOutput{}, err
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

		if err := applyUpdate(found, cmd); err != nil {
			return err
		}
		if err := h.repo.Update(txCtx, found); err != nil {
			return err
		}

		category = found
		return nil
	})
	if err != nil {
		return dto.CategoryOutput{}, err
	}

	sharedApplication.DispatchEvents(ctx, h.publisher, h.logger, category)
	return dto.ToCategoryOutput(category), nil
}

func applyUpdate(category *domain.Category, cmd UpdateCategoryCommand) error {
	if cmd.Name != nil {
		if err := category.ChangeName(*cmd.Name); err != nil {
			return err
		}
	}

	switch {
	case cmd.ClearDescription:
		if err := category.ChangeDescription(nil); err != nil {
			return err
		}
	case cmd.Description != nil:
		if err := category.ChangeDescription(cmd.Description); err != nil {
			return err
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}
	return nil
}
