package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	"github.com/felixgeelhaar/catalog/internal/catalog/domain/categorytest"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

func TestUpdateCategoryHandler(t *testing.T) {
	tests := []struct {
		name        string
		cmd         func(id string) UpdateCategoryCommand
		wantName    string
		wantDesc    *string
		wantActive  bool
		wantUpdates int
	}{
		{
			name:        "name only",
			cmd:         func(id string) UpdateCategoryCommand { return UpdateCategoryCommand{ID: id, Name: strPtr("Film")} },
			wantName:    "Film",
			wantDesc:    strPtr("films"),
			wantActive:  true,
			wantUpdates: 1,
		},
		{
			name: "description",
			cmd: func(id string) UpdateCategoryCommand {
				return UpdateCategoryCommand{ID: id, Description: strPtr("movies")}
			},
			wantName:    "Movie",
			wantDesc:    strPtr("movies"),
			wantActive:  true,
			wantUpdates: 1,
		},
		{
			name: "clear description",
			cmd: func(id string) UpdateCategoryCommand {
				return UpdateCategoryCommand{ID: id, ClearDescription: true}
			},
			wantName:    "Movie",
			wantDesc:    nil,
			wantActive:  true,
			wantUpdates: 1,
		},
		{
			name: "deactivate",
			cmd: func(id string) UpdateCategoryCommand {
				return UpdateCategoryCommand{ID: id, IsActive: boolPtr(false)}
			},
			wantName:    "Movie",
			wantDesc:    strPtr("films"),
			wantActive:  false,
			wantUpdates: 1,
		},
		{
			name: "activate when already active",
			cmd: func(id string) UpdateCategoryCommand {
				return UpdateCategoryCommand{ID: id, IsActive: boolPtr(true)}
			},
			wantName:    "Movie",
			wantDesc:    strPtr("films"),
			wantActive:  true,
			wantUpdates: 0,
		},
		{
			name: "all fields",
			cmd: func(id string) UpdateCategoryCommand {
				return UpdateCategoryCommand{ID: id, Name: strPtr("Film"), Description: strPtr("movies"), IsActive: boolPtr(false)}
			},
			wantName:    "Film",
			wantDesc:    strPtr("movies"),
			wantActive:  false,
			wantUpdates: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			category := categorytest.ACategory().WithName("Movie").WithDescription(strPtr("films")).Build()
			require.NoError(t, f.repo.Insert(context.Background(), category))
			handler := NewUpdateCategoryHandler(f.repo, f.uow, f.bus, nil)

			out, err := handler.Handle(context.Background(), tt.cmd(category.EntityID().String()))

			require.NoError(t, err)
			assert.Equal(t, category.EntityID().String(), out.ID)
			assert.Equal(t, tt.wantName, out.Name)
			assert.Equal(t, tt.wantDesc, out.Description)
			assert.Equal(t, tt.wantActive, out.IsActive)
			assert.Len(t, f.consumer.routingKeys(), tt.wantUpdates)
			for _, key := range f.consumer.routingKeys() {
				assert.Equal(t, domain.RoutingKeyUpdated, key)
			}

			stored, _, err := f.repo.Find(context.Background(), category.EntityID())
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, stored.Name())
		})
	}
}

func TestUpdateCategoryHandler_Errors(t *testing.T) {
	t.Run("invalid identifier", func(t *testing.T) {
		f := newFixture(t)
		handler := NewUpdateCategoryHandler(f.repo, f.uow, f.bus, nil)

		_, err := handler.Handle(context.Background(), UpdateCategoryCommand{ID: "fake id", Name: strPtr("Film")})

		var invalid *sharedDomain.InvalidIdentifierError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "fake id", invalid.Value)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		handler := NewUpdateCategoryHandler(f.repo, f.uow, f.bus, nil)
		id := sharedDomain.NewIdentifier()

		_, err := handler.Handle(context.Background(), UpdateCategoryCommand{ID: id.String(), Name: strPtr("Film")})

		var notFound *sharedDomain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, domain.Kind, notFound.Kind)
		assert.Equal(t, id.String(), notFound.ID())
	})

	t.Run("invalid name leaves category unchanged", func(t *testing.T) {
		f := newFixture(t)
		category := categorytest.ACategory().WithName("Movie").Build()
		require.NoError(t, f.repo.Insert(context.Background(), category))
		handler := NewUpdateCategoryHandler(f.repo, f.uow, f.bus, nil)

		_, err := handler.Handle(context.Background(), UpdateCategoryCommand{ID: category.EntityID().String(), Name: strPtr("")})

		assert.ErrorIs(t, err, sharedDomain.ErrEntityValidation)
		stored, _, err := f.repo.Find(context.Background(), category.EntityID())
		require.NoError(t, err)
		assert.Equal(t, "Movie", stored.Name())
		assert.Empty(t, f.consumer.routingKeys())
	})
}
