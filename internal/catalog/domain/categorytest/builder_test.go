package categorytest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

func TestACategory_RandomDefaults(t *testing.T) {
	category := ACategory().Build()

	assert.False(t, category.EntityID().IsZero())
	assert.NotEmpty(t, category.Name())
	require.NotNil(t, category.Description())
	assert.NotEmpty(t, *category.Description())
	assert.True(t, category.IsActive())
	assert.False(t, category.CreatedAt().IsZero())
	assert.NoError(t, domain.Validate(category))
}

func TestBuilder_FixedValues(t *testing.T) {
	id := sharedDomain.NewIdentifier()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	description := "Feature films"

	category := ACategory().
		WithID(id).
		WithName("Movie").
		WithDescription(&description).
		Deactivate().
		WithCreatedAt(createdAt).
		Build()

	assert.True(t, id.Equals(category.EntityID()))
	assert.Equal(t, "Movie", category.Name())
	assert.Equal(t, &description, category.Description())
	assert.False(t, category.IsActive())
	assert.True(t, createdAt.Equal(category.CreatedAt()))
}

func TestBuilder_NilDescription(t *testing.T) {
	assert.Nil(t, ACategory().WithDescription(nil).Build().Description())
}

func TestTheCategories_PassesIndexToFactories(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	categories := TheCategories(3).
		WithNameFunc(func(i int) string { return fmt.Sprintf("name %d", i) }).
		WithDescriptionFunc(func(i int) *string {
			d := fmt.Sprintf("description %d", i)
			return &d
		}).
		WithCreatedAtFunc(func(i int) time.Time { return base.Add(time.Duration(i) * time.Second) }).
		BuildMany()

	require.Len(t, categories, 3)
	for i, category := range categories {
		assert.Equal(t, fmt.Sprintf("name %d", i), category.Name())
		assert.Equal(t, fmt.Sprintf("description %d", i), *category.Description())
		assert.True(t, base.Add(time.Duration(i)*time.Second).Equal(category.CreatedAt()))
	}
	assert.False(t, categories[0].EntityID().Equals(categories[1].EntityID()))
}

func TestTheCategories_IDFactoryCalledPerCategory(t *testing.T) {
	calls := 0
	TheCategories(2).WithIDFunc(func(int) sharedDomain.Identifier {
		calls++
		return sharedDomain.NewIdentifier()
	}).BuildMany()
	assert.Equal(t, 2, calls)
}

func TestTheCategories_MinimumOne(t *testing.T) {
	assert.Len(t, TheCategories(0).BuildMany(), 1)
}

func TestBuilder_WithInvalidNameTooLong(t *testing.T) {
	category := ACategory().WithInvalidNameTooLong().Build()
	assert.Equal(t, strings.Repeat("a", 256), category.Name())

	err := domain.Validate(category)
	assert.ErrorIs(t, err, sharedDomain.ErrEntityValidation)
}

func TestBuilder_WithSeedIsReproducible(t *testing.T) {
	first := ACategory().WithSeed(42).Build()
	second := ACategory().WithSeed(42).Build()
	assert.Equal(t, first.Name(), second.Name())
	assert.Equal(t, first.Description(), second.Description())
}

func TestBuilder_ActivateOverridesDeactivate(t *testing.T) {
	assert.True(t, ACategory().Deactivate().Activate().Build().IsActive())
}
