package domain

import (
	"fmt"
	"time"

	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// Kind names the category aggregate in errors and events.
const Kind = "Category"

// MaxNameLength is the longest allowed category name, in characters.
const MaxNameLength = 255

// Category groups catalog items under a name.
type Category struct {
	sharedDomain.BaseAggregateRoot
	name        string
	description *string
	isActive    bool
}

// CreateCategoryCommand holds the input for NewCategory.
// A nil IsActive creates an active category.
type CreateCategoryCommand struct {
	Name        string
	Description *string
	IsActive    *bool
}

// Properties is the full state of a category. Zero ID and CreatedAt are
// generated; a nil IsActive means active.
type Properties struct {
	ID          sharedDomain.Identifier
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New builds a category from props without validating it.
func New(props Properties) *Category {
	id := props.ID
	if id.IsZero() {
		id = sharedDomain.NewIdentifier()
	}
	createdAt := props.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := props.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	isActive := true
	if props.IsActive != nil {
		isActive = *props.IsActive
	}

	return &Category{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(
			sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		),
		name:        props.Name,
		description: cloneString(props.Description),
		isActive:    isActive,
	}
}

// NewCategory creates and validates a category and records CategoryCreated.
func NewCategory(cmd CreateCategoryCommand) (*Category, error) {
	category := New(Properties{
		Name:        cmd.Name,
		Description: cmd.Description,
		IsActive:    cmd.IsActive,
	})
	if err := Validate(category); err != nil {
		return nil, err
	}

	category.AddDomainEvent(NewCategoryCreated(category))
	return category, nil
}

// RehydrateCategory rebuilds a persisted category and checks it still
// satisfies its invariants.
func RehydrateCategory(props Properties) (*Category, error) {
	category := New(props)
	if err := Validate(category); err != nil {
		return nil, fmt.Errorf("load %s %s: %w", Kind, category.EntityID(), err)
	}
	return category, nil
}

func (c *Category) Name() string { return c.name }
func (c *Category) IsActive() bool { return c.isActive }

// Description returns a copy of the description, or nil when unset.
func (c *Category) Description() *string { return cloneString(c.description) }

// ChangeName renames the category. An invalid name leaves it unchanged.
func (c *Category) ChangeName(name string) error {
	candidate := c.snapshot()
	candidate.name = name
	if err := Validate(candidate); err != nil {
		return err
	}

	c.name = name
	c.changed("name")
	return nil
}

// ChangeDescription replaces the description; nil clears it.
func (c *Category) ChangeDescription(description *string) error {
	candidate := c.snapshot()
	candidate.description = cloneString(description)
	if err := Validate(candidate); err != nil {
		return err
	}

	c.description = cloneString(description)
	c.changed("description")
	return nil
}

// Activate marks the category active.
func (c *Category) Activate() {
	if c.isActive {
		return
	}
	c.isActive = true
	c.changed("is_active")
}

// Deactivate marks the category inactive.
func (c *Category) Deactivate() {
	if !c.isActive {
		return
	}
	c.isActive = false
	c.changed("is_active")
}

// MarkDeleted records CategoryDeleted. The caller removes it from storage.
func (c *Category) MarkDeleted() {
	c.AddDomainEvent(NewCategoryDeleted(c))
}

// Clone returns an independent copy of the category's state without its
// pending events.
func (c *Category) Clone() *Category {
	return c.snapshot()
}

func (c *Category) changed(field string) {
	c.Touch()
	c.AddDomainEvent(NewCategoryUpdated(c, field))
}

func (c *Category) snapshot() *Category {
	return &Category{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(c.BaseEntity),
		name:              c.name,
		description:       cloneString(c.description),
		isActive:          c.isActive,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
