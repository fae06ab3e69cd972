package domain

import (
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

const (
	RoutingKeyCreated = "catalog.category.created"
	RoutingKeyUpdated = "catalog.category.updated"
	RoutingKeyDeleted = "catalog.category.deleted"
)

// RoutingKeys lists every event type a category emits.
func RoutingKeys() []string {
	return []string{RoutingKeyCreated, RoutingKeyUpdated, RoutingKeyDeleted}
}

// CategoryCreated is emitted when a category is created.
type CategoryCreated struct {
	sharedDomain.BaseEvent
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

// NewCategoryCreated creates a CategoryCreated event.
func NewCategoryCreated(c *Category) *CategoryCreated {
	return &CategoryCreated{
		BaseEvent:   sharedDomain.NewBaseEvent(c.EntityID(), Kind, RoutingKeyCreated),
		CategoryID:  c.EntityID().String(),
		Name:        c.name,
		Description: c.Description(),
		IsActive:    c.isActive,
	}
}

// CategoryUpdated is emitted each time a field of a category changes.
type CategoryUpdated struct {
	sharedDomain.BaseEvent
	CategoryID  string  `json:"category_id"`
	Field       string  `json:"field"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

// NewCategoryUpdated creates a CategoryUpdated event for field.
func NewCategoryUpdated(c *Category, field string) *CategoryUpdated {
	return &CategoryUpdated{
		BaseEvent:   sharedDomain.NewBaseEvent(c.EntityID(), Kind, RoutingKeyUpdated),
		CategoryID:  c.EntityID().String(),
		Field:       field,
		Name:        c.name,
		Description: c.Description(),
		IsActive:    c.isActive,
	}
}

// CategoryDeleted is emitted when a category is removed.
type CategoryDeleted struct {
	sharedDomain.BaseEvent
	CategoryID string `json:"category_id"`
}

// NewCategoryDeleted creates a CategoryDeleted event.
func NewCategoryDeleted(c *Category) *CategoryDeleted {
	return &CategoryDeleted{
		BaseEvent:  sharedDomain.NewBaseEvent(c.EntityID(), Kind, RoutingKeyDeleted),
		CategoryID: c.EntityID().String(),
	}
}
