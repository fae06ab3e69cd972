// Package dto holds the outward shapes of catalog use cases.
package dto

import (
	"time"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
)

// CategoryOutput is a category as returned to callers.
type CategoryOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCategoryOutput maps a category to its output shape.
func ToCategoryOutput(c *domain.Category) CategoryOutput {
	return CategoryOutput{
		ID:          c.EntityID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
