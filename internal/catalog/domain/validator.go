package domain

import sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"

type categoryRules struct {
	Name     string `json:"name" validate:"required,max=255"`
	IsActive bool   `json:"is_active" validate:"boolean"`
}

// NewValidator returns a validator for the category invariants.
func NewValidator() *sharedDomain.FieldValidator[*Category] {
	return sharedDomain.NewFieldValidator(func(c *Category) any {
		return categoryRules{
			Name:     c.name,
			IsActive: c.isActive,
		}
	})
}

// Validate checks c and returns an *EntityValidationError listing every
// violated rule.
func Validate(c *Category) error {
	return sharedDomain.Validate[*Category](NewValidator(), c)
}
