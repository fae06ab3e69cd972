package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	tests := []struct {
		name     string
		category *Category
		valid    bool
		report   map[string][]string
	}{
		{
			name:     "valid",
			category: New(Properties{Name: "Movie"}),
			valid:    true,
		},
		{
			name:     "inactive is valid",
			category: New(Properties{Name: "Movie", IsActive: boolPtr(false)}),
			valid:    true,
		},
		{
			name:     "empty name",
			category: New(Properties{Name: ""}),
			report:   map[string][]string{"name": {"name should not be empty"}},
		},
		{
			name:     "name too long",
			category: New(Properties{Name: strings.Repeat("a", 256)}),
			report:   map[string][]string{"name": {"name must be shorter than or equal to 255 characters"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()

			ok := v.Validate(tt.category)

			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Empty(t, v.Errors())
				return
			}
			for field, messages := range tt.report {
				assert.Equal(t, messages, v.Errors()[field])
			}
		})
	}
}
