// Package categorytest builds categories with random or chosen state for tests.
package categorytest

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// Builder creates one or more categories. Every field has a factory that
// receives the index of the category being built; fields without an explicit
// value get random data, an ID generated by the domain and the current time.
type Builder struct {
	count       int
	faker       *gofakeit.Faker
	id          func(i int) sharedDomain.Identifier
	name        func(i int) string
	description func(i int) *string
	isActive    func(i int) bool
	createdAt   func(i int) time.Time
}

// ACategory returns a builder for a single category.
func ACategory() *Builder {
	return TheCategories(1)
}

// TheCategories returns a builder for count categories.
func TheCategories(count int) *Builder {
	if count < 1 {
		count = 1
	}
	b := &Builder{count: count, faker: gofakeit.New(0)}
	b.name = func(int) string { return b.faker.Word() }
	b.description = func(int) *string {
		d := b.faker.Sentence(10)
		return &d
	}
	b.isActive = func(int) bool { return true }
	return b
}

// WithSeed makes the random data reproducible.
func (b *Builder) WithSeed(seed uint64) *Builder {
	b.faker = gofakeit.New(seed)
	return b
}

func (b *Builder) WithID(id sharedDomain.Identifier) *Builder {
	return b.WithIDFunc(func(int) sharedDomain.Identifier { return id })
}

func (b *Builder) WithIDFunc(fn func(i int) sharedDomain.Identifier) *Builder {
	b.id = fn
	return b
}

func (b *Builder) WithName(name string) *Builder {
	return b.WithNameFunc(func(int) string { return name })
}

func (b *Builder) WithNameFunc(fn func(i int) string) *Builder {
	b.name = fn
	return b
}

// WithInvalidNameTooLong sets a name one character over the limit.
func (b *Builder) WithInvalidNameTooLong() *Builder {
	return b.WithName(strings.Repeat("a", domain.MaxNameLength+1))
}

// WithDescription sets the description; nil leaves it unset.
func (b *Builder) WithDescription(description *string) *Builder {
	return b.WithDescriptionFunc(func(int) *string { return description })
}

func (b *Builder) WithDescriptionFunc(fn func(i int) *string) *Builder {
	b.description = fn
	return b
}

func (b *Builder) Activate() *Builder {
	b.isActive = func(int) bool { return true }
	return b
}

func (b *Builder) Deactivate() *Builder {
	b.isActive = func(int) bool { return false }
	return b
}

func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	return b.WithCreatedAtFunc(func(int) time.Time { return t })
}

func (b *Builder) WithCreatedAtFunc(fn func(i int) time.Time) *Builder {
	b.createdAt = fn
	return b
}

// Build returns the first category. The result is not validated, so
// builders set up with invalid values still produce a category.
func (b *Builder) Build() *domain.Category {
	return b.build(0)
}

// BuildMany returns every category in index order.
func (b *Builder) BuildMany() []*domain.Category {
	categories := make([]*domain.Category, b.count)
	for i := range categories {
		categories[i] = b.build(i)
	}
	return categories
}

func (b *Builder) build(i int) *domain.Category {
	props := domain.Properties{
		Name:        b.name(i),
		Description: b.description(i),
	}
	active := b.isActive(i)
	props.IsActive = &active
	if b.id != nil {
		props.ID = b.id(i)
	}
	if b.createdAt != nil {
		props.CreatedAt = b.createdAt(i)
	}
	return domain.New(props)
}
