package domain

import "context"

// Repository defines the operations every storage backend provides.
type Repository[E Entity] interface {
	// Insert stores a new entity.
	Insert(ctx context.Context, entity E) error

	// BulkInsert stores entities in the given order.
	BulkInsert(ctx context.Context, entities []E) error

	// Update replaces the stored entity with the same identity.
	// Returns *NotFoundError when no such entity exists.
	Update(ctx context.Context, entity E) error

	// Delete removes the entity with id.
	// Returns *NotFoundError when no such entity exists.
	Delete(ctx context.Context, id Identifier) error

	// Find returns the entity with id; found is false when it does not exist.
	Find(ctx context.Context, id Identifier) (entity E, found bool, err error)

	// FindAll returns every stored entity.
	FindAll(ctx context.Context) ([]E, error)
}

// SearchableRepository is a Repository that supports filter, sort and paginate.
type SearchableRepository[E Entity, F any] interface {
	Repository[E]

	// SortableFields declares which fields Search may order by.
	SortableFields() []string

	// Search filters, sorts and paginates the collection, in that order.
	Search(ctx context.Context, params SearchParams[F]) (SearchResult[E], error)
}
