package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// CloneFunc returns an independent copy of an entity.
type CloneFunc[E any] func(E) E

// Repository is an in-process store that keeps entities in insertion order.
// Entities are cloned on the way in and on the way out, so callers never
// hold a reference to stored state.
type Repository[E domain.Entity] struct {
	kind  string
	clone CloneFunc[E]

	mu       sync.RWMutex
	entities []E
}

// NewRepository creates an empty store. kind names the entity in errors.
// A nil clone stores entities as given.
func NewRepository[E domain.Entity](kind string, clone CloneFunc[E]) *Repository[E] {
	if clone == nil {
		clone = func(e E) E { return e }
	}
	return &Repository[E]{kind: kind, clone: clone}
}

// Kind returns the entity kind reported in errors.
func (r *Repository[E]) Kind() string {
	return r.kind
}

// Insert appends entity to the store.
// Returns *AlreadyExistsError when the identity is already stored.
func (r *Repository[E]) Insert(ctx context.Context, entity E) error {
	return r.BulkInsert(ctx, []E{entity})
}

// BulkInsert appends entities in the given order, all or none.
func (r *Repository[E]) BulkInsert(_ context.Context, entities []E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, entity := range entities {
		id := entity.EntityID()
		duplicate := slices.ContainsFunc(entities[:i], func(e E) bool {
			return e.EntityID().Equals(id)
		})
		if duplicate || r.indexOf(id) >= 0 {
			return domain.NewAlreadyExistsError(r.kind, id)
		}
	}
	for _, entity := range entities {
		r.entities = append(r.entities, r.clone(entity))
	}
	return nil
}

// Update replaces the entity with the same identity, keeping its position.
func (r *Repository[E]) Update(_ context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(entity.EntityID())
	if idx < 0 {
		return domain.NewNotFoundError(r.kind, entity.EntityID())
	}
	r.entities[idx] = r.clone(entity)
	return nil
}

// Delete removes the entity with id.
func (r *Repository[E]) Delete(_ context.Context, id domain.Identifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.NewNotFoundError(r.kind, id)
	}
	r.entities = slices.Delete(r.entities, idx, idx+1)
	return nil
}

// Find returns the entity with id.
func (r *Repository[E]) Find(_ context.Context, id domain.Identifier) (E, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		var zero E
		return zero, false, nil
	}
	return r.clone(r.entities[idx]), true, nil
}

// FindAll returns copies of the stored entities in insertion order.
func (r *Repository[E]) FindAll(_ context.Context) ([]E, error) {
	return r.snapshot(), nil
}

// Len returns the number of stored entities.
func (r *Repository[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

func (r *Repository[E]) snapshot() []E {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]E, len(r.entities))
	for i, e := range r.entities {
		out[i] = r.clone(e)
	}
	return out
}

func (r *Repository[E]) indexOf(id domain.Identifier) int {
	if id.IsZero() {
		return -1
	}
	return slices.IndexFunc(r.entities, func(e E) bool {
		return e.EntityID().Equals(id)
	})
}
