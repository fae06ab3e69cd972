package domain

import (
	"reflect"
	"time"
)

// Entity represents a domain object distinguished by identity.
type Entity interface {
	EntityID() Identifier
	CreatedAt() time.Time
	UpdatedAt() time.Time
	Equals(other Entity) bool
}

// BaseEntity provides common entity functionality.
type BaseEntity struct {
	id        Identifier
	createdAt time.Time
	updatedAt time.Time
}

// NewBaseEntity creates a new entity with generated ID and current timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		id:        NewIdentifier(),
		createdAt: now,
		updatedAt: now,
	}
}

// NewBaseEntityWithID creates a new entity with a specific ID.
func NewBaseEntityWithID(id Identifier) BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

// RehydrateBaseEntity recreates an entity from persisted state.
func RehydrateBaseEntity(id Identifier, createdAt, updatedAt time.Time) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e BaseEntity) EntityID() Identifier { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }

// Touch updates the updatedAt timestamp.
func (e *BaseEntity) Touch() {
	e.updatedAt = time.Now().UTC()
}

// Equals reports whether other is the same entity. Only identity is compared:
// two entities with equal identifiers and different state are still equal.
func (e BaseEntity) Equals(other Entity) bool {
	if isNilEntity(other) {
		return false
	}
	otherID := other.EntityID()
	if e.id.IsZero() || otherID.IsZero() {
		return false
	}
	return e.id.Equals(otherID)
}

func isNilEntity(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
