package domain

import "slices"

// AggregateRoot is an entity that records the events raised by its state
// changes until they are dispatched.
type AggregateRoot interface {
	Entity
	DomainEvents() []DomainEvent
	PullDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot keeps the pending events of an aggregate.
type BaseAggregateRoot struct {
	BaseEntity
	pending []DomainEvent
}

// NewBaseAggregateRoot creates an aggregate with a generated identity.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: NewBaseEntity()}
}

// RehydrateBaseAggregateRoot wraps a persisted entity. It starts with no
// pending events.
func RehydrateBaseAggregateRoot(entity BaseEntity) BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: entity}
}

// AddDomainEvent records event for the next dispatch.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.pending = append(a.pending, event)
}

// DomainEvents returns a copy of the pending events in the order raised.
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent {
	return slices.Clone(a.pending)
}

// PullDomainEvents returns the pending events and forgets them.
func (a *BaseAggregateRoot) PullDomainEvents() []DomainEvent {
	events := a.pending
	a.pending = nil
	return events
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.pending = nil
}
