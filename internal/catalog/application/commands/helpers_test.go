package commands

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	"github.com/felixgeelhaar/catalog/internal/catalog/infrastructure/persistence"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/inmemory"
)

// capturingConsumer records every category event delivered by the bus.
type capturingConsumer struct {
	mu     sync.Mutex
	events []*sharedDomain.EventEnvelope
}

func (c *capturingConsumer) EventTypes() []string { return domain.RoutingKeys() }

func (c *capturingConsumer) Handle(_ context.Context, event *sharedDomain.EventEnvelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *capturingConsumer) routingKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, len(c.events))
	for i, e := range c.events {
		keys[i] = e.RoutingKey
	}
	return keys
}

type fixture struct {
	repo     *persistence.InMemoryCategoryRepository
	uow      *inmemory.UnitOfWork
	bus      *eventbus.InProcessEventBus
	consumer *capturingConsumer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := eventbus.NewInProcessEventBus(nil)
	consumer := &capturingConsumer{}
	bus.RegisterConsumer(consumer)
	return &fixture{
		repo:     persistence.NewInMemoryCategoryRepository(),
		uow:      inmemory.NewUnitOfWork(),
		bus:      bus,
		consumer: consumer,
	}
}

// mockCategoryRepo is a mock implementation of domain.Repository.
type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Insert(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) BulkInsert(ctx context.Context, categories []*domain.Category) error {
	return m.Called(ctx, categories).Error(0)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id sharedDomain.Identifier) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepo) Find(ctx context.Context, id sharedDomain.Identifier) (*domain.Category, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Category), args.Bool(1), args.Error(2)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) SortableFields() []string {
	return domain.Sortable.Fields
}

func (m *mockCategoryRepo) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.SearchResult), args.Error(1)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
