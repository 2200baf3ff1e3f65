package commands_test

import (
	"context"
	"time"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextOrderID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderRepository) NextStageID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStageID(ctx context.Context, stageID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, stageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByRequester(ctx context.Context, id kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByFulfiller(ctx context.Context, id kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOverdue(ctx context.Context, today time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOfferingRepository struct{ mock.Mock }

func (m *MockOfferingRepository) Save(ctx context.Context, o *catalog.Offering) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferingRepository) Get(ctx context.Context, fulfillerID kernel.ID, st kernel.ServiceType) (*catalog.Offering, error) {
	args := m.Called(ctx, fulfillerID, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Offering), args.Error(1)
}

func (m *MockOfferingRepository) Delete(ctx context.Context, fulfillerID kernel.ID, st kernel.ServiceType) error {
	args := m.Called(ctx, fulfillerID, st)
	return args.Error(0)
}

func (m *MockOfferingRepository) ListByFulfiller(ctx context.Context, fulfillerID kernel.ID) ([]*catalog.Offering, error) {
	args := m.Called(ctx, fulfillerID)
	return args.Get(0).([]*catalog.Offering), args.Error(1)
}

func (m *MockOfferingRepository) ListByServiceType(ctx context.Context, st kernel.ServiceType) ([]*catalog.Offering, error) {
	args := m.Called(ctx, st)
	return args.Get(0).([]*catalog.Offering), args.Error(1)
}

type MockOutsourcingRepository struct{ mock.Mock }

func (m *MockOutsourcingRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOutsourcingRepository) Add(ctx context.Context, r *outsourcing.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockOutsourcingRepository) Update(ctx context.Context, r *outsourcing.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockOutsourcingRepository) Get(ctx context.Context, id kernel.ID) (*outsourcing.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outsourcing.Request), args.Error(1)
}

func (m *MockOutsourcingRepository) GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*outsourcing.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outsourcing.Request), args.Error(1)
}

func (m *MockOutsourcingRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*outsourcing.Request, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*outsourcing.Request), args.Error(1)
}

func (m *MockOutsourcingRepository) ListByRequesting(ctx context.Context, id kernel.ID) ([]*outsourcing.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*outsourcing.Request), args.Error(1)
}

func (m *MockOutsourcingRepository) ListByExecuting(ctx context.Context, id kernel.ID) ([]*outsourcing.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*outsourcing.Request), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OfferingRepository() ports.OfferingRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferingRepository)
}

func (m *MockUoW) OutsourcingRepository() ports.OutsourcingRepository {
	args := m.Called()
	return args.Get(0).(ports.OutsourcingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOutsourcingUoWFactory struct{ mock.Mock }

func (m *MockOutsourcingUoWFactory) Create() commands.OutsourcingUoW {
	args := m.Called()
	return args.Get(0).(commands.OutsourcingUoW)
}

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Lock(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
