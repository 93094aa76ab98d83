package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderops/internal/core/application/usecases/commands"
	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/model/reconciliation"
	"orderops/internal/core/ports"
)

type MockBackorderRepository struct{ mock.Mock }

func (m *MockBackorderRepository) Add(ctx context.Context, l *backorder.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockBackorderRepository) Update(ctx context.Context, l *backorder.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockBackorderRepository) Get(ctx context.Context, id kernel.UUID) (*backorder.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backorder.Line), args.Error(1)
}

func (m *MockBackorderRepository) GetBatchForUpdate(
	ctx context.Context, ids []kernel.UUID,
) ([]*backorder.Line, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backorder.Line), args.Error(1)
}

type MockBackorderUoW struct{ mock.Mock }

func (m *MockBackorderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackorderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackorderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackorderUoW) BackorderRepository() ports.BackorderRepository {
	args := m.Called()
	return args.Get(0).(ports.BackorderRepository)
}

type MockBackorderUoWFactory struct{ mock.Mock }

func (m *MockBackorderUoWFactory) Create() commands.BackorderUoW {
	args := m.Called()
	return args.Get(0).(commands.BackorderUoW)
}

type MockReconciliationRepository struct{ mock.Mock }

func (m *MockReconciliationRepository) Add(ctx context.Context, l *reconciliation.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockReconciliationRepository) Update(ctx context.Context, l *reconciliation.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockReconciliationRepository) Get(ctx context.Context, id kernel.UUID) (*reconciliation.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconciliation.Line), args.Error(1)
}

func (m *MockReconciliationRepository) GetBatchForUpdate(
	ctx context.Context, ids []kernel.UUID,
) ([]*reconciliation.Line, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reconciliation.Line), args.Error(1)
}

type MockReconciliationUoW struct{ mock.Mock }

func (m *MockReconciliationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconciliationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconciliationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconciliationUoW) ReconciliationRepository() ports.ReconciliationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReconciliationRepository)
}

type MockReconciliationUoWFactory struct{ mock.Mock }

func (m *MockReconciliationUoWFactory) Create() commands.ReconciliationUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconciliationUoW)
}

type MockDiscountLineRepository struct{ mock.Mock }

func (m *MockDiscountLineRepository) Add(ctx context.Context, l *discount.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockDiscountLineRepository) Update(ctx context.Context, l *discount.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockDiscountLineRepository) Get(ctx context.Context, id kernel.UUID) (*discount.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Line), args.Error(1)
}

func (m *MockDiscountLineRepository) GetLinesWithUnsetDiscount(
	ctx context.Context, limit int,
) ([]*discount.Line, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discount.Line), args.Error(1)
}

type MockFactoryDefaultRepository struct{ mock.Mock }

func (m *MockFactoryDefaultRepository) Upsert(ctx context.Context, s *discount.FactoryDefault) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockFactoryDefaultRepository) Get(
	ctx context.Context, factoryID string, skuID string,
) (*discount.FactoryDefault, error) {
	args := m.Called(ctx, factoryID, skuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.FactoryDefault), args.Error(1)
}

type MockDiscountUoW struct{ mock.Mock }

func (m *MockDiscountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDiscountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDiscountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDiscountUoW) DiscountLineRepository() ports.DiscountLineRepository {
	args := m.Called()
	return args.Get(0).(ports.DiscountLineRepository)
}

func (m *MockDiscountUoW) FactoryDefaultRepository() ports.FactoryDefaultRepository {
	args := m.Called()
	return args.Get(0).(ports.FactoryDefaultRepository)
}

type MockDiscountUoWFactory struct{ mock.Mock }

func (m *MockDiscountUoWFactory) Create() commands.DiscountUoW {
	args := m.Called()
	return args.Get(0).(commands.DiscountUoW)
}
