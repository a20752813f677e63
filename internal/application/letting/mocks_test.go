package letting

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	domain "github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockTenantRepository is a mock implementation of letting.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Save(ctx context.Context, t *domain.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*domain.Tenant], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*domain.Tenant]), args.Error(1)
}

func (m *MockTenantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTenancyRepository is a mock implementation of letting.TenancyRepository
type MockTenancyRepository struct {
	mock.Mock
}

func (m *MockTenancyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tenancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindActiveByUnit(ctx context.Context, unitID uuid.UUID) (*domain.Tenancy, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Tenancy, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindAllActive(ctx context.Context) ([]*domain.Tenancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*domain.Tenancy], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*domain.Tenancy]), args.Error(1)
}

func (m *MockTenancyRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenancyRepository) CreateMoveIn(ctx context.Context, tenancy *domain.Tenancy, unit *property.Unit, tenant *domain.Tenant, openingInvoice *billing.Invoice) error {
	args := m.Called(ctx, tenancy, unit, tenant, openingInvoice)
	return args.Error(0)
}

func (m *MockTenancyRepository) CompleteMoveOut(ctx context.Context, tenancy *domain.Tenancy, unit *property.Unit) error {
	args := m.Called(ctx, tenancy, unit)
	return args.Error(0)
}

// MockUnitRepository is a mock implementation of property.UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) Save(ctx context.Context, u *property.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByPropertyAndNumber(ctx context.Context, propertyID uuid.UUID, unitNumber string) (*property.Unit, error) {
	args := m.Called(ctx, propertyID, unitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	args := m.Called(ctx, propertyID, filter)
	return args.Get(0).(shared.Paginated[*property.Unit]), args.Error(1)
}

func (m *MockUnitRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*property.Unit]), args.Error(1)
}

func (m *MockUnitRepository) CountByStatus(ctx context.Context, status property.UnitStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitRepository) Update(ctx context.Context, u *property.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
