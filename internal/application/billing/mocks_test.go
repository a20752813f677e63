package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	domain "github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Save(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveBatch(ctx context.Context, invs []*domain.Invoice) error {
	args := m.Called(ctx, invs)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByTenancyAndPeriod(ctx context.Context, tenancyID uuid.UUID, period ledger.Period) (*domain.Invoice, error) {
	args := m.Called(ctx, tenancyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByTenancy(ctx context.Context, tenancyID uuid.UUID) ([]*domain.Invoice, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.Invoice, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByPeriodAndTenancies(ctx context.Context, period ledger.Period, tenancyIDs []uuid.UUID) ([]*domain.Invoice, error) {
	args := m.Called(ctx, period, tenancyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*domain.Invoice], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*domain.Invoice]), args.Error(1)
}

func (m *MockInvoiceRepository) FindOverdueOpen(ctx context.Context, today time.Time) ([]domain.OverdueInvoice, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverdueInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) SumPeriodTotals(ctx context.Context, period ledger.Period) (domain.PeriodTotals, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(domain.PeriodTotals), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of billing.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*domain.Payment], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*domain.Payment]), args.Error(1)
}

func (m *MockPaymentRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*domain.Payment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumByTenant(ctx context.Context, tenantID uuid.UUID) (valueobject.Money, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

func (m *MockPaymentRepository) CreateWithInvoice(ctx context.Context, p *domain.Payment, inv *domain.Invoice) error {
	args := m.Called(ctx, p, inv)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeleteWithInvoice(ctx context.Context, p *domain.Payment, inv *domain.Invoice) error {
	args := m.Called(ctx, p, inv)
	return args.Error(0)
}

// MockTenantRepository is a mock implementation of letting.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Save(ctx context.Context, t *letting.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByPhone(ctx context.Context, phone string) (*letting.Tenant, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*letting.Tenant], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*letting.Tenant]), args.Error(1)
}

func (m *MockTenantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) Update(ctx context.Context, t *letting.Tenant) error {
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

func (m *MockTenancyRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.Tenancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindActiveByUnit(ctx context.Context, unitID uuid.UUID) (*letting.Tenancy, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*letting.Tenancy, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindAllActive(ctx context.Context) ([]*letting.Tenancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*letting.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*letting.Tenancy], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*letting.Tenancy]), args.Error(1)
}

func (m *MockTenancyRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenancyRepository) CreateMoveIn(ctx context.Context, tenancy *letting.Tenancy, unit *property.Unit, tenant *letting.Tenant, openingInvoice *domain.Invoice) error {
	args := m.Called(ctx, tenancy, unit, tenant, openingInvoice)
	return args.Error(0)
}

func (m *MockTenancyRepository) CompleteMoveOut(ctx context.Context, tenancy *letting.Tenancy, unit *property.Unit) error {
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
