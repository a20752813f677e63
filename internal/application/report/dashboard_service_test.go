package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Snapshot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	clock := ledger.FixedClock{T: now}

	kes := valueobject.NewMoneyFromFloat

	propertyRepo := new(MockPropertyRepository)
	unitRepo := new(MockUnitRepository)
	tenancyRepo := new(MockTenancyRepository)
	invoiceRepo := new(MockInvoiceRepository)
	svc := NewDashboardService(propertyRepo, unitRepo, tenancyRepo, invoiceRepo, clock)

	// Only the active portfolio counts; a deactivated property is excluded.
	propertyRepo.On("CountActive", ctx).Return(int64(3), nil)
	unitRepo.On("Count", ctx).Return(int64(24), nil)
	unitRepo.On("CountByStatus", ctx, property.UnitStatusOccupied).Return(int64(20), nil)
	unitRepo.On("CountByStatus", ctx, property.UnitStatusVacant).Return(int64(4), nil)
	tenancyRepo.On("CountActive", ctx).Return(int64(20), nil)
	invoiceRepo.On("SumPeriodTotals", ctx, ledger.Period("2026-03")).Return(billing.PeriodTotals{
		Billed: kes(500000),
		Paid:   kes(320000),
	}, nil)

	sameTenant := uuid.New()
	invoiceRepo.On("FindOverdueOpen", ctx, now).Return([]billing.OverdueInvoice{
		{TenantID: sameTenant, DueDate: now.AddDate(0, 0, -40), TotalAmount: kes(25000), PaidAmount: kes(10000)},
		{TenantID: sameTenant, DueDate: now.AddDate(0, 0, -10), TotalAmount: kes(25000), PaidAmount: kes(0)},
		{TenantID: uuid.New(), DueDate: now.AddDate(0, 0, -70), TotalAmount: kes(18000), PaidAmount: kes(0)},
		// Overpaid row must not count toward arrears or tenant tally
		{TenantID: uuid.New(), DueDate: now.AddDate(0, 0, -5), TotalAmount: kes(20000), PaidAmount: kes(22000)},
	}, nil)

	m, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), m.TotalProperties)
	assert.Equal(t, int64(24), m.TotalUnits)
	assert.Equal(t, int64(20), m.OccupiedUnits)
	assert.Equal(t, int64(4), m.VacantUnits)
	assert.Equal(t, int64(20), m.ActiveTenancies)
	assert.Equal(t, "500000.00", m.RentDueThisMonth.StringFixed())
	assert.Equal(t, "320000.00", m.RentReceivedThisMonth.StringFixed())
	assert.Equal(t, "58000.00", m.TotalArrears.StringFixed())
	assert.Equal(t, 2, m.TenantsInArrears)
}
