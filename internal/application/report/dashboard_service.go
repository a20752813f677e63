package report

import (
	"context"

	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// DashboardService aggregates the landing-page metrics
type DashboardService struct {
	propertyRepo property.Repository
	unitRepo     property.UnitRepository
	tenancyRepo  letting.TenancyRepository
	invoiceRepo  billing.InvoiceRepository
	clock        ledger.Clock
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	propertyRepo property.Repository,
	unitRepo property.UnitRepository,
	tenancyRepo letting.TenancyRepository,
	invoiceRepo billing.InvoiceRepository,
	clock ledger.Clock,
) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		tenancyRepo:  tenancyRepo,
		invoiceRepo:  invoiceRepo,
		clock:        clock,
	}
}

// Metrics is the dashboard snapshot. TotalProperties counts only the
// active portfolio; deactivated properties are excluded.
type Metrics struct {
	TotalProperties       int64             `json:"total_properties"`
	TotalUnits            int64             `json:"total_units"`
	OccupiedUnits         int64             `json:"occupied_units"`
	VacantUnits           int64             `json:"vacant_units"`
	ActiveTenancies       int64             `json:"active_tenancies"`
	RentDueThisMonth      valueobject.Money `json:"rent_due_this_month"`
	RentReceivedThisMonth valueobject.Money `json:"rent_received_this_month"`
	TotalArrears          valueobject.Money `json:"total_arrears"`
	TenantsInArrears      int               `json:"tenants_in_arrears"`
}

// Snapshot computes the dashboard metrics as of now. Rent figures cover the
// current calendar month; arrears are recomputed from raw invoice amounts
// and due dates.
func (s *DashboardService) Snapshot(ctx context.Context) (*Metrics, error) {
	now := s.clock.Now()
	m := &Metrics{}

	var err error
	if m.TotalProperties, err = s.propertyRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if m.TotalUnits, err = s.unitRepo.Count(ctx); err != nil {
		return nil, err
	}
	if m.OccupiedUnits, err = s.unitRepo.CountByStatus(ctx, property.UnitStatusOccupied); err != nil {
		return nil, err
	}
	if m.VacantUnits, err = s.unitRepo.CountByStatus(ctx, property.UnitStatusVacant); err != nil {
		return nil, err
	}
	if m.ActiveTenancies, err = s.tenancyRepo.CountActive(ctx); err != nil {
		return nil, err
	}

	totals, err := s.invoiceRepo.SumPeriodTotals(ctx, ledger.PeriodOf(now))
	if err != nil {
		return nil, err
	}
	m.RentDueThisMonth = totals.Billed
	m.RentReceivedThisMonth = totals.Paid

	overdue, err := s.invoiceRepo.FindOverdueOpen(ctx, now)
	if err != nil {
		return nil, err
	}
	arrears := valueobject.Zero()
	tenants := make(map[string]struct{})
	for _, row := range overdue {
		owed := row.Outstanding()
		if !owed.IsPositive() {
			continue
		}
		arrears = arrears.Add(owed)
		tenants[row.TenantID.String()] = struct{}{}
	}
	m.TotalArrears = arrears
	m.TenantsInArrears = len(tenants)

	return m, nil
}
