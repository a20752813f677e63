package billing

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// ArrearsService computes balances and overdue debt. It always works from
// raw due dates and amounts rather than trusting stored invoice statuses,
// so a stale status cache can never hide arrears.
type ArrearsService struct {
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
	clock       ledger.Clock
}

// NewArrearsService creates a new ArrearsService
func NewArrearsService(
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	clock ledger.Clock,
) *ArrearsService {
	return &ArrearsService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clock:       clock,
	}
}

// TenantBalance summarises one tenant's financial position
type TenantBalance struct {
	TotalBilled         valueobject.Money `json:"total_billed"`
	TotalPaid           valueobject.Money `json:"total_paid"`
	Balance             valueobject.Money `json:"balance"`
	Arrears             valueobject.Money `json:"arrears"`
	DaysOverdue         int               `json:"days_overdue"`
	OverdueInvoiceCount int               `json:"overdue_invoice_count"`
}

// TenantBalance computes a tenant's position across all their tenancies.
// TotalPaid covers every payment the tenant has made, allocated to an
// invoice or not. Balance is billed minus paid and may go negative; Arrears
// only counts unsettled invoices past due, and DaysOverdue is measured from
// the oldest of those.
func (s *ArrearsService) TenantBalance(ctx context.Context, tenantID uuid.UUID) (*TenantBalance, error) {
	invoices, err := s.invoiceRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	totalPaid, err := s.paymentRepo.SumByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	totalBilled := valueobject.Zero()
	arrears := valueobject.Zero()
	overdueCount := 0
	var oldestDue time.Time

	for _, inv := range invoices {
		totalBilled = totalBilled.Add(inv.TotalAmount)
		if ledger.IsOverdue(inv.DueDate, today) && !inv.IsSettled() {
			arrears = arrears.Add(inv.Outstanding())
			overdueCount++
			if oldestDue.IsZero() || inv.DueDate.Before(oldestDue) {
				oldestDue = inv.DueDate
			}
		}
	}

	daysOverdue := 0
	if overdueCount > 0 {
		daysOverdue = ledger.DaysOverdue(oldestDue, today)
	}

	return &TenantBalance{
		TotalBilled:         totalBilled,
		TotalPaid:           totalPaid,
		Balance:             totalBilled.Subtract(totalPaid),
		Arrears:             arrears,
		DaysOverdue:         daysOverdue,
		OverdueInvoiceCount: overdueCount,
	}, nil
}

// ArrearsFilter narrows the arrears report. A zero value means no filter:
// MinDays keeps only tenants whose oldest overdue invoice is at least that
// many days past due, PropertyID restricts to one property.
type ArrearsFilter struct {
	MinDays    int
	PropertyID uuid.UUID
}

// TenantArrears is one row of the arrears report
type TenantArrears struct {
	TenantID      uuid.UUID         `json:"tenant_id"`
	TenantName    string            `json:"tenant_name"`
	UnitNumber    string            `json:"unit_number"`
	PropertyName  string            `json:"property_name"`
	ArrearsAmount valueobject.Money `json:"arrears_amount"`
	DaysOverdue   int               `json:"days_overdue"`
	InvoiceCount  int               `json:"invoice_count"`
}

// TenantsInArrears returns every tenant owing on overdue invoices, one row
// per tenant, sorted by amount owed descending. DaysOverdue per tenant is
// taken from their oldest overdue invoice.
func (s *ArrearsService) TenantsInArrears(ctx context.Context, filter ArrearsFilter) ([]TenantArrears, error) {
	today := s.clock.Now()
	rows, err := s.invoiceRepo.FindOverdueOpen(ctx, today)
	if err != nil {
		return nil, err
	}

	byTenant := make(map[uuid.UUID]*TenantArrears)
	var order []uuid.UUID
	for _, row := range rows {
		if filter.PropertyID != uuid.Nil && row.PropertyID != filter.PropertyID {
			continue
		}
		owed := row.Outstanding()
		if !owed.IsPositive() {
			continue
		}
		days := ledger.DaysOverdue(row.DueDate, today)

		entry, ok := byTenant[row.TenantID]
		if !ok {
			entry = &TenantArrears{
				TenantID:     row.TenantID,
				TenantName:   row.TenantName,
				UnitNumber:   row.UnitNumber,
				PropertyName: row.PropertyName,
			}
			byTenant[row.TenantID] = entry
			order = append(order, row.TenantID)
		}
		entry.ArrearsAmount = entry.ArrearsAmount.Add(owed)
		entry.InvoiceCount++
		if days > entry.DaysOverdue {
			entry.DaysOverdue = days
		}
	}

	result := make([]TenantArrears, 0, len(order))
	for _, id := range order {
		entry := byTenant[id]
		if entry.DaysOverdue < filter.MinDays {
			continue
		}
		result = append(result, *entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ArrearsAmount.GreaterThan(result[j].ArrearsAmount)
	})
	return result, nil
}
