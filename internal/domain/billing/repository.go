package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// OverdueInvoice is a read model row for arrears reporting: an open invoice
// past its due date joined with the tenant, unit and property it belongs to.
type OverdueInvoice struct {
	InvoiceID    uuid.UUID
	TenancyID    uuid.UUID
	TenantID     uuid.UUID
	TenantName   string
	UnitNumber   string
	PropertyID   uuid.UUID
	PropertyName string
	DueDate      time.Time
	TotalAmount  valueobject.Money
	PaidAmount   valueobject.Money
}

// Outstanding returns the unpaid remainder of the row, floored at zero
func (r OverdueInvoice) Outstanding() valueobject.Money {
	out := r.TotalAmount.Subtract(r.PaidAmount)
	if out.IsNegative() {
		return valueobject.Zero()
	}
	return out
}

// PeriodTotals aggregates billing for one period
type PeriodTotals struct {
	Billed valueobject.Money
	Paid   valueobject.Money
}

// InvoiceRepository defines the persistence interface for invoices.
// A unique index on (tenancy_id, period) backs the duplicate checks.
type InvoiceRepository interface {
	Save(ctx context.Context, inv *Invoice) error
	SaveBatch(ctx context.Context, invs []*Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByTenancyAndPeriod(ctx context.Context, tenancyID uuid.UUID, period ledger.Period) (*Invoice, error)
	FindByTenancy(ctx context.Context, tenancyID uuid.UUID) ([]*Invoice, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Invoice, error)
	FindByPeriodAndTenancies(ctx context.Context, period ledger.Period, tenancyIDs []uuid.UUID) ([]*Invoice, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Invoice], error)

	// FindOverdueOpen returns unsettled invoices past due as of today,
	// joined with tenancy context for arrears reporting.
	FindOverdueOpen(ctx context.Context, today time.Time) ([]OverdueInvoice, error)

	// SumPeriodTotals aggregates billed and paid amounts over one period.
	SumPeriodTotals(ctx context.Context, period ledger.Period) (PeriodTotals, error)

	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the persistence interface for payments.
// CreateWithInvoice and DeleteWithInvoice keep payment rows and the parent
// invoice's PaidAmount in sync within one transaction.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Payment], error)

	// FindBetween returns payments by payment date, oldest first. A zero
	// bound is open-ended.
	FindBetween(ctx context.Context, from, to time.Time) ([]*Payment, error)

	// SumByTenant totals every payment recorded for the tenant, whether
	// allocated to an invoice or not.
	SumByTenant(ctx context.Context, tenantID uuid.UUID) (valueobject.Money, error)

	// CreateWithInvoice persists the payment and, when inv is non-nil, the
	// updated invoice atomically.
	CreateWithInvoice(ctx context.Context, p *Payment, inv *Invoice) error

	// DeleteWithInvoice removes the payment and, when inv is non-nil,
	// persists the rolled-back invoice atomically.
	DeleteWithInvoice(ctx context.Context, p *Payment, inv *Invoice) error
}
