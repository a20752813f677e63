package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// InvoiceService handles invoice creation and monthly bulk generation
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	tenancyRepo letting.TenancyRepository
	unitRepo    property.UnitRepository
	clock       ledger.Clock
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	tenancyRepo letting.TenancyRepository,
	unitRepo property.UnitRepository,
	clock ledger.Clock,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		tenancyRepo: tenancyRepo,
		unitRepo:    unitRepo,
		clock:       clock,
	}
}

// CreateInvoiceRequest represents a request to create a single invoice
type CreateInvoiceRequest struct {
	TenancyID         uuid.UUID
	Period            string
	DueDate           time.Time
	RentAmount        valueobject.Money
	AdditionalCharges valueobject.Money
	Description       string
}

// CreateInvoice creates one invoice for an active tenancy. The (tenancy,
// period) pair must not already be billed.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*billing.Invoice, error) {
	period, err := ledger.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	if req.DueDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Due date is required")
	}
	if req.AdditionalCharges.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Additional charges cannot be negative")
	}

	tenancy, err := s.tenancyRepo.FindByID(ctx, req.TenancyID)
	if err != nil {
		return nil, err
	}
	if !tenancy.IsActive() {
		return nil, shared.NewDomainError(shared.CodeTenancyInactive, "Cannot create invoice for inactive tenancy")
	}

	if _, err := s.invoiceRepo.FindByTenancyAndPeriod(ctx, tenancy.GetID(), period); err == nil {
		return nil, shared.NewDomainError(shared.CodeDuplicateInvoice,
			fmt.Sprintf("Invoice already exists for tenancy in period %s", period))
	} else if !isNotFound(err) {
		return nil, err
	}

	total := req.RentAmount.Add(req.AdditionalCharges)
	inv, err := billing.NewInvoice(tenancy.GetID(), period, req.DueDate, total, req.Description, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GenerateInvoicesRequest represents a request for bulk monthly generation
type GenerateInvoicesRequest struct {
	Period            string
	DueDate           time.Time
	AdditionalCharges valueobject.Money
}

// GenerateInvoicesResult reports the outcome of a bulk generation run
type GenerateInvoicesResult struct {
	Period  ledger.Period `json:"period"`
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
}

// GenerateInvoices bills every active tenancy for the period that does not
// already have an invoice for it. Rent is taken from each unit's current
// rent amount. Rerunning for the same period only creates what is missing,
// and a run where nothing is missing fails with ALL_INVOICES_EXIST.
func (s *InvoiceService) GenerateInvoices(ctx context.Context, req GenerateInvoicesRequest) (*GenerateInvoicesResult, error) {
	period, err := ledger.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	if req.DueDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Due date is required")
	}
	if req.AdditionalCharges.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Additional charges cannot be negative")
	}

	active, err := s.tenancyRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, shared.NewDomainError(shared.CodeNoActiveTenancies, "No active tenancies found")
	}

	ids := make([]uuid.UUID, len(active))
	for i, t := range active {
		ids[i] = t.GetID()
	}
	existing, err := s.invoiceRepo.FindByPeriodAndTenancies(ctx, period, ids)
	if err != nil {
		return nil, err
	}
	billed := make(map[uuid.UUID]bool, len(existing))
	for _, inv := range existing {
		billed[inv.TenancyID] = true
	}

	now := s.clock.Now()
	var invoices []*billing.Invoice
	for _, t := range active {
		if billed[t.GetID()] {
			continue
		}
		unit, err := s.unitRepo.FindByID(ctx, t.UnitID)
		if err != nil {
			return nil, err
		}
		inv, err := billing.NewInvoice(t.GetID(), period, req.DueDate,
			unit.RentAmount.Add(req.AdditionalCharges), "", now)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	if len(invoices) == 0 {
		return nil, shared.NewDomainError(shared.CodeAllInvoicesExist,
			fmt.Sprintf("All active tenancies already have invoices for %s", period))
	}

	if err := s.invoiceRepo.SaveBatch(ctx, invoices); err != nil {
		return nil, err
	}

	return &GenerateInvoicesResult{
		Period:  period,
		Created: len(invoices),
		Skipped: len(existing),
	}, nil
}

// GetInvoice returns one invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return s.invoiceRepo.FindByID(ctx, id)
}

// ListInvoices returns a page of invoices
func (s *InvoiceService) ListInvoices(ctx context.Context, filter shared.Filter) (shared.Paginated[*billing.Invoice], error) {
	return s.invoiceRepo.FindAll(ctx, filter)
}

// ListTenancyInvoices returns every invoice for one tenancy
func (s *InvoiceService) ListTenancyInvoices(ctx context.Context, tenancyID uuid.UUID) ([]*billing.Invoice, error) {
	if _, err := s.tenancyRepo.FindByID(ctx, tenancyID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindByTenancy(ctx, tenancyID)
}

// ListTenantInvoices returns every invoice across all of a tenant's tenancies
func (s *InvoiceService) ListTenantInvoices(ctx context.Context, tenantID uuid.UUID) ([]*billing.Invoice, error) {
	return s.invoiceRepo.FindByTenant(ctx, tenantID)
}

func isNotFound(err error) bool {
	de, ok := err.(*shared.DomainError)
	return ok && de.Code == shared.CodeNotFound
}
