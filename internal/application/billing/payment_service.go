package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// PaymentService records and reverses payments. A payment may be allocated
// to one invoice, in which case the invoice's PaidAmount and status move
// with it, or stand alone as a general payment.
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	invoiceRepo billing.InvoiceRepository
	tenancyRepo letting.TenancyRepository
	tenantRepo  letting.TenantRepository
	unitRepo    property.UnitRepository
	clock       ledger.Clock
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	invoiceRepo billing.InvoiceRepository,
	tenancyRepo letting.TenancyRepository,
	tenantRepo letting.TenantRepository,
	unitRepo property.UnitRepository,
	clock ledger.Clock,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		tenancyRepo: tenancyRepo,
		tenantRepo:  tenantRepo,
		unitRepo:    unitRepo,
		clock:       clock,
	}
}

// RecordPaymentRequest represents a request to record a payment. InvoiceID
// is nil for a general payment not allocated to any invoice.
type RecordPaymentRequest struct {
	TenantID  uuid.UUID
	UnitID    uuid.UUID
	InvoiceID *uuid.UUID
	Amount    valueobject.Money
	Method    billing.PaymentMethod
	PaidAt    time.Time
	Reference string
	Notes     string
}

// RecordPayment records a payment from a tenant. When allocated to an
// invoice, the invoice must belong to the paying tenant and the payment row
// and invoice update are committed together. Overpayment is accepted.
func (s *PaymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*billing.Payment, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if _, err := s.unitRepo.FindByID(ctx, req.UnitID); err != nil {
		return nil, err
	}

	var invoice *billing.Invoice
	if req.InvoiceID != nil {
		invoice, err = s.invoiceRepo.FindByID(ctx, *req.InvoiceID)
		if err != nil {
			return nil, err
		}
		tenancy, err := s.tenancyRepo.FindByID(ctx, invoice.TenancyID)
		if err != nil {
			return nil, err
		}
		if tenancy.TenantID != tenant.GetID() {
			return nil, shared.NewDomainError(shared.CodeValidation,
				"Invoice does not belong to this tenant")
		}
	}

	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = s.clock.Now()
	}

	payment, err := billing.NewPayment(req.TenantID, req.UnitID, req.InvoiceID,
		req.Amount, req.Method, paidAt, req.Reference, req.Notes)
	if err != nil {
		return nil, err
	}
	if invoice != nil {
		if err := invoice.ApplyPayment(req.Amount, s.clock.Now()); err != nil {
			return nil, err
		}
	}

	if err := s.paymentRepo.CreateWithInvoice(ctx, payment, invoice); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a payment. A linked payment rolls its amount back
// off the invoice: PaidAmount is floored at zero and the status is
// rederived, so deleting the only payment on an overdue invoice returns it
// to OVERDUE. General payments are simply removed.
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var invoice *billing.Invoice
	if payment.IsLinked() {
		invoice, err = s.invoiceRepo.FindByID(ctx, *payment.InvoiceID)
		if err != nil {
			return err
		}
		if err := invoice.RollbackPayment(payment.Amount, s.clock.Now()); err != nil {
			return err
		}
	}
	return s.paymentRepo.DeleteWithInvoice(ctx, payment, invoice)
}

// GetPayment returns one payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListPayments returns a page of payments
func (s *PaymentService) ListPayments(ctx context.Context, filter shared.Filter) (shared.Paginated[*billing.Payment], error) {
	return s.paymentRepo.FindAll(ctx, filter)
}

// ListInvoicePayments returns every payment recorded against an invoice
func (s *PaymentService) ListInvoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]*billing.Payment, error) {
	if _, err := s.invoiceRepo.FindByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByInvoice(ctx, invoiceID)
}

// PaymentsReport lists payments received over a date range with their total
type PaymentsReport struct {
	From        time.Time
	To          time.Time
	TotalAmount valueobject.Money
	Payments    []*billing.Payment
}

// PaymentsBetween reports payments by payment date, oldest first. A zero
// bound is open-ended on that side.
func (s *PaymentService) PaymentsBetween(ctx context.Context, from, to time.Time) (*PaymentsReport, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, shared.NewDomainError(shared.CodeValidation, "Range end is before its start")
	}

	payments, err := s.paymentRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := valueobject.Zero()
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return &PaymentsReport{
		From:        from,
		To:          to,
		TotalAmount: total,
		Payments:    payments,
	}, nil
}
