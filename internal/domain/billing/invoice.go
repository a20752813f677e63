package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "PENDING"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
)

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartiallyPaid, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// String returns the string representation
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice bills one tenancy for one period. The (TenancyID, Period) pair is
// unique, which is what makes bulk generation idempotent. Status is always
// derivable from TotalAmount, PaidAmount and DueDate; the stored value is a
// cache refreshed on every mutation.
type Invoice struct {
	shared.BaseAggregateRoot
	TenancyID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenancy_period"`
	Period      ledger.Period     `gorm:"not null;uniqueIndex:idx_invoices_tenancy_period"`
	DueDate     time.Time         `gorm:"not null"`
	TotalAmount valueobject.Money `gorm:"type:decimal(12,2);not null"`
	PaidAmount  valueobject.Money `gorm:"type:decimal(12,2);not null;default:0"`
	Status      InvoiceStatus     `gorm:"not null"`
	Description string
}

// NewInvoice creates an invoice for a billing period. Status is derived
// immediately so an invoice created past its due date starts out OVERDUE.
func NewInvoice(tenancyID uuid.UUID, period ledger.Period, dueDate time.Time, total valueobject.Money, description string, today time.Time) (*Invoice, error) {
	if tenancyID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Tenancy is required")
	}
	if period == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Billing period is required")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Due date is required")
	}
	if total.IsNegative() || total.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Invoice total must be positive")
	}

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenancyID:         tenancyID,
		Period:            period,
		DueDate:           dueDate,
		TotalAmount:       total,
		PaidAmount:        valueobject.Zero(),
		Description:       description,
	}
	inv.Refresh(today)
	return inv, nil
}

// NewOpeningInvoice converts a tenant's pre-system balance into an invoice
// at move-in. It is backdated 30 days so it surfaces as overdue arrears
// immediately, and labelled with the month before the move-in month.
func NewOpeningInvoice(tenancyID uuid.UUID, balance valueobject.Money, moveIn time.Time) (*Invoice, error) {
	return NewInvoice(
		tenancyID,
		ledger.OpeningPeriodOf(moveIn),
		moveIn.AddDate(0, 0, -30),
		balance,
		"Opening balance brought forward",
		moveIn,
	)
}

// DeriveStatus computes the status an invoice with the given amounts and due
// date should carry as of today. Payment state wins over lateness: a fully
// paid invoice is PAID no matter how late the money arrived.
func DeriveStatus(total, paid valueobject.Money, dueDate, today time.Time) InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return InvoiceStatusPaid
	case paid.IsPositive():
		return InvoiceStatusPartiallyPaid
	case ledger.IsOverdue(dueDate, today):
		return InvoiceStatusOverdue
	default:
		return InvoiceStatusPending
	}
}

// Refresh recomputes the cached status as of today
func (i *Invoice) Refresh(today time.Time) {
	i.Status = DeriveStatus(i.TotalAmount, i.PaidAmount, i.DueDate, today)
}

// Outstanding returns the unpaid remainder, floored at zero for overpaid
// invoices
func (i *Invoice) Outstanding() valueobject.Money {
	out := i.TotalAmount.Subtract(i.PaidAmount)
	if out.IsNegative() {
		return valueobject.Zero()
	}
	return out
}

// IsSettled reports whether the invoice needs no further payment
func (i *Invoice) IsSettled() bool {
	return i.PaidAmount.GreaterThanOrEqual(i.TotalAmount)
}

// ApplyPayment records money against the invoice. Overpayment is allowed:
// PaidAmount may exceed TotalAmount and is never capped.
func (i *Invoice) ApplyPayment(amount valueobject.Money, today time.Time) error {
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError(shared.CodeValidation, "Payment amount must be positive")
	}
	i.PaidAmount = i.PaidAmount.Add(amount)
	i.Refresh(today)
	i.MarkUpdated()
	return nil
}

// RollbackPayment reverses a deleted payment. PaidAmount is floored at zero
// rather than allowed to go negative.
func (i *Invoice) RollbackPayment(amount valueobject.Money, today time.Time) error {
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError(shared.CodeValidation, "Payment amount must be positive")
	}
	i.PaidAmount = i.PaidAmount.Subtract(amount)
	if i.PaidAmount.IsNegative() {
		i.PaidAmount = valueobject.Zero()
	}
	i.Refresh(today)
	i.MarkUpdated()
	return nil
}
