package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodMpesa        PaymentMethod = "MPESA"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodAirtelMoney  PaymentMethod = "AIRTEL_MONEY"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodBankTransfer, PaymentMethodCash,
		PaymentMethodAirtelMoney, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment records money received from a tenant. It may be allocated to one
// invoice or stand alone as a general payment. Deleting a linked payment
// must reverse its effect on the invoice's PaidAmount, so payments are
// immutable after creation.
type Payment struct {
	shared.BaseAggregateRoot
	TenantID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	UnitID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	InvoiceID *uuid.UUID        `gorm:"type:uuid;index"`
	Amount    valueobject.Money `gorm:"type:decimal(12,2);not null"`
	Method    PaymentMethod     `gorm:"not null"`
	PaidAt    time.Time         `gorm:"not null"`
	Reference string
	Notes     string
}

// NewPayment creates a new payment. invoiceID is nil for a general payment
// that is not allocated to any invoice.
func NewPayment(tenantID, unitID uuid.UUID, invoiceID *uuid.UUID, amount valueobject.Money, method PaymentMethod, paidAt time.Time, reference, notes string) (*Payment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Tenant is required")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Unit is required")
	}
	if invoiceID != nil && *invoiceID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Invoice reference cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Invalid payment method: "+method.String())
	}
	if paidAt.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Payment date is required")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		UnitID:            unitID,
		InvoiceID:         invoiceID,
		Amount:            amount,
		Method:            method,
		PaidAt:            paidAt,
		Reference:         reference,
		Notes:             notes,
	}, nil
}

// IsLinked reports whether the payment is allocated to an invoice
func (p *Payment) IsLinked() bool {
	return p.InvoiceID != nil
}
