package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
// The unique index on (tenancy_id, period) is what makes bulk generation
// idempotent under concurrency.
type InvoiceModel struct {
	AggregateModel
	TenancyID   uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenancy_period,priority:1"`
	Period      ledger.Period         `gorm:"type:varchar(20);not null;uniqueIndex:idx_invoices_tenancy_period,priority:2"`
	DueDate     time.Time             `gorm:"not null;index"`
	TotalAmount valueobject.Money     `gorm:"type:decimal(12,2);not null"`
	PaidAmount  valueobject.Money     `gorm:"type:decimal(12,2);not null;default:0"`
	Status      billing.InvoiceStatus `gorm:"type:varchar(20);not null;index"`
	Description string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TenancyID:         m.TenancyID,
		Period:            m.Period,
		DueDate:           m.DueDate,
		TotalAmount:       m.TotalAmount,
		PaidAmount:        m.PaidAmount,
		Status:            m.Status,
		Description:       m.Description,
	}
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.TenancyID = inv.TenancyID
	m.Period = inv.Period
	m.DueDate = inv.DueDate
	m.TotalAmount = inv.TotalAmount
	m.PaidAmount = inv.PaidAmount
	m.Status = inv.Status
	m.Description = inv.Description
}

// PaymentModel is the persistence model for the Payment aggregate root.
// InvoiceID is null for general payments not allocated to an invoice.
type PaymentModel struct {
	AggregateModel
	TenantID  uuid.UUID             `gorm:"type:uuid;not null;index"`
	UnitID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	InvoiceID *uuid.UUID            `gorm:"type:uuid;index"`
	Amount    valueobject.Money     `gorm:"type:decimal(12,2);not null"`
	Method    billing.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaidAt    time.Time             `gorm:"not null;index"`
	Reference string                `gorm:"type:varchar(100)"`
	Notes     string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TenantID:          m.TenantID,
		UnitID:            m.UnitID,
		InvoiceID:         m.InvoiceID,
		Amount:            m.Amount,
		Method:            m.Method,
		PaidAt:            m.PaidAt,
		Reference:         m.Reference,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.TenantID = p.TenantID
	m.UnitID = p.UnitID
	m.InvoiceID = p.InvoiceID
	m.Amount = p.Amount
	m.Method = p.Method
	m.PaidAt = p.PaidAt
	m.Reference = p.Reference
	m.Notes = p.Notes
}
