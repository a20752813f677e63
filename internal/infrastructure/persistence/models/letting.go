package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// TenantModel is the persistence model for the Tenant aggregate root.
// Phone is stored in normalized +254 form and is the unique business key.
type TenantModel struct {
	AggregateModel
	FirstName      string            `gorm:"type:varchar(100);not null"`
	LastName       string            `gorm:"type:varchar(100);not null"`
	Phone          string            `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email          string            `gorm:"type:varchar(200)"`
	NationalID     string            `gorm:"type:varchar(20)"`
	OpeningBalance valueobject.Money `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant
func (m *TenantModel) ToDomain() *letting.Tenant {
	return &letting.Tenant{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		Email:             m.Email,
		NationalID:        m.NationalID,
		OpeningBalance:    m.OpeningBalance,
	}
}

// FromDomain populates the persistence model from a domain Tenant
func (m *TenantModel) FromDomain(t *letting.Tenant) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.FirstName = t.FirstName
	m.LastName = t.LastName
	m.Phone = t.Phone
	m.Email = t.Email
	m.NationalID = t.NationalID
	m.OpeningBalance = t.OpeningBalance
}

// TenancyModel is the persistence model for the Tenancy aggregate root
type TenancyModel struct {
	AggregateModel
	UnitID            uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate         time.Time `gorm:"not null"`
	EndDate           *time.Time
	RentAmount        valueobject.Money `gorm:"type:decimal(12,2);not null"`
	DepositPaid       valueobject.Money `gorm:"type:decimal(12,2);not null"`
	DepositPaidDate   *time.Time
	DepositRefund     valueobject.Money `gorm:"type:decimal(12,2);not null;default:0"`
	DepositRefundDate *time.Time
	DepositStatus     letting.DepositStatus `gorm:"type:varchar(20);not null;default:'HELD'"`
	Status            letting.TenancyStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Notes             string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TenancyModel) TableName() string {
	return "tenancies"
}

// ToDomain converts the persistence model to a domain Tenancy
func (m *TenancyModel) ToDomain() *letting.Tenancy {
	return &letting.Tenancy{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UnitID:            m.UnitID,
		TenantID:          m.TenantID,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		RentAmount:        m.RentAmount,
		DepositPaid:       m.DepositPaid,
		DepositPaidDate:   m.DepositPaidDate,
		DepositRefund:     m.DepositRefund,
		DepositRefundDate: m.DepositRefundDate,
		DepositStatus:     m.DepositStatus,
		Status:            m.Status,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Tenancy
func (m *TenancyModel) FromDomain(t *letting.Tenancy) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.UnitID = t.UnitID
	m.TenantID = t.TenantID
	m.StartDate = t.StartDate
	m.EndDate = t.EndDate
	m.RentAmount = t.RentAmount
	m.DepositPaid = t.DepositPaid
	m.DepositPaidDate = t.DepositPaidDate
	m.DepositRefund = t.DepositRefund
	m.DepositRefundDate = t.DepositRefundDate
	m.DepositStatus = t.DepositStatus
	m.Status = t.Status
	m.Notes = t.Notes
}
