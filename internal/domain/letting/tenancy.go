package letting

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// TenancyStatus represents the lifecycle state of a tenancy
type TenancyStatus string

const (
	TenancyStatusActive TenancyStatus = "ACTIVE"
	TenancyStatusEnded  TenancyStatus = "ENDED"
)

// IsValid checks if the tenancy status is valid
func (s TenancyStatus) IsValid() bool {
	return s == TenancyStatusActive || s == TenancyStatusEnded
}

// String returns the string representation
func (s TenancyStatus) String() string {
	return string(s)
}

// DepositStatus tracks what became of the tenancy deposit
type DepositStatus string

const (
	DepositStatusHeld      DepositStatus = "HELD"
	DepositStatusRefunded  DepositStatus = "REFUNDED"
	DepositStatusForfeited DepositStatus = "FORFEITED"
)

// IsValid checks if the deposit status is valid
func (s DepositStatus) IsValid() bool {
	switch s {
	case DepositStatusHeld, DepositStatusRefunded, DepositStatusForfeited:
		return true
	}
	return false
}

// String returns the string representation
func (s DepositStatus) String() string {
	return string(s)
}

// Tenancy binds a tenant to a unit for a period of time. RentAmount is a
// snapshot of the unit's rent at move-in; later rent changes on the unit do
// not rewrite history here. At most one ACTIVE tenancy may exist per unit
// and per tenant. The deposit is HELD until move-out settles it.
type Tenancy struct {
	shared.BaseAggregateRoot
	UnitID            uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate         time.Time `gorm:"not null"`
	EndDate           *time.Time
	RentAmount        valueobject.Money `gorm:"type:decimal(12,2);not null"`
	DepositPaid       valueobject.Money `gorm:"type:decimal(12,2);not null"`
	DepositPaidDate   *time.Time
	DepositRefund     valueobject.Money `gorm:"type:decimal(12,2);not null;default:0"`
	DepositRefundDate *time.Time
	DepositStatus     DepositStatus `gorm:"not null;default:'HELD'"`
	Status            TenancyStatus `gorm:"not null;default:'ACTIVE'"`
	Notes             string
}

// NewTenancy creates a new active tenancy
func NewTenancy(unitID, tenantID uuid.UUID, startDate time.Time, rentAmount, depositPaid valueobject.Money) (*Tenancy, error) {
	if unitID == uuid.Nil || tenantID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Unit and tenant are required")
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Tenancy start date is required")
	}
	if rentAmount.IsNegative() || rentAmount.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Rent amount must be positive")
	}
	if depositPaid.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Deposit paid cannot be negative")
	}

	return &Tenancy{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UnitID:            unitID,
		TenantID:          tenantID,
		StartDate:         startDate,
		RentAmount:        rentAmount,
		DepositPaid:       depositPaid,
		DepositRefund:     valueobject.Zero(),
		DepositStatus:     DepositStatusHeld,
		Status:            TenancyStatusActive,
	}, nil
}

// IsActive reports whether the tenancy is still running
func (t *Tenancy) IsActive() bool {
	return t.Status == TenancyStatusActive
}

// End closes the tenancy at move-out. The deposit refund may not exceed
// what the tenant paid in, and the end date may not precede the start date.
// A zero refundDate defaults to the end date. An empty depositStatus is
// derived from the refund: REFUNDED when anything was returned, FORFEITED
// otherwise. Passing FORFEITED explicitly alongside a partial refund records
// a deposit kept in part; HELD is not a valid state after move-out.
func (t *Tenancy) End(endDate time.Time, depositRefund valueobject.Money, refundDate time.Time, depositStatus DepositStatus) error {
	if !t.IsActive() {
		return shared.NewDomainError(shared.CodeTenancyInactive, "Tenancy is not active")
	}
	if endDate.IsZero() {
		return shared.NewDomainError(shared.CodeValidation, "Move-out date is required")
	}
	if endDate.Before(t.StartDate) {
		return shared.NewDomainError(shared.CodeValidation, "Move-out date cannot precede the tenancy start date")
	}
	if depositRefund.IsNegative() {
		return shared.NewDomainError(shared.CodeValidation, "Deposit refund cannot be negative")
	}
	if depositRefund.GreaterThan(t.DepositPaid) {
		return shared.NewDomainError(shared.CodeValidation, "Deposit refund cannot exceed the deposit paid")
	}

	if depositStatus == "" {
		if depositRefund.IsPositive() {
			depositStatus = DepositStatusRefunded
		} else {
			depositStatus = DepositStatusForfeited
		}
	}
	if !depositStatus.IsValid() || depositStatus == DepositStatusHeld {
		return shared.NewDomainError(shared.CodeValidation,
			"Deposit status after move-out must be REFUNDED or FORFEITED")
	}

	t.Status = TenancyStatusEnded
	t.EndDate = &endDate
	t.DepositRefund = depositRefund
	t.DepositStatus = depositStatus
	if depositRefund.IsPositive() {
		if refundDate.IsZero() {
			refundDate = endDate
		}
		t.DepositRefundDate = &refundDate
	}
	t.MarkUpdated()
	return nil
}
