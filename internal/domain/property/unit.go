package property

import (
	"strings"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// UnitStatus represents the occupancy state of a unit
type UnitStatus string

const (
	UnitStatusVacant   UnitStatus = "VACANT"
	UnitStatusOccupied UnitStatus = "OCCUPIED"
	UnitStatusReserved UnitStatus = "RESERVED"
	UnitStatusInactive UnitStatus = "INACTIVE"
)

// IsValid checks if the unit status is valid
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusVacant, UnitStatusOccupied, UnitStatusReserved, UnitStatusInactive:
		return true
	}
	return false
}

// String returns the string representation
func (s UnitStatus) String() string {
	return string(s)
}

// Unit is a lettable unit within a property. UnitNumber is unique per
// property; RentAmount is the figure monthly invoices are generated from.
type Unit struct {
	shared.BaseAggregateRoot
	PropertyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitNumber    string    `gorm:"not null"`
	Bedrooms      int       `gorm:"not null;default:0"`
	Bathrooms     int       `gorm:"not null;default:0"`
	SquareFeet    int
	RentAmount    valueobject.Money `gorm:"type:decimal(12,2);not null"`
	DepositAmount valueobject.Money `gorm:"type:decimal(12,2);not null"`
	Status        UnitStatus        `gorm:"not null;default:'VACANT'"`
}

// NewUnit creates a new vacant unit
func NewUnit(propertyID uuid.UUID, unitNumber string, bedrooms, bathrooms, squareFeet int, rentAmount, depositAmount valueobject.Money) (*Unit, error) {
	unitNumber = strings.TrimSpace(unitNumber)
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Property ID is required")
	}
	if unitNumber == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Unit number is required")
	}
	if bedrooms < 0 || bathrooms < 0 || squareFeet < 0 {
		return nil, shared.NewDomainError(shared.CodeValidation, "Unit dimensions cannot be negative")
	}
	if rentAmount.IsNegative() || rentAmount.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Rent amount must be positive")
	}
	if depositAmount.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Deposit amount cannot be negative")
	}

	return &Unit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PropertyID:        propertyID,
		UnitNumber:        unitNumber,
		Bedrooms:          bedrooms,
		Bathrooms:         bathrooms,
		SquareFeet:        squareFeet,
		RentAmount:        rentAmount,
		DepositAmount:     depositAmount,
		Status:            UnitStatusVacant,
	}, nil
}

// IsLettable reports whether a move-in may target this unit
func (u *Unit) IsLettable() bool {
	return u.Status == UnitStatusVacant || u.Status == UnitStatusReserved
}

// Occupy transitions the unit to occupied at move-in
func (u *Unit) Occupy() error {
	if u.Status == UnitStatusOccupied {
		return shared.NewDomainError(shared.CodeUnitAlreadyOccupied, "Unit is already occupied")
	}
	if !u.IsLettable() {
		return shared.NewDomainError(shared.CodeUnitNotAvailable, "Unit is not available for letting")
	}
	u.Status = UnitStatusOccupied
	u.MarkUpdated()
	return nil
}

// Vacate transitions the unit back to vacant at move-out
func (u *Unit) Vacate() error {
	if u.Status != UnitStatusOccupied {
		return shared.NewDomainError(shared.CodeValidation, "Only an occupied unit can be vacated")
	}
	u.Status = UnitStatusVacant
	u.MarkUpdated()
	return nil
}

// Reserve holds a vacant unit for a prospective tenant
func (u *Unit) Reserve() error {
	if u.Status != UnitStatusVacant {
		return shared.NewDomainError(shared.CodeUnitNotAvailable, "Only a vacant unit can be reserved")
	}
	u.Status = UnitStatusReserved
	u.MarkUpdated()
	return nil
}

// Deactivate takes the unit off the market
func (u *Unit) Deactivate() error {
	if u.Status == UnitStatusOccupied {
		return shared.NewDomainError(shared.CodeValidation, "Cannot deactivate an occupied unit")
	}
	u.Status = UnitStatusInactive
	u.MarkUpdated()
	return nil
}

// UpdateDetails modifies unit attributes; rent changes affect future
// invoices only, existing invoices keep their amounts.
func (u *Unit) UpdateDetails(bedrooms, bathrooms, squareFeet int, rentAmount, depositAmount valueobject.Money) error {
	if bedrooms < 0 || bathrooms < 0 || squareFeet < 0 {
		return shared.NewDomainError(shared.CodeValidation, "Unit dimensions cannot be negative")
	}
	if rentAmount.IsNegative() || rentAmount.IsZero() {
		return shared.NewDomainError(shared.CodeValidation, "Rent amount must be positive")
	}
	if depositAmount.IsNegative() {
		return shared.NewDomainError(shared.CodeValidation, "Deposit amount cannot be negative")
	}

	u.Bedrooms = bedrooms
	u.Bathrooms = bathrooms
	u.SquareFeet = squareFeet
	u.RentAmount = rentAmount
	u.DepositAmount = depositAmount
	u.MarkUpdated()
	return nil
}
