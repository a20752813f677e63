package models

import (
	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// PropertyModel is the persistence model for the Property aggregate root
type PropertyModel struct {
	AggregateModel
	Name         string        `gorm:"type:varchar(200);not null"`
	Address      string        `gorm:"type:varchar(300);not null"`
	City         string        `gorm:"type:varchar(100);not null"`
	County       string        `gorm:"type:varchar(100)"`
	PropertyType property.Type `gorm:"type:varchar(20);not null"`
	TotalUnits   int           `gorm:"not null;default:0"`
	IsActive     bool          `gorm:"not null;default:true;index"`
	Notes        string        `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property
func (m *PropertyModel) ToDomain() *property.Property {
	return &property.Property{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
		City:              m.City,
		County:            m.County,
		PropertyType:      m.PropertyType,
		TotalUnits:        m.TotalUnits,
		IsActive:          m.IsActive,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Property
func (m *PropertyModel) FromDomain(p *property.Property) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Address = p.Address
	m.City = p.City
	m.County = p.County
	m.PropertyType = p.PropertyType
	m.TotalUnits = p.TotalUnits
	m.IsActive = p.IsActive
	m.Notes = p.Notes
}

// UnitModel is the persistence model for the Unit aggregate root.
// UnitNumber is unique within its property.
type UnitModel struct {
	AggregateModel
	PropertyID    uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_units_property_number,priority:1"`
	UnitNumber    string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_units_property_number,priority:2"`
	Bedrooms      int                 `gorm:"not null;default:0"`
	Bathrooms     int                 `gorm:"not null;default:0"`
	SquareFeet    int                 `gorm:"default:0"`
	RentAmount    valueobject.Money   `gorm:"type:decimal(12,2);not null"`
	DepositAmount valueobject.Money   `gorm:"type:decimal(12,2);not null"`
	Status        property.UnitStatus `gorm:"type:varchar(20);not null;default:'VACANT';index"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit
func (m *UnitModel) ToDomain() *property.Unit {
	return &property.Unit{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PropertyID:        m.PropertyID,
		UnitNumber:        m.UnitNumber,
		Bedrooms:          m.Bedrooms,
		Bathrooms:         m.Bathrooms,
		SquareFeet:        m.SquareFeet,
		RentAmount:        m.RentAmount,
		DepositAmount:     m.DepositAmount,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Unit
func (m *UnitModel) FromDomain(u *property.Unit) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.PropertyID = u.PropertyID
	m.UnitNumber = u.UnitNumber
	m.Bedrooms = u.Bedrooms
	m.Bathrooms = u.Bathrooms
	m.SquareFeet = u.SquareFeet
	m.RentAmount = u.RentAmount
	m.DepositAmount = u.DepositAmount
	m.Status = u.Status
}
