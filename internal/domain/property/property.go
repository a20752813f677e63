package property

import (
	"strings"

	"github.com/propertym/backend/internal/domain/shared"
)

// Type classifies a property by its building style
type Type string

const (
	TypeApartment  Type = "APARTMENT"
	TypeBungalow   Type = "BUNGALOW"
	TypeMaisonette Type = "MAISONETTE"
	TypeCommercial Type = "COMMERCIAL"
	TypeMixedUse   Type = "MIXED_USE"
)

// IsValid checks if the property type is valid
func (t Type) IsValid() bool {
	switch t {
	case TypeApartment, TypeBungalow, TypeMaisonette, TypeCommercial, TypeMixedUse:
		return true
	}
	return false
}

// String returns the string representation
func (t Type) String() string {
	return string(t)
}

// Property is a building or estate containing lettable units. Deactivated
// properties are kept for their history but drop out of portfolio counts.
type Property struct {
	shared.BaseAggregateRoot
	Name         string `gorm:"not null"`
	Address      string `gorm:"not null"`
	City         string `gorm:"not null"`
	County       string
	PropertyType Type   `gorm:"not null"`
	TotalUnits   int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true"`
	Notes        string
}

// NewProperty creates a new property
func NewProperty(name, address, city, county string, propertyType Type) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Property name is required")
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Property address is required")
	}
	if strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Property city is required")
	}
	if !propertyType.IsValid() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Invalid property type: "+propertyType.String())
	}

	return &Property{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           strings.TrimSpace(address),
		City:              strings.TrimSpace(city),
		County:            strings.TrimSpace(county),
		PropertyType:      propertyType,
		IsActive:          true,
	}, nil
}

// Deactivate retires the property from the active portfolio
func (p *Property) Deactivate() error {
	if !p.IsActive {
		return shared.NewDomainError(shared.CodeValidation, "Property is already inactive")
	}
	p.IsActive = false
	p.MarkUpdated()
	return nil
}

// Activate returns a retired property to the active portfolio
func (p *Property) Activate() error {
	if p.IsActive {
		return shared.NewDomainError(shared.CodeValidation, "Property is already active")
	}
	p.IsActive = true
	p.MarkUpdated()
	return nil
}

// Update modifies the property details
func (p *Property) Update(name, address, city, county string, propertyType Type) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.CodeValidation, "Property name is required")
	}
	if !propertyType.IsValid() {
		return shared.NewDomainError(shared.CodeValidation, "Invalid property type: "+propertyType.String())
	}

	p.Name = name
	p.Address = strings.TrimSpace(address)
	p.City = strings.TrimSpace(city)
	p.County = strings.TrimSpace(county)
	p.PropertyType = propertyType
	p.MarkUpdated()
	return nil
}
