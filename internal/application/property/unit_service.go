package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// UnitService handles unit CRUD. Unit numbers are unique within their
// property.
type UnitService struct {
	unitRepo     property.UnitRepository
	propertyRepo property.Repository
}

// NewUnitService creates a new UnitService
func NewUnitService(unitRepo property.UnitRepository, propertyRepo property.Repository) *UnitService {
	return &UnitService{unitRepo: unitRepo, propertyRepo: propertyRepo}
}

// CreateUnitRequest represents a request to add a unit to a property
type CreateUnitRequest struct {
	PropertyID    uuid.UUID
	UnitNumber    string
	Bedrooms      int
	Bathrooms     int
	SquareFeet    int
	RentAmount    valueobject.Money
	DepositAmount valueobject.Money
}

// CreateUnit adds a unit to a property. A second unit with the same number
// in the same property is rejected.
func (s *UnitService) CreateUnit(ctx context.Context, req CreateUnitRequest) (*property.Unit, error) {
	p, err := s.propertyRepo.FindByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	unit, err := property.NewUnit(p.GetID(), req.UnitNumber, req.Bedrooms, req.Bathrooms,
		req.SquareFeet, req.RentAmount, req.DepositAmount)
	if err != nil {
		return nil, err
	}

	if _, err := s.unitRepo.FindByPropertyAndNumber(ctx, p.GetID(), unit.UnitNumber); err == nil {
		return nil, shared.NewDomainError(shared.CodeDuplicateUnit,
			"A unit with this number already exists in the property")
	} else if !isNotFound(err) {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	p.TotalUnits++
	p.MarkUpdated()
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnitRequest represents a request to update unit details
type UpdateUnitRequest struct {
	Bedrooms      int
	Bathrooms     int
	SquareFeet    int
	RentAmount    valueobject.Money
	DepositAmount valueobject.Money
}

// UpdateUnit modifies a unit's attributes. A rent change affects invoices
// generated after the change only.
func (s *UnitService) UpdateUnit(ctx context.Context, id uuid.UUID, req UpdateUnitRequest) (*property.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := unit.UpdateDetails(req.Bedrooms, req.Bathrooms, req.SquareFeet,
		req.RentAmount, req.DepositAmount); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// GetUnit returns one unit by ID
func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	return s.unitRepo.FindByID(ctx, id)
}

// ListUnits returns a page of units
func (s *UnitService) ListUnits(ctx context.Context, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	return s.unitRepo.FindAll(ctx, filter)
}

// ListPropertyUnits returns a page of one property's units
func (s *UnitService) ListPropertyUnits(ctx context.Context, propertyID uuid.UUID, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		return shared.Paginated[*property.Unit]{}, err
	}
	return s.unitRepo.FindByProperty(ctx, propertyID, filter)
}

// DeleteUnit removes a unit that is not occupied
func (s *UnitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if unit.Status == property.UnitStatusOccupied {
		return shared.NewDomainError(shared.CodeValidation, "Cannot delete an occupied unit")
	}
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return err
	}

	p, err := s.propertyRepo.FindByID(ctx, unit.PropertyID)
	if err != nil {
		return err
	}
	if p.TotalUnits > 0 {
		p.TotalUnits--
	}
	p.MarkUpdated()
	return s.propertyRepo.Update(ctx, p)
}

func isNotFound(err error) bool {
	de, ok := err.(*shared.DomainError)
	return ok && de.Code == shared.CodeNotFound
}
