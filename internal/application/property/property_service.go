package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
)

// PropertyService handles property CRUD
type PropertyService struct {
	propertyRepo property.Repository
	unitRepo     property.UnitRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo property.Repository, unitRepo property.UnitRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo, unitRepo: unitRepo}
}

// CreatePropertyRequest represents a request to register a property
type CreatePropertyRequest struct {
	Name         string
	Address      string
	City         string
	County       string
	PropertyType property.Type
	Notes        string
}

// CreateProperty registers a new property
func (s *PropertyService) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*property.Property, error) {
	p, err := property.NewProperty(req.Name, req.Address, req.City, req.County, req.PropertyType)
	if err != nil {
		return nil, err
	}
	p.Notes = req.Notes
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProperty modifies a property's details
func (s *PropertyService) UpdateProperty(ctx context.Context, id uuid.UUID, req CreatePropertyRequest) (*property.Property, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.Name, req.Address, req.City, req.County, req.PropertyType); err != nil {
		return nil, err
	}
	if req.Notes != "" {
		p.Notes = req.Notes
	}
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProperty returns one property by ID
func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return s.propertyRepo.FindByID(ctx, id)
}

// ListProperties returns a page of properties
func (s *PropertyService) ListProperties(ctx context.Context, filter shared.Filter) (shared.Paginated[*property.Property], error) {
	return s.propertyRepo.FindAll(ctx, filter)
}

// DeactivateProperty retires a property from the active portfolio. Its
// units and history stay in place but portfolio counts no longer include it.
func (s *PropertyService) DeactivateProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ActivateProperty returns a retired property to the active portfolio
func (s *PropertyService) ActivateProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Activate(); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProperty removes a property that has no units left
func (s *PropertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		return err
	}
	units, err := s.unitRepo.FindByProperty(ctx, id, shared.DefaultFilter())
	if err != nil {
		return err
	}
	if units.Total > 0 {
		return shared.NewDomainError(shared.CodeValidation,
			"Cannot delete a property that still has units")
	}
	return s.propertyRepo.Delete(ctx, id)
}
