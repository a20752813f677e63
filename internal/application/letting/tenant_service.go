package letting

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// TenantService handles tenant CRUD. Phone numbers are the unique business
// key and are normalized to +254 form before any lookup or write.
type TenantService struct {
	tenantRepo  letting.TenantRepository
	tenancyRepo letting.TenancyRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo letting.TenantRepository, tenancyRepo letting.TenancyRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, tenancyRepo: tenancyRepo}
}

// CreateTenantRequest represents a request to register a tenant
type CreateTenantRequest struct {
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	NationalID     string
	OpeningBalance valueobject.Money
}

// CreateTenant registers a new tenant. A second tenant with the same
// normalized phone number is rejected.
func (s *TenantService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*letting.Tenant, error) {
	tenant, err := letting.NewTenant(req.FirstName, req.LastName, req.Phone,
		req.Email, req.NationalID, req.OpeningBalance)
	if err != nil {
		return nil, err
	}

	if _, err := s.tenantRepo.FindByPhone(ctx, tenant.Phone); err == nil {
		return nil, shared.NewDomainError(shared.CodeDuplicateTenant,
			"A tenant with this phone number already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// UpdateTenantRequest represents a request to update tenant contact details
type UpdateTenantRequest struct {
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	NationalID string
}

// UpdateTenant modifies a tenant's contact details, keeping the phone
// number unique
func (s *TenantService) UpdateTenant(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*letting.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalized, err := letting.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if normalized != tenant.Phone {
		if other, err := s.tenantRepo.FindByPhone(ctx, normalized); err == nil && other.GetID() != id {
			return nil, shared.NewDomainError(shared.CodeDuplicateTenant,
				"A tenant with this phone number already exists")
		} else if err != nil && !isNotFound(err) {
			return nil, err
		}
	}

	if err := tenant.UpdateContact(req.FirstName, req.LastName, req.Phone, req.Email, req.NationalID); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetTenant returns one tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*letting.Tenant, error) {
	return s.tenantRepo.FindByID(ctx, id)
}

// ListTenants returns a page of tenants
func (s *TenantService) ListTenants(ctx context.Context, filter shared.Filter) (shared.Paginated[*letting.Tenant], error) {
	return s.tenantRepo.FindAll(ctx, filter)
}

// DeleteTenant removes a tenant. A tenant with an active tenancy cannot be
// deleted.
func (s *TenantService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.tenancyRepo.FindActiveByTenant(ctx, id); err == nil {
		return shared.NewDomainError(shared.CodeValidation,
			"Cannot delete a tenant with an active tenancy")
	} else if !isNotFound(err) {
		return err
	}
	return s.tenantRepo.Delete(ctx, id)
}
