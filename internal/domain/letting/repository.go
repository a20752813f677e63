package letting

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
)

// TenantRepository defines the persistence interface for tenants
type TenantRepository interface {
	Save(ctx context.Context, t *Tenant) error
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindByPhone(ctx context.Context, phone string) (*Tenant, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Tenant], error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TenancyRepository defines the persistence interface for tenancies.
// CreateMoveIn and CompleteMoveOut are transactional: every row they touch
// is written in a single transaction or not at all.
type TenancyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenancy, error)
	FindActiveByUnit(ctx context.Context, unitID uuid.UUID) (*Tenancy, error)
	FindActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*Tenancy, error)
	FindAllActive(ctx context.Context) ([]*Tenancy, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Tenancy], error)
	CountActive(ctx context.Context) (int64, error)

	// CreateMoveIn persists the new tenancy, flips the unit to occupied,
	// and, when openingInvoice is non-nil, creates it and clears the
	// tenant's opening balance, all atomically.
	CreateMoveIn(ctx context.Context, tenancy *Tenancy, unit *property.Unit, tenant *Tenant, openingInvoice *billing.Invoice) error

	// CompleteMoveOut persists the ended tenancy and returns the unit to
	// vacant atomically.
	CompleteMoveOut(ctx context.Context, tenancy *Tenancy, unit *property.Unit) error
}
