package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/shared"
)

// Repository defines the persistence interface for properties
type Repository interface {
	Save(ctx context.Context, p *Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Property], error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the persistence interface for units
type UnitRepository interface {
	Save(ctx context.Context, u *Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	FindByPropertyAndNumber(ctx context.Context, propertyID uuid.UUID, unitNumber string) (*Unit, error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID, filter shared.Filter) (shared.Paginated[*Unit], error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Unit], error)
	CountByStatus(ctx context.Context, status UnitStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, u *Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
}
