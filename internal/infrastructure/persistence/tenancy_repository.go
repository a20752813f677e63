package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTenancyRepository implements letting.TenancyRepository using GORM
type GormTenancyRepository struct {
	db *gorm.DB
}

// NewGormTenancyRepository creates a new GormTenancyRepository
func NewGormTenancyRepository(db *gorm.DB) *GormTenancyRepository {
	return &GormTenancyRepository{db: db}
}

var tenancyOrderColumns = map[string]bool{
	"created_at": true,
	"start_date": true,
	"end_date":   true,
	"status":     true,
}

// FindByID finds a tenancy by its ID
func (r *GormTenancyRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.Tenancy, error) {
	var model models.TenancyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByUnit finds the active tenancy occupying a unit, if any
func (r *GormTenancyRepository) FindActiveByUnit(ctx context.Context, unitID uuid.UUID) (*letting.Tenancy, error) {
	var model models.TenancyModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status = ?", unitID, letting.TenancyStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByTenant finds the active tenancy held by a tenant, if any
func (r *GormTenancyRepository) FindActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*letting.Tenancy, error) {
	var model models.TenancyModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ?", tenantID, letting.TenancyStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllActive returns every active tenancy
func (r *GormTenancyRepository) FindAllActive(ctx context.Context) ([]*letting.Tenancy, error) {
	var tenancyModels []models.TenancyModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", letting.TenancyStatusActive).
		Order("start_date ASC").
		Find(&tenancyModels).Error; err != nil {
		return nil, err
	}
	tenancies := make([]*letting.Tenancy, len(tenancyModels))
	for i := range tenancyModels {
		tenancies[i] = tenancyModels[i].ToDomain()
	}
	return tenancies, nil
}

// FindAll returns a page of tenancies
func (r *GormTenancyRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*letting.Tenancy], error) {
	query := r.db.WithContext(ctx).Model(&models.TenancyModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*letting.Tenancy]{}, err
	}

	var tenancyModels []models.TenancyModel
	if err := applyFilter(query, filter, tenancyOrderColumns).Find(&tenancyModels).Error; err != nil {
		return shared.Paginated[*letting.Tenancy]{}, err
	}

	tenancies := make([]*letting.Tenancy, len(tenancyModels))
	for i := range tenancyModels {
		tenancies[i] = tenancyModels[i].ToDomain()
	}
	return shared.NewPaginated(tenancies, total, filter.Page, filter.PageSize), nil
}

// CountActive counts active tenancies
func (r *GormTenancyRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TenancyModel{}).
		Where("status = ?", letting.TenancyStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateMoveIn persists the new tenancy, flips the unit to occupied, and,
// when an opening invoice is present, creates it and clears the tenant's
// opening balance. All rows commit in one transaction.
func (r *GormTenancyRepository) CreateMoveIn(ctx context.Context, tenancy *letting.Tenancy, unit *property.Unit, tenant *letting.Tenant, openingInvoice *billing.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenancyModel models.TenancyModel
		tenancyModel.FromDomain(tenancy)
		if err := tx.Create(&tenancyModel).Error; err != nil {
			return err
		}

		if err := updateUnit(tx, unit); err != nil {
			return err
		}

		if openingInvoice != nil {
			var invoiceModel models.InvoiceModel
			invoiceModel.FromDomain(openingInvoice)
			if err := tx.Create(&invoiceModel).Error; err != nil {
				return err
			}
			if err := updateTenant(tx, tenant); err != nil {
				return err
			}
		}
		return nil
	})
}

// CompleteMoveOut persists the ended tenancy and returns the unit to vacant
// in one transaction.
func (r *GormTenancyRepository) CompleteMoveOut(ctx context.Context, tenancy *letting.Tenancy, unit *property.Unit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateTenancy(tx, tenancy); err != nil {
			return err
		}
		return updateUnit(tx, unit)
	})
}

// updateTenancy writes all tenancy columns with a version check
func updateTenancy(db *gorm.DB, t *letting.Tenancy) error {
	var model models.TenancyModel
	model.FromDomain(t)
	model.Version++

	result := db.
		Model(&models.TenancyModel{}).
		Where("id = ? AND version = ?", t.GetID(), t.Version).
		Select("*").Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	t.Version = model.Version
	return nil
}

// Ensure GormTenancyRepository implements letting.TenancyRepository
var _ letting.TenancyRepository = (*GormTenancyRepository)(nil)
