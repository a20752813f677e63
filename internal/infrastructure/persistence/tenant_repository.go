package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTenantRepository implements letting.TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

var tenantOrderColumns = map[string]bool{
	"created_at": true,
	"first_name": true,
	"last_name":  true,
	"phone":      true,
}

// Save creates a new tenant
func (r *GormTenantRepository) Save(ctx context.Context, t *letting.Tenant) error {
	var model models.TenantModel
	model.FromDomain(t)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPhone finds a tenant by their normalized phone number
func (r *GormTenantRepository) FindByPhone(ctx context.Context, phone string) (*letting.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of tenants
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*letting.Tenant], error) {
	query := r.db.WithContext(ctx).Model(&models.TenantModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR national_id LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*letting.Tenant]{}, err
	}

	var tenantModels []models.TenantModel
	if err := applyFilter(query, filter, tenantOrderColumns).Find(&tenantModels).Error; err != nil {
		return shared.Paginated[*letting.Tenant]{}, err
	}

	tenants := make([]*letting.Tenant, len(tenantModels))
	for i := range tenantModels {
		tenants[i] = tenantModels[i].ToDomain()
	}
	return shared.NewPaginated(tenants, total, filter.Page, filter.PageSize), nil
}

// Count returns the total number of tenants
func (r *GormTenantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TenantModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves changes to an existing tenant with optimistic locking
func (r *GormTenantRepository) Update(ctx context.Context, t *letting.Tenant) error {
	return updateTenant(r.db.WithContext(ctx), t)
}

// Delete removes a tenant
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TenantModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// updateTenant writes all tenant columns with a version check. Shared with
// the tenancy repository's move-in transaction.
func updateTenant(db *gorm.DB, t *letting.Tenant) error {
	var model models.TenantModel
	model.FromDomain(t)
	model.Version++

	result := db.
		Model(&models.TenantModel{}).
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

// Ensure GormTenantRepository implements letting.TenantRepository
var _ letting.TenantRepository = (*GormTenantRepository)(nil)
