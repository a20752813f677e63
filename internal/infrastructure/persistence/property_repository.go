package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements property.Repository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

var propertyOrderColumns = map[string]bool{
	"created_at":    true,
	"name":          true,
	"city":          true,
	"property_type": true,
	"total_units":   true,
}

// Save creates a new property
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	var model models.PropertyModel
	model.FromDomain(p)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID finds a property by its ID
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of properties
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*property.Property], error) {
	query := r.db.WithContext(ctx).Model(&models.PropertyModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR address LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*property.Property]{}, err
	}

	var propertyModels []models.PropertyModel
	if err := applyFilter(query, filter, propertyOrderColumns).Find(&propertyModels).Error; err != nil {
		return shared.Paginated[*property.Property]{}, err
	}

	properties := make([]*property.Property, len(propertyModels))
	for i := range propertyModels {
		properties[i] = propertyModels[i].ToDomain()
	}
	return shared.NewPaginated(properties, total, filter.Page, filter.PageSize), nil
}

// Count returns the total number of properties
func (r *GormPropertyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PropertyModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive returns the number of properties still in the active portfolio
func (r *GormPropertyRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves changes to an existing property with optimistic locking
func (r *GormPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	var model models.PropertyModel
	model.FromDomain(p)
	model.Version++

	// Select("*") so zero values (e.g. total_units back to 0) are written too.
	result := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("id = ? AND version = ?", p.GetID(), p.Version).
		Select("*").Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	p.Version = model.Version
	return nil
}

// Delete removes a property
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPropertyRepository implements property.Repository
var _ property.Repository = (*GormPropertyRepository)(nil)
