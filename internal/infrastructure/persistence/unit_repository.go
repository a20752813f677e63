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

// GormUnitRepository implements property.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

var unitOrderColumns = map[string]bool{
	"created_at":  true,
	"unit_number": true,
	"rent_amount": true,
	"status":      true,
	"bedrooms":    true,
}

// Save creates a new unit
func (r *GormUnitRepository) Save(ctx context.Context, u *property.Unit) error {
	var model models.UnitModel
	model.FromDomain(u)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPropertyAndNumber finds a unit by its number within a property
func (r *GormUnitRepository) FindByPropertyAndNumber(ctx context.Context, propertyID uuid.UUID, unitNumber string) (*property.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ? AND unit_number = ?", propertyID, unitNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProperty returns a page of units belonging to a property
func (r *GormUnitRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	query := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("property_id = ?", propertyID)
	return r.findPage(query, filter)
}

// FindAll returns a page of units
func (r *GormUnitRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	query := r.db.WithContext(ctx).Model(&models.UnitModel{})
	if filter.Search != "" {
		query = query.Where("unit_number LIKE ?", "%"+filter.Search+"%")
	}
	return r.findPage(query, filter)
}

func (r *GormUnitRepository) findPage(query *gorm.DB, filter shared.Filter) (shared.Paginated[*property.Unit], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*property.Unit]{}, err
	}

	var unitModels []models.UnitModel
	if err := applyFilter(query, filter, unitOrderColumns).Find(&unitModels).Error; err != nil {
		return shared.Paginated[*property.Unit]{}, err
	}

	units := make([]*property.Unit, len(unitModels))
	for i := range unitModels {
		units[i] = unitModels[i].ToDomain()
	}
	return shared.NewPaginated(units, total, filter.Page, filter.PageSize), nil
}

// CountByStatus counts units in the given status
func (r *GormUnitRepository) CountByStatus(ctx context.Context, status property.UnitStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnitModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the total number of units
func (r *GormUnitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UnitModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves changes to an existing unit with optimistic locking
func (r *GormUnitRepository) Update(ctx context.Context, u *property.Unit) error {
	return updateUnit(r.db.WithContext(ctx), u)
}

// updateUnit writes all unit columns with a version check. Shared with the
// tenancy repository's move-in and move-out transactions.
func updateUnit(db *gorm.DB, u *property.Unit) error {
	var model models.UnitModel
	model.FromDomain(u)
	model.Version++

	result := db.
		Model(&models.UnitModel{}).
		Where("id = ? AND version = ?", u.GetID(), u.Version).
		Select("*").Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	u.Version = model.Version
	return nil
}

// Delete removes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UnitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormUnitRepository implements property.UnitRepository
var _ property.UnitRepository = (*GormUnitRepository)(nil)
