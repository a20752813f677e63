package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/propertym/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements billing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

var paymentOrderColumns = map[string]bool{
	"created_at": true,
	"paid_at":    true,
	"amount":     true,
	"method":     true,
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInvoice returns every payment recorded against an invoice
func (r *GormPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*billing.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*billing.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// FindAll returns a page of payments
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*billing.Payment], error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	if filter.Search != "" {
		query = query.Where("reference LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*billing.Payment]{}, err
	}

	var paymentModels []models.PaymentModel
	if err := applyFilter(query, filter, paymentOrderColumns).Find(&paymentModels).Error; err != nil {
		return shared.Paginated[*billing.Payment]{}, err
	}

	payments := make([]*billing.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return shared.NewPaginated(payments, total, filter.Page, filter.PageSize), nil
}

// FindBetween returns payments by payment date, oldest first. A zero bound
// leaves that side of the range open.
func (r *GormPaymentRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*billing.Payment, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	if !from.IsZero() {
		query = query.Where("paid_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("paid_at < ?", to)
	}

	var paymentModels []models.PaymentModel
	if err := query.Order("paid_at ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*billing.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// SumByTenant totals every payment recorded for the tenant, allocated to an
// invoice or not
func (r *GormPaymentRepository) SumByTenant(ctx context.Context, tenantID uuid.UUID) (valueobject.Money, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("tenant_id = ?", tenantID).
		Scan(&row).Error; err != nil {
		return valueobject.Zero(), err
	}
	return valueobject.NewMoney(row.Total), nil
}

// CreateWithInvoice persists the payment and, when inv is non-nil, the
// updated invoice in one transaction
func (r *GormPaymentRepository) CreateWithInvoice(ctx context.Context, p *billing.Payment, inv *billing.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.PaymentModel
		model.FromDomain(p)
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		if inv == nil {
			return nil
		}
		return updateInvoice(tx, inv)
	})
}

// DeleteWithInvoice removes the payment and, when inv is non-nil, persists
// the rolled-back invoice in one transaction
func (r *GormPaymentRepository) DeleteWithInvoice(ctx context.Context, p *billing.Payment, inv *billing.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.PaymentModel{}, "id = ?", p.GetID())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if inv == nil {
			return nil
		}
		return updateInvoice(tx, inv)
	})
}

// Ensure GormPaymentRepository implements billing.PaymentRepository
var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
