package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/propertym/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

var invoiceOrderColumns = map[string]bool{
	"created_at":   true,
	"period":       true,
	"due_date":     true,
	"total_amount": true,
	"status":       true,
}

// openStatuses are the invoice statuses that still carry an outstanding balance
var openStatuses = []billing.InvoiceStatus{
	billing.InvoiceStatusPending,
	billing.InvoiceStatusPartiallyPaid,
	billing.InvoiceStatusOverdue,
}

// Save creates a new invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *billing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(inv)
	return r.db.WithContext(ctx).Create(&model).Error
}

// SaveBatch creates invoices in a single insert
func (r *GormInvoiceRepository) SaveBatch(ctx context.Context, invs []*billing.Invoice) error {
	if len(invs) == 0 {
		return nil
	}
	invoiceModels := make([]models.InvoiceModel, len(invs))
	for i, inv := range invs {
		invoiceModels[i].FromDomain(inv)
	}
	return r.db.WithContext(ctx).Create(&invoiceModels).Error
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTenancyAndPeriod finds the invoice for a tenancy and billing period
func (r *GormInvoiceRepository) FindByTenancyAndPeriod(ctx context.Context, tenancyID uuid.UUID, period ledger.Period) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenancy_id = ? AND period = ?", tenancyID, period).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTenancy returns every invoice raised against a tenancy
func (r *GormInvoiceRepository) FindByTenancy(ctx context.Context, tenancyID uuid.UUID) ([]*billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenancy_id = ?", tenancyID).
		Order("due_date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return toDomainInvoices(invoiceModels), nil
}

// FindByTenant returns every invoice raised against any of the tenant's
// tenancies, past or present
func (r *GormInvoiceRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN tenancies ON tenancies.id = invoices.tenancy_id").
		Where("tenancies.tenant_id = ?", tenantID).
		Order("invoices.due_date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return toDomainInvoices(invoiceModels), nil
}

// FindByPeriodAndTenancies returns the invoices already raised for a period
// among the given tenancies
func (r *GormInvoiceRepository) FindByPeriodAndTenancies(ctx context.Context, period ledger.Period, tenancyIDs []uuid.UUID) ([]*billing.Invoice, error) {
	if len(tenancyIDs) == 0 {
		return nil, nil
	}
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("period = ? AND tenancy_id IN ?", period, tenancyIDs).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return toDomainInvoices(invoiceModels), nil
}

// FindAll returns a page of invoices
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*billing.Invoice], error) {
	query := r.db.WithContext(ctx).Model(&models.InvoiceModel{})
	if filter.Search != "" {
		query = query.Where("period LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*billing.Invoice]{}, err
	}

	var invoiceModels []models.InvoiceModel
	if err := applyFilter(query, filter, invoiceOrderColumns).Find(&invoiceModels).Error; err != nil {
		return shared.Paginated[*billing.Invoice]{}, err
	}
	return shared.NewPaginated(toDomainInvoices(invoiceModels), total, filter.Page, filter.PageSize), nil
}

// FindOverdueOpen returns unsettled invoices past due as of today, joined
// with the tenant, unit and property they belong to. Oldest due first.
func (r *GormInvoiceRepository) FindOverdueOpen(ctx context.Context, today time.Time) ([]billing.OverdueInvoice, error) {
	var rows []overdueRow
	if err := r.db.WithContext(ctx).
		Table("invoices").
		Select(`invoices.id AS invoice_id,
			invoices.tenancy_id,
			tenancies.tenant_id,
			tenants.first_name || ' ' || tenants.last_name AS tenant_name,
			units.unit_number,
			properties.id AS property_id,
			properties.name AS property_name,
			invoices.due_date,
			invoices.total_amount,
			invoices.paid_amount`).
		Joins("JOIN tenancies ON tenancies.id = invoices.tenancy_id").
		Joins("JOIN tenants ON tenants.id = tenancies.tenant_id").
		Joins("JOIN units ON units.id = tenancies.unit_id").
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("invoices.due_date < ? AND invoices.status IN ?", ledger.DayFloor(today), openStatuses).
		Order("invoices.due_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	overdue := make([]billing.OverdueInvoice, len(rows))
	for i, row := range rows {
		overdue[i] = billing.OverdueInvoice{
			InvoiceID:    row.InvoiceID,
			TenancyID:    row.TenancyID,
			TenantID:     row.TenantID,
			TenantName:   row.TenantName,
			UnitNumber:   row.UnitNumber,
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			DueDate:      row.DueDate,
			TotalAmount:  row.TotalAmount,
			PaidAmount:   row.PaidAmount,
		}
	}
	return overdue, nil
}

// SumPeriodTotals aggregates billed and paid amounts over one period
func (r *GormInvoiceRepository) SumPeriodTotals(ctx context.Context, period ledger.Period) (billing.PeriodTotals, error) {
	var row struct {
		Billed decimal.Decimal
		Paid   decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("COALESCE(SUM(total_amount), 0) AS billed, COALESCE(SUM(paid_amount), 0) AS paid").
		Where("period = ?", period).
		Scan(&row).Error; err != nil {
		return billing.PeriodTotals{}, err
	}
	return billing.PeriodTotals{
		Billed: valueobject.NewMoney(row.Billed),
		Paid:   valueobject.NewMoney(row.Paid),
	}, nil
}

// Update saves changes to an existing invoice with optimistic locking
func (r *GormInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	return updateInvoice(r.db.WithContext(ctx), inv)
}

// Delete removes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// overdueRow is the scan target for the arrears join
type overdueRow struct {
	InvoiceID    uuid.UUID
	TenancyID    uuid.UUID
	TenantID     uuid.UUID
	TenantName   string
	UnitNumber   string
	PropertyID   uuid.UUID
	PropertyName string
	DueDate      time.Time
	TotalAmount  valueobject.Money
	PaidAmount   valueobject.Money
}

// updateInvoice writes all invoice columns with a version check. Shared with
// the payment repository's transactions, where the invoice's paid amount and
// status move together with the payment row.
func updateInvoice(db *gorm.DB, inv *billing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(inv)
	model.Version++

	// Select("*") so paid_amount rolling back to zero is written too.
	result := db.
		Model(&models.InvoiceModel{}).
		Where("id = ? AND version = ?", inv.GetID(), inv.Version).
		Select("*").Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	inv.Version = model.Version
	return nil
}

func toDomainInvoices(invoiceModels []models.InvoiceModel) []*billing.Invoice {
	invoices := make([]*billing.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = invoiceModels[i].ToDomain()
	}
	return invoices
}

// Ensure GormInvoiceRepository implements billing.InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
