package letting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// LifecycleService handles tenancy move-in and move-out. Both are
// multi-aggregate transitions committed as single transactions through the
// tenancy repository.
type LifecycleService struct {
	tenancyRepo letting.TenancyRepository
	tenantRepo  letting.TenantRepository
	unitRepo    property.UnitRepository
	clock       ledger.Clock
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(
	tenancyRepo letting.TenancyRepository,
	tenantRepo letting.TenantRepository,
	unitRepo property.UnitRepository,
	clock ledger.Clock,
) *LifecycleService {
	return &LifecycleService{
		tenancyRepo: tenancyRepo,
		tenantRepo:  tenantRepo,
		unitRepo:    unitRepo,
		clock:       clock,
	}
}

// MoveInRequest represents a request to start a tenancy. A zero
// DepositPaidDate defaults to the move-in date when a deposit was paid.
type MoveInRequest struct {
	TenantID        uuid.UUID
	UnitID          uuid.UUID
	MoveInDate      time.Time
	DepositPaid     valueobject.Money
	DepositPaidDate time.Time
	Notes           string
}

// MoveIn starts a tenancy: the tenant must have no active tenancy, the unit
// must be vacant or reserved with no active tenancy. The unit flips to
// occupied, and a tenant carrying an opening balance has it converted to a
// backdated overdue invoice and cleared, all in one transaction.
func (s *LifecycleService) MoveIn(ctx context.Context, req MoveInRequest) (*letting.Tenancy, error) {
	if req.MoveInDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Move-in date is required")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if _, err := s.tenancyRepo.FindActiveByTenant(ctx, tenant.GetID()); err == nil {
		return nil, shared.NewDomainError(shared.CodeTenantAlreadyAssigned,
			"This tenant already has an active tenancy")
	} else if !isNotFound(err) {
		return nil, err
	}

	unit, err := s.unitRepo.FindByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if _, err := s.tenancyRepo.FindActiveByUnit(ctx, unit.GetID()); err == nil {
		return nil, shared.NewDomainError(shared.CodeUnitAlreadyOccupied,
			"This unit already has an active tenant")
	} else if !isNotFound(err) {
		return nil, err
	}
	if err := unit.Occupy(); err != nil {
		return nil, err
	}

	tenancy, err := letting.NewTenancy(unit.GetID(), tenant.GetID(), req.MoveInDate,
		unit.RentAmount, req.DepositPaid)
	if err != nil {
		return nil, err
	}
	tenancy.Notes = req.Notes
	if req.DepositPaid.IsPositive() {
		paidDate := req.DepositPaidDate
		if paidDate.IsZero() {
			paidDate = req.MoveInDate
		}
		tenancy.DepositPaidDate = &paidDate
	}

	var opening *billing.Invoice
	if tenant.OpeningBalance.IsPositive() {
		opening, err = billing.NewOpeningInvoice(tenancy.GetID(), tenant.OpeningBalance, s.clock.Now())
		if err != nil {
			return nil, err
		}
		tenant.ClearOpeningBalance()
	}

	if err := s.tenancyRepo.CreateMoveIn(ctx, tenancy, unit, tenant, opening); err != nil {
		return nil, err
	}
	return tenancy, nil
}

// MoveOutRequest represents a request to end a tenancy. DepositStatus may
// be left empty to derive it from the refund amount; an explicit FORFEITED
// with a partial refund records a deposit kept in part. A zero
// DepositRefundDate defaults to the move-out date.
type MoveOutRequest struct {
	TenancyID         uuid.UUID
	MoveOutDate       time.Time
	DepositRefund     valueobject.Money
	DepositRefundDate time.Time
	DepositStatus     letting.DepositStatus
	Notes             string
}

// MoveOut ends a tenancy and returns its unit to vacant. The deposit refund
// may not exceed what was paid in; invoices and payments stay untouched so
// any remaining debt survives the move-out.
func (s *LifecycleService) MoveOut(ctx context.Context, req MoveOutRequest) (*letting.Tenancy, error) {
	tenancy, err := s.tenancyRepo.FindByID(ctx, req.TenancyID)
	if err != nil {
		return nil, err
	}
	if err := tenancy.End(req.MoveOutDate, req.DepositRefund, req.DepositRefundDate, req.DepositStatus); err != nil {
		return nil, err
	}
	if req.Notes != "" {
		tenancy.Notes = req.Notes
	}

	unit, err := s.unitRepo.FindByID(ctx, tenancy.UnitID)
	if err != nil {
		return nil, err
	}
	if err := unit.Vacate(); err != nil {
		return nil, err
	}

	if err := s.tenancyRepo.CompleteMoveOut(ctx, tenancy, unit); err != nil {
		return nil, err
	}
	return tenancy, nil
}

// GetTenancy returns one tenancy by ID
func (s *LifecycleService) GetTenancy(ctx context.Context, id uuid.UUID) (*letting.Tenancy, error) {
	return s.tenancyRepo.FindByID(ctx, id)
}

// ListTenancies returns a page of tenancies
func (s *LifecycleService) ListTenancies(ctx context.Context, filter shared.Filter) (shared.Paginated[*letting.Tenancy], error) {
	return s.tenancyRepo.FindAll(ctx, filter)
}

func isNotFound(err error) bool {
	de, ok := err.(*shared.DomainError)
	return ok && de.Code == shared.CodeNotFound
}
