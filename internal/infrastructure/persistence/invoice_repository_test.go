package persistence

import (
	"context"
	"testing"

	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepository_UniqueTenancyPeriod(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedTenancy(t, db)

	repo := NewGormInvoiceRepository(db)

	first := newInvoice(t, fx.tenancy.GetID(), "2026-03", date(2026, 4, 5), kes(30000))
	require.NoError(t, repo.Save(ctx, first))

	duplicate := newInvoice(t, fx.tenancy.GetID(), "2026-03", date(2026, 4, 5), kes(30000))
	assert.Error(t, repo.Save(ctx, duplicate))

	found, err := repo.FindByTenancyAndPeriod(ctx, fx.tenancy.GetID(), first.Period)
	require.NoError(t, err)
	assert.Equal(t, first.GetID(), found.GetID())

	other, err := ledger.ParsePeriod("2026-04")
	require.NoError(t, err)
	_, err = repo.FindByTenancyAndPeriod(ctx, fx.tenancy.GetID(), other)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInvoiceRepository_FindByTenantCrossesTenancies(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedTenancy(t, db)

	repo := NewGormInvoiceRepository(db)
	require.NoError(t, repo.SaveBatch(ctx, []*billing.Invoice{
		newInvoice(t, fx.tenancy.GetID(), "2026-01", date(2026, 1, 5), kes(30000)),
		newInvoice(t, fx.tenancy.GetID(), "2026-02", date(2026, 2, 5), kes(30000)),
	}))

	invoices, err := repo.FindByTenant(ctx, fx.tenant.GetID())
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	// Oldest due first.
	assert.Equal(t, "2026-01", invoices[0].Period.String())
	assert.Equal(t, "2026-02", invoices[1].Period.String())
}

func TestInvoiceRepository_SumPeriodTotals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedTenancy(t, db)

	repo := NewGormInvoiceRepository(db)

	march := newInvoice(t, fx.tenancy.GetID(), "2026-03", date(2026, 4, 5), kes(30000))
	require.NoError(t, march.ApplyPayment(kes(12000), date(2026, 3, 15)))
	require.NoError(t, repo.Save(ctx, march))
	require.NoError(t, repo.Save(ctx, newInvoice(t, fx.tenancy.GetID(), "2026-02", date(2026, 3, 5), kes(30000))))

	totals, err := repo.SumPeriodTotals(ctx, march.Period)
	require.NoError(t, err)
	assert.Equal(t, "30000.00", totals.Billed.StringFixed())
	assert.Equal(t, "12000.00", totals.Paid.StringFixed())

	empty, err := ledger.ParsePeriod("2027-01")
	require.NoError(t, err)
	totals, err = repo.SumPeriodTotals(ctx, empty)
	require.NoError(t, err)
	assert.True(t, totals.Billed.IsZero())
	assert.True(t, totals.Paid.IsZero())
}

func TestInvoiceRepository_FindOverdueOpen(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedTenancy(t, db)

	repo := NewGormInvoiceRepository(db)

	overdue := newInvoice(t, fx.tenancy.GetID(), "2026-01", date(2026, 1, 5), kes(30000))
	require.NoError(t, overdue.ApplyPayment(kes(10000), date(2026, 1, 20)))
	require.NoError(t, repo.Save(ctx, overdue))

	settled := newInvoice(t, fx.tenancy.GetID(), "2026-02", date(2026, 2, 5), kes(30000))
	require.NoError(t, settled.ApplyPayment(kes(30000), date(2026, 2, 3)))
	require.NoError(t, repo.Save(ctx, settled))

	require.NoError(t, repo.Save(ctx, newInvoice(t, fx.tenancy.GetID(), "2026-03", date(2026, 4, 5), kes(30000))))

	rows, err := repo.FindOverdueOpen(ctx, date(2026, 3, 15))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, overdue.GetID(), row.InvoiceID)
	assert.Equal(t, fx.tenant.GetID(), row.TenantID)
	assert.Equal(t, "Wanjiku Mwangi", row.TenantName)
	assert.Equal(t, "A1", row.UnitNumber)
	assert.Equal(t, fx.property.GetID(), row.PropertyID)
	assert.Equal(t, "Sunrise Court", row.PropertyName)
	assert.Equal(t, "20000.00", row.Outstanding().StringFixed())
}
