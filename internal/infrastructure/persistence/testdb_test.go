package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/propertym/backend/internal/infrastructure/persistence/models"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
// The named shared-cache DSN keeps GORM's connection pool on one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.PropertyModel{},
		&models.UnitModel{},
		&models.TenantModel{},
		&models.TenancyModel{},
		&models.InvoiceModel{},
		&models.PaymentModel{},
	))
	return db
}

// fixture holds one property/unit/tenant/active-tenancy chain for tests that
// need the full join path.
type fixture struct {
	property *property.Property
	unit     *property.Unit
	tenant   *letting.Tenant
	tenancy  *letting.Tenancy
}

func seedTenancy(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	p, err := property.NewProperty("Sunrise Court", "Ngong Road", "Nairobi", "Nairobi", property.TypeApartment)
	require.NoError(t, err)
	require.NoError(t, NewGormPropertyRepository(db).Save(ctx, p))

	u, err := property.NewUnit(p.GetID(), "A1", 2, 1, 800, kes(30000), kes(30000))
	require.NoError(t, err)
	require.NoError(t, NewGormUnitRepository(db).Save(ctx, u))

	tn, err := letting.NewTenant("Wanjiku", "Mwangi", "0712345678", "", "", valueobject.Zero())
	require.NoError(t, err)
	require.NoError(t, NewGormTenantRepository(db).Save(ctx, tn))

	ty, err := letting.NewTenancy(u.GetID(), tn.GetID(), date(2026, 1, 1), u.RentAmount, u.DepositAmount)
	require.NoError(t, err)
	require.NoError(t, u.Occupy())
	require.NoError(t, NewGormTenancyRepository(db).CreateMoveIn(ctx, ty, u, tn, nil))

	return fixture{property: p, unit: u, tenant: tn, tenancy: ty}
}

func kes(amount float64) valueobject.Money {
	return valueobject.NewMoneyFromFloat(amount)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newInvoice(t *testing.T, tenancyID uuid.UUID, period string, due time.Time, total valueobject.Money) *billing.Invoice {
	t.Helper()
	p, err := ledger.ParsePeriod(period)
	require.NoError(t, err)
	inv, err := billing.NewInvoice(tenancyID, p, due, total, "", date(2026, 3, 15))
	require.NoError(t, err)
	return inv
}
