package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/ledger"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func kes(amount float64) valueobject.Money {
	return valueobject.NewMoneyFromFloat(amount)
}

func newTestInvoice(t *testing.T, total float64, dueDate time.Time) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), "2026-03", dueDate, kes(total), "", today)
	require.NoError(t, err)
	return inv
}

func TestDeriveStatus(t *testing.T) {
	future := today.AddDate(0, 0, 5)
	past := today.AddDate(0, 0, -5)

	tests := []struct {
		name    string
		total   float64
		paid    float64
		dueDate time.Time
		want    InvoiceStatus
	}{
		{"unpaid before due date", 25000, 0, future, InvoiceStatusPending},
		{"unpaid past due date", 25000, 0, past, InvoiceStatusOverdue},
		{"partially paid before due date", 25000, 10000, future, InvoiceStatusPartiallyPaid},
		{"partially paid past due date stays partial", 25000, 10000, past, InvoiceStatusPartiallyPaid},
		{"exactly paid", 25000, 25000, past, InvoiceStatusPaid},
		{"overpaid", 25000, 30000, past, InvoiceStatusPaid},
		{"due today is not overdue", 25000, 0, today, InvoiceStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(kes(tt.total), kes(tt.paid), tt.dueDate, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewInvoice(t *testing.T) {
	t.Run("starts pending with future due date", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, 10))
		assert.Equal(t, InvoiceStatusPending, inv.Status)
		assert.True(t, inv.PaidAmount.IsZero())
	})

	t.Run("created past due date starts overdue", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, -10))
		assert.Equal(t, InvoiceStatusOverdue, inv.Status)
	})

	t.Run("rejects zero total", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), "2026-03", today, kes(0), "", today)
		assert.Error(t, err)
	})
}

func TestNewOpeningInvoice(t *testing.T) {
	moveIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	inv, err := NewOpeningInvoice(uuid.New(), kes(15000), moveIn)
	require.NoError(t, err)

	assert.Equal(t, ledger.Period("OPENING-2026-02"), inv.Period)
	assert.True(t, inv.Period.IsOpening())
	assert.Equal(t, moveIn.AddDate(0, 0, -30), inv.DueDate)
	// Backdated 30 days, so it is overdue from the moment it exists
	assert.Equal(t, InvoiceStatusOverdue, inv.Status)
	assert.Equal(t, "15000.00", inv.TotalAmount.StringFixed())
}

func TestInvoice_ApplyPayment(t *testing.T) {
	t.Run("partial payment", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, 10))
		require.NoError(t, inv.ApplyPayment(kes(10000), today))
		assert.Equal(t, "10000.00", inv.PaidAmount.StringFixed())
		assert.Equal(t, InvoiceStatusPartiallyPaid, inv.Status)
		assert.Equal(t, "15000.00", inv.Outstanding().StringFixed())
	})

	t.Run("full payment settles overdue invoice", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, -10))
		require.NoError(t, inv.ApplyPayment(kes(25000), today))
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		assert.True(t, inv.IsSettled())
	})

	t.Run("overpayment is stored uncapped", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, 10))
		require.NoError(t, inv.ApplyPayment(kes(30000), today))
		assert.Equal(t, "30000.00", inv.PaidAmount.StringFixed())
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		assert.True(t, inv.Outstanding().IsZero())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today)
		assert.Error(t, inv.ApplyPayment(kes(0), today))
		assert.Error(t, inv.ApplyPayment(kes(-5), today))
	})
}

func TestInvoice_RollbackPayment(t *testing.T) {
	t.Run("restores prior state exactly", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, -10))
		require.NoError(t, inv.ApplyPayment(kes(10000), today))
		require.NoError(t, inv.RollbackPayment(kes(10000), today))
		assert.True(t, inv.PaidAmount.IsZero())
		assert.Equal(t, InvoiceStatusOverdue, inv.Status)
	})

	t.Run("floors at zero when rollback exceeds paid", func(t *testing.T) {
		inv := newTestInvoice(t, 25000, today.AddDate(0, 0, 10))
		require.NoError(t, inv.ApplyPayment(kes(5000), today))
		require.NoError(t, inv.RollbackPayment(kes(8000), today))
		assert.True(t, inv.PaidAmount.IsZero())
		assert.Equal(t, InvoiceStatusPending, inv.Status)
	})
}

func TestInvoice_Outstanding(t *testing.T) {
	inv := newTestInvoice(t, 25000, today)
	require.NoError(t, inv.ApplyPayment(kes(30000), today))
	assert.True(t, inv.Outstanding().IsZero(), "overpaid invoice owes nothing")
}
