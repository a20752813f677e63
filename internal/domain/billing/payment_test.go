package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	paidAt := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	tenantID := uuid.New()
	unitID := uuid.New()

	t.Run("payment allocated to an invoice", func(t *testing.T) {
		invoiceID := uuid.New()
		p, err := NewPayment(tenantID, unitID, &invoiceID, kes(25000), PaymentMethodMpesa, paidAt, "SBK2X81QPM", "")
		require.NoError(t, err)
		assert.Equal(t, PaymentMethodMpesa, p.Method)
		assert.Equal(t, "SBK2X81QPM", p.Reference)
		assert.True(t, p.IsLinked())
	})

	t.Run("general payment without an invoice", func(t *testing.T) {
		p, err := NewPayment(tenantID, unitID, nil, kes(5000), PaymentMethodCash, paidAt, "", "advance")
		require.NoError(t, err)
		assert.False(t, p.IsLinked())
		assert.Nil(t, p.InvoiceID)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewPayment(tenantID, unitID, nil, valueobject.Zero(), PaymentMethodCash, paidAt, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := NewPayment(tenantID, unitID, nil, kes(100), PaymentMethod("CHEQUE"), paidAt, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects nil tenant", func(t *testing.T) {
		_, err := NewPayment(uuid.Nil, unitID, nil, kes(100), PaymentMethodCash, paidAt, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects nil unit", func(t *testing.T) {
		_, err := NewPayment(tenantID, uuid.Nil, nil, kes(100), PaymentMethodCash, paidAt, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects empty invoice reference", func(t *testing.T) {
		nilID := uuid.Nil
		_, err := NewPayment(tenantID, unitID, &nilID, kes(100), PaymentMethodCash, paidAt, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects zero payment date", func(t *testing.T) {
		_, err := NewPayment(tenantID, unitID, nil, kes(100), PaymentMethodCash, time.Time{}, "", "")
		assert.Error(t, err)
	})
}

func TestPaymentMethod_IsValid(t *testing.T) {
	for _, m := range []PaymentMethod{
		PaymentMethodMpesa, PaymentMethodBankTransfer, PaymentMethodCash,
		PaymentMethodAirtelMoney, PaymentMethodOther,
	} {
		assert.True(t, m.IsValid(), m.String())
	}
	assert.False(t, PaymentMethod("").IsValid())
}
